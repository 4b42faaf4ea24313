package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration operations
var (
	// ErrMissingConfig is returned when a required environment variable is absent
	ErrMissingConfig = errors.New("missing required configuration")

	// ErrInvalidSecret is returned when a secret is present but unusable
	ErrInvalidSecret = errors.New("invalid secret")

	// ErrUnknownChain is returned for a chain outside the chain table
	ErrUnknownChain = errors.New("unknown chain")

	// ErrUnknownNetwork is returned for a network key that is not configured
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrChainIDMismatch is returned when an RPC endpoint reports an unexpected chain ID
	ErrChainIDMismatch = errors.New("chain ID mismatch")
)

// MissingConfigError names a required environment variable that was not set
type MissingConfigError struct {
	Var         string
	Description string
}

func (e *MissingConfigError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("please set %s in a .env file", e.Var)
	}
	return fmt.Sprintf("please set your %s (%s) in a .env file", e.Description, e.Var)
}

func (e *MissingConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// InvalidSecretError wraps a parse failure for a named secret.
// The secret value itself is never included in the message.
type InvalidSecretError struct {
	Var string
	Err error
}

func (e *InvalidSecretError) Error() string {
	return fmt.Sprintf("%s is not a valid private key: %v", e.Var, e.Err)
}

func (e *InvalidSecretError) Is(target error) bool {
	return target == ErrInvalidSecret
}

func (e *InvalidSecretError) Unwrap() error {
	return e.Err
}

// UnknownNameError reports an unrecognised network or chain name together
// with the closest known names
type UnknownNameError struct {
	Kind        error // ErrUnknownNetwork or ErrUnknownChain
	Name        string
	Suggestions []string
}

func (e *UnknownNameError) Error() string {
	msg := fmt.Sprintf("%v: %s", e.Kind, e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *UnknownNameError) Unwrap() error {
	return e.Kind
}

// ChainIDMismatchError reports an RPC endpoint serving the wrong chain
type ChainIDMismatchError struct {
	Network  string
	Expected uint64
	Actual   uint64
}

func (e *ChainIDMismatchError) Error() string {
	return fmt.Sprintf("network %s: expected chain ID %d, endpoint reports %d", e.Network, e.Expected, e.Actual)
}

func (e *ChainIDMismatchError) Is(target error) bool {
	return target == ErrChainIDMismatch
}
