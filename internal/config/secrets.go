package config

import (
	"errors"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/deploycfg/internal/domain"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// LookupFunc reads a single environment variable
type LookupFunc func(key string) (string, bool)

// requiredSecret describes a variable that must be present at startup
type requiredSecret struct {
	env         string
	description string
	privateKey  bool
	assign      func(s *config.Secrets, value string)
}

var requiredSecrets = []requiredSecret{
	{
		env:         config.EnvPrivateKey,
		description: "privatekey",
		privateKey:  true,
		assign:      func(s *config.Secrets, v string) { s.PrivateKey = v },
	},
	{
		env:         config.EnvProdPrivateKey,
		description: "production privatekey",
		privateKey:  true,
		assign:      func(s *config.Secrets, v string) { s.ProdPrivateKey = v },
	},
	{
		env:         config.EnvStarlandKey,
		description: "starland privatekey",
		privateKey:  true,
		assign:      func(s *config.Secrets, v string) { s.StarlandPrivateKey = v },
	},
	{
		env:         config.EnvInfuraAPIKey,
		description: "infura api key",
		assign:      func(s *config.Secrets, v string) { s.InfuraAPIKey = v },
	},
}

// RequiredSecretEnvs lists the variables LoadSecrets refuses to run without
func RequiredSecretEnvs() []string {
	envs := make([]string, len(requiredSecrets))
	for i, r := range requiredSecrets {
		envs[i] = r.env
	}
	return envs
}

// LoadSecrets reads and validates secrets through lookup.
// Every missing required variable is reported, joined into a single error.
func LoadSecrets(lookup LookupFunc) (*config.Secrets, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	secrets := &config.Secrets{
		ExplorerKeys: make(map[string]string),
	}

	var errs []error
	for _, r := range requiredSecrets {
		value, ok := lookup(r.env)
		value = strings.TrimSpace(value)
		if !ok || value == "" {
			errs = append(errs, &domain.MissingConfigError{Var: r.env, Description: r.description})
			continue
		}
		if r.privateKey {
			if err := validatePrivateKey(value); err != nil {
				errs = append(errs, &domain.InvalidSecretError{Var: r.env, Err: err})
				continue
			}
		}
		r.assign(secrets, value)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if v, ok := lookup(config.EnvMnemonic); ok {
		secrets.Mnemonic = strings.TrimSpace(v)
	}
	if v, ok := lookup(config.EnvReportGas); ok && v != "" {
		secrets.ReportGas = true
	}
	for _, env := range config.ExplorerKeyEnvs() {
		v, _ := lookup(env)
		secrets.ExplorerKeys[env] = v
	}

	return secrets, nil
}

// validatePrivateKey checks that a hex string is a usable secp256k1 key
func validatePrivateKey(value string) error {
	_, err := crypto.HexToECDSA(config.TrimHexPrefix(value))
	return err
}
