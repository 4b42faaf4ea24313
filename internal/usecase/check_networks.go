package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/trebuchet-org/deploycfg/internal/domain"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// CheckStatus is the outcome of probing one RPC endpoint
type CheckStatus string

const (
	CheckOK       CheckStatus = "ok"
	CheckMismatch CheckStatus = "mismatch"
	CheckFailed   CheckStatus = "error"
)

// CheckNetworksParams contains parameters for checking RPC endpoints
type CheckNetworksParams struct {
	Networks []string // empty means every live network
}

// CheckNetworksResult contains one entry per probed network
type CheckNetworksResult struct {
	Results []NetworkCheck
}

// Failed reports whether any network did not match
func (r *CheckNetworksResult) Failed() bool {
	for _, c := range r.Results {
		if c.Status != CheckOK {
			return true
		}
	}
	return false
}

// NetworkCheck is the outcome for a single network
type NetworkCheck struct {
	Key      string
	RPCURL   string // masked
	Expected uint64
	Actual   uint64
	Status   CheckStatus
	Error    error
}

// CheckNetworks compares the chain ID each RPC endpoint reports with the
// chain table
type CheckNetworks struct {
	project  *config.ProjectConfig
	runtime  *config.RuntimeConfig
	fetcher  ChainIDFetcher
	progress ProgressSink
}

// NewCheckNetworks creates a new CheckNetworks use case
func NewCheckNetworks(project *config.ProjectConfig, runtime *config.RuntimeConfig, fetcher ChainIDFetcher, progress ProgressSink) *CheckNetworks {
	return &CheckNetworks{
		project:  project,
		runtime:  runtime,
		fetcher:  fetcher,
		progress: progress,
	}
}

// Run executes the use case
func (uc *CheckNetworks) Run(ctx context.Context, params CheckNetworksParams) (*CheckNetworksResult, error) {
	keys, err := uc.selectKeys(params.Networks)
	if err != nil {
		return nil, err
	}

	result := &CheckNetworksResult{}
	for i, key := range keys {
		network := uc.project.Networks[key]
		masked := MaskRPCURL(network.RPCURL, uc.runtime.Secrets.InfuraAPIKey)

		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   "check",
			Current: i + 1,
			Total:   len(keys),
			Message: fmt.Sprintf("Checking %s (%s)", key, masked),
			Spinner: true,
		})

		check := NetworkCheck{
			Key:      key,
			RPCURL:   masked,
			Expected: network.ChainID,
		}

		// Remaining networks fail without dialing once ctx is done
		if err := ctx.Err(); err != nil {
			check.Status = CheckFailed
			check.Error = fmt.Errorf("not checked: %w", err)
			result.Results = append(result.Results, check)
			continue
		}

		actual, err := uc.fetcher.FetchChainID(ctx, network.RPCURL)
		switch {
		case err != nil:
			check.Status = CheckFailed
			check.Error = scrubError(err, uc.runtime.Secrets.InfuraAPIKey)
		case actual != network.ChainID:
			check.Actual = actual
			check.Status = CheckMismatch
			check.Error = &domain.ChainIDMismatchError{Network: key, Expected: network.ChainID, Actual: actual}
		default:
			check.Actual = actual
			check.Status = CheckOK
		}
		result.Results = append(result.Results, check)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "done", Current: len(keys), Total: len(keys)})
	return result, nil
}

func (uc *CheckNetworks) selectKeys(requested []string) ([]string, error) {
	if len(requested) == 0 {
		var keys []string
		for _, key := range NetworkKeys(uc.project) {
			if uc.project.Networks[key].Live {
				keys = append(keys, key)
			}
		}
		return keys, nil
	}

	for _, key := range requested {
		network, err := LookupNetwork(uc.project, key)
		if err != nil {
			return nil, err
		}
		if !network.Live {
			return nil, fmt.Errorf("network %s has no remote RPC endpoint", key)
		}
	}
	return requested, nil
}

// scrubError keeps the API key out of transport errors that echo the URL
func scrubError(err error, apiKey string) error {
	if apiKey == "" {
		return err
	}
	msg := MaskRPCURL(err.Error(), apiKey)
	if msg == err.Error() {
		return err
	}
	return errors.New(msg)
}
