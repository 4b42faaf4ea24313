package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// ShowNetworkParams contains parameters for showing a network
type ShowNetworkParams struct {
	Key string
}

// ShowNetworkResult contains a redacted network descriptor and its signers
type ShowNetworkResult struct {
	Key       string           `json:"key"`
	Network   *config.Network  `json:"network"`
	RPCURL    string           `json:"url,omitempty"`
	Addresses []common.Address `json:"addresses"`
}

// ShowNetwork is a use case for inspecting one network
type ShowNetwork struct {
	project  *config.ProjectConfig
	runtime  *config.RuntimeConfig
	accounts AccountDeriver
	selector NetworkSelector
}

// NewShowNetwork creates a new ShowNetwork use case
func NewShowNetwork(project *config.ProjectConfig, runtime *config.RuntimeConfig, accounts AccountDeriver, selector NetworkSelector) *ShowNetwork {
	return &ShowNetwork{
		project:  project,
		runtime:  runtime,
		accounts: accounts,
		selector: selector,
	}
}

// Run executes the use case
func (uc *ShowNetwork) Run(ctx context.Context, params ShowNetworkParams) (*ShowNetworkResult, error) {
	key, err := uc.pickKey(ctx, params.Key)
	if err != nil {
		return nil, err
	}

	network, err := LookupNetwork(uc.project, key)
	if err != nil {
		return nil, err
	}

	addresses := make([]common.Address, 0, uc.accounts.Count(network))
	for i := 0; i < uc.accounts.Count(network); i++ {
		addr, _, err := uc.accounts.AddressAt(network, i)
		if err != nil {
			return nil, fmt.Errorf("failed to derive account %d for %s: %w", i, key, err)
		}
		addresses = append(addresses, addr)
	}

	return &ShowNetworkResult{
		Key:       key,
		Network:   RedactNetwork(network),
		RPCURL:    MaskRPCURL(network.RPCURL, uc.runtime.Secrets.InfuraAPIKey),
		Addresses: addresses,
	}, nil
}

// pickKey resolves which network to show: explicit argument, then the
// selected network, then an interactive pick, then the default network
func (uc *ShowNetwork) pickKey(ctx context.Context, key string) (string, error) {
	if key != "" {
		return key, nil
	}
	if uc.runtime.Network != "" {
		return uc.runtime.Network, nil
	}
	if !uc.runtime.NonInteractive && uc.selector != nil {
		return uc.selector.SelectNetwork(ctx, NetworkKeys(uc.project), "Select network")
	}
	return uc.project.DefaultNetwork, nil
}
