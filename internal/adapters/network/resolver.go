package network

import (
	"fmt"
	"slices"

	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// Fixed RPC endpoints for networks not served by Infura
const (
	BSCRPCURL        = "https://bsc-dataseed1.binance.org"
	BSCTestnetRPCURL = "https://data-seed-prebsc-1-s1.binance.org:8545/"
)

// Local network defaults
const (
	DevMnemonic       = "test test test test test test test test test test test junk"
	DefaultHDPath     = "m/44'/60'/0'/0"
	DefaultLocalCount = 10
)

// productionChains sign with the production key set
var productionChains = []config.Chain{
	config.ChainMainnet,
	config.ChainBSC,
	config.ChainPolygonMainnet,
}

// Resolver maps chains to network descriptors.
// It holds validated secrets and never reads the environment itself, so
// repeated calls with the same chain return equal descriptors.
type Resolver struct {
	secrets *config.Secrets
}

// NewResolver creates a new network resolver
func NewResolver(secrets *config.Secrets) *Resolver {
	return &Resolver{secrets: secrets}
}

// ProvideResolver creates a Resolver for Wire dependency injection
func ProvideResolver(cfg *config.RuntimeConfig) *Resolver {
	return NewResolver(cfg.Secrets)
}

// Resolve returns the network descriptor for a chain. The hardhat chain
// resolves to the local network.
func (r *Resolver) Resolve(chain config.Chain) (*config.Network, error) {
	if chain == config.ChainHardhat {
		return r.Local(), nil
	}

	info, err := LookupChain(chain)
	if err != nil {
		return nil, err
	}

	tier := Tier(chain)
	keys := r.secrets.StandardKeys()
	if tier == config.TierProduction {
		keys = r.secrets.ProductionKeys()
	}

	return &config.Network{
		Name:            string(chain),
		Chain:           chain,
		ChainID:         info.ChainID,
		RPCURL:          RPCURL(chain, r.secrets.InfuraAPIKey),
		Tier:            tier,
		Accounts:        slices.Clone(keys),
		Live:            true,
		SaveDeployments: true,
		Tags:            []string{"staging"},
		Verify:          r.verifyConfig(info),
	}, nil
}

// Local returns the in-process development network. Accounts are derived
// from MNEMONIC, or from the well-known development mnemonic when unset.
func (r *Resolver) Local() *config.Network {
	mnemonic := r.secrets.Mnemonic
	if mnemonic == "" {
		mnemonic = DevMnemonic
	}

	return &config.Network{
		Name:    string(config.ChainHardhat),
		Chain:   config.ChainHardhat,
		ChainID: chainTable[config.ChainHardhat].ChainID,
		Tier:    config.TierLocal,
		HDAccounts: &config.HDAccounts{
			Mnemonic: mnemonic,
			Path:     DefaultHDPath,
			Count:    DefaultLocalCount,
		},
		Live:            false,
		SaveDeployments: true,
		Tags:            []string{"test", "local"},
	}
}

func (r *Resolver) verifyConfig(info config.ChainInfo) *config.VerifyConfig {
	if info.Explorer == "" {
		return nil
	}
	return &config.VerifyConfig{
		Explorer:  info.Explorer,
		APIKeyEnv: info.ExplorerKeyEnv,
		APIKey:    r.secrets.ExplorerKey(info.ExplorerKeyEnv),
		URL:       info.ExplorerURL,
	}
}

// Tier returns the signer tier a chain uses
func Tier(chain config.Chain) config.SignerTier {
	if slices.Contains(productionChains, chain) {
		return config.TierProduction
	}
	return config.TierStandard
}

// RPCURL returns the JSON-RPC endpoint for a chain
func RPCURL(chain config.Chain, infuraAPIKey string) string {
	switch chain {
	case config.ChainBSC:
		return BSCRPCURL
	case config.ChainBSCTestnet:
		return BSCTestnetRPCURL
	default:
		return fmt.Sprintf("https://%s.infura.io/v3/%s", chain, infuraAPIKey)
	}
}
