package usecase

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/trebuchet-org/deploycfg/internal/domain"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// DefaultNetwork is the network used when none is selected
const DefaultNetwork = "hardhat"

// NetworkEntry binds a network key of the exported config to a chain
type NetworkEntry struct {
	Key   string
	Chain config.Chain
}

// liveNetworks are the remote networks exported alongside the local one
var liveNetworks = []NetworkEntry{
	{Key: "arbitrum", Chain: config.ChainArbitrumMainnet},
	{Key: "avalanche", Chain: config.ChainAvalancheMainnet},
	{Key: "bsc", Chain: config.ChainBSC},
	{Key: "bsc-testnet", Chain: config.ChainBSCTestnet},
	{Key: "goerli", Chain: config.ChainGoerli},
	{Key: "mainnet", Chain: config.ChainMainnet},
	{Key: "optimism", Chain: config.ChainOptimismMainnet},
	{Key: "polygon-mainnet", Chain: config.ChainPolygonMainnet},
	{Key: "polygon-mumbai", Chain: config.ChainPolygonMumbai},
	{Key: "sepolia", Chain: config.ChainSepolia},
}

// LiveNetworks returns the remote network entries in key order
func LiveNetworks() []NetworkEntry {
	return append([]NetworkEntry(nil), liveNetworks...)
}

// etherscanKeys maps explorer ids to the variable holding their API key
var etherscanKeys = map[string]string{
	"arbitrumOne":        config.EnvArbiscanAPIKey,
	"avalanche":          config.EnvSnowtraceAPIKey,
	"bsc":                config.EnvBscscanAPIKey,
	"mainnet":            config.EnvEtherscanAPIKey,
	"optimisticEthereum": config.EnvOptimismAPIKey,
	"polygon":            config.EnvPolygonAPIKey,
	"polygonMumbai":      config.EnvPolygonAPIKey,
	"sepolia":            config.EnvEtherscanAPIKey,
}

// BuildProjectConfig assembles the configuration object exported to the
// build/deploy framework. It performs no I/O.
func BuildProjectConfig(resolver NetworkResolver, secrets *config.Secrets) (*config.ProjectConfig, error) {
	if secrets == nil {
		return nil, fmt.Errorf("%w: secrets not loaded", domain.ErrMissingConfig)
	}

	networks := map[string]*config.Network{
		DefaultNetwork: resolver.Local(),
	}
	for _, entry := range liveNetworks {
		network, err := resolver.Resolve(entry.Chain)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve network %s: %w", entry.Key, err)
		}
		network.Name = entry.Key
		networks[entry.Key] = network
	}

	return &config.ProjectConfig{
		DefaultNetwork: DefaultNetwork,
		Etherscan: config.EtherscanConfig{
			APIKey: lo.MapValues(etherscanKeys, func(env string, _ string) string {
				return secrets.ExplorerKey(env)
			}),
		},
		GasReporter: config.GasReporterConfig{
			Currency:         "USD",
			Enabled:          secrets.ReportGas,
			ExcludeContracts: []string{},
			Src:              "./contracts",
		},
		NamedAccounts: config.NamedAccounts{
			config.RoleDeployer:     {Default: 0},
			config.RoleFeeCollector: {Default: 1},
		},
		Networks: networks,
		Paths: config.Paths{
			Artifacts:   "./artifacts",
			Cache:       "./cache",
			Sources:     "./contracts",
			Tests:       "./test",
			Deploy:      "deploy",
			Deployments: "deployments",
			Imports:     "imports",
		},
		Solidity: config.SolidityConfig{
			Version: "0.8.17",
			Settings: config.SoliditySettings{
				Metadata: config.MetadataSettings{
					// Not including the metadata hash
					BytecodeHash: "none",
				},
				Optimizer: config.OptimizerSettings{
					Enabled: true,
					Runs:    200,
				},
			},
		},
		Typechain: config.TypechainConfig{
			OutDir: "types",
			Target: "ethers-v5",
		},
	}, nil
}

// ProvideProjectConfig builds the project config once for Wire
func ProvideProjectConfig(resolver NetworkResolver, cfg *config.RuntimeConfig) (*config.ProjectConfig, error) {
	return BuildProjectConfig(resolver, cfg.Secrets)
}

// NetworkKeys returns the configured network keys in sorted order
func NetworkKeys(pc *config.ProjectConfig) []string {
	keys := lo.Keys(pc.Networks)
	sort.Strings(keys)
	return keys
}

// LookupNetwork returns the descriptor for a network key
func LookupNetwork(pc *config.ProjectConfig, key string) (*config.Network, error) {
	network, ok := pc.Networks[key]
	if !ok {
		return nil, &domain.UnknownNameError{
			Kind:        domain.ErrUnknownNetwork,
			Name:        key,
			Suggestions: domain.Suggest(key, NetworkKeys(pc)),
		}
	}
	return network, nil
}
