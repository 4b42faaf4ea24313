package network

import (
	"sort"
	"strings"

	"github.com/trebuchet-org/deploycfg/internal/domain"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

var chainTable = map[config.Chain]config.ChainInfo{
	config.ChainHardhat: {
		ChainID: 31337,
	},
	config.ChainMainnet: {
		ChainID:        1,
		ExplorerURL:    "https://etherscan.io",
		Explorer:       "mainnet",
		ExplorerKeyEnv: config.EnvEtherscanAPIKey,
	},
	config.ChainGoerli: {
		ChainID:     5,
		ExplorerURL: "https://goerli.etherscan.io",
	},
	config.ChainBSC: {
		ChainID:        56,
		ExplorerURL:    "https://bscscan.com",
		Explorer:       "bsc",
		ExplorerKeyEnv: config.EnvBscscanAPIKey,
	},
	config.ChainBSCTestnet: {
		ChainID:     97,
		ExplorerURL: "https://testnet.bscscan.com",
	},
	config.ChainOptimismMainnet: {
		ChainID:        10,
		ExplorerURL:    "https://optimistic.etherscan.io",
		Explorer:       "optimisticEthereum",
		ExplorerKeyEnv: config.EnvOptimismAPIKey,
	},
	config.ChainPolygonMainnet: {
		ChainID:        137,
		ExplorerURL:    "https://polygonscan.com",
		Explorer:       "polygon",
		ExplorerKeyEnv: config.EnvPolygonAPIKey,
	},
	config.ChainPolygonMumbai: {
		ChainID:        80001,
		ExplorerURL:    "https://mumbai.polygonscan.com",
		Explorer:       "polygonMumbai",
		ExplorerKeyEnv: config.EnvPolygonAPIKey,
	},
	config.ChainAvalancheMainnet: {
		ChainID:        43114,
		ExplorerURL:    "https://snowtrace.io",
		Explorer:       "avalanche",
		ExplorerKeyEnv: config.EnvSnowtraceAPIKey,
	},
	config.ChainArbitrumMainnet: {
		ChainID:        42161,
		ExplorerURL:    "https://arbiscan.io",
		Explorer:       "arbitrumOne",
		ExplorerKeyEnv: config.EnvArbiscanAPIKey,
	},
	config.ChainAuroraMainnet: {
		ChainID:     1313161554,
		ExplorerURL: "https://explorer.aurora.dev",
	},
	config.ChainAuroraBetanet: {
		ChainID: 1313161556,
	},
	config.ChainSepolia: {
		ChainID:        11155111,
		ExplorerURL:    "https://sepolia.etherscan.io",
		Explorer:       "sepolia",
		ExplorerKeyEnv: config.EnvEtherscanAPIKey,
	},
}

func init() {
	for chain, info := range chainTable {
		info.Chain = chain
		chainTable[chain] = info
	}
}

// LookupChain returns the reference data for a chain
func LookupChain(chain config.Chain) (config.ChainInfo, error) {
	info, ok := chainTable[chain]
	if !ok {
		return config.ChainInfo{}, &domain.UnknownNameError{
			Kind:        domain.ErrUnknownChain,
			Name:        string(chain),
			Suggestions: domain.Suggest(string(chain), chainNames()),
		}
	}
	return info, nil
}

// ChainID returns the chain ID for a chain in the table
func ChainID(chain config.Chain) (uint64, error) {
	info, err := LookupChain(chain)
	if err != nil {
		return 0, err
	}
	return info.ChainID, nil
}

// ParseChain converts user input into a chain from the table
func ParseChain(name string) (config.Chain, error) {
	chain := config.Chain(strings.ToLower(strings.TrimSpace(name)))
	if _, err := LookupChain(chain); err != nil {
		return "", err
	}
	return chain, nil
}

// Chains returns every chain in the table ordered by chain ID
func Chains() []config.ChainInfo {
	chains := make([]config.ChainInfo, 0, len(chainTable))
	for _, info := range chainTable {
		chains = append(chains, info)
	}
	sort.Slice(chains, func(i, j int) bool {
		return chains[i].ChainID < chains[j].ChainID
	})
	return chains
}

func chainNames() []string {
	names := make([]string, 0, len(chainTable))
	for chain := range chainTable {
		names = append(names, string(chain))
	}
	sort.Strings(names)
	return names
}

// Registry exposes the chain table to use cases
type Registry struct{}

// NewRegistry creates a new chain registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Chains returns every chain in the table ordered by chain ID
func (r *Registry) Chains() []config.ChainInfo {
	return Chains()
}
