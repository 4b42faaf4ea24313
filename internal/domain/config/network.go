package config

import "encoding/json"

// Chain identifies an entry in the fixed chain table
type Chain string

const (
	ChainHardhat          Chain = "hardhat"
	ChainMainnet          Chain = "mainnet"
	ChainGoerli           Chain = "goerli"
	ChainBSC              Chain = "bsc"
	ChainBSCTestnet       Chain = "bsc-testnet"
	ChainOptimismMainnet  Chain = "optimism-mainnet"
	ChainPolygonMainnet   Chain = "polygon-mainnet"
	ChainPolygonMumbai    Chain = "polygon-mumbai"
	ChainAvalancheMainnet Chain = "avalanche-mainnet"
	ChainArbitrumMainnet  Chain = "arbitrum-mainnet"
	ChainAuroraMainnet    Chain = "aurora-mainnet"
	ChainAuroraBetanet    Chain = "aurora-betanet"
	ChainSepolia          Chain = "sepolia"
)

func (c Chain) String() string {
	return string(c)
}

// ChainInfo is the reference data kept for each chain
type ChainInfo struct {
	Chain       Chain  `json:"chain"`
	ChainID     uint64 `json:"chainId"`
	ExplorerURL string `json:"explorerUrl,omitempty"`

	// Explorer is the etherscan api key id used for verification and
	// ExplorerKeyEnv the variable holding its key. Both are empty for
	// chains without a configured verifier.
	Explorer       string `json:"explorer,omitempty"`
	ExplorerKeyEnv string `json:"explorerKeyEnv,omitempty"`
}

// SignerTier selects which signer key set a network uses
type SignerTier string

const (
	TierStandard   SignerTier = "standard"
	TierProduction SignerTier = "production"
	TierLocal      SignerTier = "local"
)

// Network is the resolved descriptor for a single network entry.
// It is built once at startup and never mutated afterwards.
type Network struct {
	Name            string        `json:"name" yaml:"name" toml:"name"`
	Chain           Chain         `json:"chain" yaml:"chain" toml:"chain"`
	ChainID         uint64        `json:"chainId" yaml:"chainId" toml:"chain_id"`
	RPCURL          string        `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
	Tier            SignerTier    `json:"tier" yaml:"tier" toml:"tier"`
	Accounts        SignerKeys    `json:"accounts,omitempty" yaml:"accounts,omitempty" toml:"accounts,omitempty"`
	HDAccounts      *HDAccounts   `json:"hdAccounts,omitempty" yaml:"hdAccounts,omitempty" toml:"hd_accounts,omitempty"`
	Live            bool          `json:"live" yaml:"live" toml:"live"`
	SaveDeployments bool          `json:"saveDeployments" yaml:"saveDeployments" toml:"save_deployments"`
	Tags            []string      `json:"tags" yaml:"tags" toml:"tags"`
	Verify          *VerifyConfig `json:"verify,omitempty" yaml:"verify,omitempty" toml:"verify,omitempty"`
}

// networkDoc is the exported form of Network. accounts holds either the
// key list or the HD account spec, the two shapes the deploy framework reads.
type networkDoc struct {
	Name            string        `json:"name" yaml:"name"`
	Chain           Chain         `json:"chain" yaml:"chain"`
	ChainID         uint64        `json:"chainId" yaml:"chainId"`
	RPCURL          string        `json:"url,omitempty" yaml:"url,omitempty"`
	Tier            SignerTier    `json:"tier" yaml:"tier"`
	Accounts        any           `json:"accounts,omitempty" yaml:"accounts,omitempty"`
	Live            bool          `json:"live" yaml:"live"`
	SaveDeployments bool          `json:"saveDeployments" yaml:"saveDeployments"`
	Tags            []string      `json:"tags" yaml:"tags"`
	Verify          *VerifyConfig `json:"verify,omitempty" yaml:"verify,omitempty"`
}

func (n Network) doc() networkDoc {
	d := networkDoc{
		Name:            n.Name,
		Chain:           n.Chain,
		ChainID:         n.ChainID,
		RPCURL:          n.RPCURL,
		Tier:            n.Tier,
		Live:            n.Live,
		SaveDeployments: n.SaveDeployments,
		Tags:            n.Tags,
		Verify:          n.Verify,
	}
	switch {
	case n.HDAccounts != nil:
		d.Accounts = n.HDAccounts
	case len(n.Accounts) > 0:
		d.Accounts = n.Accounts
	}
	return d
}

// MarshalJSON writes the network in the framework's shape
func (n Network) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.doc())
}

// MarshalYAML writes the network in the framework's shape
func (n Network) MarshalYAML() (any, error) {
	return n.doc(), nil
}

// IsLocal reports whether the network signs with derived development accounts
func (n *Network) IsLocal() bool {
	return n.HDAccounts != nil
}

// SignerKeys is an ordered list of hex-encoded private keys
type SignerKeys []string

// HDAccounts describes accounts derived from a mnemonic
type HDAccounts struct {
	Mnemonic string `json:"mnemonic" yaml:"mnemonic" toml:"mnemonic"`
	Path     string `json:"path" yaml:"path" toml:"path"`
	Count    int    `json:"count" yaml:"count" toml:"count"`
}

// VerifyConfig holds block-explorer verification settings for a network
type VerifyConfig struct {
	Explorer  string `json:"explorer" yaml:"explorer" toml:"explorer"` // etherscan api key id, e.g. "arbitrumOne"
	APIKeyEnv string `json:"apiKeyEnv" yaml:"apiKeyEnv" toml:"api_key_env"`
	APIKey    string `json:"apiKey,omitempty" yaml:"apiKey,omitempty" toml:"api_key,omitempty"`
	URL       string `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
}
