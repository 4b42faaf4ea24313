package config

// ProjectConfig is the complete configuration object handed to the external
// build/deploy framework
type ProjectConfig struct {
	DefaultNetwork string              `json:"defaultNetwork" yaml:"defaultNetwork" toml:"default_network"`
	Etherscan      EtherscanConfig     `json:"etherscan" yaml:"etherscan" toml:"etherscan"`
	GasReporter    GasReporterConfig   `json:"gasReporter" yaml:"gasReporter" toml:"gas_reporter"`
	NamedAccounts  NamedAccounts       `json:"namedAccounts" yaml:"namedAccounts" toml:"named_accounts"`
	Networks       map[string]*Network `json:"networks" yaml:"networks" toml:"networks"`
	Paths          Paths               `json:"paths" yaml:"paths" toml:"paths"`
	Solidity       SolidityConfig      `json:"solidity" yaml:"solidity" toml:"solidity"`
	Typechain      TypechainConfig     `json:"typechain" yaml:"typechain" toml:"typechain"`
}

// EtherscanConfig maps explorer identifiers to their API keys
type EtherscanConfig struct {
	APIKey map[string]string `json:"apiKey" yaml:"apiKey" toml:"api_key"`
}

// GasReporterConfig configures gas usage reporting during tests
type GasReporterConfig struct {
	Currency         string   `json:"currency" yaml:"currency" toml:"currency"`
	Enabled          bool     `json:"enabled" yaml:"enabled" toml:"enabled"`
	ExcludeContracts []string `json:"excludeContracts" yaml:"excludeContracts" toml:"exclude_contracts"`
	Src              string   `json:"src" yaml:"src" toml:"src"`
}

// NamedAccounts binds a role name to an index into the active signer set
type NamedAccounts map[string]NamedAccount

// NamedAccount is the per-role account binding
type NamedAccount struct {
	Default int `json:"default" yaml:"default" toml:"default"`
}

const (
	RoleDeployer     = "deployer"
	RoleFeeCollector = "feeCollector"
)

// Paths are the filesystem locations used by the build pipeline
type Paths struct {
	Artifacts   string `json:"artifacts" yaml:"artifacts" toml:"artifacts"`
	Cache       string `json:"cache" yaml:"cache" toml:"cache"`
	Sources     string `json:"sources" yaml:"sources" toml:"sources"`
	Tests       string `json:"tests" yaml:"tests" toml:"tests"`
	Deploy      string `json:"deploy" yaml:"deploy" toml:"deploy"`
	Deployments string `json:"deployments" yaml:"deployments" toml:"deployments"`
	Imports     string `json:"imports" yaml:"imports" toml:"imports"`
}

// SolidityConfig holds compiler version and settings
type SolidityConfig struct {
	Version  string           `json:"version" yaml:"version" toml:"version"`
	Settings SoliditySettings `json:"settings" yaml:"settings" toml:"settings"`
}

type SoliditySettings struct {
	Metadata  MetadataSettings  `json:"metadata" yaml:"metadata" toml:"metadata"`
	Optimizer OptimizerSettings `json:"optimizer" yaml:"optimizer" toml:"optimizer"`
}

type MetadataSettings struct {
	BytecodeHash string `json:"bytecodeHash" yaml:"bytecodeHash" toml:"bytecode_hash"`
}

type OptimizerSettings struct {
	Enabled bool `json:"enabled" yaml:"enabled" toml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs" toml:"runs"`
}

// TypechainConfig configures generated contract-interface bindings
type TypechainConfig struct {
	OutDir string `json:"outDir" yaml:"outDir" toml:"out_dir"`
	Target string `json:"target" yaml:"target" toml:"target"`
}
