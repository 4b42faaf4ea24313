package config

// Environment variable names consumed at startup
const (
	EnvDotenvPath      = "DOTENV_CONFIG_PATH"
	EnvMnemonic        = "MNEMONIC"
	EnvPrivateKey      = "PRIVATEKEY"
	EnvProdPrivateKey  = "PRODPRIVATEKEY"
	EnvStarlandKey     = "STARLANDPRIVKEY"
	EnvInfuraAPIKey    = "INFURA_API_KEY"
	EnvReportGas       = "REPORT_GAS"
	EnvArbiscanAPIKey  = "ARBISCAN_API_KEY"
	EnvSnowtraceAPIKey = "SNOWTRACE_API_KEY"
	EnvBscscanAPIKey   = "BSCSCAN_API_KEY"
	EnvEtherscanAPIKey = "ETHERSCAN_API_KEY"
	EnvOptimismAPIKey  = "OPTIMISM_API_KEY"
	EnvPolygonAPIKey   = "POLYGONSCAN_API_KEY"
)

// Secrets holds every value read from the environment at startup.
// Required fields are guaranteed non-empty once validation has passed.
type Secrets struct {
	Mnemonic           string // optional
	PrivateKey         string
	ProdPrivateKey     string
	StarlandPrivateKey string
	InfuraAPIKey       string
	ReportGas          bool

	// ExplorerKeys maps an explorer env var (e.g. ETHERSCAN_API_KEY) to its
	// value. Unset keys are present with an empty value.
	ExplorerKeys map[string]string
}

// StandardKeys is the general-purpose signer set
func (s *Secrets) StandardKeys() SignerKeys {
	return SignerKeys{s.StarlandPrivateKey}
}

// ProductionKeys is the signer set used by mainnet-class networks
func (s *Secrets) ProductionKeys() SignerKeys {
	return SignerKeys{s.ProdPrivateKey}
}

// ExplorerKey returns the value of an explorer API key variable, "" if unset
func (s *Secrets) ExplorerKey(env string) string {
	if s.ExplorerKeys == nil {
		return ""
	}
	return s.ExplorerKeys[env]
}

// ExplorerKeyEnvs lists the optional explorer API key variables
func ExplorerKeyEnvs() []string {
	return []string{
		EnvArbiscanAPIKey,
		EnvSnowtraceAPIKey,
		EnvBscscanAPIKey,
		EnvEtherscanAPIKey,
		EnvOptimismAPIKey,
		EnvPolygonAPIKey,
	}
}

// TrimHexPrefix removes a leading 0x or 0X
func TrimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
