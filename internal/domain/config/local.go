package config

// LocalConfig represents the per-project defaults stored in
// .deploycfg/config.local.json
type LocalConfig struct {
	Network string `json:"network,omitempty"`
	EnvFile string `json:"env_file,omitempty"`
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeyNetwork ConfigKey = "network"
	ConfigKeyEnvFile ConfigKey = "env-file"
)

// DefaultLocalConfig returns the default local configuration
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{}
}

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyNetwork,
		ConfigKeyEnvFile,
	}
}

// NormalizeConfigKey normalizes a config key (e.g., "env_file" -> "env-file")
func NormalizeConfigKey(key string) (ConfigKey, bool) {
	switch key {
	case "network", "net":
		return ConfigKeyNetwork, true
	case "env-file", "env_file", "envfile":
		return ConfigKeyEnvFile, true
	default:
		return "", false
	}
}
