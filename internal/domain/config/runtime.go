package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string
	EnvFile     string // dotenv file that was applied, empty if none existed

	// Context settings
	Network string // selected network key, empty if not specified

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Validated secrets read from the environment
	Secrets *Secrets
}
