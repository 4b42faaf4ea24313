package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
	"github.com/trebuchet-org/deploycfg/internal/logging"
)

// projectMarkers identify the root of a contract project
var projectMarkers = []string{
	"hardhat.config.ts",
	"hardhat.config.js",
	"hardhat.config.cjs",
	"package.json",
}

// Provider creates RuntimeConfig for Wire dependency injection.
// It applies the dotenv file and validates secrets; any missing required
// secret aborts construction.
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	log := logging.New(os.Stderr, v.GetBool("debug"))

	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, ".deploycfg"),
		Network:        v.GetString("network"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
	}

	envFile := EnvFilePath(projectRoot, v.GetString("env_file"))
	loaded, err := LoadEnvFile(envFile, log)
	if err != nil {
		return nil, err
	}
	if loaded {
		cfg.EnvFile = envFile
	}

	secrets, err := LoadSecrets(os.LookupEnv)
	if err != nil {
		return nil, err
	}
	cfg.Secrets = secrets

	return cfg, nil
}

// FindProjectRoot walks up from the current directory looking for a project
// marker. The current directory is returned when none is found.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".deploycfg"))

	// Set up environment variables
	v.SetEnvPrefix("DEPLOYCFG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "30s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if !f.Changed {
				return
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
