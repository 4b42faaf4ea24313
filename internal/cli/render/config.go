package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/deploycfg/internal/domain/config"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if result.EnvFile != "" {
		fmt.Fprintf(r.out, "🔑 env file: %s\n", getRelativePath(result.EnvFile))
	} else {
		fmt.Fprintf(r.out, "🔑 env file: (none loaded, using process environment)\n")
	}

	if !result.Exists {
		fmt.Fprintf(r.out, "❌ No .deploycfg/config.local.json file found\n")
		fmt.Fprintf(r.out, "⚠️  Without config, commands use the default network unless --network is given\n")
		return nil
	}

	fmt.Fprintln(r.out, "📋 Current config:")

	// Show network (may be empty)
	if result.Config.Network != "" {
		fmt.Fprintf(r.out, "Network:  %s\n", result.Config.Network)
	} else {
		fmt.Fprintf(r.out, "Network:  %s\n", "(not set)")
	}
	if result.Config.EnvFile != "" {
		fmt.Fprintf(r.out, "Env file: %s\n", result.Config.EnvFile)
	} else {
		fmt.Fprintf(r.out, "Env file: %s\n", "(not set)")
	}

	fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(result.ConfigPath))

	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintf(r.out, "✅ Set %s to: %s\n", result.Key, result.Value)
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	switch result.Key {
	case config.ConfigKeyNetwork:
		fmt.Fprintf(r.out, "✅ Removed network from config (the default network applies)\n")
	case config.ConfigKeyEnvFile:
		fmt.Fprintf(r.out, "✅ Removed env file from config (DOTENV_CONFIG_PATH or ./.env applies)\n")
	}

	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}
