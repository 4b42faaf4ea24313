package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/deploycfg/internal/app"
	"github.com/trebuchet-org/deploycfg/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// skipInit lists commands that run without a project or secrets
var skipInit = map[string]bool{
	"version":                       true,
	"help":                          true,
	"completion":                    true,
	cobra.ShellCompRequestCmd:       true,
	cobra.ShellCompNoDescRequestCmd: true,
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "deploycfg",
		Short: "Network and signer configuration for contract deployments",
		Long: `deploycfg builds the configuration a contract build/deploy pipeline consumes:
the fixed chain table, one network descriptor per chain with its RPC endpoint
and signer keys, named accounts and compiler settings.

Secrets are read from a .env file (DOTENV_CONFIG_PATH overrides its location)
and validated before any command runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if skipInit[cmd.Name()] {
				return nil
			}

			// Find project root
			projectRoot, _ := cmd.Flags().GetString("project-root")
			if projectRoot == "" {
				var err error
				projectRoot, err = config.FindProjectRoot()
				if err != nil {
					return err
				}
			}

			// Set up viper with the flags that have been set
			v := config.SetupViper(projectRoot, cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("project-root", "", "Project root (defaults to the nearest directory with a hardhat config or package.json)")
	rootCmd.PersistentFlags().String("env-file", "", "Dotenv file to load (defaults to DOTENV_CONFIG_PATH or ./.env)")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., mainnet, sepolia)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "main"
	rootCmd.AddCommand(networksCmd)

	showCmd := NewShowCmd()
	showCmd.GroupID = "main"
	rootCmd.AddCommand(showCmd)

	accountsCmd := NewAccountsCmd()
	accountsCmd.GroupID = "main"
	rootCmd.AddCommand(accountsCmd)

	exportCmd := NewExportCmd()
	exportCmd.GroupID = "main"
	rootCmd.AddCommand(exportCmd)

	// Management commands
	checkCmd := NewCheckCmd()
	checkCmd.GroupID = "management"
	rootCmd.AddCommand(checkCmd)

	chainsCmd := NewChainsCmd()
	chainsCmd.GroupID = "management"
	rootCmd.AddCommand(chainsCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	// Version command
	versionCmd := NewVersionCmd()
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// useColor reports whether human output should be colored
func useColor(a *app.App) bool {
	return !color.NoColor && !a.Config.NonInteractive
}
