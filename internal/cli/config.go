package cli

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/deploycfg/internal/app"
	"github.com/trebuchet-org/deploycfg/internal/cli/render"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change per-project defaults",
		Long: `Per-project defaults live in .deploycfg/config.local.json next to the
project root. They are applied whenever the matching flag is absent:

  network    default for --network (alias: net)
  env-file   default for --env-file, ahead of DOTENV_CONFIG_PATH

Without a subcommand the current defaults and the dotenv file applied at
startup are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				result, err := a.ShowConfig.Run(cmd.Context())
				if err != nil {
					return err
				}
				if a.Config.JSON {
					return render.RenderJSON(cmd.OutOrStdout(), configView(result))
				}
				return render.NewConfigRenderer(cmd.OutOrStdout()).RenderConfig(result)
			})
		},
	}

	cmd.AddCommand(newConfigSetCmd(), newConfigRemoveCmd())
	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a per-project default",
		Long: `Set a per-project default. Network values must name a configured network.

Examples:
  deploycfg config set network sepolia
  deploycfg config set env-file .env.staging`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeConfigSet,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				result, err := a.SetConfig.Run(cmd.Context(), usecase.SetConfigParams{
					Key:   args[0],
					Value: args[1],
				})
				if err != nil {
					return err
				}
				return render.NewConfigRenderer(cmd.OutOrStdout()).RenderSet(result)
			})
		},
	}
}

func newConfigRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <key>",
		Aliases: []string{"rm", "unset"},
		Short:   "Clear a per-project default",
		Long: `Clear a per-project default so the built-in fallback applies again:
the hardhat network, or DOTENV_CONFIG_PATH and then ./.env.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				result, err := a.RemoveConfig.Run(cmd.Context(), usecase.RemoveConfigParams{Key: args[0]})
				if err != nil {
					return err
				}
				return render.NewConfigRenderer(cmd.OutOrStdout()).RenderRemove(result)
			})
		},
	}
}

// withApp runs fn with the App built in PersistentPreRunE
func withApp(cmd *cobra.Command, fn func(a *app.App) error) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}
	return fn(a)
}

// configView is the JSON shape of the config command
func configView(result *usecase.ShowConfigResult) map[string]any {
	view := map[string]any{
		"path":    result.ConfigPath,
		"exists":  result.Exists,
		"envFile": result.EnvFile,
	}
	if result.Config != nil {
		view["network"] = result.Config.Network
		view["defaultEnvFile"] = result.Config.EnvFile
	}
	return view
}

// Completion runs without PersistentPreRunE, so candidates come from static
// tables rather than the App.

func completeConfigKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	keys := lo.Map(config.ValidConfigKeys(), func(k config.ConfigKey, _ int) string { return string(k) })
	return filterPrefix(keys, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completeConfigSet(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return completeConfigKeys(cmd, args, toComplete)
	case 1:
		key, ok := config.NormalizeConfigKey(strings.ToLower(args[0]))
		if !ok {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		if key == config.ConfigKeyEnvFile {
			return nil, cobra.ShellCompDirectiveDefault
		}
		networks := append([]string{usecase.DefaultNetwork}, lo.Map(usecase.LiveNetworks(), func(e usecase.NetworkEntry, _ int) string { return e.Key })...)
		return filterPrefix(networks, toComplete), cobra.ShellCompDirectiveNoFileComp
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

func filterPrefix(values []string, prefix string) []string {
	return lo.Filter(values, func(v string, _ int) bool { return strings.HasPrefix(v, prefix) })
}
