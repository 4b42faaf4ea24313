package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/deploycfg/internal/cli/render"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [network]",
		Short: "Show a network descriptor",
		Long: `Show the resolved descriptor for one network: RPC endpoint, chain ID,
signer tier and derived signer addresses. Secrets are redacted.

Without an argument the selected network is used, or a picker is shown when
running interactively.

Examples:
  deploycfg show mainnet
  deploycfg show --network sepolia`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ShowNetworkParams{}
			if len(args) > 0 {
				params.Key = args[0]
			}

			result, err := app.ShowNetwork.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), useColor(app))
			return renderer.RenderNetwork(result)
		},
	}
}
