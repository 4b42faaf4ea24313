package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/deploycfg/internal/cli/render"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// NewAccountsCmd creates the accounts command
func NewAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts [network]",
		Short: "Show named accounts for a network",
		Long: `Resolve each named account (deployer, feeCollector) to the signer at its
index on the given network. Roles whose index is past the end of the
network's signer set are reported as unassigned.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListAccountsParams{}
			if len(args) > 0 {
				params.Network = args[0]
			}

			result, err := app.ListAccounts.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			renderer := render.NewAccountsRenderer(cmd.OutOrStdout(), useColor(app))
			return renderer.RenderAccounts(result)
		},
	}
}
