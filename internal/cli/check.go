package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/deploycfg/internal/cli/render"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [network...]",
		Short: "Check that RPC endpoints serve the expected chain",
		Long: `Call eth_chainId on each network's RPC endpoint and compare the answer with
the chain table. Without arguments every live network is checked.

Exits non-zero when any endpoint is unreachable or reports another chain.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.CheckNetworksParams{
				Networks: args,
			}

			result, err := app.CheckNetworks.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				if err := render.RenderJSON(cmd.OutOrStdout(), render.CheckViews(result)); err != nil {
					return err
				}
			} else {
				renderer := render.NewCheckRenderer(cmd.OutOrStdout(), useColor(app))
				if err := renderer.RenderChecks(result); err != nil {
					return err
				}
			}

			if result.Failed() {
				return fmt.Errorf("one or more RPC endpoints failed the chain ID check")
			}
			return nil
		},
	}
}
