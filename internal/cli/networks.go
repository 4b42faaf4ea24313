package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/deploycfg/internal/cli/render"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var liveOnly bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List configured networks",
		Long: `List every network in the exported config with its chain ID, signer tier,
account count and tags. API keys embedded in RPC URLs are masked.

The selected network (--network or config) is marked with *.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			// Run use case
			params := usecase.ListNetworksParams{
				LiveOnly: liveOnly,
			}
			result, err := app.ListNetworks.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			// Render output
			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), useColor(app))
			return renderer.RenderNetworksList(result)
		},
	}

	cmd.Flags().BoolVar(&liveOnly, "live", false, "Only list remote networks")

	return cmd
}
