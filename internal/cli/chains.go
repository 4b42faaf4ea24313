package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/deploycfg/internal/cli/render"
)

// NewChainsCmd creates the chains command
func NewChainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "List the chain table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListChains.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			renderer := render.NewChainsRenderer(cmd.OutOrStdout(), useColor(app))
			return renderer.RenderChains(result)
		},
	}
}
