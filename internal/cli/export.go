package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/deploycfg/internal/cli/render"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var (
		format         string
		out            string
		includeSecrets bool
		force          bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the project config",
		Long: `Render the full project config (networks, named accounts, explorer keys,
gas reporter, paths, compiler and typechain settings) for the build/deploy
framework.

Signer keys, the mnemonic and explorer API keys are redacted unless
--include-secrets is given. The format defaults to the --out extension, then json.

Examples:
  deploycfg export
  deploycfg export --format yaml
  deploycfg export --out deploy.config.json --include-secrets`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ExportConfigParams{
				Format:         usecase.ExportFormat(format),
				Out:            out,
				IncludeSecrets: includeSecrets,
				Force:          force,
			}

			result, err := app.ExportConfig.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewExportRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr())
			return renderer.RenderExport(result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, yaml, toml)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&includeSecrets, "include-secrets", false, "Include signer keys and API keys")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing output file")

	return cmd
}
