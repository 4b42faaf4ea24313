package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// ExportRenderer renders exported project configs
type ExportRenderer struct {
	out  io.Writer
	info io.Writer
}

// NewExportRenderer creates a new export renderer. Content goes to out,
// status lines to info.
func NewExportRenderer(out, info io.Writer) *ExportRenderer {
	return &ExportRenderer{
		out:  out,
		info: info,
	}
}

// RenderExport prints the content, or a confirmation when it was written
func (r *ExportRenderer) RenderExport(result *usecase.ExportConfigResult) error {
	if result.Path == "" {
		_, err := r.out.Write(result.Content)
		return err
	}

	fmt.Fprintln(r.info, FormatSuccess(fmt.Sprintf("Wrote %s config to %s", result.Format, getRelativePath(result.Path))))
	if !result.Redacted {
		fmt.Fprintln(r.info, FormatWarning("File contains signer keys and API keys; keep it out of version control"))
	}
	return nil
}
