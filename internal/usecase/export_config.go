package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// ExportConfigParams contains parameters for exporting the project config
type ExportConfigParams struct {
	Format         ExportFormat
	Out            string // empty returns the content without writing
	IncludeSecrets bool
	Force          bool
}

// ExportConfigResult contains the rendered config
type ExportConfigResult struct {
	Format   ExportFormat
	Content  []byte
	Path     string
	Redacted bool
}

// ExportConfig renders the project config for the external framework
type ExportConfig struct {
	project *config.ProjectConfig
	runtime *config.RuntimeConfig
	encoder ConfigEncoder
	writer  FileWriter
}

// NewExportConfig creates a new ExportConfig use case
func NewExportConfig(project *config.ProjectConfig, runtime *config.RuntimeConfig, encoder ConfigEncoder, writer FileWriter) *ExportConfig {
	return &ExportConfig{
		project: project,
		runtime: runtime,
		encoder: encoder,
		writer:  writer,
	}
}

// Run executes the use case
func (uc *ExportConfig) Run(ctx context.Context, params ExportConfigParams) (*ExportConfigResult, error) {
	format, err := uc.resolveFormat(params)
	if err != nil {
		return nil, err
	}

	pc := uc.project
	if !params.IncludeSecrets {
		pc = RedactProjectConfig(pc)
		for _, network := range pc.Networks {
			network.RPCURL = MaskRPCURL(network.RPCURL, uc.runtime.Secrets.InfuraAPIKey)
		}
	}

	content, err := uc.encoder.Encode(pc, format)
	if err != nil {
		return nil, err
	}

	result := &ExportConfigResult{
		Format:   format,
		Content:  content,
		Redacted: !params.IncludeSecrets,
	}
	if params.Out == "" {
		return result, nil
	}

	path := params.Out
	if !filepath.IsAbs(path) {
		path = filepath.Join(uc.runtime.ProjectRoot, path)
	}

	exists, err := uc.writer.FileExists(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists && !params.Force {
		return nil, fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := uc.writer.WriteFile(ctx, path, content); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	result.Path = path

	return result, nil
}

// resolveFormat uses the explicit format, else the output file extension,
// else json
func (uc *ExportConfig) resolveFormat(params ExportConfigParams) (ExportFormat, error) {
	format := ExportFormat(strings.ToLower(string(params.Format)))
	if format == "" && params.Out != "" {
		switch strings.ToLower(filepath.Ext(params.Out)) {
		case ".yaml", ".yml":
			format = FormatYAML
		case ".toml":
			format = FormatTOML
		}
	}
	if format == "" {
		format = FormatJSON
	}
	if !slices.Contains(ExportFormats(), format) {
		return "", fmt.Errorf("unsupported export format %q (expected json, yaml or toml)", params.Format)
	}
	return format, nil
}
