package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
	"gopkg.in/yaml.v3"
)

// EncoderAdapter serializes the project config for the external framework
type EncoderAdapter struct{}

// NewEncoderAdapter creates a new encoder adapter
func NewEncoderAdapter() *EncoderAdapter {
	return &EncoderAdapter{}
}

// Encode renders cfg in the requested format
func (e *EncoderAdapter) Encode(cfg *config.ProjectConfig, format usecase.ExportFormat) ([]byte, error) {
	var buf bytes.Buffer

	switch usecase.ExportFormat(strings.ToLower(string(format))) {
	case usecase.FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
	case usecase.FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
	case usecase.FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}

	return buf.Bytes(), nil
}

// Ensure the adapter implements the interface
var _ usecase.ConfigEncoder = (*EncoderAdapter)(nil)
