package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// NetworkResolver resolves chains to network descriptors
type NetworkResolver interface {
	Resolve(chain config.Chain) (*config.Network, error)
	Local() *config.Network
}

// ChainCatalog exposes the fixed chain table
type ChainCatalog interface {
	Chains() []config.ChainInfo
}

// AccountDeriver computes signer addresses for a network
type AccountDeriver interface {
	Count(network *config.Network) int
	AddressAt(network *config.Network, index int) (common.Address, bool, error)
}

// ChainIDFetcher asks a JSON-RPC endpoint for its chain ID
type ChainIDFetcher interface {
	FetchChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// ExportFormat is a serialization format for the project config
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatYAML ExportFormat = "yaml"
	FormatTOML ExportFormat = "toml"
)

// ExportFormats lists the supported formats
func ExportFormats() []ExportFormat {
	return []ExportFormat{FormatJSON, FormatYAML, FormatTOML}
}

// ConfigEncoder serializes the project config
type ConfigEncoder interface {
	Encode(cfg *config.ProjectConfig, format ExportFormat) ([]byte, error)
}

// FileWriter handles file system operations for exports
type FileWriter interface {
	WriteFile(ctx context.Context, path string, content []byte) error
	FileExists(ctx context.Context, path string) (bool, error)
}

// LocalConfigStore persists per-project defaults
type LocalConfigStore interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, config *config.LocalConfig) error
	GetPath() string
}

// NetworkSelector picks a network key interactively
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, keys []string, prompt string) (string, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
}
