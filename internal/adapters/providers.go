package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/deploycfg/internal/adapters/accounts"
	"github.com/trebuchet-org/deploycfg/internal/adapters/blockchain"
	"github.com/trebuchet-org/deploycfg/internal/adapters/export"
	"github.com/trebuchet-org/deploycfg/internal/adapters/fs"
	"github.com/trebuchet-org/deploycfg/internal/adapters/interactive"
	"github.com/trebuchet-org/deploycfg/internal/adapters/network"
	"github.com/trebuchet-org/deploycfg/internal/adapters/progress"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigStore), new(*fs.LocalConfigStoreAdapter)),
)

// NetworkSet provides the chain table and network resolution
var NetworkSet = wire.NewSet(
	network.ProvideResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*network.Resolver)),

	network.NewRegistry,
	wire.Bind(new(usecase.ChainCatalog), new(*network.Registry)),
)

// AccountsSet provides signer address derivation
var AccountsSet = wire.NewSet(
	accounts.NewDeriver,
	wire.Bind(new(usecase.AccountDeriver), new(*accounts.Deriver)),
)

// ExportSet provides config serialization
var ExportSet = wire.NewSet(
	export.NewEncoderAdapter,
	wire.Bind(new(usecase.ConfigEncoder), new(*export.EncoderAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewCheckerAdapter,
	wire.Bind(new(usecase.ChainIDFetcher), new(*blockchain.CheckerAdapter)),
)

// ProgressSet provides progress reporting
var ProgressSet = wire.NewSet(
	progress.ProvideProgressSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	NetworkSet,
	AccountsSet,
	ExportSet,
	InteractiveSet,
	BlockchainSet,
	ProgressSet,
)
