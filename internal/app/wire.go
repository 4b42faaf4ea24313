//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/deploycfg/internal/adapters"
	"github.com/trebuchet-org/deploycfg/internal/config"
	"github.com/trebuchet-org/deploycfg/internal/logging"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Project config
		usecase.ProvideProjectConfig,

		// Use cases
		usecase.NewListNetworks,
		usecase.NewShowNetwork,
		usecase.NewListAccounts,
		usecase.NewCheckNetworks,
		usecase.NewExportConfig,
		usecase.NewListChains,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil
}
