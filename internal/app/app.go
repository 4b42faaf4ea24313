package app

import (
	"log/slog"

	"github.com/trebuchet-org/deploycfg/internal/domain/config"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config  *config.RuntimeConfig
	Project *config.ProjectConfig
	Logger  *slog.Logger

	// Use cases
	ListNetworks  *usecase.ListNetworks
	ShowNetwork   *usecase.ShowNetwork
	ListAccounts  *usecase.ListAccounts
	CheckNetworks *usecase.CheckNetworks
	ExportConfig  *usecase.ExportConfig
	ListChains    *usecase.ListChains
	ShowConfig    *usecase.ShowConfig
	SetConfig     *usecase.SetConfig
	RemoveConfig  *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	project *config.ProjectConfig,
	logger *slog.Logger,
	listNetworks *usecase.ListNetworks,
	showNetwork *usecase.ShowNetwork,
	listAccounts *usecase.ListAccounts,
	checkNetworks *usecase.CheckNetworks,
	exportConfig *usecase.ExportConfig,
	listChains *usecase.ListChains,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:        cfg,
		Project:       project,
		Logger:        logger,
		ListNetworks:  listNetworks,
		ShowNetwork:   showNetwork,
		ListAccounts:  listAccounts,
		CheckNetworks: checkNetworks,
		ExportConfig:  exportConfig,
		ListChains:    listChains,
		ShowConfig:    showConfig,
		SetConfig:     setConfig,
		RemoveConfig:  removeConfig,
	}, nil
}
