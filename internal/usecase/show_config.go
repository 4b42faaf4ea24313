package usecase

import (
	"context"

	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config     *config.LocalConfig
	ConfigPath string
	Exists     bool
	EnvFile    string // dotenv file applied at startup
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	store   LocalConfigStore
	runtime *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(store LocalConfigStore, runtime *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{
		store:   store,
		runtime: runtime,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	exists := uc.store.Exists()

	localConfig, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &ShowConfigResult{
		Config:     localConfig,
		ConfigPath: uc.store.GetPath(),
		Exists:     exists,
		EnvFile:    uc.runtime.EnvFile,
	}, nil
}
