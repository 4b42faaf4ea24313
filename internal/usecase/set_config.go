package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// SetConfigParams contains parameters for setting configuration
type SetConfigParams struct {
	Key   string
	Value string
}

// SetConfigResult contains the result of setting configuration
type SetConfigResult struct {
	UpdatedConfig *config.LocalConfig
	ConfigPath    string
	Key           config.ConfigKey
	Value         string
}

// SetConfig is a use case for setting configuration values
type SetConfig struct {
	store   LocalConfigStore
	project *config.ProjectConfig
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(store LocalConfigStore, project *config.ProjectConfig) *SetConfig {
	return &SetConfig{
		store:   store,
		project: project,
	}
}

// Run executes the set config use case
func (uc *SetConfig) Run(ctx context.Context, params SetConfigParams) (*SetConfigResult, error) {
	key, ok := config.NormalizeConfigKey(strings.ToLower(params.Key))
	if !ok {
		return nil, unknownConfigKeyError(params.Key)
	}

	localConfig, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	switch key {
	case config.ConfigKeyNetwork:
		if _, err := LookupNetwork(uc.project, params.Value); err != nil {
			return nil, err
		}
		localConfig.Network = params.Value
	case config.ConfigKeyEnvFile:
		localConfig.EnvFile = params.Value
	}

	if err := uc.store.Save(ctx, localConfig); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &SetConfigResult{
		UpdatedConfig: localConfig,
		ConfigPath:    uc.store.GetPath(),
		Key:           key,
		Value:         params.Value,
	}, nil
}

func unknownConfigKeyError(key string) error {
	validKeys := make([]string, 0, len(config.ValidConfigKeys()))
	for _, k := range config.ValidConfigKeys() {
		validKeys = append(validKeys, string(k))
	}
	return fmt.Errorf("unknown config key: %s\nAvailable keys: %s", key, strings.Join(validKeys, ", "))
}
