package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/deploycfg/internal/domain"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

const testConfigPath = "/project/.deploycfg/config.local.json"

func TestShowConfig(t *testing.T) {
	ctx := context.Background()

	store := new(MockLocalConfigStore)
	store.On("Exists").Return(true)
	store.On("Load", ctx).Return(&config.LocalConfig{Network: "sepolia"}, nil)
	store.On("GetPath").Return(testConfigPath)

	runtime := testRuntime()
	runtime.EnvFile = "/project/.env"

	result, err := usecase.NewShowConfig(store, runtime).Run(ctx)
	require.NoError(t, err)
	assert.True(t, result.Exists)
	assert.Equal(t, "sepolia", result.Config.Network)
	assert.Equal(t, "/project/.env", result.EnvFile)
	assert.Equal(t, testConfigPath, result.ConfigPath)
}

func TestSetConfig(t *testing.T) {
	ctx := context.Background()
	pc := testProject(t)

	t.Run("network", func(t *testing.T) {
		store := new(MockLocalConfigStore)
		store.On("Load", ctx).Return(config.DefaultLocalConfig(), nil)
		store.On("Save", ctx, &config.LocalConfig{Network: "sepolia"}).Return(nil)
		store.On("GetPath").Return(testConfigPath)

		result, err := usecase.NewSetConfig(store, pc).Run(ctx, usecase.SetConfigParams{Key: "net", Value: "sepolia"})
		require.NoError(t, err)
		assert.Equal(t, config.ConfigKeyNetwork, result.Key)
		store.AssertExpectations(t)
	})

	t.Run("env file", func(t *testing.T) {
		store := new(MockLocalConfigStore)
		store.On("Load", ctx).Return(&config.LocalConfig{Network: "goerli"}, nil)
		store.On("Save", ctx, &config.LocalConfig{Network: "goerli", EnvFile: ".env.prod"}).Return(nil)
		store.On("GetPath").Return(testConfigPath)

		result, err := usecase.NewSetConfig(store, pc).Run(ctx, usecase.SetConfigParams{Key: "ENV_FILE", Value: ".env.prod"})
		require.NoError(t, err)
		assert.Equal(t, config.ConfigKeyEnvFile, result.Key)
		store.AssertExpectations(t)
	})

	t.Run("unknown network is rejected", func(t *testing.T) {
		store := new(MockLocalConfigStore)
		store.On("Load", ctx).Return(config.DefaultLocalConfig(), nil)

		_, err := usecase.NewSetConfig(store, pc).Run(ctx, usecase.SetConfigParams{Key: "network", Value: "fantom"})
		assert.ErrorIs(t, err, domain.ErrUnknownNetwork)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := usecase.NewSetConfig(new(MockLocalConfigStore), pc).Run(ctx, usecase.SetConfigParams{Key: "namespace", Value: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Available keys: network, env-file")
	})

	t.Run("save failure", func(t *testing.T) {
		store := new(MockLocalConfigStore)
		store.On("Load", ctx).Return(config.DefaultLocalConfig(), nil)
		store.On("Save", ctx, mock.Anything).Return(errors.New("disk full"))

		_, err := usecase.NewSetConfig(store, pc).Run(ctx, usecase.SetConfigParams{Key: "network", Value: "sepolia"})
		assert.ErrorContains(t, err, "disk full")
	})
}

func TestRemoveConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("network", func(t *testing.T) {
		store := new(MockLocalConfigStore)
		store.On("Exists").Return(true)
		store.On("Load", ctx).Return(&config.LocalConfig{Network: "sepolia", EnvFile: ".env.prod"}, nil)
		store.On("Save", ctx, &config.LocalConfig{EnvFile: ".env.prod"}).Return(nil)
		store.On("GetPath").Return(testConfigPath)

		result, err := usecase.NewRemoveConfig(store).Run(ctx, usecase.RemoveConfigParams{Key: "network"})
		require.NoError(t, err)
		assert.Equal(t, "sepolia", result.RemovedValue)
		store.AssertExpectations(t)
	})

	t.Run("no config file", func(t *testing.T) {
		store := new(MockLocalConfigStore)
		store.On("Exists").Return(false)
		store.On("GetPath").Return(testConfigPath)

		_, err := usecase.NewRemoveConfig(store).Run(ctx, usecase.RemoveConfigParams{Key: "network"})
		assert.ErrorContains(t, err, "no config file found")
	})
}

func TestListChains(t *testing.T) {
	catalog := chainCatalogFunc(func() []config.ChainInfo {
		return []config.ChainInfo{{Chain: config.ChainMainnet, ChainID: 1}}
	})

	result, err := usecase.NewListChains(catalog).Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Chains, 1)
}

type chainCatalogFunc func() []config.ChainInfo

func (f chainCatalogFunc) Chains() []config.ChainInfo { return f() }
