package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/deploycfg/internal/config"
	"github.com/trebuchet-org/deploycfg/internal/domain"
	domainconfig "github.com/trebuchet-org/deploycfg/internal/domain/config"
)

const (
	testKey0 = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testKey1 = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
	testKey2 = "0x5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a"
)

func mapLookup(env map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func validEnv() map[string]string {
	return map[string]string{
		"PRIVATEKEY":      testKey0,
		"PRODPRIVATEKEY":  testKey1,
		"STARLANDPRIVKEY": testKey2,
		"INFURA_API_KEY":  "infura-key",
	}
}

func TestLoadSecrets(t *testing.T) {
	t.Run("all required present", func(t *testing.T) {
		env := validEnv()
		env["ETHERSCAN_API_KEY"] = "etherscan-key"
		env["MNEMONIC"] = " word word "

		secrets, err := config.LoadSecrets(mapLookup(env))
		require.NoError(t, err)

		assert.Equal(t, testKey0, secrets.PrivateKey)
		assert.Equal(t, testKey1, secrets.ProdPrivateKey)
		assert.Equal(t, testKey2, secrets.StarlandPrivateKey)
		assert.Equal(t, "infura-key", secrets.InfuraAPIKey)
		assert.Equal(t, "word word", secrets.Mnemonic)
		assert.False(t, secrets.ReportGas)

		assert.Equal(t, "etherscan-key", secrets.ExplorerKey(domainconfig.EnvEtherscanAPIKey))
		for _, env := range domainconfig.ExplorerKeyEnvs() {
			assert.Contains(t, secrets.ExplorerKeys, env)
		}
		assert.Empty(t, secrets.ExplorerKey(domainconfig.EnvArbiscanAPIKey))
	})

	t.Run("report gas", func(t *testing.T) {
		env := validEnv()
		env["REPORT_GAS"] = "true"

		secrets, err := config.LoadSecrets(mapLookup(env))
		require.NoError(t, err)
		assert.True(t, secrets.ReportGas)
	})

	for _, missing := range config.RequiredSecretEnvs() {
		t.Run("missing "+missing, func(t *testing.T) {
			env := validEnv()
			delete(env, missing)

			secrets, err := config.LoadSecrets(mapLookup(env))
			require.Error(t, err)
			assert.Nil(t, secrets)
			assert.ErrorIs(t, err, domain.ErrMissingConfig)
			assert.Contains(t, err.Error(), missing)

			var mce *domain.MissingConfigError
			require.True(t, errors.As(err, &mce))
			assert.Equal(t, missing, mce.Var)
		})
	}

	t.Run("blank counts as missing", func(t *testing.T) {
		env := validEnv()
		env["INFURA_API_KEY"] = "   "

		_, err := config.LoadSecrets(mapLookup(env))
		assert.ErrorIs(t, err, domain.ErrMissingConfig)
	})

	t.Run("every missing variable is named", func(t *testing.T) {
		_, err := config.LoadSecrets(mapLookup(map[string]string{}))
		require.Error(t, err)
		for _, env := range config.RequiredSecretEnvs() {
			assert.Contains(t, err.Error(), env)
		}
	})

	t.Run("uppercase hex prefix", func(t *testing.T) {
		env := validEnv()
		env["PRODPRIVATEKEY"] = "0X59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"

		secrets, err := config.LoadSecrets(mapLookup(env))
		require.NoError(t, err)
		assert.Equal(t, env["PRODPRIVATEKEY"], secrets.ProdPrivateKey)
	})

	t.Run("invalid private key", func(t *testing.T) {
		env := validEnv()
		env["PRODPRIVATEKEY"] = "0xnothex"

		_, err := config.LoadSecrets(mapLookup(env))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidSecret)
		assert.Contains(t, err.Error(), "PRODPRIVATEKEY")
		assert.NotContains(t, err.Error(), "nothex")
	})

	t.Run("infura key is not parsed as a private key", func(t *testing.T) {
		env := validEnv()
		env["INFURA_API_KEY"] = "not-a-hex-key"

		_, err := config.LoadSecrets(mapLookup(env))
		assert.NoError(t, err)
	})
}

func TestRequiredSecretEnvs(t *testing.T) {
	assert.Equal(t, []string{"PRIVATEKEY", "PRODPRIVATEKEY", "STARLANDPRIVKEY", "INFURA_API_KEY"}, config.RequiredSecretEnvs())
}
