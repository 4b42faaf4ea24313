package accounts_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/deploycfg/internal/adapters/accounts"
)

const devMnemonic = "test test test test test test test test test test test junk"

func TestDerive(t *testing.T) {
	tests := []struct {
		index    uint32
		expected string
	}{
		{0, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"},
		{1, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"},
		{2, "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			key, err := accounts.Derive(devMnemonic, "m/44'/60'/0'/0", tt.index)
			require.NoError(t, err)
			assert.Equal(t, common.HexToAddress(tt.expected), crypto.PubkeyToAddress(key.PublicKey))
		})
	}

	t.Run("matches the well-known private key", func(t *testing.T) {
		key, err := accounts.Derive(devMnemonic, "m/44'/60'/0'/0", 0)
		require.NoError(t, err)
		assert.Equal(t, "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80", common.Bytes2Hex(crypto.FromECDSA(key)))
	})

	t.Run("extra whitespace is ignored", func(t *testing.T) {
		key, err := accounts.Derive("  test test test test test test\ttest test test test test junk ", "m/44'/60'/0'/0", 0)
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), crypto.PubkeyToAddress(key.PublicKey))
	})

	t.Run("invalid mnemonic", func(t *testing.T) {
		_, err := accounts.Derive("test test test", "m/44'/60'/0'/0", 0)
		assert.ErrorIs(t, err, accounts.ErrInvalidMnemonic)
	})

	t.Run("invalid path", func(t *testing.T) {
		_, err := accounts.Derive(devMnemonic, "not/a/path", 0)
		assert.Error(t, err)
	})
}
