package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/deploycfg/internal/adapters/network"
	"github.com/trebuchet-org/deploycfg/internal/domain"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

func TestChainID(t *testing.T) {
	tests := []struct {
		chain    config.Chain
		expected uint64
	}{
		{config.ChainHardhat, 31337},
		{config.ChainMainnet, 1},
		{config.ChainGoerli, 5},
		{config.ChainBSC, 56},
		{config.ChainBSCTestnet, 97},
		{config.ChainOptimismMainnet, 10},
		{config.ChainPolygonMainnet, 137},
		{config.ChainPolygonMumbai, 80001},
		{config.ChainAvalancheMainnet, 43114},
		{config.ChainArbitrumMainnet, 42161},
		{config.ChainAuroraMainnet, 1313161554},
		{config.ChainAuroraBetanet, 1313161556},
		{config.ChainSepolia, 11155111},
	}

	for _, tt := range tests {
		t.Run(string(tt.chain), func(t *testing.T) {
			id, err := network.ChainID(tt.chain)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}

	t.Run("unknown chain", func(t *testing.T) {
		_, err := network.ChainID(config.Chain("solana"))
		assert.ErrorIs(t, err, domain.ErrUnknownChain)
	})
}

func TestChains(t *testing.T) {
	chains := network.Chains()
	require.Len(t, chains, 13)

	for i := 1; i < len(chains); i++ {
		assert.Less(t, chains[i-1].ChainID, chains[i].ChainID)
	}
	for _, c := range chains {
		assert.NotEmpty(t, c.Chain)
	}
	assert.Equal(t, config.ChainMainnet, chains[0].Chain)

	assert.Equal(t, chains, network.NewRegistry().Chains())
}

func TestParseChain(t *testing.T) {
	t.Run("normalizes input", func(t *testing.T) {
		chain, err := network.ParseChain("  Polygon-Mumbai ")
		require.NoError(t, err)
		assert.Equal(t, config.ChainPolygonMumbai, chain)
	})

	t.Run("unknown with suggestions", func(t *testing.T) {
		_, err := network.ParseChain("polygon")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownChain)

		var une *domain.UnknownNameError
		require.ErrorAs(t, err, &une)
		assert.Contains(t, une.Suggestions, "polygon-mainnet")
	})
}

func TestLookupChainExplorer(t *testing.T) {
	info, err := network.LookupChain(config.ChainArbitrumMainnet)
	require.NoError(t, err)
	assert.Equal(t, "arbitrumOne", info.Explorer)
	assert.Equal(t, config.EnvArbiscanAPIKey, info.ExplorerKeyEnv)

	info, err = network.LookupChain(config.ChainGoerli)
	require.NoError(t, err)
	assert.Empty(t, info.Explorer)
}
