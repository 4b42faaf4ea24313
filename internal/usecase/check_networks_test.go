package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/deploycfg/internal/domain"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

func TestCheckNetworks(t *testing.T) {
	ctx := context.Background()
	pc := testProject(t)

	t.Run("all live networks match", func(t *testing.T) {
		fetcher := new(MockChainIDFetcher)
		for _, key := range usecase.NetworkKeys(pc) {
			n := pc.Networks[key]
			if n.Live {
				fetcher.On("FetchChainID", ctx, n.RPCURL).Return(n.ChainID, nil)
			}
		}
		progress := &MockProgressSink{}

		uc := usecase.NewCheckNetworks(pc, testRuntime(), fetcher, progress)
		result, err := uc.Run(ctx, usecase.CheckNetworksParams{})
		require.NoError(t, err)

		assert.Len(t, result.Results, 10)
		assert.False(t, result.Failed())
		for _, c := range result.Results {
			assert.Equal(t, usecase.CheckOK, c.Status, c.Key)
			assert.NotContains(t, c.RPCURL, testInfuraKey)
		}
		fetcher.AssertExpectations(t)

		require.NotEmpty(t, progress.events)
		assert.Equal(t, "done", progress.events[len(progress.events)-1].Stage)
	})

	t.Run("mismatch", func(t *testing.T) {
		fetcher := new(MockChainIDFetcher)
		fetcher.On("FetchChainID", ctx, pc.Networks["goerli"].RPCURL).Return(uint64(11155111), nil)

		uc := usecase.NewCheckNetworks(pc, testRuntime(), fetcher, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.CheckNetworksParams{Networks: []string{"goerli"}})
		require.NoError(t, err)

		require.Len(t, result.Results, 1)
		c := result.Results[0]
		assert.Equal(t, usecase.CheckMismatch, c.Status)
		assert.Equal(t, uint64(5), c.Expected)
		assert.Equal(t, uint64(11155111), c.Actual)
		assert.ErrorIs(t, c.Error, domain.ErrChainIDMismatch)
		assert.True(t, result.Failed())
	})

	t.Run("deadline keeps partial results", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		fetcher := new(MockChainIDFetcher)
		fetcher.On("FetchChainID", ctx, pc.Networks["arbitrum"].RPCURL).Return(uint64(42161), nil).Once()
		fetcher.On("FetchChainID", ctx, pc.Networks["avalanche"].RPCURL).
			Run(func(mock.Arguments) { cancel() }).
			Return(uint64(0), context.DeadlineExceeded).Once()

		uc := usecase.NewCheckNetworks(pc, testRuntime(), fetcher, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.CheckNetworksParams{})
		require.NoError(t, err)

		require.Len(t, result.Results, 10)
		assert.Equal(t, usecase.CheckOK, result.Results[0].Status)
		assert.Equal(t, usecase.CheckFailed, result.Results[1].Status)
		for _, c := range result.Results[2:] {
			assert.Equal(t, usecase.CheckFailed, c.Status, c.Key)
			assert.ErrorIs(t, c.Error, context.Canceled, c.Key)
		}
		assert.True(t, result.Failed())
		fetcher.AssertExpectations(t)
		fetcher.AssertNumberOfCalls(t, "FetchChainID", 2)
	})

	t.Run("transport error is scrubbed", func(t *testing.T) {
		url := pc.Networks["sepolia"].RPCURL
		fetcher := new(MockChainIDFetcher)
		fetcher.On("FetchChainID", ctx, url).Return(uint64(0), errors.New("dial "+url+": connection refused"))

		uc := usecase.NewCheckNetworks(pc, testRuntime(), fetcher, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.CheckNetworksParams{Networks: []string{"sepolia"}})
		require.NoError(t, err)

		c := result.Results[0]
		assert.Equal(t, usecase.CheckFailed, c.Status)
		require.Error(t, c.Error)
		assert.NotContains(t, c.Error.Error(), testInfuraKey)
		assert.Contains(t, c.Error.Error(), "connection refused")
	})

	t.Run("local network cannot be checked", func(t *testing.T) {
		fetcher := new(MockChainIDFetcher)
		uc := usecase.NewCheckNetworks(pc, testRuntime(), fetcher, &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.CheckNetworksParams{Networks: []string{"hardhat"}})
		assert.Error(t, err)
		fetcher.AssertNotCalled(t, "FetchChainID", mock.Anything, mock.Anything)
	})

	t.Run("unknown network", func(t *testing.T) {
		uc := usecase.NewCheckNetworks(pc, testRuntime(), new(MockChainIDFetcher), &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.CheckNetworksParams{Networks: []string{"fantom"}})
		assert.ErrorIs(t, err, domain.ErrUnknownNetwork)
	})
}
