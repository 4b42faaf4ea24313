package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// DefaultCallTimeout bounds a single eth_chainId round trip
const DefaultCallTimeout = 10 * time.Second

// CheckerAdapter implements the ChainIDFetcher interface using ethclient
type CheckerAdapter struct {
	timeout time.Duration
	log     *slog.Logger
}

// NewCheckerAdapter creates a new blockchain checker adapter
func NewCheckerAdapter(log *slog.Logger) *CheckerAdapter {
	return &CheckerAdapter{
		timeout: DefaultCallTimeout,
		log:     log.With("component", "chain-checker"),
	}
}

// FetchChainID dials rpcURL and returns the chain ID it reports
func (c *CheckerAdapter) FetchChainID(ctx context.Context, rpcURL string) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	start := time.Now()
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	c.log.Debug("fetched chain id", "chain_id", chainID.Uint64(), "elapsed", time.Since(start))

	return chainID.Uint64(), nil
}

// Ensure the adapter implements the interface
var _ usecase.ChainIDFetcher = (*CheckerAdapter)(nil)
