package blockchain_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/deploycfg/internal/adapters/blockchain"
)

// newRPCServer answers eth_chainId with chainIDHex
func newRPCServer(t *testing.T, chainIDHex string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if req.Method != "eth_chainId" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"id":      req.ID,
				"error":   map[string]any{"code": -32601, "message": "method not found"},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  chainIDHex,
		})
	}))
}

func newChecker() *blockchain.CheckerAdapter {
	return blockchain.NewCheckerAdapter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFetchChainID(t *testing.T) {
	ctx := context.Background()

	t.Run("sepolia", func(t *testing.T) {
		srv := newRPCServer(t, "0xaa36a7")
		defer srv.Close()

		id, err := newChecker().FetchChainID(ctx, srv.URL)
		require.NoError(t, err)
		assert.Equal(t, uint64(11155111), id)
	})

	t.Run("mainnet", func(t *testing.T) {
		srv := newRPCServer(t, "0x1")
		defer srv.Close()

		id, err := newChecker().FetchChainID(ctx, srv.URL)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), id)
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newChecker().FetchChainID(ctx, srv.URL)
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		srv := newRPCServer(t, "0x1")
		defer srv.Close()

		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := newChecker().FetchChainID(cctx, srv.URL)
		assert.Error(t, err)
	})
}
