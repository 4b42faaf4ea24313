package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// ChainsRenderer renders the chain table
type ChainsRenderer struct {
	out   io.Writer
	color bool
}

// NewChainsRenderer creates a new chains renderer
func NewChainsRenderer(out io.Writer, color bool) *ChainsRenderer {
	return &ChainsRenderer{
		out:   out,
		color: color,
	}
}

// RenderChains renders every known chain ordered by chain ID
func (r *ChainsRenderer) RenderChains(result *usecase.ListChainsResult) error {
	t := newTable()
	t.AppendHeader([]any{"Chain", "Chain ID", "Explorer", "Verifier Key"})
	for _, c := range result.Chains {
		explorer := c.ExplorerURL
		if explorer == "" {
			explorer = "-"
		}
		keyEnv := c.ExplorerKeyEnv
		if keyEnv == "" {
			keyEnv = "-"
		}
		t.AppendRow([]any{
			paint(r.color, keyStyle, c.Chain.String()),
			strconv.FormatUint(c.ChainID, 10),
			paint(r.color, faintStyle, explorer),
			keyEnv,
		})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}
