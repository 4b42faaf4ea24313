package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// AccountsRenderer renders named account bindings
type AccountsRenderer struct {
	out   io.Writer
	color bool
}

// NewAccountsRenderer creates a new accounts renderer
func NewAccountsRenderer(out io.Writer, color bool) *AccountsRenderer {
	return &AccountsRenderer{
		out:   out,
		color: color,
	}
}

// RenderAccounts renders each role with the address it resolves to
func (r *AccountsRenderer) RenderAccounts(result *usecase.ListAccountsResult) error {
	fmt.Fprintln(r.out, paint(r.color, headerStyle, fmt.Sprintf("👤 Named accounts on %s (%s signers):", result.Network, result.Tier)))
	fmt.Fprintln(r.out)

	t := newTable()
	t.AppendHeader([]any{"Role", "Index", "Address"})
	for _, acc := range result.Accounts {
		addr := paint(r.color, faintStyle, "(unassigned)")
		if acc.Assigned {
			addr = paint(r.color, addressStyle, acc.Address.Hex())
		}
		t.AppendRow([]any{
			paint(r.color, keyStyle, acc.Role),
			strconv.Itoa(acc.Index),
			addr,
		})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}
