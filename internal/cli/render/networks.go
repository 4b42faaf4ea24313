package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/trebuchet-org/deploycfg/internal/domain/config"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// NetworksRenderer renders network lists and details
type NetworksRenderer struct {
	out   io.Writer
	color bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, color bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:   out,
		color: color,
	}
}

// RenderNetworksList renders the configured networks as a table
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, paint(r.color, headerStyle, "🌐 Available Networks:"))
	fmt.Fprintln(r.out)

	t := newTable()
	t.AppendHeader([]any{"", "Network", "Chain ID", "Tier", "Accounts", "Tags", "RPC"})
	for _, n := range result.Networks {
		marker := " "
		if n.Key == result.Selected || (result.Selected == "" && n.Key == result.DefaultNetwork) {
			marker = "*"
		}
		rpc := n.RPCURL
		if rpc == "" {
			rpc = "(in-process)"
		}
		t.AppendRow([]any{
			marker,
			paint(r.color, keyStyle, n.Key),
			strconv.FormatUint(n.ChainID, 10),
			r.tier(n.Tier),
			n.Accounts,
			strings.Join(n.Tags, ","),
			paint(r.color, faintStyle, rpc),
		})
	}
	fmt.Fprintln(r.out, t.Render())

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Default network: %s\n", result.DefaultNetwork)
	return nil
}

// RenderNetwork renders a single network descriptor
func (r *NetworksRenderer) RenderNetwork(result *usecase.ShowNetworkResult) error {
	n := result.Network

	fmt.Fprintln(r.out, paint(r.color, headerStyle, fmt.Sprintf("🌐 Network: %s", result.Key)))
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "  Chain:            %s\n", n.Chain)
	fmt.Fprintf(r.out, "  Chain ID:         %d\n", n.ChainID)
	if result.RPCURL != "" {
		fmt.Fprintf(r.out, "  RPC URL:          %s\n", result.RPCURL)
	} else {
		fmt.Fprintf(r.out, "  RPC URL:          (in-process)\n")
	}
	fmt.Fprintf(r.out, "  Signer tier:      %s\n", r.tier(n.Tier))
	fmt.Fprintf(r.out, "  Live:             %t\n", n.Live)
	fmt.Fprintf(r.out, "  Save deployments: %t\n", n.SaveDeployments)
	fmt.Fprintf(r.out, "  Tags:             %s\n", strings.Join(n.Tags, ", "))

	if hd := n.HDAccounts; hd != nil {
		fmt.Fprintf(r.out, "  HD path:          %s (%d accounts)\n", hd.Path, hd.Count)
	}

	if v := n.Verify; v != nil {
		key := v.APIKey
		if key == "" {
			key = "(not set)"
		}
		fmt.Fprintf(r.out, "  Verification:     %s via %s (%s=%s)\n", v.URL, v.Explorer, v.APIKeyEnv, key)
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, paint(r.color, headerStyle, "Signers:"))
	if len(result.Addresses) == 0 {
		fmt.Fprintln(r.out, "  (none)")
		return nil
	}
	for i, addr := range result.Addresses {
		fmt.Fprintf(r.out, "  [%d] %s\n", i, paint(r.color, addressStyle, addr.Hex()))
	}
	return nil
}

func (r *NetworksRenderer) tier(tier config.SignerTier) string {
	switch tier {
	case config.TierProduction:
		return paint(r.color, prodStyle, string(tier))
	case config.TierLocal:
		return paint(r.color, localStyle, string(tier))
	default:
		return paint(r.color, liveStyle, string(tier))
	}
}
