package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CheckRenderer renders RPC endpoint checks
type CheckRenderer struct {
	out   io.Writer
	color bool
}

// NewCheckRenderer creates a new check renderer
func NewCheckRenderer(out io.Writer, color bool) *CheckRenderer {
	return &CheckRenderer{
		out:   out,
		color: color,
	}
}

// CheckView is the JSON shape of a single check
type CheckView struct {
	Network  string `json:"network"`
	RPCURL   string `json:"url"`
	Expected uint64 `json:"expectedChainId"`
	Actual   uint64 `json:"actualChainId,omitempty"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

// CheckViews converts check results for JSON output
func CheckViews(result *usecase.CheckNetworksResult) []CheckView {
	views := make([]CheckView, 0, len(result.Results))
	for _, c := range result.Results {
		view := CheckView{
			Network:  c.Key,
			RPCURL:   c.RPCURL,
			Expected: c.Expected,
			Actual:   c.Actual,
			Status:   string(c.Status),
		}
		if c.Error != nil {
			view.Error = c.Error.Error()
		}
		views = append(views, view)
	}
	return views
}

// RenderChecks renders one row per probed network followed by a summary
func (r *CheckRenderer) RenderChecks(result *usecase.CheckNetworksResult) error {
	if len(result.Results) == 0 {
		fmt.Fprintln(r.out, "No networks to check")
		return nil
	}

	title := cases.Title(language.English)

	t := newTable()
	t.AppendHeader([]any{"Network", "Expected", "Actual", "Status", "Detail"})
	failed := 0
	for _, c := range result.Results {
		actual := "-"
		if c.Actual != 0 {
			actual = strconv.FormatUint(c.Actual, 10)
		}
		detail := ""
		if c.Error != nil {
			detail = c.Error.Error()
		}

		status := title.String(string(c.Status))
		switch c.Status {
		case usecase.CheckOK:
			status = paint(r.color, color.New(color.FgGreen), "✅ "+status)
		case usecase.CheckMismatch:
			status = paint(r.color, color.New(color.FgYellow), "⚠️  "+status)
			failed++
		default:
			status = paint(r.color, color.New(color.FgRed), "❌ "+status)
			failed++
		}

		t.AppendRow([]any{
			paint(r.color, keyStyle, c.Key),
			strconv.FormatUint(c.Expected, 10),
			actual,
			status,
			paint(r.color, faintStyle, detail),
		})
	}
	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintln(r.out)

	if failed == 0 {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("All %d endpoints report the expected chain ID", len(result.Results))))
	} else {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%d of %d endpoints failed", failed, len(result.Results))))
	}
	return nil
}
