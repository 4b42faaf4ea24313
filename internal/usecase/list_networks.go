package usecase

import (
	"context"
	"strings"

	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	LiveOnly bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks       []NetworkSummary `json:"networks"`
	DefaultNetwork string           `json:"defaultNetwork"`
	Selected       string           `json:"selected,omitempty"`
}

// NetworkSummary is the listing view of a network. RPC URLs are masked.
type NetworkSummary struct {
	Key      string            `json:"key"`
	Chain    config.Chain      `json:"chain"`
	ChainID  uint64            `json:"chainId"`
	RPCURL   string            `json:"url,omitempty"`
	Tier     config.SignerTier `json:"tier"`
	Live     bool              `json:"live"`
	Tags     []string          `json:"tags"`
	Accounts int               `json:"accounts"`
}

// ListNetworks is a use case for listing configured networks
type ListNetworks struct {
	project  *config.ProjectConfig
	runtime  *config.RuntimeConfig
	accounts AccountDeriver
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(project *config.ProjectConfig, runtime *config.RuntimeConfig, accounts AccountDeriver) *ListNetworks {
	return &ListNetworks{
		project:  project,
		runtime:  runtime,
		accounts: accounts,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	result := &ListNetworksResult{
		DefaultNetwork: uc.project.DefaultNetwork,
		Selected:       uc.runtime.Network,
	}

	for _, key := range NetworkKeys(uc.project) {
		network := uc.project.Networks[key]
		if params.LiveOnly && !network.Live {
			continue
		}
		result.Networks = append(result.Networks, NetworkSummary{
			Key:      key,
			Chain:    network.Chain,
			ChainID:  network.ChainID,
			RPCURL:   MaskRPCURL(network.RPCURL, uc.runtime.Secrets.InfuraAPIKey),
			Tier:     network.Tier,
			Live:     network.Live,
			Tags:     network.Tags,
			Accounts: uc.accounts.Count(network),
		})
	}

	return result, nil
}

// infuraKeyPrefix precedes the API key in Infura endpoint paths
const infuraKeyPrefix = "/v3/"

// MaskRPCURL hides an API key embedded in an RPC URL. Only a whole path
// segment after /v3/ is masked, so text that merely contains the key is
// left alone. s may also be error text quoting a URL.
func MaskRPCURL(s, apiKey string) string {
	if apiKey == "" || s == "" {
		return s
	}

	var b strings.Builder
	rest := s
	for {
		i := strings.Index(rest, infuraKeyPrefix)
		if i < 0 {
			b.WriteString(rest)
			return b.String()
		}
		i += len(infuraKeyPrefix)
		b.WriteString(rest[:i])
		rest = rest[i:]

		if strings.HasPrefix(rest, apiKey) && segmentEnds(rest[len(apiKey):]) {
			b.WriteString("***")
			rest = rest[len(apiKey):]
		}
	}
}

func segmentEnds(s string) bool {
	return s == "" || strings.ContainsRune("/?#\"': \t\n", rune(s[0]))
}
