package usecase

import (
	"slices"

	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// Redacted replaces secret values in rendered output
const Redacted = "<redacted>"

// RedactNetwork returns a copy of network with signer secrets replaced.
// The input is left untouched.
func RedactNetwork(network *config.Network) *config.Network {
	out := *network
	out.Tags = slices.Clone(network.Tags)

	if len(network.Accounts) > 0 {
		out.Accounts = make(config.SignerKeys, len(network.Accounts))
		for i := range out.Accounts {
			out.Accounts[i] = Redacted
		}
	}
	if network.HDAccounts != nil {
		hd := *network.HDAccounts
		hd.Mnemonic = Redacted
		out.HDAccounts = &hd
	}
	if network.Verify != nil {
		verify := *network.Verify
		if verify.APIKey != "" {
			verify.APIKey = Redacted
		}
		out.Verify = &verify
	}
	return &out
}

// RedactProjectConfig returns a copy of pc with every secret replaced
func RedactProjectConfig(pc *config.ProjectConfig) *config.ProjectConfig {
	out := *pc

	out.Networks = make(map[string]*config.Network, len(pc.Networks))
	for key, network := range pc.Networks {
		out.Networks[key] = RedactNetwork(network)
	}

	out.Etherscan.APIKey = make(map[string]string, len(pc.Etherscan.APIKey))
	for id, key := range pc.Etherscan.APIKey {
		if key != "" {
			key = Redacted
		}
		out.Etherscan.APIKey[id] = key
	}
	return &out
}
