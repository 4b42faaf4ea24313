package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// ListAccountsParams contains parameters for listing named accounts
type ListAccountsParams struct {
	Network string
}

// ListAccountsResult contains the named account bindings for a network
type ListAccountsResult struct {
	Network  string               `json:"network"`
	Tier     config.SignerTier    `json:"tier"`
	Accounts []NamedAccountStatus `json:"accounts"`
}

// NamedAccountStatus is a role bound to an index of the active signer set.
// Assigned is false when the index is past the end of the set.
type NamedAccountStatus struct {
	Role     string         `json:"role"`
	Index    int            `json:"index"`
	Address  common.Address `json:"address"`
	Assigned bool           `json:"assigned"`
}

// ListAccounts is a use case for resolving named accounts on a network
type ListAccounts struct {
	project  *config.ProjectConfig
	runtime  *config.RuntimeConfig
	accounts AccountDeriver
}

// NewListAccounts creates a new ListAccounts use case
func NewListAccounts(project *config.ProjectConfig, runtime *config.RuntimeConfig, accounts AccountDeriver) *ListAccounts {
	return &ListAccounts{
		project:  project,
		runtime:  runtime,
		accounts: accounts,
	}
}

// Run executes the use case
func (uc *ListAccounts) Run(ctx context.Context, params ListAccountsParams) (*ListAccountsResult, error) {
	key := params.Network
	if key == "" {
		key = uc.runtime.Network
	}
	if key == "" {
		key = uc.project.DefaultNetwork
	}

	network, err := LookupNetwork(uc.project, key)
	if err != nil {
		return nil, err
	}

	result := &ListAccountsResult{
		Network: key,
		Tier:    network.Tier,
	}
	for role, binding := range uc.project.NamedAccounts {
		addr, ok, err := uc.accounts.AddressAt(network, binding.Default)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s on %s: %w", role, key, err)
		}
		result.Accounts = append(result.Accounts, NamedAccountStatus{
			Role:     role,
			Index:    binding.Default,
			Address:  addr,
			Assigned: ok,
		})
	}

	sort.Slice(result.Accounts, func(i, j int) bool {
		if result.Accounts[i].Index != result.Accounts[j].Index {
			return result.Accounts[i].Index < result.Accounts[j].Index
		}
		return result.Accounts[i].Role < result.Accounts[j].Role
	})

	return result, nil
}
