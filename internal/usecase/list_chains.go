package usecase

import (
	"context"

	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// ListChainsResult contains the chain table
type ListChainsResult struct {
	Chains []config.ChainInfo `json:"chains"`
}

// ListChains is a use case for listing the fixed chain table
type ListChains struct {
	catalog ChainCatalog
}

// NewListChains creates a new ListChains use case
func NewListChains(catalog ChainCatalog) *ListChains {
	return &ListChains{catalog: catalog}
}

// Run executes the use case
func (uc *ListChains) Run(ctx context.Context) (*ListChainsResult, error) {
	return &ListChainsResult{Chains: uc.catalog.Chains()}, nil
}
