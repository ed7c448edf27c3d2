package usecase

import (
	"context"
	"fmt"

	"github.com/voteagora/agora-cli/internal/domain"
	"github.com/voteagora/agora-cli/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Tenant   *config.Tenant `json:"tenant"`
	Source   string         `json:"source"`
	PageSize int            `json:"pageSize"`
	CacheTTL string         `json:"cacheTtl"`
	Timeout  string         `json:"timeout"`
}

// ShowConfig is a use case for showing the resolved configuration
type ShowConfig struct {
	config *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{
		config: cfg,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	if uc.config.Tenant == nil {
		return nil, fmt.Errorf("no tenant configured: %w", domain.ErrTenantNotFound)
	}

	return &ShowConfigResult{
		Tenant:   uc.config.Tenant,
		Source:   uc.config.ConfigSource,
		PageSize: uc.config.PageSize,
		CacheTTL: uc.config.CacheTTL.String(),
		Timeout:  uc.config.Timeout.String(),
	}, nil
}
