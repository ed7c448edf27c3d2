package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voteagora/agora-cli/internal/domain"
	"github.com/voteagora/agora-cli/internal/domain/config"
	"github.com/voteagora/agora-cli/internal/usecase"
)

func TestShowConfig(t *testing.T) {
	t.Run("resolved tenant", func(t *testing.T) {
		tenant := &config.Tenant{Namespace: "ens", Name: "ENS"}
		uc := usecase.NewShowConfig(&config.RuntimeConfig{
			Tenant:       tenant,
			ConfigSource: "agora.toml",
			PageSize:     10,
			CacheTTL:     time.Minute,
			Timeout:      30 * time.Second,
		})

		result, err := uc.Run(context.Background())

		require.NoError(t, err)
		assert.Same(t, tenant, result.Tenant)
		assert.Equal(t, "agora.toml", result.Source)
		assert.Equal(t, "1m0s", result.CacheTTL)
		assert.Equal(t, "30s", result.Timeout)
	})

	t.Run("no tenant", func(t *testing.T) {
		_, err := usecase.NewShowConfig(&config.RuntimeConfig{}).Run(context.Background())
		assert.ErrorIs(t, err, domain.ErrTenantNotFound)
	})
}

func TestGetVotableSupply(t *testing.T) {
	ctx := context.Background()
	source := new(MockProposalSource)
	source.On("VotableSupply", ctx).Return(bigInt("123456789"), nil)

	supply, err := usecase.NewGetVotableSupply(source, usecase.NopProgress{}).Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, "123456789", supply.String())
}
