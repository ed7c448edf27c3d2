package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/voteagora/agora-cli/internal/domain"
	"github.com/voteagora/agora-cli/internal/domain/config"
	"github.com/voteagora/agora-cli/internal/domain/models"
	"github.com/voteagora/agora-cli/internal/usecase"
)

func TestListProposals(t *testing.T) {
	ctx := context.Background()
	cfg := &config.RuntimeConfig{PageSize: 2}
	head := &models.BlockInfo{Number: big.NewInt(10_000)}

	proposals := []*models.Proposal{
		newProposal("3", "Grants season 6", 900),
		newProposal("2", "Upgrade bridge", 800),
		newProposal("1", "Grants season 5", 700),
	}

	t.Run("first page with derived statuses", func(t *testing.T) {
		source := new(MockProposalSource)
		source.On("ListProposals", ctx, domain.ProposalSetRelevant).Return(proposals, nil)
		source.On("VotableSupply", ctx).Return(big.NewInt(1000), nil)
		blocks := new(MockBlockReader)
		blocks.On("LatestBlock", ctx).Return(head, nil)
		progress := &MockProgressSink{}

		uc := usecase.NewListProposals(cfg, source, blocks, progress)
		result, err := uc.Run(ctx, usecase.ListProposalsParams{Page: 1})

		require.NoError(t, err)
		require.Len(t, result.Page.Data, 2)
		assert.Equal(t, "3", result.Page.Data[0].ID)
		assert.Equal(t, "2", result.Page.Data[1].ID)
		assert.True(t, result.Page.Meta.HasNextPage)
		assert.Equal(t, 2, result.Page.Meta.PageSize)
		assert.Equal(t, 3, result.Total)
		assert.Equal(t, domain.ProposalSetRelevant, result.Filter.Set)
		assert.Equal(t, head, result.LatestBlock)
		for _, p := range result.Page.Data {
			assert.Equal(t, models.ProposalStatusSucceeded, p.Status)
		}

		// source proposals are shared with the cache and stay untouched
		for _, p := range proposals {
			assert.Empty(t, p.Status)
		}

		assert.Equal(t, []string{"loading", "status", "complete"}, progress.stages())
		source.AssertExpectations(t)
		blocks.AssertExpectations(t)
	})

	t.Run("search narrows before paginating", func(t *testing.T) {
		source := new(MockProposalSource)
		source.On("ListProposals", ctx, domain.ProposalSetEverything).Return(proposals, nil)
		source.On("VotableSupply", ctx).Return(big.NewInt(1000), nil)
		blocks := new(MockBlockReader)
		blocks.On("LatestBlock", ctx).Return(head, nil)

		uc := usecase.NewListProposals(cfg, source, blocks, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.ListProposalsParams{
			Filter: domain.ProposalSetEverything,
			Search: "rants",
			Page:   1,
		})

		require.NoError(t, err)
		require.Len(t, result.Page.Data, 2)
		assert.Equal(t, "3", result.Page.Data[0].ID)
		assert.Equal(t, "1", result.Page.Data[1].ID)
		assert.False(t, result.Page.Meta.HasNextPage)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, "rants", result.Filter.Search)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		source := new(MockProposalSource)
		source.On("ListProposals", ctx, domain.ProposalSetRelevant).Return(proposals, nil)
		source.On("VotableSupply", ctx).Return(big.NewInt(1000), nil)
		blocks := new(MockBlockReader)
		blocks.On("LatestBlock", ctx).Return(nil, nil)

		uc := usecase.NewListProposals(cfg, source, blocks, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.ListProposalsParams{Page: 5})

		require.NoError(t, err)
		assert.True(t, result.Page.IsEmpty())
		assert.Equal(t, domain.PageMeta{}, result.Page.Meta)
		assert.Nil(t, result.LatestBlock)
	})

	t.Run("explicit page size wins over config", func(t *testing.T) {
		source := new(MockProposalSource)
		source.On("ListProposals", ctx, domain.ProposalSetRelevant).Return(proposals, nil)
		source.On("VotableSupply", ctx).Return(nil, nil)
		blocks := new(MockBlockReader)
		blocks.On("LatestBlock", ctx).Return(nil, nil)

		uc := usecase.NewListProposals(cfg, source, blocks, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.ListProposalsParams{Page: 1, PageSize: 10})

		require.NoError(t, err)
		assert.Len(t, result.Page.Data, 3)
		for _, p := range result.Page.Data {
			assert.Equal(t, models.ProposalStatusPending, p.Status)
		}
	})

	t.Run("per proposal votable supply overrides the global one", func(t *testing.T) {
		optimistic := newProposal("9", "Optimistic upgrade", 100)
		optimistic.ProposalType = models.ProposalTypeOptimistic
		optimistic.ProposalResults.Standard.Against = big.NewInt(60)
		optimistic.VotableSupply = big.NewInt(100)

		source := new(MockProposalSource)
		source.On("ListProposals", ctx, domain.ProposalSetRelevant).Return([]*models.Proposal{optimistic}, nil)
		source.On("VotableSupply", ctx).Return(big.NewInt(1000), nil)
		blocks := new(MockBlockReader)
		blocks.On("LatestBlock", ctx).Return(head, nil)

		uc := usecase.NewListProposals(cfg, source, blocks, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.ListProposalsParams{Page: 1})

		require.NoError(t, err)
		require.Len(t, result.Page.Data, 1)
		assert.Equal(t, models.ProposalStatusDefeated, result.Page.Data[0].Status)
	})

	t.Run("unknown filter", func(t *testing.T) {
		source := new(MockProposalSource)
		uc := usecase.NewListProposals(cfg, source, new(MockBlockReader), &MockProgressSink{})

		_, err := uc.Run(ctx, usecase.ListProposalsParams{Filter: "all", Page: 1})

		assert.Error(t, err)
		source.AssertNotCalled(t, "ListProposals", mock.Anything, mock.Anything)
	})

	t.Run("invalid page", func(t *testing.T) {
		source := new(MockProposalSource)
		source.On("ListProposals", ctx, domain.ProposalSetRelevant).Return(proposals, nil)

		uc := usecase.NewListProposals(cfg, source, new(MockBlockReader), &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.ListProposalsParams{Page: 0})

		assert.ErrorIs(t, err, domain.ErrInvalidPagination)
	})

	t.Run("source error", func(t *testing.T) {
		upstream := errors.New("connection refused")
		source := new(MockProposalSource)
		source.On("ListProposals", ctx, domain.ProposalSetRelevant).Return(nil, upstream)

		uc := usecase.NewListProposals(cfg, source, new(MockBlockReader), &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.ListProposalsParams{Page: 1})

		assert.ErrorIs(t, err, upstream)
	})
}

func TestSearchProposals(t *testing.T) {
	proposals := []*models.Proposal{
		newProposal("101", "Treasury report", 3),
		newProposal("202", "Security council election", 2),
	}

	assert.Equal(t, proposals, usecase.SearchProposals(proposals, ""))

	byID := usecase.SearchProposals(proposals, "202")
	require.Len(t, byID, 1)
	assert.Equal(t, "202", byID[0].ID)

	assert.Empty(t, usecase.SearchProposals(proposals, "zzz"))
}
