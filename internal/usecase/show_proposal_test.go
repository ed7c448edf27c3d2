package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/voteagora/agora-cli/internal/domain"
	"github.com/voteagora/agora-cli/internal/domain/models"
	"github.com/voteagora/agora-cli/internal/usecase"
)

func TestShowProposal(t *testing.T) {
	ctx := context.Background()
	head := &models.BlockInfo{Number: big.NewInt(10_000)}

	t.Run("by id", func(t *testing.T) {
		proposal := newProposal("42", "Upgrade bridge", 500)
		proposal.TypeConfig = &models.ProposalTypeConfig{Name: "Default", Quorum: 500}

		source := new(MockProposalSource)
		source.On("GetProposal", ctx, "42").Return(proposal, nil)
		source.On("VotableSupply", ctx).Return(big.NewInt(100), nil)
		blocks := new(MockBlockReader)
		blocks.On("LatestBlock", ctx).Return(head, nil)

		uc := usecase.NewShowProposal(source, blocks, nil, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.ShowProposalParams{ID: "42"})

		require.NoError(t, err)
		assert.Equal(t, "42", result.Proposal.ID)
		assert.Equal(t, models.ProposalStatusSucceeded, result.Proposal.Status)
		assert.Equal(t, "5", result.RequiredQuorum.String())
		assert.Equal(t, "100", result.VotableSupply.String())
		assert.Empty(t, proposal.Status)
	})

	t.Run("not found", func(t *testing.T) {
		source := new(MockProposalSource)
		source.On("GetProposal", ctx, "404").Return(nil, fmt.Errorf("upstream: %w", domain.ErrNotFound))

		uc := usecase.NewShowProposal(source, new(MockBlockReader), nil, &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.ShowProposalParams{ID: "404"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("picks interactively without an id", func(t *testing.T) {
		proposals := []*models.Proposal{
			newProposal("2", "Second", 200),
			newProposal("1", "First", 100),
		}

		source := new(MockProposalSource)
		source.On("ListProposals", ctx, domain.ProposalSetRelevant).Return(proposals, nil)
		source.On("GetProposal", ctx, "1").Return(proposals[1], nil)
		source.On("VotableSupply", ctx).Return(nil, nil)
		blocks := new(MockBlockReader)
		blocks.On("LatestBlock", ctx).Return(nil, nil)
		selector := new(MockProposalSelector)
		selector.On("SelectProposal", ctx, proposals, mock.AnythingOfType("string")).Return(proposals[1], nil)

		uc := usecase.NewShowProposal(source, blocks, selector, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.ShowProposalParams{})

		require.NoError(t, err)
		assert.Equal(t, "1", result.Proposal.ID)
		assert.Equal(t, models.ProposalStatusPending, result.Proposal.Status)
		assert.Nil(t, result.RequiredQuorum)
		selector.AssertExpectations(t)
	})

	t.Run("selection cancelled", func(t *testing.T) {
		proposals := []*models.Proposal{newProposal("1", "First", 100), newProposal("2", "Second", 200)}
		cancelled := errors.New("^C")

		source := new(MockProposalSource)
		source.On("ListProposals", ctx, domain.ProposalSetRelevant).Return(proposals, nil)
		selector := new(MockProposalSelector)
		selector.On("SelectProposal", ctx, proposals, mock.Anything).Return(nil, cancelled)

		uc := usecase.NewShowProposal(source, new(MockBlockReader), selector, &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.ShowProposalParams{})

		assert.ErrorIs(t, err, cancelled)
		source.AssertNotCalled(t, "GetProposal", mock.Anything, mock.Anything)
	})

	t.Run("nothing to pick from", func(t *testing.T) {
		source := new(MockProposalSource)
		source.On("ListProposals", ctx, domain.ProposalSetRelevant).Return([]*models.Proposal{}, nil)

		uc := usecase.NewShowProposal(source, new(MockBlockReader), new(MockProposalSelector), &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.ShowProposalParams{})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("id required without selector", func(t *testing.T) {
		uc := usecase.NewShowProposal(new(MockProposalSource), new(MockBlockReader), nil, &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.ShowProposalParams{})

		assert.Error(t, err)
	})
}
