package usecase_test

import (
	"context"
	"math/big"

	"github.com/stretchr/testify/mock"
	"github.com/voteagora/agora-cli/internal/domain"
	"github.com/voteagora/agora-cli/internal/domain/models"
	"github.com/voteagora/agora-cli/internal/usecase"
)

// MockProposalSource is a mock implementation of ProposalSource
type MockProposalSource struct {
	mock.Mock
}

func (m *MockProposalSource) ListProposals(ctx context.Context, set domain.ProposalSet) ([]*models.Proposal, error) {
	args := m.Called(ctx, set)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Proposal), args.Error(1)
}

func (m *MockProposalSource) GetProposal(ctx context.Context, id string) (*models.Proposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Proposal), args.Error(1)
}

func (m *MockProposalSource) VotableSupply(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

// MockBlockReader is a mock implementation of BlockReader
type MockBlockReader struct {
	mock.Mock
}

func (m *MockBlockReader) LatestBlock(ctx context.Context) (*models.BlockInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlockInfo), args.Error(1)
}

// MockProposalSelector is a mock implementation of ProposalSelector
type MockProposalSelector struct {
	mock.Mock
}

func (m *MockProposalSelector) SelectProposal(ctx context.Context, proposals []*models.Proposal, prompt string) (*models.Proposal, error) {
	args := m.Called(ctx, proposals, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Proposal), args.Error(1)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(string)  {}
func (m *MockProgressSink) Error(string) {}

func (m *MockProgressSink) stages() []string {
	stages := make([]string, 0, len(m.events))
	for _, e := range m.events {
		stages = append(stages, e.Stage)
	}
	return stages
}

func newProposal(id, title string, start int64) *models.Proposal {
	return &models.Proposal{
		ID:           id,
		Proposer:     "0x1111111111111111111111111111111111111111",
		Description:  "# " + title + "\n\nDetails",
		CreatedBlock: big.NewInt(start - 10),
		StartBlock:   big.NewInt(start),
		EndBlock:     big.NewInt(start + 100),
		ProposalType: models.ProposalTypeStandard,
		ProposalResults: models.ProposalResults{
			Standard: models.StandardResults{
				Against: big.NewInt(1),
				For:     big.NewInt(10),
				Abstain: big.NewInt(0),
			},
		},
	}
}

func bigInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid big int " + s)
	}
	return v
}
