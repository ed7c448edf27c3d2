package usecase

import (
	"context"
	"math/big"

	"github.com/voteagora/agora-cli/internal/domain"
	"github.com/voteagora/agora-cli/internal/domain/models"
)

// ProposalSource provides normalized proposals for the configured tenant
type ProposalSource interface {
	ListProposals(ctx context.Context, set domain.ProposalSet) ([]*models.Proposal, error)
	GetProposal(ctx context.Context, id string) (*models.Proposal, error)
	VotableSupply(ctx context.Context) (*big.Int, error)
}

// BlockReader reads the chain head. Implementations return nil, nil when no
// chain connection is configured.
type BlockReader interface {
	LatestBlock(ctx context.Context) (*models.BlockInfo, error)
}

// ProposalSelector handles interactive selection of proposals
type ProposalSelector interface {
	SelectProposal(ctx context.Context, proposals []*models.Proposal, prompt string) (*models.Proposal, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// Use case result types

// ProposalListResult contains one page of proposals with the context their
// statuses were derived in
type ProposalListResult struct {
	Page          *domain.PaginatedResult[*models.Proposal]
	Filter        domain.ProposalFilter
	Total         int // matching proposals across all pages
	VotableSupply *big.Int
	LatestBlock   *models.BlockInfo
}

// ProposalDetailResult contains a single proposal and its derived figures
type ProposalDetailResult struct {
	Proposal       *models.Proposal
	VotableSupply  *big.Int
	RequiredQuorum *big.Int
	LatestBlock    *models.BlockInfo
}
