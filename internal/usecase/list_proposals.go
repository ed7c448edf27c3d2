package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/voteagora/agora-cli/internal/domain"
	"github.com/voteagora/agora-cli/internal/domain/config"
	"github.com/voteagora/agora-cli/internal/domain/models"
)

// ListProposalsParams contains parameters for listing proposals
type ListProposalsParams struct {
	Filter   domain.ProposalSet
	Search   string
	Page     int
	PageSize int // 0 uses the configured page size
}

// ListProposals is the use case for listing proposals one page at a time
type ListProposals struct {
	config *config.RuntimeConfig
	source ProposalSource
	blocks BlockReader
	sink   ProgressSink
}

// NewListProposals creates a new ListProposals use case
func NewListProposals(cfg *config.RuntimeConfig, source ProposalSource, blocks BlockReader, sink ProgressSink) *ListProposals {
	return &ListProposals{
		config: cfg,
		source: source,
		blocks: blocks,
		sink:   sink,
	}
}

// Run executes the list proposals use case
func (uc *ListProposals) Run(ctx context.Context, params ListProposalsParams) (*ProposalListResult, error) {
	set, ok := domain.ParseProposalSet(string(params.Filter))
	if !ok {
		return nil, fmt.Errorf("unknown proposal filter %q", params.Filter)
	}

	pageSize := params.PageSize
	if pageSize == 0 {
		pageSize = uc.config.PageSize
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading proposals",
		Spinner: true,
	})

	proposals, err := uc.source.ListProposals(ctx, set)
	if err != nil {
		return nil, err
	}

	matches := SearchProposals(proposals, params.Search)

	page, err := Paginate(ctx, SliceWindow(matches), params.Page, pageSize)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "status",
		Message: "Deriving proposal status",
		Spinner: true,
	})

	supply, head, err := statusInputs(ctx, uc.source, uc.blocks)
	if err != nil {
		return nil, err
	}
	page.Data = lo.Map(page.Data, func(p *models.Proposal, _ int) *models.Proposal {
		return withStatus(p, head, supply)
	})

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: len(page.Data),
		Total:   len(matches),
		Message: "Proposals loaded",
	})

	return &ProposalListResult{
		Page:          page,
		Filter:        domain.ProposalFilter{Set: set, Search: params.Search},
		Total:         len(matches),
		VotableSupply: supply,
		LatestBlock:   head,
	}, nil
}

// SearchProposals keeps the proposals whose id or title fuzzily matches
// query, in their original order. An empty query keeps everything.
func SearchProposals(proposals []*models.Proposal, query string) []*models.Proposal {
	if query == "" {
		return proposals
	}

	matches := fuzzy.FindFromNoSort(query, searchSource(proposals))
	return lo.Map(matches, func(m fuzzy.Match, _ int) *models.Proposal {
		return proposals[m.Index]
	})
}

// searchSource exposes proposals to the fuzzy matcher
type searchSource []*models.Proposal

func (s searchSource) String(i int) string {
	return s[i].ID + " " + s[i].Title()
}

func (s searchSource) Len() int {
	return len(s)
}

// statusInputs collects what DeriveStatus needs beyond the proposal itself
func statusInputs(ctx context.Context, source ProposalSource, blocks BlockReader) (*big.Int, *models.BlockInfo, error) {
	supply, err := source.VotableSupply(ctx)
	if err != nil {
		return nil, nil, err
	}
	head, err := blocks.LatestBlock(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read latest block: %w", err)
	}
	return supply, head, nil
}

// withStatus returns a copy of p with its status derived. Proposals may be
// shared through the cache so the original is left untouched.
func withStatus(p *models.Proposal, head *models.BlockInfo, votableSupply *big.Int) *models.Proposal {
	cp := *p
	supply := votableSupply
	if p.VotableSupply != nil {
		supply = p.VotableSupply
	}
	cp.Status = domain.DeriveStatus(&cp, head, supply)
	return &cp
}
