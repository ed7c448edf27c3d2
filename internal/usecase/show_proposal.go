package usecase

import (
	"context"
	"fmt"

	"github.com/voteagora/agora-cli/internal/domain"
)

// ShowProposalParams contains parameters for showing a proposal
type ShowProposalParams struct {
	// ID may be empty when a selector is available; the user then picks
	// from the relevant proposals
	ID string
}

// ShowProposal is the use case for showing proposal details
type ShowProposal struct {
	source   ProposalSource
	blocks   BlockReader
	selector ProposalSelector
	sink     ProgressSink
}

// NewShowProposal creates a new ShowProposal use case
func NewShowProposal(source ProposalSource, blocks BlockReader, selector ProposalSelector, sink ProgressSink) *ShowProposal {
	return &ShowProposal{
		source:   source,
		blocks:   blocks,
		selector: selector,
		sink:     sink,
	}
}

// Run executes the show proposal use case
func (uc *ShowProposal) Run(ctx context.Context, params ShowProposalParams) (*ProposalDetailResult, error) {
	id := params.ID
	if id == "" {
		picked, err := uc.pick(ctx)
		if err != nil {
			return nil, err
		}
		id = picked
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: fmt.Sprintf("Loading proposal %s", id),
		Spinner: true,
	})

	proposal, err := uc.source.GetProposal(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get proposal %s: %w", id, err)
	}

	supply, head, err := statusInputs(ctx, uc.source, uc.blocks)
	if err != nil {
		return nil, err
	}
	proposal = withStatus(proposal, head, supply)

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Message: "Proposal loaded",
	})

	effectiveSupply := supply
	if proposal.VotableSupply != nil {
		effectiveSupply = proposal.VotableSupply
	}

	return &ProposalDetailResult{
		Proposal:       proposal,
		VotableSupply:  supply,
		RequiredQuorum: domain.RequiredQuorum(proposal, effectiveSupply),
		LatestBlock:    head,
	}, nil
}

func (uc *ShowProposal) pick(ctx context.Context) (string, error) {
	if uc.selector == nil {
		return "", fmt.Errorf("proposal id is required")
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading proposals",
		Spinner: true,
	})

	proposals, err := uc.source.ListProposals(ctx, domain.ProposalSetRelevant)
	if err != nil {
		return "", err
	}
	if len(proposals) == 0 {
		return "", fmt.Errorf("no proposals to choose from: %w", domain.ErrNotFound)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "select"})

	selected, err := uc.selector.SelectProposal(ctx, proposals, "Select a proposal")
	if err != nil {
		return "", err
	}
	return selected.ID, nil
}
