package usecase

import (
	"context"
	"math/big"
)

// GetVotableSupply is the use case for reading the tenant's votable supply
type GetVotableSupply struct {
	source ProposalSource
	sink   ProgressSink
}

// NewGetVotableSupply creates a new GetVotableSupply use case
func NewGetVotableSupply(source ProposalSource, sink ProgressSink) *GetVotableSupply {
	return &GetVotableSupply{
		source: source,
		sink:   sink,
	}
}

// Run executes the get votable supply use case
func (uc *GetVotableSupply) Run(ctx context.Context) (*big.Int, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading voting power",
		Spinner: true,
	})

	supply, err := uc.source.VotableSupply(ctx)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})
	return supply, nil
}
