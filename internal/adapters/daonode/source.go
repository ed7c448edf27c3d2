package daonode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sort"

	"github.com/samber/lo"
	"github.com/voteagora/agora-cli/internal/domain"
	"github.com/voteagora/agora-cli/internal/domain/models"
	"github.com/voteagora/agora-cli/internal/usecase"
	"golang.org/x/sync/errgroup"
)

// Source implements usecase.ProposalSource on top of the DAO Node
type Source struct {
	client *Client
	log    *slog.Logger
}

// NewSource creates a proposal source backed by client
func NewSource(client *Client, log *slog.Logger) *Source {
	return &Source{
		client: client,
		log:    log.With("component", "daonode.source"),
	}
}

// ListProposals returns the normalized proposals of a set, newest first
func (s *Source) ListProposals(ctx context.Context, set domain.ProposalSet) ([]*models.Proposal, error) {
	var (
		raws  []RawProposal
		types ProposalTypes
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		raws, err = s.client.Proposals(gctx, set)
		return err
	})
	g.Go(func() error {
		var err error
		types, err = s.client.ProposalTypes(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logUpstreamError("list proposals", err)
		return nil, err
	}

	if set == domain.ProposalSetRelevant {
		raws = lo.Filter(raws, func(raw RawProposal, _ int) bool {
			return raw.CancelEvent == nil
		})
	}

	proposals, err := NormalizeAll(raws, types)
	if err != nil {
		s.log.Error("failed to normalize proposals", "error", err)
		return nil, err
	}

	SortNewestFirst(proposals)
	return proposals, nil
}

// GetProposal returns a single normalized proposal
func (s *Source) GetProposal(ctx context.Context, id string) (*models.Proposal, error) {
	var (
		raw   *RawProposal
		types ProposalTypes
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		raw, err = s.client.Proposal(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		types, err = s.client.ProposalTypes(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logUpstreamError("get proposal", err)
		}
		return nil, err
	}

	proposals, err := NormalizeAll([]RawProposal{*raw}, types)
	if err != nil {
		s.log.Error("failed to normalize proposal", "id", id, "error", err)
		return nil, err
	}
	return proposals[0], nil
}

// VotableSupply returns the total voting power of the tenant's token
func (s *Source) VotableSupply(ctx context.Context) (*big.Int, error) {
	q, err := s.client.VotingPower(ctx)
	if err != nil {
		s.logUpstreamError("voting power", err)
		return nil, fmt.Errorf("failed to fetch votable supply: %w", err)
	}
	return q.BigOrZero(), nil
}

func (s *Source) logUpstreamError(op string, err error) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		s.log.Error("dao node request failed", "op", op, "status", statusErr.StatusCode, "url", statusErr.URL)
		return
	}
	s.log.Error("dao node request failed", "op", op, "error", err)
}

// SortNewestFirst orders proposals by descending start block, then by id
func SortNewestFirst(proposals []*models.Proposal) {
	sort.SliceStable(proposals, func(i, j int) bool {
		a, b := proposals[i].StartBlock, proposals[j].StartBlock
		switch {
		case a == nil && b == nil:
			return idGreater(proposals[i].ID, proposals[j].ID)
		case a == nil:
			return false
		case b == nil:
			return true
		}
		if c := a.Cmp(b); c != 0 {
			return c > 0
		}
		return idGreater(proposals[i].ID, proposals[j].ID)
	})
}

// idGreater compares decimal ids without parsing them
func idGreater(a, b string) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a > b
}

var _ usecase.ProposalSource = (*Source)(nil)
