package domain

import (
	"math/big"

	"github.com/voteagora/agora-cli/internal/domain/models"
)

// basisPoints is the denominator of quorum and threshold settings
var basisPoints = big.NewInt(10_000)

// DeriveStatus places a proposal in its lifecycle. head is the latest chain
// block and may be nil when no chain connection is configured; votableSupply
// may be nil when the indexer did not report it.
func DeriveStatus(p *models.Proposal, head *models.BlockInfo, votableSupply *big.Int) models.ProposalStatus {
	switch {
	case p.CancelledBlock != nil:
		return models.ProposalStatusCancelled
	case p.ExecutedBlock != nil:
		return models.ProposalStatusExecuted
	case p.QueuedBlock != nil:
		return models.ProposalStatusQueued
	}

	if head == nil || head.Number == nil || p.StartBlock == nil || p.StartBlock.Cmp(head.Number) > 0 {
		return models.ProposalStatusPending
	}
	if p.EndBlock == nil || p.EndBlock.Cmp(head.Number) > 0 {
		return models.ProposalStatusActive
	}

	tally := p.ProposalResults.Standard
	quorum := RequiredQuorum(p, votableSupply)

	switch p.ProposalType {
	case models.ProposalTypeStandard:
		if quorum != nil && quorumVotes(tally).Cmp(quorum) < 0 {
			return models.ProposalStatusDefeated
		}
		if orZero(tally.For).Cmp(orZero(tally.Against)) < 0 {
			return models.ProposalStatusDefeated
		}
		if !meetsApprovalThreshold(tally, p.TypeConfig) {
			return models.ProposalStatusDefeated
		}
		if orZero(tally.For).Cmp(orZero(tally.Against)) > 0 {
			return models.ProposalStatusSucceeded
		}
		return models.ProposalStatusFailed

	case models.ProposalTypeOptimistic:
		if votableSupply == nil || votableSupply.Sign() <= 0 {
			return models.ProposalStatusSucceeded
		}
		half := new(big.Int).Quo(votableSupply, big.NewInt(2))
		if orZero(tally.Against).Cmp(half) > 0 {
			return models.ProposalStatusDefeated
		}
		return models.ProposalStatusSucceeded

	case models.ProposalTypeApproval:
		if quorum != nil && quorumVotes(tally).Cmp(quorum) < 0 {
			return models.ProposalStatusDefeated
		}
		return models.ProposalStatusSucceeded

	default:
		return models.ProposalStatusFailed
	}
}

// RequiredQuorum returns the vote weight a proposal needs. An explicit quorum
// reported by the indexer wins over one derived from the proposal type.
func RequiredQuorum(p *models.Proposal, votableSupply *big.Int) *big.Int {
	if p.Quorum != nil {
		return p.Quorum
	}
	if p.TypeConfig == nil || p.TypeConfig.Quorum == 0 || votableSupply == nil {
		return nil
	}
	q := new(big.Int).Mul(votableSupply, new(big.Int).SetUint64(p.TypeConfig.Quorum))
	return q.Quo(q, basisPoints)
}

// quorumVotes counts for and abstain votes toward quorum
func quorumVotes(t models.StandardResults) *big.Int {
	return new(big.Int).Add(orZero(t.For), orZero(t.Abstain))
}

// meetsApprovalThreshold compares for/(for+against) with the configured threshold in basis points
func meetsApprovalThreshold(t models.StandardResults, cfg *models.ProposalTypeConfig) bool {
	if cfg == nil || cfg.ApprovalThreshold == 0 {
		return true
	}
	cast := new(big.Int).Add(orZero(t.For), orZero(t.Against))
	if cast.Sign() == 0 {
		return false
	}
	// for * 10000 >= threshold * (for + against)
	lhs := new(big.Int).Mul(orZero(t.For), basisPoints)
	rhs := new(big.Int).Mul(new(big.Int).SetUint64(cfg.ApprovalThreshold), cast)
	return lhs.Cmp(rhs) >= 0
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
