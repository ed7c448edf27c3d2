package daonode

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/voteagora/agora-cli/internal/domain/models"
)

// Normalize converts one indexer proposal into the internal representation.
// The result carries no proposal type configuration; see NormalizeAll.
func Normalize(raw *RawProposal) (*models.Proposal, error) {
	var (
		results      models.ProposalResults
		proposalType models.ProposalType
	)

	aggregate := raw.Totals[NoParamKey]

	switch raw.VotingModuleName {
	case ModuleStandard:
		proposalType = models.ProposalTypeStandard
		results.Standard = models.StandardResults{
			Against: aggregate.Get(OutcomeAgainst),
			For:     aggregate.Get(OutcomeFor),
			Abstain: aggregate.Get(OutcomeAbstain),
		}

	case ModuleApproval:
		proposalType = models.ProposalTypeApproval
		results.Approval = approvalOptions(raw.Totals)
		votesFor := new(big.Int)
		for _, option := range results.Approval {
			votesFor.Add(votesFor, option.Votes)
		}
		results.Standard = models.StandardResults{
			Against: aggregate.Get(OutcomeAgainst),
			For:     votesFor,
			Abstain: aggregate.Get(OutcomeAbstain),
		}

	case ModuleOptimistic:
		proposalType = models.ProposalTypeOptimistic
		results.Standard = models.StandardResults{
			Against: aggregate.Get(OutcomeAgainst),
			For:     new(big.Int),
			Abstain: new(big.Int),
		}

	default:
		return nil, &UnknownVotingModuleError{ProposalID: raw.ID, Module: raw.VotingModuleName}
	}

	return &models.Proposal{
		ID:             raw.ID,
		Proposer:       strings.ToLower(raw.Proposer),
		Description:    raw.Description,
		CreatedBlock:   raw.BlockNumber.Big(),
		StartBlock:     raw.StartBlock.Big(),
		EndBlock:       raw.EndBlock.Big(),
		CancelledBlock: eventBlock(raw.CancelEvent),
		ExecutedBlock:  eventBlock(raw.ExecuteEvent),
		QueuedBlock:    eventBlock(raw.QueueEvent),
		ProposalData: models.ProposalData{
			Targets:    raw.Targets,
			Values:     lo.Map(raw.Values, func(q Quantity, _ int) *big.Int { return q.BigOrZero() }),
			Calldatas:  raw.Calldatas,
			Signatures: raw.Signatures,
		},
		ProposalType:    proposalType,
		ProposalResults: results,
		Quorum:          raw.Quorum.Big(),
		VotableSupply:   raw.VotableSupply.Big(),
	}, nil
}

// NormalizeAll normalizes a batch and resolves each proposal's type
// configuration. It stops at the first record that cannot be normalized.
func NormalizeAll(raws []RawProposal, types ProposalTypes) ([]*models.Proposal, error) {
	proposals := make([]*models.Proposal, 0, len(raws))
	for i := range raws {
		p, err := Normalize(&raws[i])
		if err != nil {
			return nil, fmt.Errorf("failed to normalize proposal %s: %w", raws[i].ID, err)
		}
		p.TypeConfig = types.Lookup(raws[i].ProposalType)
		proposals = append(proposals, p)
	}
	return proposals, nil
}

// Lookup resolves a proposal type id against the table. It returns nil for
// a missing id or an id the table does not know.
func (t ProposalTypes) Lookup(id *Quantity) *models.ProposalTypeConfig {
	v := id.Big()
	if v == nil || !v.IsInt64() {
		return nil
	}
	key := v.String()
	entry, ok := t[key]
	if !ok {
		return nil
	}
	n, _ := strconv.Atoi(key)
	return &models.ProposalTypeConfig{
		ID:                n,
		Name:              entry.Name,
		Quorum:            entry.Quorum.BigOrZero().Uint64(),
		ApprovalThreshold: entry.ApprovalThreshold.BigOrZero().Uint64(),
	}
}

// approvalOptions lists every parameterized tally. Option indices come first
// in numeric order, then any other labels in lexical order.
func approvalOptions(totals map[string]Tally) []models.ApprovalOption {
	params := lo.Without(lo.Keys(totals), NoParamKey)
	sort.Slice(params, func(i, j int) bool {
		return optionKeyLess(params[i], params[j])
	})

	return lo.Map(params, func(param string, _ int) models.ApprovalOption {
		return models.ApprovalOption{
			Param: param,
			Votes: totals[param].Get(OutcomeFor),
		}
	})
}

func optionKeyLess(a, b string) bool {
	ai, aIndex := optionIndex(a)
	bi, bIndex := optionIndex(b)
	switch {
	case aIndex && bIndex:
		return ai < bi
	case aIndex != bIndex:
		return aIndex
	default:
		return a < b
	}
}

// optionIndex parses canonical non-negative integers only, so "01" stays a label
func optionIndex(key string) (uint64, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil {
		return 0, false
	}
	return n, true
}

func eventBlock(ev *RawEvent) *big.Int {
	if ev == nil {
		return nil
	}
	return ev.BlockNumber.BigOrZero()
}
