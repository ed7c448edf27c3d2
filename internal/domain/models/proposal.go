package models

import (
	"math/big"
	"strings"
)

// ProposalType is the voting mechanism a proposal is tallied with
type ProposalType string

const (
	ProposalTypeStandard   ProposalType = "STANDARD"
	ProposalTypeApproval   ProposalType = "APPROVAL"
	ProposalTypeOptimistic ProposalType = "OPTIMISTIC"
)

// ProposalStatus represents the lifecycle state of a proposal
type ProposalStatus string

const (
	ProposalStatusPending   ProposalStatus = "PENDING"
	ProposalStatusActive    ProposalStatus = "ACTIVE"
	ProposalStatusSucceeded ProposalStatus = "SUCCEEDED"
	ProposalStatusDefeated  ProposalStatus = "DEFEATED"
	ProposalStatusFailed    ProposalStatus = "FAILED"
	ProposalStatusQueued    ProposalStatus = "QUEUED"
	ProposalStatusExecuted  ProposalStatus = "EXECUTED"
	ProposalStatusCancelled ProposalStatus = "CANCELLED"
)

// Proposal is the normalized governance proposal every consumer works with.
// Block markers are nil when the corresponding lifecycle event has not happened.
type Proposal struct {
	// Identification
	ID          string `json:"id"`
	Proposer    string `json:"proposer"` // lower-cased
	Description string `json:"description"`

	// Block markers
	CreatedBlock   *big.Int `json:"created_block"`
	StartBlock     *big.Int `json:"start_block"`
	EndBlock       *big.Int `json:"end_block"`
	CancelledBlock *big.Int `json:"cancelled_block"`
	ExecutedBlock  *big.Int `json:"executed_block"`
	QueuedBlock    *big.Int `json:"queued_block"`

	ProposalData    ProposalData    `json:"proposal_data"`
	ProposalType    ProposalType    `json:"proposal_type"`
	ProposalResults ProposalResults `json:"proposal_results"`

	// Governance parameters, when the indexer knows them
	Quorum        *big.Int            `json:"quorum,omitempty"`
	VotableSupply *big.Int            `json:"votable_supply,omitempty"`
	TypeConfig    *ProposalTypeConfig `json:"proposal_type_config,omitempty"`

	// Derived
	Status ProposalStatus `json:"status,omitempty"`
}

// ProposalData is the executable payload of a proposal
type ProposalData struct {
	Targets    []string   `json:"targets"`
	Values     []*big.Int `json:"values"`
	Calldatas  []string   `json:"calldatas"`
	Signatures []string   `json:"signatures"`
}

// ProposalResults holds the tally. Approval is nil for every type but APPROVAL.
type ProposalResults struct {
	Standard StandardResults  `json:"standard"`
	Approval []ApprovalOption `json:"approval"`
}

// StandardResults keys outcomes the way governors do: 0 against, 1 for, 2 abstain
type StandardResults struct {
	Against *big.Int `json:"0"`
	For     *big.Int `json:"1"`
	Abstain *big.Int `json:"2"`
}

// ApprovalOption is one option of an approval vote and the weight approving it
type ApprovalOption struct {
	Param string   `json:"param"`
	Votes *big.Int `json:"votes"`
}

// ProposalTypeConfig is the governor-side configuration of a proposal type.
// Quorum and ApprovalThreshold are expressed in basis points.
type ProposalTypeConfig struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Quorum            uint64 `json:"quorum"`
	ApprovalThreshold uint64 `json:"approval_threshold"`
}

// BlockInfo is the chain head used to place proposals on their timeline
type BlockInfo struct {
	Number    *big.Int `json:"number"`
	Timestamp uint64   `json:"timestamp"`
}

// Title returns the first non-empty line of the description without markdown heading marks
func (p *Proposal) Title() string {
	for _, line := range strings.Split(p.Description, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "# "))
		if line != "" {
			return line
		}
	}
	return ""
}

// IsCancelled reports whether a cancel event was indexed for the proposal
func (p *Proposal) IsCancelled() bool {
	return p.CancelledBlock != nil
}
