package daonode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
)

// Voting module names as reported by the indexer
const (
	ModuleStandard   = "standard"
	ModuleApproval   = "approval"
	ModuleOptimistic = "optimistic"
)

// NoParamKey holds the aggregate tally in Totals
const NoParamKey = "no-param"

// Outcome keys inside a tally
const (
	OutcomeAgainst = "0"
	OutcomeFor     = "1"
	OutcomeAbstain = "2"
)

// Quantity is an unsigned integer the indexer encodes either as a JSON
// number or as a decimal or 0x-prefixed hex string.
type Quantity struct {
	value *big.Int
}

// NewQuantity wraps v
func NewQuantity(v int64) Quantity {
	return Quantity{value: big.NewInt(v)}
}

// UnmarshalJSON implements json.Unmarshaler
func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		q.value = nil
		return nil
	}

	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}

	v, ok := math.ParseBig256(s)
	if !ok || v.Sign() < 0 {
		return fmt.Errorf("invalid quantity %q", s)
	}
	q.value = v
	return nil
}

// Big returns a copy of the value, or nil for a missing quantity
func (q *Quantity) Big() *big.Int {
	if q == nil || q.value == nil {
		return nil
	}
	return new(big.Int).Set(q.value)
}

// BigOrZero returns a copy of the value, or zero for a missing quantity
func (q *Quantity) BigOrZero() *big.Int {
	if v := q.Big(); v != nil {
		return v
	}
	return new(big.Int)
}

// Tally maps outcome keys to vote weight
type Tally map[string]Quantity

// Get returns the weight for an outcome, zero when absent
func (t Tally) Get(outcome string) *big.Int {
	if t == nil {
		return new(big.Int)
	}
	q, ok := t[outcome]
	if !ok {
		return new(big.Int)
	}
	return q.BigOrZero()
}

// RawEvent is a lifecycle event attached to a proposal
type RawEvent struct {
	BlockNumber *Quantity `json:"block_number" validate:"required"`
}

// RawProposal is a proposal exactly as the DAO Node serves it
type RawProposal struct {
	ID          string    `json:"id" validate:"required"`
	Proposer    string    `json:"proposer" validate:"required,eth_addr"`
	Description string    `json:"description"`
	BlockNumber *Quantity `json:"block_number"`
	StartBlock  *Quantity `json:"start_block" validate:"required"`
	EndBlock    *Quantity `json:"end_block" validate:"required"`

	CancelEvent  *RawEvent `json:"cancel_event"`
	ExecuteEvent *RawEvent `json:"execute_event"`
	QueueEvent   *RawEvent `json:"queue_event"`

	Targets    []string   `json:"targets" validate:"dive,eth_addr"`
	Values     []Quantity `json:"values"`
	Calldatas  []string   `json:"calldatas"`
	Signatures []string   `json:"signatures"`

	VotingModuleName string           `json:"voting_module_name" validate:"required"`
	Totals           map[string]Tally `json:"totals"`

	ProposalType  *Quantity `json:"proposal_type"`
	Quorum        *Quantity `json:"quorum"`
	VotableSupply *Quantity `json:"votable_supply"`
}

// RawProposalType is one entry of the governor's proposal type table
type RawProposalType struct {
	Name              string   `json:"name" validate:"required"`
	Quorum            Quantity `json:"quorum"`
	ApprovalThreshold Quantity `json:"approval_threshold"`
}

// ProposalTypes is keyed by the decimal proposal type id
type ProposalTypes map[string]RawProposalType

type proposalsResponse struct {
	Proposals []RawProposal `json:"proposals" validate:"dive"`
}

type proposalResponse struct {
	Proposal *RawProposal `json:"proposal" validate:"required"`
}

type proposalTypesResponse struct {
	ProposalTypes ProposalTypes `json:"proposal_types" validate:"dive"`
}

type votingPowerResponse struct {
	VotingPower *Quantity `json:"voting_power" validate:"required"`
}
