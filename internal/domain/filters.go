package domain

// ProposalSet selects which proposals the indexer returns
type ProposalSet string

const (
	// ProposalSetRelevant hides cancelled proposals
	ProposalSetRelevant ProposalSet = "relevant"
	// ProposalSetEverything returns every indexed proposal
	ProposalSetEverything ProposalSet = "everything"
)

// ParseProposalSet validates a user supplied filter name. Empty means relevant.
func ParseProposalSet(s string) (ProposalSet, bool) {
	switch ProposalSet(s) {
	case "", ProposalSetRelevant:
		return ProposalSetRelevant, true
	case ProposalSetEverything:
		return ProposalSetEverything, true
	default:
		return "", false
	}
}

// ProposalFilter defines filtering options for proposal listings
type ProposalFilter struct {
	Set    ProposalSet
	Search string
}
