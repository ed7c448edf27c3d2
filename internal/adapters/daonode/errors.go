package daonode

import (
	"errors"
	"fmt"

	"github.com/voteagora/agora-cli/internal/domain"
)

// ErrNoBaseURL is returned when the tenant has no DAO Node URL configured
var ErrNoBaseURL = errors.New("no DAO Node URL configured, set DAONODE_URL_TEMPLATE or dao_node_url_template")

// StatusError is returned when the DAO Node answers with a non-2xx status
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("dao node request %s failed with status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("dao node request %s failed with status %d: %s", e.URL, e.StatusCode, e.Body)
}

// NotFound reports whether the upstream status was 404
func (e *StatusError) NotFound() bool {
	return e.StatusCode == 404
}

// ValidationError is returned when a decoded payload fails its struct tags
type ValidationError struct {
	Payload string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s payload: %v", e.Payload, e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{domain.ErrInvalidPayload, e.Err}
}

// UnknownVotingModuleError is returned by the normalizer for a module it cannot tally
type UnknownVotingModuleError struct {
	ProposalID string
	Module     string
}

func (e *UnknownVotingModuleError) Error() string {
	return fmt.Sprintf("proposal %s: unknown voting module %q", e.ProposalID, e.Module)
}

func (e *UnknownVotingModuleError) Unwrap() error {
	return domain.ErrUnknownVotingModule
}
