package domain

import (
	"errors"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrUnknownVotingModule is returned when a proposal carries a voting module we cannot tally
	ErrUnknownVotingModule = errors.New("unknown voting module")

	// ErrInvalidPagination is returned for a page below 1, a page size below 1 or a negative offset
	ErrInvalidPagination = errors.New("invalid pagination")

	// ErrInvalidPayload is returned when upstream data fails boundary validation
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrTenantNotFound is returned when no configuration exists for a tenant namespace
	ErrTenantNotFound = errors.New("tenant not found")
)
