package entities

import "errors"

// Sentinel errors surfaced by repositories and services. Callers match
// them with errors.Is; the HTTP layer maps them to structured error codes.
var (
	// ErrPeriodNotFound indicates a reconciliation or write request
	// referenced a planning period that does not exist.
	ErrPeriodNotFound = errors.New("period not found")

	// ErrPeriodLocked indicates a write against a locked planning period.
	ErrPeriodLocked = errors.New("period is locked")

	// ErrValidation indicates malformed input from a caller.
	ErrValidation = errors.New("validation failed")
)
