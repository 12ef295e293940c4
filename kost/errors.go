package kost

import "errors"

// Failure classes surfaced by the consistency engine. Callers branch
// with errors.Is; the wrapped message carries the specifics.
var (
	// ErrValidation covers malformed or out-of-range input: non-positive
	// amounts or prices, missing required dates, references that do not
	// resolve to an active tenant.
	ErrValidation = errors.New("validation failed")

	// ErrConflict covers invariant-violating assignments such as
	// double-booking a room or a tenant.
	ErrConflict = errors.New("conflicting assignment")

	// ErrNotFound covers operations referencing an id absent from the
	// store.
	ErrNotFound = errors.New("not found")
)
