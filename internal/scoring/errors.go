package scoring

import "errors"

var (
	// ErrInvalidState is returned when a ball event targets an innings
	// that can no longer accept one (already completed, all out).
	ErrInvalidState = errors.New("innings is not in a valid state for scoring")

	// ErrNotReady is returned while the innings is awaiting a batsman
	// or bowler selection.
	ErrNotReady = errors.New("innings is awaiting player selection")

	// ErrValidation is returned for an event whose shape or values are
	// impossible (negative runs, conflicting extras flags, unknown
	// dismissal type, extras disabled by match rules).
	ErrValidation = errors.New("invalid ball event")
)
