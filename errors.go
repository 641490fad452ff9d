package ringoccs

import "github.com/ringoccs/ringoccs-go/status"

// Error, Kind, and the five error-kind constants are re-exported so
// callers can classify a Reconstruct failure without importing the
// status package directly (spec.md §7).
type (
	Error = status.Error
	Kind  = status.Kind
)

const (
	DomainError       = status.DomainError
	RangeError        = status.RangeError
	NonConvergence    = status.NonConvergence
	InvalidOption     = status.InvalidOption
	AllocationFailure = status.AllocationFailure
)
