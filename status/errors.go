// Package status defines the error taxonomy and per-sample state machine
// shared by every stage of the Fresnel inversion engine: math primitives,
// window construction, the window-width planner, the phase module, and the
// transform driver all report failures through the same five-kind Error.
package status

import "fmt"

// Kind enumerates the fatal-error categories the engine can report.
type Kind int

const (
	// DomainError means an input fell outside the mathematically defined
	// domain of the operation (res <= 0, F <= 0, a Lambert-W argument
	// below -1/e, ...).
	DomainError Kind = iota
	// RangeError means a target sample's window span extends beyond the
	// data available in the CalibratedProfile.
	RangeError
	// NonConvergence means an iterative solver (stationary phase,
	// Lambert W, Halley root find) exhausted its iteration budget.
	NonConvergence
	// InvalidOption means a ReconstructionOptions field combination is
	// inconsistent (bad interp_order, FFT strategy on a non-uniform
	// grid, ...).
	InvalidOption
	// AllocationFailure means a working buffer could not be obtained.
	AllocationFailure
)

func (k Kind) String() string {
	switch k {
	case DomainError:
		return "DomainError"
	case RangeError:
		return "RangeError"
	case NonConvergence:
		return "NonConvergence"
	case InvalidOption:
		return "InvalidOption"
	case AllocationFailure:
		return "AllocationFailure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the single concrete error type returned by every fallible
// operation in the engine. All errors are fatal to the call in which they
// occur; none are retried (spec §7 policy).
type Error struct {
	Kind Kind
	Op   string // operation that failed, e.g. "LambertW", "transform.accumulate"
	Msg  string
	Err  error // wrapped cause, may be nil

	// Populated only for Kind == RangeError.
	Index      int
	Span       int
	ArraySize  int
	hasRangeGeometry bool
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if e.hasRangeGeometry {
		msg = fmt.Sprintf("%s (index=%d, n=%d, array_size=%d)", msg, e.Index, e.Span, e.ArraySize)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, msg) + ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so callers
// can do errors.Is(err, status.DomainError) style checks via Kind-only
// sentinels built with New(kind, "", "").
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds an Error of the given kind.
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

// Wrap builds an Error of the given kind around a lower-level cause.
func Wrap(kind Kind, op, msg string, err error) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg, Err: err}
}

// NewRangeError reports a window span that extends past the data.
func NewRangeError(op string, index, span, arraySize int) *Error {
	return &Error{
		Kind: RangeError, Op: op,
		Msg:              "window span extends beyond data range",
		Index:            index,
		Span:             span,
		ArraySize:        arraySize,
		hasRangeGeometry: true,
	}
}

// Sentinel Kind-only errors for errors.Is comparisons against a bare kind.
var (
	ErrDomain         = &Error{Kind: DomainError}
	ErrRange          = &Error{Kind: RangeError}
	ErrNonConvergence = &Error{Kind: NonConvergence}
	ErrInvalidOption  = &Error{Kind: InvalidOption}
	ErrAllocation     = &Error{Kind: AllocationFailure}
)

// SampleState is the per-output-sample state machine of the transform
// driver (spec §4.6): Planned -> InRange -> SpanAssembled -> Accumulated ->
// Normalized -> Done, with any state able to transition to Failed.
type SampleState int

const (
	Planned SampleState = iota
	InRange
	SpanAssembled
	Accumulated
	Normalized
	Done
	Failed
)

func (s SampleState) String() string {
	switch s {
	case Planned:
		return "Planned"
	case InRange:
		return "InRange"
	case SpanAssembled:
		return "SpanAssembled"
	case Accumulated:
		return "Accumulated"
	case Normalized:
		return "Normalized"
	case Done:
		return "Done"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("SampleState(%d)", int(s))
	}
}
