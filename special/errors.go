package special

import (
	"math"

	"github.com/ringoccs/ringoccs-go/status"
)

// checkFinite builds the DomainError for NaN input (spec.md: "All
// functions fail with DomainError on NaN input"). No function in this
// package calls it: LambertW makes the same NaN check inline, and the
// float-only functions (FresnelC/S, BesselJ0/I0, Erf/Erfc) return NaN.
func checkFinite(op string, x float64) error {
	if math.IsNaN(x) {
		return status.New(status.DomainError, op, "input is NaN")
	}
	return nil
}
