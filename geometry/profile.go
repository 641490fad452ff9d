// Package geometry holds the data model of spec.md §3 (CalibratedProfile,
// ReconstructionOptions, InversionPlan, ReconstructedProfile) and the
// window-width planner of §4.3.
package geometry

import (
	"math"

	"github.com/ringoccs/ringoccs-go/status"
)

// CalibratedProfile is the calibrated, already-geometry-reconstructed
// input record (spec.md §3): six parallel real arrays plus one complex
// array, struct-of-arrays so the transform driver's hot loop reads each
// field contiguously across an index span (spec.md §9).
type CalibratedProfile struct {
	Rho  []float64    // km, ring-plane radial intercept, strictly increasing
	THat []complex128 // calibrated diffracted amplitude
	F    []float64    // km, local Fresnel scale
	Phi  []float64    // rad, ring azimuth at intercept
	KD   []float64    // rad, wavenumber * spacecraft-to-ring distance
	B    []float64    // rad, ring opening angle
	D    []float64    // km, spacecraft-to-intercept distance
}

// Len returns the sample count.
func (p *CalibratedProfile) Len() int { return len(p.Rho) }

// dRhoTolerance bounds the allowed fractional deviation of sample
// spacing from the mean, per spec.md §3 ("tolerated variation <= a
// fraction of one sample").
const dRhoTolerance = 0.25

// Validate checks the invariants of spec.md §3: equal-length arrays,
// finite reals, F>0, D>0, |B|<pi/2, and strictly increasing, near-
// uniform rho spacing.
func (p *CalibratedProfile) Validate() error {
	const op = "CalibratedProfile.Validate"
	n := len(p.Rho)
	if n < 2 {
		return status.New(status.DomainError, op, "profile must have at least 2 samples")
	}
	for _, arr := range [][]float64{p.Rho, p.F, p.Phi, p.KD, p.B, p.D} {
		if len(arr) != n {
			return status.New(status.DomainError, op, "per-sample arrays have mismatched lengths")
		}
	}
	if len(p.THat) != n {
		return status.New(status.DomainError, op, "THat has mismatched length")
	}

	meanDRho := (p.Rho[n-1] - p.Rho[0]) / float64(n-1)
	if meanDRho <= 0 {
		return status.New(status.DomainError, op, "rho must be strictly increasing")
	}
	for i := 0; i < n; i++ {
		if !finite(p.Rho[i]) || !finite(p.F[i]) || !finite(p.Phi[i]) || !finite(p.KD[i]) || !finite(p.B[i]) || !finite(p.D[i]) {
			return status.New(status.DomainError, op, "non-finite value in profile")
		}
		if p.F[i] <= 0 {
			return status.New(status.DomainError, op, "F must be > 0")
		}
		if p.D[i] <= 0 {
			return status.New(status.DomainError, op, "D must be > 0")
		}
		if math.Abs(p.B[i]) >= math.Pi/2 {
			return status.New(status.DomainError, op, "|B| must be < pi/2")
		}
		if i > 0 {
			d := p.Rho[i] - p.Rho[i-1]
			if d <= 0 {
				return status.New(status.DomainError, op, "rho must be strictly increasing")
			}
			if math.Abs(d-meanDRho) > dRhoTolerance*meanDRho {
				return status.New(status.DomainError, op, "rho spacing not sufficiently uniform")
			}
		}
	}
	return nil
}

// DeltaRho returns the mean sample spacing.
func (p *CalibratedProfile) DeltaRho() float64 {
	n := len(p.Rho)
	return (p.Rho[n-1] - p.Rho[0]) / float64(n-1)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
