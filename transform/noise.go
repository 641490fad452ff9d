package transform

import (
	"github.com/ringoccs/ringoccs-go/geometry"
	"github.com/ringoccs/ringoccs-go/status"
)

// noiseFloorPower estimates the reconstructed power's thermal-noise
// floor over the raw-sample span [lo,hi] of p.THat: a per-sample noise
// variance is estimated from the RMS of T_hat's first-difference (its
// high-frequency residual, since the true signal varies slowly across
// one raw sample compared to receiver noise), then propagated through
// the window's coherent sum via its normalized equivalent width —
// spec.md §3's raw_tau_threshold/tau_threshold, detailed in
// SPEC_FULL.md Expansion C.4.
func noiseFloorPower(p *geometry.CalibratedProfile, lo, hi int, width, dRho, normEq float64) (float64, error) {
	const op = "transform.noiseFloorPower"
	if hi <= lo {
		return 0, status.New(status.DomainError, op, "span too small to estimate noise")
	}
	if normEq <= 0 {
		return 0, status.New(status.DomainError, op, "normEq must be > 0")
	}

	var sumSq float64
	n := 0
	for j := lo; j < hi; j++ {
		d := p.THat[j+1] - p.THat[j]
		sumSq += real(d)*real(d) + imag(d)*imag(d)
		n++
	}
	if n == 0 {
		return 0, status.New(status.DomainError, op, "no samples to estimate noise")
	}
	// Var(T_hat[j+1] - T_hat[j]) = 2*sigma^2 for independent per-sample noise.
	sigma2 := sumSq / float64(n) / 2

	nEff := (width / dRho) / normEq
	if nEff <= 0 {
		return 0, status.New(status.DomainError, op, "non-positive effective sample count")
	}
	return sigma2 / nEff, nil
}
