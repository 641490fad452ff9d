package transform

import (
	"math/cmplx"

	"github.com/ringoccs/ringoccs-go/geometry"
	"github.com/ringoccs/ringoccs-go/phase"
	"github.com/ringoccs/ringoccs-go/status"
	"github.com/ringoccs/ringoccs-go/window"
)

// runForward is spec.md §4.6 step 6's optional self-check: a straight
// convolution of the reconstructed T with the same window/quadratic
// kernel used to build it, but without the stationary-phase correction
// (i.e. always the Fresnel/quadratic psi, regardless of the strategy
// that produced out.T). Reconstruction and this forward pass are
// conjugate operations, so the prefactor here is the complex conjugate
// of transform.accumulate's. When Options.Normalize is set, each forward
// sample is divided by the same kind of magnitude ratio accumulate uses,
// |sum w*exp(i*psi)|*dRho / |F(1+i)|, taken over the window samples
// actually summed, so a truncated window does not scale the result.
func runForward(plan *geometry.InversionPlan, out *geometry.ReconstructedProfile) ([]complex128, error) {
	const op = "transform.runForward"
	p := plan.Profile
	dRho := p.DeltaRho()
	n := len(out.T)
	fwd := make([]complex128, n)

	for k := 0; k < n; k++ {
		i := plan.Samples[k].Index
		width := plan.Samples[k].HalfWidth
		f := p.F[i]

		wSamples, err := window.Sample(plan.Window, width, dRho)
		if err != nil {
			return nil, status.Wrap(status.AllocationFailure, op, "window sampling failed", err)
		}
		half := window.HalfWidthSamples(width, dRho)
		lo, hi := k-half, k+half
		if lo < 0 || hi >= n {
			// Forward self-check degrades gracefully near the edges of
			// the in-range subset, where the full span isn't available.
			if lo < 0 {
				lo = 0
			}
			if hi >= n {
				hi = n - 1
			}
		}

		var sum, normSum complex128
		for m := lo; m <= hi; m++ {
			off := m - k + half
			if off < 0 || off >= len(wSamples) {
				continue
			}
			psi := phase.QuadraticPsi(out.Rho[m], out.Rho[k], f)
			kern := complex(wSamples[off], 0) * cmplx.Exp(complex(0, psi))
			sum += out.T[m] * kern
			normSum += kern
		}
		prefactor := complex(1, 1) / complex(2*f, 0)
		fwd[k] = prefactor * complex(dRho, 0) * sum
		if plan.Options.Normalize {
			nF := cmplx.Abs(normSum) * dRho / cmplx.Abs(complex(f, f))
			if nF == 0 {
				return nil, status.New(status.DomainError, op, "forward normalization factor is zero")
			}
			fwd[k] /= complex(nF, 0)
		}
	}
	return fwd, nil
}
