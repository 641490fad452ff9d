package transform

import (
	"math"
	"math/cmplx"

	"github.com/ringoccs/ringoccs-go/geometry"
	"github.com/ringoccs/ringoccs-go/status"
	"github.com/ringoccs/ringoccs-go/window"
)

// accumulate carries out steps 3-5 of spec.md §4.6 for one planned
// output sample: assemble the window and kernel over the span, sum the
// discretized transform, and (if requested) normalize it. Grounded on
// the teacher's addScaledComplexInPlace/scaleComplex accumulation
// pattern in imageFuncs.go, generalized from real image buffers to the
// complex Fresnel quadrature sum.
func accumulate(plan *geometry.InversionPlan, ps *geometry.PlannedSample) (complex128, float64, error) {
	const op = "transform.accumulate"
	p := plan.Profile
	i := ps.Index
	dRho := plan.Profile.DeltaRho()

	w, err := window.Sample(plan.Window, ps.HalfWidth, dRho)
	if err != nil {
		return 0, 0, status.Wrap(status.AllocationFailure, op, "window sampling failed", err)
	}
	if ps.SpanHi-ps.SpanLo+1 != len(w) {
		return 0, 0, status.New(status.AllocationFailure, op, "window span length mismatch")
	}

	provider, err := newPsiProvider(plan, ps)
	if err != nil {
		return 0, 0, err
	}

	psiSpan := make([]float64, len(w))
	var sum complex128
	var normSum complex128
	for j := ps.SpanLo; j <= ps.SpanHi; j++ {
		psiIJ, perr := provider.psi(j, p.Rho[j])
		if perr != nil {
			return 0, 0, perr
		}
		psiSpan[j-ps.SpanLo] = psiIJ
		wk := w[j-ps.SpanLo]
		sum += p.THat[j] * complex(wk, 0) * cmplx.Exp(complex(0, -psiIJ))
		if plan.Options.Normalize {
			normSum += complex(wk, 0) * cmplx.Exp(complex(0, psiIJ))
		}
	}

	fI := p.F[i]
	prefactor := complex(1, -1) / complex(2*fI, 0)
	t := prefactor * complex(dRho, 0) * sum

	if !plan.Options.Normalize {
		return t, 1, nil
	}

	denom := normalizationIntegral(plan, ps, psiSpan, dRho)
	numeratorMag := cmplx.Abs(normSum) * dRho
	denomMag := cmplx.Abs(denom)
	if denomMag == 0 {
		return 0, 0, status.New(status.DomainError, op, "normalization integral is zero")
	}
	nI := numeratorMag / denomMag
	if nI == 0 || math.IsNaN(nI) {
		return 0, 0, status.New(status.DomainError, op, "invalid normalization factor")
	}
	return t / complex(nI, 0), nI, nil
}

// normalizationIntegral computes the continuous denominator of spec.md
// §4.6 step 5: analytically for the pure-quadratic strategies, and by
// the trapezoid rule over the already-computed span psi values
// otherwise.
func normalizationIntegral(plan *geometry.InversionPlan, ps *geometry.PlannedSample, psiSpan []float64, dRho float64) complex128 {
	p := plan.Profile
	i := ps.Index

	switch plan.Options.Strategy.Kind {
	case geometry.Fresnel, geometry.FFT:
		// integral_{-inf}^{inf} exp(i*(pi/2)*(x/F)^2) dx = F*(1+i)
		f := p.F[i]
		return complex(f, f)
	default:
		var acc complex128
		last := len(psiSpan) - 1
		for k, psiIJ := range psiSpan {
			weight := 1.0
			if k == 0 || k == last {
				weight = 0.5
			}
			acc += complex(weight, 0) * cmplx.Exp(complex(0, psiIJ))
		}
		return acc * complex(dRho, 0)
	}
}
