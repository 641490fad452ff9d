package phase

import "github.com/ringoccs/ringoccs-go/special"

// LegendreCoefficients precomputes an order-N Legendre-polynomial
// expansion of the exact phase over one output sample's window span, a
// pure function of the target geometry (spec.md §4.4: "the coefficient
// table is a pure function of (B, D, phi, phi0) and is precomputed once
// per output sample").
//
// The expansion variable is t = (rho - rho0)/halfWidth in [-1,1], the
// normalized separation the transform driver already walks; psi is
// projected onto the first order+1 Legendre polynomials by Gauss-style
// numerical quadrature (Simpson's rule here, since this engine does not
// vendor Gauss-Legendre node tables — see DESIGN.md), holding phi at
// phi0 (the stationary point at zero separation).
type LegendreCoefficients struct {
	Rho0, HalfWidth float64
	Coeff           []float64 // Coeff[n] multiplies LegendreP(n, t)
}

const legendreQuadIntervals = 128

// PrecomputeLegendre builds the coefficient table for one output sample.
func PrecomputeLegendre(g TargetGeometry, halfWidth float64, order int) LegendreCoefficients {
	exact := ExactKernel{G: g}
	gFunc := func(t float64) float64 {
		rho := g.Rho0 + t*halfWidth
		return exact.Psi(rho, g.Phi0)
	}

	n := legendreQuadIntervals
	h := 2.0 / float64(n)
	coeff := make([]float64, order+1)
	for k := 0; k <= order; k++ {
		var sum float64
		for i := 0; i <= n; i++ {
			t := -1 + float64(i)*h
			wt := 1.0
			switch {
			case i == 0 || i == n:
				wt = 1
			case i%2 == 1:
				wt = 4
			default:
				wt = 2
			}
			sum += wt * gFunc(t) * special.LegendreP(k, t)
		}
		sum *= h / 3
		coeff[k] = (float64(2*k+1) / 2) * sum
	}
	return LegendreCoefficients{Rho0: g.Rho0, HalfWidth: halfWidth, Coeff: coeff}
}

// Eval reconstructs psi(rho) from the precomputed coefficient table.
func (c LegendreCoefficients) Eval(rho float64) float64 {
	t := (rho - c.Rho0) / c.HalfWidth
	var sum float64
	for n, cn := range c.Coeff {
		sum += cn * special.LegendreP(n, t)
	}
	return sum
}
