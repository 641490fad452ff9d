package special

import "math"

// BesselJ0 evaluates the order-0 Bessel function of the first kind.
//
// The standard library's math.J0 already implements the rational-minimax
// near the origin / asymptotic-for-large-|x| scheme spec.md describes (its
// internal transition sits near |x| ~ 2 and 8, matching the corpus's own
// nowhere-implemented-elsewhere convention of trusting libm ports for this
// function); no example repository in the corpus vendors a J0
// implementation of its own; see DESIGN.md.
func BesselJ0(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	return math.J0(x)
}

// i0SeriesTerms bounds the power-series evaluation below; the series
// term ratio ((x/2)^2/(m+1)^2) guarantees convergence for any finite x,
// this just bounds worst-case iteration count for the transition point.
const i0SeriesTerms = 400

// BesselI0 evaluates the order-0 modified Bessel function of the first
// kind, I0(x) = sum_{m=0}^inf (x/2)^(2m) / (m!)^2.
//
// No corpus example ships a reusable I0 implementation as an importable
// package (other_examples/RyanBlaney-sonido-sonar__kaiser.go inlines a
// short truncated series as a private method of a Kaiser-window struct,
// good enough for windowing but not for the wider domain this engine
// needs it over); this implementation generalizes that technique with an
// explicit convergence check for |x| below the spec's transition point
// (~50) and an asymptotic expansion above it, rather than hand-copying
// Cephes' fitted Chebyshev coefficient tables from memory. See DESIGN.md.
func BesselI0(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	ax := math.Abs(x)
	if ax < 50 {
		return i0Series(ax)
	}
	return i0Asymptotic(ax)
}

func i0Series(ax float64) float64 {
	halfX := ax / 2
	term := 1.0
	sum := 1.0
	for m := 1; m <= i0SeriesTerms; m++ {
		term *= (halfX * halfX) / (float64(m) * float64(m))
		sum += term
		if term < sum*1e-18 {
			break
		}
	}
	return sum
}

// i0Asymptotic uses the standard large-argument expansion
// I0(x) ~ e^x/sqrt(2 pi x) * (1 + 1/(8x) + 9/(128x^2) + 225/(3072x^3) + ...).
func i0Asymptotic(ax float64) float64 {
	inv := 1 / ax
	poly := 1 + inv*(1.0/8+inv*(9.0/128+inv*225.0/3072))
	return math.Exp(ax) / math.Sqrt(2*math.Pi*ax) * poly
}
