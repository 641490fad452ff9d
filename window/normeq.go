package window

import "github.com/ringoccs/ringoccs-go/status"

// normEqQuadPoints is the number of Simpson intervals used for windows
// whose normalized equivalent width has no closed form (KBalpha,
// KBMDalpha, and the fixed-alpha variants built on them). Spec.md calls
// these "tabulated/series" at fixed alpha; this implementation computes
// them numerically on each NormEq call instead of hard-coding literal
// constants that could not be verified without running the toolchain —
// see DESIGN.md.
const normEqQuadPoints = 4096

// numericNormEq evaluates norm_eq(w) = w * (integral w(x)^2 dx) /
// (integral w(x) dx)^2 by composite Simpson's rule over [-w/2, w/2].
//
// The defining ratio is taken from spec.md §4.2's literal formula
// ("integral w^2 / (integral w)^2 * W"), which is the one that
// reproduces the exact values spec.md §8 requires (Rect = 1,
// CosSquared = 1.5); the GLOSSARY entry states the reciprocal, an
// inconsistency in spec.md resolved here in favor of the testable
// property. See DESIGN.md "Open Question" log.
func numericNormEq(w Window, width float64) (float64, error) {
	const op = "window.NormEq"
	if width <= 0 {
		return 0, status.New(status.DomainError, op, "width must be > 0")
	}
	n := normEqQuadPoints
	if n%2 != 0 {
		n++
	}
	h := width / float64(n)
	lo := -width / 2

	var sumW, sumW2 float64
	simpsonWeight := func(i int) float64 {
		switch {
		case i == 0 || i == n:
			return 1
		case i%2 == 1:
			return 4
		default:
			return 2
		}
	}
	for i := 0; i <= n; i++ {
		x := lo + float64(i)*h
		v := w.Eval(x, width)
		wt := simpsonWeight(i)
		sumW += wt * v
		sumW2 += wt * v * v
	}
	sumW *= h / 3
	sumW2 *= h / 3

	if sumW == 0 {
		return 0, status.New(status.DomainError, op, "window integrates to zero")
	}
	return width * sumW2 / (sumW * sumW), nil
}
