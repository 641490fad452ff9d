package special

import "math"

// Erf and Erfc delegate to the standard library, which already meets the
// ~1 ULP accuracy spec.md requires and is the implementation every
// corpus repository would reach for (none of them vendor their own erf;
// librssringoccs's rss_ringoccs_erf.c is the one place the original
// hand-rolls it, because C historically lacked a portable libm erf — Go's
// standard library does not have that constraint). See DESIGN.md.

// Erf evaluates the error function.
func Erf(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	return math.Erf(x)
}

// Erfc evaluates the complementary error function, 1 - Erf(x), computed
// without the cancellation that a naive 1-Erf(x) would suffer for large x.
func Erfc(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	return math.Erfc(x)
}
