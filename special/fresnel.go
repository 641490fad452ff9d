package special

import "math"

// fresnelSeriesThreshold is the boundary spec.md draws between the
// small-argument power series and the large-argument asymptotic tail
// (spec.md names 4 and 6 as the two crossover points of a three-region
// scheme; this implementation merges the middle "auxiliary f,g" region
// into the asymptotic tail rather than fitting a separate rational
// approximation for it — see DESIGN.md for the accuracy tradeoff).
const fresnelSeriesThreshold = 4.0

const fresnelSeriesTerms = 60

// FresnelC evaluates the Fresnel cosine integral C(x) = integral_0^x
// cos(pi t^2 / 2) dt.
func FresnelC(x float64) float64 {
	c, _ := fresnelCS(x)
	return c
}

// FresnelS evaluates the Fresnel sine integral S(x) = integral_0^x
// sin(pi t^2 / 2) dt.
func FresnelS(x float64) float64 {
	_, s := fresnelCS(x)
	return s
}

// fresnelCS returns both integrals together since both regions compute
// them from the same intermediate quantities.
func fresnelCS(x float64) (c, s float64) {
	if math.IsNaN(x) {
		return math.NaN(), math.NaN()
	}
	if math.IsInf(x, 0) {
		if x > 0 {
			return 0.5, 0.5
		}
		return -0.5, -0.5
	}
	if x == 0 {
		return 0, 0
	}

	sign := 1.0
	ax := x
	if x < 0 {
		sign = -1
		ax = -x
	}

	if ax <= fresnelSeriesThreshold {
		c, s = fresnelSeriesCS(ax)
	} else {
		c, s = fresnelAsymptoticCS(ax)
	}
	return sign * c, sign * s
}

// fresnelSeriesCS is the small-argument Maclaurin series:
//
//	C(x) = sum_n (-1)^n (pi/2)^(2n) x^(4n+1) / ((4n+1) (2n)!)
//	S(x) = sum_n (-1)^n (pi/2)^(2n+1) x^(4n+3) / ((4n+3) (2n+1)!)
func fresnelSeriesCS(x float64) (c, s float64) {
	halfPi := math.Pi / 2
	x2 := x * x

	// term_n for C is (pi/2)^(2n) x^(4n+1) / (2n)!, divided by (4n+1);
	// term_n for S is (pi/2)^(2n+1) x^(4n+3) / (2n+1)!, divided by
	// (4n+3). Build the un-divided coefficients iteratively via the
	// ratio between successive n to avoid recomputing factorials.
	cSum := 0.0
	sSum := 0.0
	cCoeff := x
	sCoeff := x2 * x * halfPi

	cSign, sSign := 1.0, 1.0
	for n := 0; n <= fresnelSeriesTerms; n++ {
		cSum += cSign * cCoeff / float64(4*n+1)
		sSum += sSign * sCoeff / float64(4*n+3)

		// Advance coefficients: multiply by (pi/2)^2 x^4 and divide by
		// the next two factorial factors (2n+1)(2n+2) for C's (2n)! step,
		// (2n+2)(2n+3) for S's (2n+1)! step.
		factor := (halfPi * halfPi * x2 * x2)
		cCoeff *= factor / (float64(2*n+1) * float64(2*n+2))
		sCoeff *= factor / (float64(2*n+2) * float64(2*n+3))
		cSign = -cSign
		sSign = -sSign

		if math.Abs(cCoeff) < 1e-20 && math.Abs(sCoeff) < 1e-20 {
			break
		}
	}
	return cSum, sSum
}

// fresnelAsymptoticCS uses the two-term large-argument tail obtained by
// integrating by parts twice:
//
//	integral_x^inf cos(pi t^2/2) dt ~ -sin(pi x^2/2)/(pi x) + cos(pi x^2/2)/(pi^2 x^3)
//	integral_x^inf sin(pi t^2/2) dt ~  cos(pi x^2/2)/(pi x) + sin(pi x^2/2)/(pi^2 x^3)
//
// so that C(x) = 0.5 - (the first tail), S(x) = 0.5 - (the second tail).
func fresnelAsymptoticCS(x float64) (c, s float64) {
	arg := math.Pi * x * x / 2
	sinArg, cosArg := math.Sin(arg), math.Cos(arg)
	piX := math.Pi * x
	pi2x3 := math.Pi * math.Pi * x * x * x

	tailC := -sinArg/piX + cosArg/pi2x3
	tailS := cosArg/piX + sinArg/pi2x3

	return 0.5 - tailC, 0.5 - tailS
}
