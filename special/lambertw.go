package special

import (
	"math"

	"github.com/ringoccs/ringoccs-go/status"
)

// invE is -1/e, the lower domain bound of the principal branch.
const invE = -1 / math.E

// lambertWTolerance scales with float64 machine epsilon (spec.md 4.1:
// "a tolerance scaling with the working precision").
const lambertWTolerance = 4 * 2.220446049250313e-16

const lambertWMaxIter = 100

// LambertW evaluates the principal branch W0 of the Lambert W function,
// the inverse of t*e^t, for x >= -1/e. It returns a status.DomainError
// for x < -1/e or NaN input, and status.NonConvergence if Halley's
// iteration fails to settle within its budget.
func LambertW(x float64) (float64, error) {
	const op = "LambertW"
	if math.IsNaN(x) {
		return math.NaN(), status.New(status.DomainError, op, "input is NaN")
	}
	if x < invE {
		return math.NaN(), status.New(status.DomainError, op, "x < -1/e")
	}
	if x == invE {
		return -1, nil
	}
	if x == 0 {
		return 0, nil
	}

	w := lambertWInitialGuess(x)
	for i := 0; i < lambertWMaxIter; i++ {
		ew := math.Exp(w)
		wew := w * ew
		f := wew - x
		// Near the branch point w = -1 the derivative e^w(w+1) vanishes
		// and the step size stalls at rounding noise; a residual at the
		// level of float64 rounding means w is as accurate as x allows.
		if math.Abs(f) <= lambertWTolerance*math.Max(math.Abs(x), math.Abs(wew)) {
			return w, nil
		}
		// Halley's update for f(w) = w*e^w - x:
		// w_{n+1} = w - f / (e^w(w+1) - (w+2)f/(2w+2))
		denom := ew*(w+1) - (w+2)*f/(2*w+2)
		if denom == 0 {
			break
		}
		delta := f / denom
		w -= delta
		if math.Abs(delta) < lambertWTolerance*(1+math.Abs(w)) {
			return w, nil
		}
	}
	return w, status.New(status.NonConvergence, op, "Halley iteration did not converge")
}

func lambertWInitialGuess(x float64) float64 {
	if x > 2 {
		l1 := math.Log(x)
		return l1 - math.Log(l1)
	}
	return x
}
