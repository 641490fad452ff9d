package window

import (
	"math"

	"github.com/ringoccs/ringoccs-go/special"
)

// kaiserBessel implements the KBalpha family:
//
//	w(x; W) = I0(alpha*pi*sqrt(1 - (2x/W)^2)) / I0(alpha*pi), |x| < W/2
type kaiserBessel struct {
	alpha float64
}

func (k kaiserBessel) Eval(x, w float64) float64 {
	if math.Abs(x) >= w/2 {
		return 0
	}
	u := 2 * x / w
	arg := k.alpha * math.Pi * math.Sqrt(math.Max(0, 1-u*u))
	return special.BesselI0(arg) / special.BesselI0(k.alpha*math.Pi)
}

func (k kaiserBessel) NormEq(w float64) (float64, error) {
	return numericNormEq(k, w)
}

// kaiserBesselModified implements the KBMDalpha family:
//
//	w(x; W) = (I0(alpha*pi*sqrt(1 - (2x/W)^2)) - 1) / (I0(alpha*pi) - 1), |x| < W/2
//
// which tapers to zero at the window edges, unlike the plain KBalpha form.
type kaiserBesselModified struct {
	alpha float64
}

func (k kaiserBesselModified) Eval(x, w float64) float64 {
	if math.Abs(x) >= w/2 {
		return 0
	}
	u := 2 * x / w
	arg := k.alpha * math.Pi * math.Sqrt(math.Max(0, 1-u*u))
	denom := special.BesselI0(k.alpha*math.Pi) - 1
	return (special.BesselI0(arg) - 1) / denom
}

func (k kaiserBesselModified) NormEq(w float64) (float64, error) {
	return numericNormEq(k, w)
}
