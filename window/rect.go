package window

import "math"

type rectWindow struct{}

func (rectWindow) Eval(x, w float64) float64 {
	if math.Abs(x) >= w/2 {
		return 0
	}
	return 1
}

// NormEq is exactly 1 for the rectangular window (spec.md §8).
func (rectWindow) NormEq(float64) (float64, error) { return 1.0, nil }
