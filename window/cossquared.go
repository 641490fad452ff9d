package window

import "math"

type cosSquaredWindow struct{}

func (cosSquaredWindow) Eval(x, w float64) float64 {
	if math.Abs(x) >= w/2 {
		return 0
	}
	c := math.Cos(math.Pi * x / w)
	return c * c
}

// NormEq is exactly 1.5 for the squared-cosine window (spec.md §8).
func (cosSquaredWindow) NormEq(float64) (float64, error) { return 1.5, nil }
