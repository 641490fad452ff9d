package window

import "github.com/ringoccs/ringoccs-go/status"

// Sample returns the window evaluated on an odd-length symmetric grid of
// spacing dRho covering [-width/2, width/2]: n samples on each side of
// the center plus the center sample itself, matching the transform
// driver's index span [i-n, i+n] (spec.md §4.3 "n_i = floor(W_i /
// (2*dRho))").
func Sample(w Window, width, dRho float64) ([]float64, error) {
	const op = "window.Sample"
	if dRho <= 0 {
		return nil, status.New(status.DomainError, op, "dRho must be > 0")
	}
	n := int(width / (2 * dRho))
	out := make([]float64, 2*n+1)
	for j := -n; j <= n; j++ {
		out[j+n] = w.Eval(float64(j)*dRho, width)
	}
	return out, nil
}

// HalfWidthSamples returns n, the number of samples on each side of
// center covered by a window of the given width at spacing dRho.
func HalfWidthSamples(width, dRho float64) int {
	return int(width / (2 * dRho))
}
