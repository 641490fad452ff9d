package forward

import "github.com/ringoccs/ringoccs-go/status"

// SampleFunc evaluates a forward model at a single radius.
type SampleFunc func(rho float64) (complex128, error)

// Sample evaluates fn on a uniform grid [rhoLo, rhoHi] at spacing
// dRho, matching the CalibratedProfile.Rho convention the transform
// package consumes.
func Sample(fn SampleFunc, rhoLo, rhoHi, dRho float64) ([]float64, []complex128, error) {
	const op = "forward.Sample"
	if dRho <= 0 {
		return nil, nil, status.New(status.DomainError, op, "dRho must be > 0")
	}
	if rhoHi <= rhoLo {
		return nil, nil, status.New(status.DomainError, op, "rhoHi must be > rhoLo")
	}
	n := int((rhoHi-rhoLo)/dRho) + 1
	rho := make([]float64, n)
	tHat := make([]complex128, n)
	for i := 0; i < n; i++ {
		r := rhoLo + float64(i)*dRho
		v, err := fn(r)
		if err != nil {
			return nil, nil, err
		}
		rho[i] = r
		tHat[i] = v
	}
	return rho, tHat, nil
}
