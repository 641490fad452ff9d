package phase

import "github.com/ringoccs/ringoccs-go/special"

// PerturbedKernel adds a user-supplied fifth-degree polynomial in
// (rho - rho0) to an inner kernel's phase (spec.md §4.4 "Perturbed").
// The polynomial has no phi dependence, so it leaves the stationary
// point (and therefore DPsiDPhi/D2PsiDPhi2) of the inner kernel
// unchanged; it only shifts the phase value used in the final
// quadrature sum.
type PerturbedKernel struct {
	Inner Kernel
	Rho0  float64
	Coeff [5]float64 // coefficients of (rho-rho0)^1 .. (rho-rho0)^5
}

func (k PerturbedKernel) Psi(rho, phi float64) float64 {
	d := rho - k.Rho0
	poly := special.HornerEval(append([]float64{0}, k.Coeff[:]...), d)
	return k.Inner.Psi(rho, phi) + poly
}

func (k PerturbedKernel) DPsiDPhi(rho, phi float64) float64 {
	return k.Inner.DPsiDPhi(rho, phi)
}

func (k PerturbedKernel) D2PsiDPhi2(rho, phi float64) float64 {
	return k.Inner.D2PsiDPhi2(rho, phi)
}
