// Package phase implements spec.md §4.4's Fresnel-phase module (exact
// spherical, elliptic-perturbed, quadratic, Legendre-polynomial, and
// perturbed forms) and §4.5's stationary-phase solver.
package phase

// TargetGeometry is the fixed geometry of one output sample: the values
// held constant while the transform driver sweeps the source index j
// (and, for the Newton family, while the stationary-phase solver sweeps
// the trial azimuth phi).
type TargetGeometry struct {
	Rho0, Phi0 float64
	B, D, KD   float64
}

// Kernel evaluates the Fresnel phase psi(rho, phi) for a fixed
// TargetGeometry and its first two partial derivatives with respect to
// phi, the quantities the stationary-phase solver needs.
type Kernel interface {
	Psi(rho, phi float64) float64
	DPsiDPhi(rho, phi float64) float64
	D2PsiDPhi2(rho, phi float64) float64
}
