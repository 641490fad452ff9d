package phase

import "math"

// ExactKernel is the exact spherical (law-of-cosines) phase of spec.md
// §4.4:
//
//	psi(rho, rho0, phi, phi0, B, D, k) =
//	    kD * (sqrt(1 + (rho/D)^2 - 2*(rho/D)*cos(B)*cos(phi-phi0)) - 1)
//
// spec.md elides the azimuthal factor with "…"; this engine resolves it
// to cos(B)*cos(phi-phi0), the standard single-scattering-point Fresnel
// phase (Marouf, Tyler & Rosen 1986) — see DESIGN.md's Open Question log.
type ExactKernel struct {
	G TargetGeometry
}

func (k ExactKernel) inner(rho, phi float64) (u, cosB, theta, inner float64) {
	u = rho / k.G.D
	cosB = math.Cos(k.G.B)
	theta = phi - k.G.Phi0
	inner = 1 + u*u - 2*u*cosB*math.Cos(theta)
	return
}

func (k ExactKernel) Psi(rho, phi float64) float64 {
	_, _, _, inner := k.inner(rho, phi)
	return k.G.KD * (math.Sqrt(inner) - 1)
}

func (k ExactKernel) DPsiDPhi(rho, phi float64) float64 {
	u, cosB, theta, inner := k.inner(rho, phi)
	n := u * cosB * math.Sin(theta)
	return k.G.KD * n / math.Sqrt(inner)
}

func (k ExactKernel) D2PsiDPhi2(rho, phi float64) float64 {
	u, cosB, theta, inner := k.inner(rho, phi)
	n := u * cosB * math.Sin(theta)
	nPrime := u * cosB * math.Cos(theta)
	sqrtInner := math.Sqrt(inner)
	return k.G.KD * (nPrime/sqrtInner - n*n/(inner*sqrtInner))
}
