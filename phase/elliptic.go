package phase

import "math"

// EllipticKernel adds the eccentricity correction of spec.md §4.4 to the
// exact spherical phase: the ring-plane radius at true anomaly (phi -
// peri) is corrected to first order in eccentricity,
//
//	rho_eff(phi) = rho * (1 - ecc*cos(phi - peri))
//
// before evaluating the exact kernel. DPsiDPhi is obtained by an exact
// chain-rule derivative through rho_eff; D2PsiDPhi2 is obtained by
// central-differencing DPsiDPhi, since the closed-form second derivative
// through the extra rho_eff(phi) dependence is unwieldy to hand-derive
// reliably — see DESIGN.md.
type EllipticKernel struct {
	G         TargetGeometry
	Ecc, Peri float64
}

const ellipticFDStep = 1e-6

func (k EllipticKernel) rhoEff(rho, phi float64) (reff, dreff float64) {
	c := math.Cos(phi - k.Peri)
	s := math.Sin(phi - k.Peri)
	reff = rho * (1 - k.Ecc*c)
	dreff = rho * k.Ecc * s
	return
}

func (k EllipticKernel) innerAt(rho, phi float64) (u, du, cosB, theta, inner float64) {
	reff, dreff := k.rhoEff(rho, phi)
	u = reff / k.G.D
	du = dreff / k.G.D
	cosB = math.Cos(k.G.B)
	theta = phi - k.G.Phi0
	inner = 1 + u*u - 2*u*cosB*math.Cos(theta)
	return
}

func (k EllipticKernel) Psi(rho, phi float64) float64 {
	_, _, _, _, inner := k.innerAt(rho, phi)
	return k.G.KD * (math.Sqrt(inner) - 1)
}

func (k EllipticKernel) DPsiDPhi(rho, phi float64) float64 {
	u, du, cosB, theta, inner := k.innerAt(rho, phi)
	sinT, cosT := math.Sin(theta), math.Cos(theta)
	dInner := 2*u*du - 2*cosB*(du*cosT-u*sinT)
	return k.G.KD * dInner / (2 * math.Sqrt(inner))
}

func (k EllipticKernel) D2PsiDPhi2(rho, phi float64) float64 {
	h := ellipticFDStep
	fwd := k.DPsiDPhi(rho, phi+h)
	bwd := k.DPsiDPhi(rho, phi-h)
	return (fwd - bwd) / (2 * h)
}
