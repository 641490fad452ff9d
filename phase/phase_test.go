package phase

import (
	"math"
	"testing"
)

func baseGeometry() TargetGeometry {
	return TargetGeometry{
		Rho0: 100000.0,
		Phi0: 0.3,
		B:    0.35,
		D:    250000.0,
		KD:   2 * math.Pi / 0.032 * 250000.0,
	}
}

func centralDiff(f func(float64) float64, x, h float64) float64 {
	return (f(x+h) - f(x-h)) / (2 * h)
}

func TestExactKernelDerivativesMatchFiniteDifference(t *testing.T) {
	g := baseGeometry()
	k := ExactKernel{G: g}
	rho := g.Rho0 + 50.0
	phi := g.Phi0 + 0.1

	const h = 1e-5
	gotD1 := k.DPsiDPhi(rho, phi)
	wantD1 := centralDiff(func(p float64) float64 { return k.Psi(rho, p) }, phi, h)
	if math.Abs(gotD1-wantD1) > 1e-3*math.Max(1, math.Abs(wantD1)) {
		t.Fatalf("DPsiDPhi = %v, finite-difference estimate = %v", gotD1, wantD1)
	}

	gotD2 := k.D2PsiDPhi2(rho, phi)
	wantD2 := centralDiff(func(p float64) float64 { return k.DPsiDPhi(rho, p) }, phi, h)
	if math.Abs(gotD2-wantD2) > 1e-2*math.Max(1, math.Abs(wantD2)) {
		t.Fatalf("D2PsiDPhi2 = %v, finite-difference estimate = %v", gotD2, wantD2)
	}
}

func TestExactKernelStationaryAtPhi0WhenRhoEqualsRho0(t *testing.T) {
	g := baseGeometry()
	k := ExactKernel{G: g}
	// At rho == rho0, theta == 0 is a zero of sin(theta), so DPsiDPhi
	// vanishes exactly at phi == phi0 regardless of B or D.
	got := k.DPsiDPhi(g.Rho0, g.Phi0)
	if math.Abs(got) > 1e-9 {
		t.Fatalf("DPsiDPhi(rho0, phi0) = %v, want ~0", got)
	}
}

func TestPerturbedKernelLeavesDerivativesUnchanged(t *testing.T) {
	g := baseGeometry()
	inner := ExactKernel{G: g}
	k := PerturbedKernel{Inner: inner, Rho0: g.Rho0, Coeff: [5]float64{1e-3, 2e-6, 0, 0, 0}}

	rho := g.Rho0 + 20.0
	phi := g.Phi0 + 0.05

	if k.DPsiDPhi(rho, phi) != inner.DPsiDPhi(rho, phi) {
		t.Fatalf("perturbation polynomial must not alter DPsiDPhi")
	}
	if k.D2PsiDPhi2(rho, phi) != inner.D2PsiDPhi2(rho, phi) {
		t.Fatalf("perturbation polynomial must not alter D2PsiDPhi2")
	}

	d := rho - g.Rho0
	wantExtra := k.Coeff[0]*d + k.Coeff[1]*d*d
	gotExtra := k.Psi(rho, phi) - inner.Psi(rho, phi)
	// psi itself is ~1e7 here, so the difference carries a few ulps of
	// that magnitude (~4e-9 each); the bound scales with |psi|.
	if math.Abs(gotExtra-wantExtra) > 1e-15*math.Max(1, math.Abs(inner.Psi(rho, phi))) {
		t.Fatalf("perturbation contribution = %v, want %v", gotExtra, wantExtra)
	}
}

func TestPerturbedKernelZeroCoefficientsMatchesInner(t *testing.T) {
	g := baseGeometry()
	inner := ExactKernel{G: g}
	k := PerturbedKernel{Inner: inner, Rho0: g.Rho0}
	rho := g.Rho0 + 10.0
	phi := g.Phi0 + 0.02
	if k.Psi(rho, phi) != inner.Psi(rho, phi) {
		t.Fatalf("zero-coefficient perturbation must reduce to the inner kernel")
	}
}

func TestEllipticKernelReducesToExactAtZeroEccentricity(t *testing.T) {
	g := baseGeometry()
	exact := ExactKernel{G: g}
	ell := EllipticKernel{G: g, Ecc: 0, Peri: 0.1}

	rho := g.Rho0 + 30.0
	phi := g.Phi0 + 0.07

	if math.Abs(ell.Psi(rho, phi)-exact.Psi(rho, phi)) > 1e-9 {
		t.Fatalf("Psi mismatch at ecc=0: got %v want %v", ell.Psi(rho, phi), exact.Psi(rho, phi))
	}
	if math.Abs(ell.DPsiDPhi(rho, phi)-exact.DPsiDPhi(rho, phi)) > 1e-6 {
		t.Fatalf("DPsiDPhi mismatch at ecc=0: got %v want %v", ell.DPsiDPhi(rho, phi), exact.DPsiDPhi(rho, phi))
	}
}

func TestEllipticKernelSecondDerivativeSelfConsistent(t *testing.T) {
	g := baseGeometry()
	ell := EllipticKernel{G: g, Ecc: 0.01, Peri: 0.2}
	rho := g.Rho0 + 15.0
	phi := g.Phi0 + 0.04

	got := ell.D2PsiDPhi2(rho, phi)
	want := centralDiff(func(p float64) float64 { return ell.DPsiDPhi(rho, p) }, phi, 1e-5)
	if math.Abs(got-want) > 1e-2*math.Max(1, math.Abs(want)) {
		t.Fatalf("D2PsiDPhi2 = %v, finite-difference estimate = %v", got, want)
	}
}

func TestLegendreCoefficientsReproduceExactPsiOnAxis(t *testing.T) {
	g := baseGeometry()
	halfWidth := 40.0
	lc := PrecomputeLegendre(g, halfWidth, 6)

	exact := ExactKernel{G: g}
	for _, t64 := range []float64{-1.0, -0.5, 0.0, 0.5, 1.0} {
		rho := g.Rho0 + t64*halfWidth
		want := exact.Psi(rho, g.Phi0)
		got := lc.Eval(rho)
		if math.Abs(got-want) > 1e-2*math.Max(1, math.Abs(want)) {
			t.Fatalf("Legendre reconstruction at t=%v: got %v want %v", t64, got, want)
		}
	}
}

func TestQuadraticPsiVanishesAtRho0(t *testing.T) {
	if QuadraticPsi(100.0, 100.0, 0.5) != 0 {
		t.Fatalf("QuadraticPsi(rho0, rho0, f) must be exactly 0")
	}
}

func TestSolveStationaryPointFindsPhi0WhenRhoEqualsRho0(t *testing.T) {
	g := baseGeometry()
	k := ExactKernel{G: g}
	phiStar, err := SolveStationaryPoint(k, g.Rho0, g.Phi0+0.2, g.KD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(phiStar-g.Phi0) > 1e-6 {
		t.Fatalf("phi* = %v, want phi0 = %v", phiStar, g.Phi0)
	}
}

func TestSolveStationaryPointConvergesOffAxis(t *testing.T) {
	g := baseGeometry()
	k := ExactKernel{G: g}
	rho := g.Rho0 + 25.0

	phiStar, err := SolveStationaryPoint(k, rho, g.Phi0, g.KD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(k.DPsiDPhi(rho, phiStar)) > 1e-6 {
		t.Fatalf("DPsiDPhi(phi*) = %v, want ~0", k.DPsiDPhi(rho, phiStar))
	}
}

func TestSolveStationaryPointWarmStartMatchesColdStart(t *testing.T) {
	g := baseGeometry()
	k := ExactKernel{G: g}
	rho := g.Rho0 + 25.0

	cold, err := SolveStationaryPoint(k, rho, g.Phi0, g.KD)
	if err != nil {
		t.Fatalf("cold start: unexpected error: %v", err)
	}
	warm, err := SolveStationaryPoint(k, rho, cold+0.001, g.KD)
	if err != nil {
		t.Fatalf("warm start: unexpected error: %v", err)
	}
	if math.Abs(cold-warm) > 1e-6 {
		t.Fatalf("warm-started phi* = %v, cold-started phi* = %v", warm, cold)
	}
}
