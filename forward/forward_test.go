package forward

import (
	"math"
	"math/cmplx"
	"testing"
)

func power(v complex128) float64 {
	a := cmplx.Abs(v)
	return a * a
}

func TestRingletFarFieldPowerNearUnity(t *testing.T) {
	const a, b, f = 45.0, 55.0, 0.05
	for _, rho := range []float64{0, 20, 44.9, 55.1, 80, 100} {
		v, err := Ringlet(rho, a, b, f)
		if err != nil {
			t.Fatalf("Ringlet(%v): %v", rho, err)
		}
		if power(v) < 0.9 {
			t.Fatalf("power at rho=%v is %v, want >= 0.9 (outside [a-F,b+F])", rho, power(v))
		}
	}
}

func TestRingletDeepInteriorPowerIsNearZero(t *testing.T) {
	const a, b, f = 45.0, 55.0, 0.05
	v, err := Ringlet(50.0, a, b, f)
	if err != nil {
		t.Fatalf("Ringlet: %v", err)
	}
	if power(v) > 1e-3 {
		t.Fatalf("power deep inside the ringlet is %v, want ~0", power(v))
	}
}

func TestRingletHasInteriorDipNearEdge(t *testing.T) {
	const a, b, f = 45.0, 55.0, 0.05
	minPower := math.Inf(1)
	for rho := a; rho <= a+4*f; rho += f / 50 {
		v, err := Ringlet(rho, a, b, f)
		if err != nil {
			t.Fatalf("Ringlet(%v): %v", rho, err)
		}
		if p := power(v); p < minPower {
			minPower = p
		}
	}
	if minPower >= 0.9 {
		t.Fatalf("expected a diffraction dip below 0.9 within 4F of the edge, min power = %v", minPower)
	}
}

func TestGapDeepInteriorPowerNearUnity(t *testing.T) {
	const a, b, f = 45.0, 55.0, 0.05
	v, err := Gap(50.0, a, b, f)
	if err != nil {
		t.Fatalf("Gap: %v", err)
	}
	// rho=50 is 100F from each edge; the two edges' Fresnel ripple of
	// order 1/(pi*s) at s=100 leaves the power about 6.4e-3 below 1.
	if math.Abs(power(v)-1.0) > 1e-2 {
		t.Fatalf("power deep inside the gap is %v, want ~1", power(v))
	}
}

func TestGapAndRingletAreComplementary(t *testing.T) {
	const a, b, f = 45.0, 55.0, 0.05
	for _, rho := range []float64{10, 44, 45, 47, 50, 53, 55, 56, 90} {
		g, err := Gap(rho, a, b, f)
		if err != nil {
			t.Fatalf("Gap(%v): %v", rho, err)
		}
		r, err := Ringlet(rho, a, b, f)
		if err != nil {
			t.Fatalf("Ringlet(%v): %v", rho, err)
		}
		// Ringlet = i - Gap identically, by construction (see aperture.go).
		want := complex(0, 1) - g
		if cmplx.Abs(want-r) > 1e-9 {
			t.Fatalf("Ringlet(%v) = %v, want i - Gap = %v", rho, r, want)
		}
	}
}

func TestStraightEdgeIlluminatedSideApproachesUnity(t *testing.T) {
	const edge, f = 50.0, 0.05
	v, err := StraightEdge(90.0, edge, f, true)
	if err != nil {
		t.Fatalf("StraightEdge: %v", err)
	}
	if math.Abs(power(v)-1.0) > 1e-3 {
		t.Fatalf("power far into the illuminated side is %v, want ~1", power(v))
	}
}

func TestStraightEdgeShadowSideApproachesZero(t *testing.T) {
	const edge, f = 50.0, 0.05
	v, err := StraightEdge(10.0, edge, f, true)
	if err != nil {
		t.Fatalf("StraightEdge: %v", err)
	}
	if power(v) > 1e-3 {
		t.Fatalf("power far into the shadow is %v, want ~0", power(v))
	}
}

func TestDoubleSlitReducesToSumOfIndependentGaps(t *testing.T) {
	const f = 0.05
	rho := 30.0
	got, err := DoubleSlit(rho, 10, 20, 40, 50, f)
	if err != nil {
		t.Fatalf("DoubleSlit: %v", err)
	}
	g1, _ := Gap(rho, 10, 20, f)
	g2, _ := Gap(rho, 40, 50, f)
	want := g1 + g2
	if cmplx.Abs(got-want) > 1e-12 {
		t.Fatalf("DoubleSlit = %v, want %v", got, want)
	}
}

func TestApertureRejectsNonPositiveFresnelScale(t *testing.T) {
	if _, err := Ringlet(10, 5, 15, 0); err == nil {
		t.Fatalf("expected a DomainError for F <= 0")
	}
	if _, err := Gap(10, 5, 15, -1); err == nil {
		t.Fatalf("expected a DomainError for F <= 0")
	}
}

func TestApertureRejectsDegenerateInterval(t *testing.T) {
	if _, err := Ringlet(10, 15, 5, 0.05); err == nil {
		t.Fatalf("expected a DomainError for b <= a")
	}
}

func TestSquareWaveMatchesSingleGapForOnePeriodInRange(t *testing.T) {
	const f = 0.05
	rho := 5.0
	got, err := SquareWave(rho, 0, 100, 10, 0, 20, f)
	if err != nil {
		t.Fatalf("SquareWave: %v", err)
	}
	want, _ := Gap(rho, 0, 10, f)
	if cmplx.Abs(got-want) > 1e-9 {
		t.Fatalf("SquareWave = %v, want single-slit contribution %v", got, want)
	}
}

func TestSampleBuildsUniformGrid(t *testing.T) {
	rho, tHat, err := Sample(func(r float64) (complex128, error) {
		return Ringlet(r, 45, 55, 0.05)
	}, 0, 10, 1.0)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if len(rho) != 11 || len(tHat) != 11 {
		t.Fatalf("got %d samples, want 11", len(rho))
	}
	if rho[0] != 0 || rho[10] != 10 {
		t.Fatalf("rho endpoints = [%v, %v], want [0, 10]", rho[0], rho[10])
	}
}
