package transform

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/ringoccs/ringoccs-go/geometry"
	"github.com/ringoccs/ringoccs-go/window"
)

func uniformTestProfile(n int, dRho float64) *geometry.CalibratedProfile {
	p := &geometry.CalibratedProfile{
		Rho:  make([]float64, n),
		THat: make([]complex128, n),
		F:    make([]float64, n),
		Phi:  make([]float64, n),
		KD:   make([]float64, n),
		B:    make([]float64, n),
		D:    make([]float64, n),
	}
	for i := 0; i < n; i++ {
		p.Rho[i] = float64(i) * dRho
		p.THat[i] = complex(1, 0)
		p.F[i] = 5.0
		p.Phi[i] = 0.2
		p.KD[i] = 2 * math.Pi / 0.032 * 200000.0
		p.B[i] = 0.3
		p.D[i] = 200000.0
	}
	return p
}

func baseTestOptions(strategy geometry.StrategySpec, rhoLo, rhoHi float64) *geometry.Options {
	return &geometry.Options{
		Res:      3.0,
		Window:   window.Spec{Type: window.Rect},
		Strategy: strategy,
		RhoLo:    rhoLo,
		RhoHi:    rhoHi,
	}
}

func TestRunFresnelStrategyProducesFiniteOutput(t *testing.T) {
	profile := uniformTestProfile(2000, 1.0)
	opts := baseTestOptions(geometry.StrategySpec{Kind: geometry.Fresnel}, 500, 1500)
	plan, err := geometry.BuildPlan(profile, opts)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	out, err := Run(plan, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out.T) != len(plan.Samples) {
		t.Fatalf("output length %d, want %d", len(out.T), len(plan.Samples))
	}
	for i, v := range out.T {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			t.Fatalf("T[%d] = %v is not finite", i, v)
		}
		if math.IsNaN(out.Power[i]) || out.Power[i] < 0 {
			t.Fatalf("Power[%d] = %v is invalid", i, out.Power[i])
		}
	}
}

func TestRunNewtonStrategyProducesFiniteOutput(t *testing.T) {
	profile := uniformTestProfile(1000, 1.0)
	opts := baseTestOptions(geometry.StrategySpec{Kind: geometry.Newton}, 300, 700)
	plan, err := geometry.BuildPlan(profile, opts)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	out, err := Run(plan, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, v := range out.T {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			t.Fatalf("T[%d] = %v is not finite", i, v)
		}
	}
}

func TestRunLegendreStrategyProducesFiniteOutput(t *testing.T) {
	profile := uniformTestProfile(1000, 1.0)
	opts := baseTestOptions(geometry.StrategySpec{Kind: geometry.Legendre, Order: 4}, 300, 700)
	plan, err := geometry.BuildPlan(profile, opts)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	out, err := Run(plan, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, v := range out.T {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			t.Fatalf("T[%d] = %v is not finite", i, v)
		}
	}
}

func TestRunInterpolatedNewtonMatchesExactApproximately(t *testing.T) {
	profile := uniformTestProfile(1000, 1.0)
	exactOpts := baseTestOptions(geometry.StrategySpec{Kind: geometry.Newton}, 300, 700)
	exactOpts.InterpOrder = geometry.InterpExact
	interpOpts := baseTestOptions(geometry.StrategySpec{Kind: geometry.Newton}, 300, 700)
	interpOpts.InterpOrder = geometry.InterpOrder4

	exactPlan, err := geometry.BuildPlan(profile, exactOpts)
	if err != nil {
		t.Fatalf("BuildPlan exact: %v", err)
	}
	interpPlan, err := geometry.BuildPlan(profile, interpOpts)
	if err != nil {
		t.Fatalf("BuildPlan interp: %v", err)
	}

	exactOut, err := Run(exactPlan, nil)
	if err != nil {
		t.Fatalf("Run exact: %v", err)
	}
	interpOut, err := Run(interpPlan, nil)
	if err != nil {
		t.Fatalf("Run interp: %v", err)
	}

	var maxDiff float64
	for i := range exactOut.T {
		d := cmplx.Abs(exactOut.T[i] - interpOut.T[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	if maxDiff > 1e-2 {
		t.Fatalf("interpolated Newton diverges from exact by %v", maxDiff)
	}
}

func TestRunFFTStrategyMatchesFresnelApproximately(t *testing.T) {
	profile := uniformTestProfile(4000, 1.0)
	fresnelOpts := baseTestOptions(geometry.StrategySpec{Kind: geometry.Fresnel}, 1500, 2500)
	fftOpts := baseTestOptions(geometry.StrategySpec{Kind: geometry.FFT}, 1500, 2500)

	fresnelPlan, err := geometry.BuildPlan(profile, fresnelOpts)
	if err != nil {
		t.Fatalf("BuildPlan fresnel: %v", err)
	}
	fresnelOut, err := Run(fresnelPlan, nil)
	if err != nil {
		t.Fatalf("Run fresnel: %v", err)
	}

	fftPlan, err := geometry.BuildPlan(profile, fftOpts)
	if err != nil {
		t.Fatalf("BuildPlan fft: %v", err)
	}
	fftOut, err := Run(fftPlan, nil)
	if err != nil {
		t.Fatalf("Run fft: %v", err)
	}

	if len(fresnelOut.T) != len(fftOut.T) {
		t.Fatalf("length mismatch: %d vs %d", len(fresnelOut.T), len(fftOut.T))
	}
	var maxDiff float64
	for i := range fresnelOut.T {
		d := cmplx.Abs(fresnelOut.T[i] - fftOut.T[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	if maxDiff > 0.1 {
		t.Fatalf("FFT strategy diverges from direct Fresnel sum by %v", maxDiff)
	}
}

func TestTauFromPowerIsNonNegativeForSubUnityPower(t *testing.T) {
	tau := tauFromPower(0.3, 0.5)
	if tau <= 0 {
		t.Fatalf("tau = %v, want > 0 for power < 1", tau)
	}
}

func TestTauFromPowerZeroPowerIsInfinite(t *testing.T) {
	tau := tauFromPower(0.3, 0)
	if !math.IsInf(tau, 1) {
		t.Fatalf("tau = %v, want +Inf at zero power", tau)
	}
}

func TestNewtonDividedDifferencesExactOnLinear(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{1, 3, 5} // y = 1 + 2x
	coeff := newtonDividedDifferences(x, y)
	for _, xv := range []float64{-1, 0.5, 1.5, 3} {
		got := evalNewtonPoly(x, coeff, xv)
		want := 1 + 2*xv
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("evalNewtonPoly(%v) = %v, want %v", xv, got, want)
		}
	}
}

func noisyTestProfile(n int, dRho float64) *geometry.CalibratedProfile {
	p := uniformTestProfile(n, dRho)
	// A small alternating perturbation stands in for receiver thermal
	// noise, giving noiseFloorPower a nonzero first-difference RMS to
	// estimate from (the constant-T_hat profile above has none).
	for i := range p.THat {
		if i%2 == 0 {
			p.THat[i] += complex(0.01, -0.01)
		} else {
			p.THat[i] += complex(-0.01, 0.01)
		}
	}
	return p
}

func TestRunPopulatesTauThresholds(t *testing.T) {
	profile := noisyTestProfile(2000, 1.0)
	opts := baseTestOptions(geometry.StrategySpec{Kind: geometry.Fresnel}, 500, 1500)
	plan, err := geometry.BuildPlan(profile, opts)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	out, err := Run(plan, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out.RawTauThreshold) != len(out.T) || len(out.TauThreshold) != len(out.T) {
		t.Fatalf("threshold slice lengths = %d, %d, want %d", len(out.RawTauThreshold), len(out.TauThreshold), len(out.T))
	}
	for i := range out.RawTauThreshold {
		if math.IsNaN(out.RawTauThreshold[i]) || math.IsNaN(out.TauThreshold[i]) {
			t.Fatalf("threshold[%d] is NaN", i)
		}
		// Options.Normalize is false here, so the quadrature sum is never
		// rescaled and the raw and final noise floors must coincide.
		if out.RawTauThreshold[i] != out.TauThreshold[i] {
			t.Fatalf("RawTauThreshold[%d] = %v != TauThreshold[%d] = %v without normalization",
				i, out.RawTauThreshold[i], i, out.TauThreshold[i])
		}
	}
}

func TestRunNormalizedTauThresholdDiffersFromRaw(t *testing.T) {
	profile := noisyTestProfile(2000, 1.0)
	opts := baseTestOptions(geometry.StrategySpec{Kind: geometry.Fresnel}, 500, 1500)
	opts.Normalize = true
	plan, err := geometry.BuildPlan(profile, opts)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	out, err := Run(plan, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i := range out.RawTauThreshold {
		if math.IsNaN(out.RawTauThreshold[i]) || math.IsNaN(out.TauThreshold[i]) {
			t.Fatalf("threshold[%d] is NaN", i)
		}
		if out.RawTauThreshold[i] == out.TauThreshold[i] {
			t.Fatalf("RawTauThreshold[%d] = TauThreshold[%d] = %v with normalization applied",
				i, i, out.TauThreshold[i])
		}
	}
}

func TestFFTStrategyPopulatesTauThresholds(t *testing.T) {
	profile := noisyTestProfile(4000, 1.0)
	opts := baseTestOptions(geometry.StrategySpec{Kind: geometry.FFT}, 1500, 2500)
	plan, err := geometry.BuildPlan(profile, opts)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	out, err := Run(plan, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out.RawTauThreshold) != len(out.T) || len(out.TauThreshold) != len(out.T) {
		t.Fatalf("threshold slice lengths = %d, %d, want %d", len(out.RawTauThreshold), len(out.TauThreshold), len(out.T))
	}
	for i := range out.RawTauThreshold {
		if math.IsNaN(out.RawTauThreshold[i]) {
			t.Fatalf("RawTauThreshold[%d] is NaN", i)
		}
	}
}

func TestFFTStrategyRejectsRangeTooCloseToDataEdge(t *testing.T) {
	// F is small near both ends of the reconstruction range and large in
	// its interior. geometry.BuildPlan checks each output sample against
	// its own local F (geometry/plan.go), which passes everywhere here:
	// the interior samples have plenty of absolute margin to the data
	// edges, and the edge samples themselves use the small local F. But
	// runFFT pads the whole range by a single half-width derived from
	// fBar, the mean F over the range (transform/fft.go) — the interior
	// spike pulls that mean well above the edge samples' own F, so the
	// resulting padding runs off the data even though no individual
	// sample's own window would have.
	profile := uniformTestProfile(200, 1.0)
	for i := 20; i < 40; i++ {
		profile.F[i] = 1.0
	}
	for i := 40; i < 160; i++ {
		profile.F[i] = 28.0
	}
	for i := 160; i < 180; i++ {
		profile.F[i] = 1.0
	}
	opts := baseTestOptions(geometry.StrategySpec{Kind: geometry.FFT}, 20, 179)
	opts.Res = 20.0

	plan, err := geometry.BuildPlan(profile, opts)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if _, runErr := Run(plan, nil); runErr == nil {
		t.Fatalf("expected an error for a span whose FFT padding runs off the data")
	}
}
