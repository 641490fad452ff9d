package geometry

// ReconstructedProfile is spec.md §3's output record: the reconstructed
// transmittance and its derived magnitudes over the in-range subset of
// the input CalibratedProfile named by Options.RhoLo/RhoHi.
type ReconstructedProfile struct {
	Rho   []float64    // km, radii of the reconstructed samples
	T     []complex128 // reconstructed transmittance
	Power []float64    // |T|^2
	Phase []float64    // arg(T)
	Tau   []float64    // optical depth, -2*sin(B)*log(power) with sign convention

	THatFwd []complex128 // forward-model amplitude, populated only if Options.RunForward

	// RawTauThreshold and TauThreshold are the per-sample optical-depth
	// noise floors of spec.md §3: the thermal-noise power propagated
	// through the window's normalized equivalent width, expressed as an
	// optical depth via the same tau formula as Tau. RawTauThreshold is
	// the floor before the normalization step of §4.6 step 5 is applied
	// (so it equals TauThreshold whenever Options.Normalize is false);
	// TauThreshold is the floor after that normalization, matching the
	// actually-reported Tau values.
	RawTauThreshold []float64
	TauThreshold    []float64
}
