package special

// WavenumberFromWavelength converts a carrier wavelength (km) to a
// wavenumber k (rad/km), k = 2*pi/lambda. This mirrors
// original_source/rss_ringoccs's wavelength_to_wavenumber.c, a helper
// spec.md's distillation dropped even though ReconstructionOptions and
// the phase module both consume k (folded into the per-sample kD
// product) — see SPEC_FULL.md Expansion C.
func WavenumberFromWavelength(lambdaKm float64) float64 {
	const twoPi = 6.283185307179586476925286766559
	return twoPi / lambdaKm
}
