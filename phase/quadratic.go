package phase

// QuadraticPsi is the pure-Fresnel (parabolic) phase approximation of
// spec.md §4.4: psi = (pi/2) * ((rho - rho0)/F)^2. It has no azimuthal
// dependence, so the Fresnel and FFT strategies never invoke the
// stationary-phase solver.
func QuadraticPsi(rho, rho0, f float64) float64 {
	const halfPi = 1.5707963267948966
	sep := (rho - rho0) / f
	return halfPi * sep * sep
}
