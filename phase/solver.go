package phase

import (
	"math"

	"github.com/ringoccs/ringoccs-go/status"
)

// machineEpsilon is float64's unit roundoff.
const machineEpsilon = 2.220446049250313e-16

const solverMaxIter = 20

// SolveStationaryPoint finds phi* satisfying dPsi/dPhi(rho, phi*) = 0 by
// Newton iteration from initial guess phi0Guess (spec.md §4.5). The
// tolerance scales with machine epsilon and kD, since psi itself carries
// a factor of kD; iteration is capped at 20 steps and non-convergence is
// fatal (status.NonConvergence).
func SolveStationaryPoint(k Kernel, rho, phi0Guess, kD float64) (float64, error) {
	const op = "SolveStationaryPoint"
	tol := 4 * machineEpsilon * math.Max(1, math.Abs(kD))

	phi := phi0Guess
	for i := 0; i < solverMaxIter; i++ {
		f := k.DPsiDPhi(rho, phi)
		if math.Abs(f) < tol {
			return phi, nil
		}
		fp := k.D2PsiDPhi2(rho, phi)
		if fp == 0 {
			return phi, status.New(status.NonConvergence, op, "zero second derivative")
		}
		phi -= f / fp
	}
	if math.Abs(k.DPsiDPhi(rho, phi)) < tol {
		return phi, nil
	}
	return phi, status.New(status.NonConvergence, op, "stationary point search exceeded iteration budget")
}
