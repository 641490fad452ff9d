package transform

import (
	"github.com/ringoccs/ringoccs-go/geometry"
	"github.com/ringoccs/ringoccs-go/phase"
	"github.com/ringoccs/ringoccs-go/status"
)

// newtonProvider implements the Newton, PerturbedNewton, and
// EllipticNewton strategies of spec.md §4.6: for each (i,j) solve the
// stationary-phase equation for phi*_ij, then evaluate psi at the
// stationary point. At interpOrder in {2,3,4}, psi* is solved exactly
// only at interpOrder+1 evenly spaced span nodes and interpolated over j
// elsewhere, per spec.md's "Interpolation of psi* over j"; interpOrder
// 0 solves exactly at every j, warm-starting each solve from the
// previous j's converged phi* (spec.md §9's warm-start design note).
type newtonProvider struct {
	kernel phase.Kernel
	rho0   float64
	kD     float64

	interpOrder int
	lastPhi     float64 // warm start for the exact path

	nodesX []float64 // node radii, present only when interpolating
	coeff  []float64 // Newton divided-difference coefficients on psi*
}

func newNewtonProvider(k phase.Kernel, plan *geometry.InversionPlan, ps *geometry.PlannedSample, interpOrder int) (*newtonProvider, error) {
	const op = "transform.newNewtonProvider"
	p := plan.Profile
	i := ps.Index
	np := &newtonProvider{
		kernel:      k,
		rho0:        p.Rho[i],
		kD:          p.KD[i],
		interpOrder: interpOrder,
		lastPhi:     p.Phi[i],
	}

	if interpOrder == geometry.InterpExact {
		return np, nil
	}

	nNodes := interpOrder + 1
	span := ps.SpanHi - ps.SpanLo
	nodesX := make([]float64, nNodes)
	nodesY := make([]float64, nNodes)
	phi := p.Phi[i]
	for k := 0; k < nNodes; k++ {
		frac := float64(k) / float64(nNodes-1)
		idx := ps.SpanLo + int(frac*float64(span)+0.5)
		if idx > ps.SpanHi {
			idx = ps.SpanHi
		}
		rhoJ := p.Rho[idx]
		phiStar, err := phase.SolveStationaryPoint(np.kernel, rhoJ, phi, np.kD)
		if err != nil {
			return nil, status.Wrap(status.NonConvergence, op, "interpolation node solve failed", err)
		}
		phi = phiStar
		nodesX[k] = rhoJ
		nodesY[k] = np.kernel.Psi(rhoJ, phiStar)
	}
	np.nodesX = nodesX
	np.coeff = newtonDividedDifferences(nodesX, nodesY)
	return np, nil
}

func (np *newtonProvider) psi(j int, rhoJ float64) (float64, error) {
	const op = "transform.newtonProvider.psi"
	if np.interpOrder != geometry.InterpExact {
		return evalNewtonPoly(np.nodesX, np.coeff, rhoJ), nil
	}
	phiStar, err := phase.SolveStationaryPoint(np.kernel, rhoJ, np.lastPhi, np.kD)
	if err != nil {
		return 0, status.Wrap(status.NonConvergence, op, "stationary-phase solve failed", err)
	}
	np.lastPhi = phiStar
	return np.kernel.Psi(rhoJ, phiStar), nil
}
