// Package transform implements spec.md §4.6's transform driver: the
// per-output-sample quadrature sum that turns a diffracted amplitude
// profile into a reconstructed transmittance, dispatched across the six
// kernel-approximation strategies of geometry.StrategyKind.
package transform

import (
	"github.com/ringoccs/ringoccs-go/geometry"
	"github.com/ringoccs/ringoccs-go/phase"
	"github.com/ringoccs/ringoccs-go/status"
)

// psiProvider evaluates psi_ij for every j in a sample's span, given the
// span's radii. It is rebuilt (or re-seated) once per output sample i,
// since the geometry a strategy depends on (rho0, phi0, B, D, kD, the
// Legendre coefficient table, ...) is fixed for the duration of one
// sample's span walk.
type psiProvider interface {
	// psi returns psi_ij for source radius rhoJ at profile index j,
	// warm-starting any inner root find from the previous call's result.
	psi(j int, rhoJ float64) (float64, error)
}

// newPsiProvider builds the psiProvider for the planned output sample ps
// under the plan's selected strategy (spec.md §4.6 "Strategy specifics").
func newPsiProvider(plan *geometry.InversionPlan, ps *geometry.PlannedSample) (psiProvider, error) {
	const op = "transform.newPsiProvider"
	p := plan.Profile
	opts := plan.Options
	i := ps.Index

	switch opts.Strategy.Kind {
	case geometry.Fresnel, geometry.FFT:
		return &fresnelProvider{rho0: p.Rho[i], f: p.F[i]}, nil

	case geometry.Legendre:
		g := phase.TargetGeometry{Rho0: p.Rho[i], Phi0: p.Phi[i], B: p.B[i], D: p.D[i], KD: p.KD[i]}
		lc := phase.PrecomputeLegendre(g, ps.HalfWidth, opts.Strategy.Order)
		return &legendreProvider{coeff: lc}, nil

	case geometry.Newton, geometry.PerturbedNewton, geometry.EllipticNewton:
		k, err := buildKernel(plan, i)
		if err != nil {
			return nil, err
		}
		return newNewtonProvider(k, plan, ps, opts.InterpOrder)

	default:
		return nil, status.New(status.InvalidOption, op, "unknown strategy kind")
	}
}

// buildKernel constructs the phase.Kernel for the Newton family of
// strategies at output sample i.
func buildKernel(plan *geometry.InversionPlan, i int) (phase.Kernel, error) {
	const op = "transform.buildKernel"
	p := plan.Profile
	opts := plan.Options
	g := phase.TargetGeometry{Rho0: p.Rho[i], Phi0: p.Phi[i], B: p.B[i], D: p.D[i], KD: p.KD[i]}

	switch opts.Strategy.Kind {
	case geometry.Newton:
		return phase.ExactKernel{G: g}, nil
	case geometry.PerturbedNewton:
		return phase.PerturbedKernel{Inner: phase.ExactKernel{G: g}, Rho0: g.Rho0, Coeff: opts.Perturbation}, nil
	case geometry.EllipticNewton:
		return phase.EllipticKernel{G: g, Ecc: opts.Ecc, Peri: opts.Peri}, nil
	default:
		return nil, status.New(status.InvalidOption, op, "strategy is not a Newton-family kernel")
	}
}

// fresnelProvider implements the pure-quadratic strategy of spec.md
// §4.6: psi_ij depends on (i,j) only through the radial separation.
type fresnelProvider struct {
	rho0, f float64
}

func (fp *fresnelProvider) psi(j int, rhoJ float64) (float64, error) {
	return phase.QuadraticPsi(rhoJ, fp.rho0, fp.f), nil
}

// legendreProvider implements the Legendre(order) strategy: psi_ij is
// the precomputed polynomial evaluated at rho_j.
type legendreProvider struct {
	coeff phase.LegendreCoefficients
}

func (lp *legendreProvider) psi(j int, rhoJ float64) (float64, error) {
	return lp.coeff.Eval(rhoJ), nil
}
