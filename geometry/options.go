package geometry

import (
	"fmt"

	"github.com/ringoccs/ringoccs-go/status"
	"github.com/ringoccs/ringoccs-go/window"
)

// StrategyKind enumerates the transform-driver kernel-approximation
// strategies of spec.md §4.6.
type StrategyKind int

const (
	Fresnel StrategyKind = iota
	Legendre
	Newton
	PerturbedNewton
	EllipticNewton
	FFT
)

func (s StrategyKind) String() string {
	switch s {
	case Fresnel:
		return "Fresnel"
	case Legendre:
		return "Legendre"
	case Newton:
		return "Newton"
	case PerturbedNewton:
		return "PerturbedNewton"
	case EllipticNewton:
		return "EllipticNewton"
	case FFT:
		return "FFT"
	default:
		return fmt.Sprintf("StrategyKind(%d)", int(s))
	}
}

// StrategySpec selects a transform strategy; Order is consulted only
// when Kind == Legendre, and must be in [2,8] (spec.md §4.4).
type StrategySpec struct {
	Kind  StrategyKind
	Order int
}

// InterpOrder values valid for ReconstructionOptions.InterpOrder
// (spec.md §3): 0 means per-sample exact evaluation.
const (
	InterpExact = 0
	InterpOrder2 = 2
	InterpOrder3 = 3
	InterpOrder4 = 4
)

// Options is spec.md §3's ReconstructionOptions.
type Options struct {
	Res          float64 // km, requested radial resolution, > 0
	Window       window.Spec
	Strategy     StrategySpec
	Normalize    bool
	UseBFac      bool
	Sigma        float64 // Allen deviation, used only when UseBFac
	Omega        float64 // rad/s angular frequency, used only when UseBFac
	// SampleIntervalSec is the cadence between consecutive
	// CalibratedProfile samples in seconds. It has no counterpart named
	// in spec.md's ReconstructionOptions table; the b-factor correction
	// needs an intercept radial velocity rho-dot that spec.md says is
	// "derived from geometry" without specifying how, and the raw
	// timing that would let a caller derive it belongs to the
	// out-of-scope calibration collaborator. This field is consulted
	// only when UseBFac is true; see DESIGN.md's Open Question log.
	SampleIntervalSec float64

	RhoLo, RhoHi float64 // closed radial interval, km

	Perturbation [5]float64 // additive polynomial coefficients in (rho-rho0); all zero disables
	Ecc, Peri    float64    // eccentricity / pericenter angle; both zero disables elliptic correction

	InterpOrder int
	RunForward  bool
}

// Validate checks the option-level invariants of spec.md §4.3 and §7
// that don't require the profile (the resolution-vs-Nyquist check needs
// dRho and is done by BuildPlan).
func (o *Options) Validate() error {
	const op = "Options.Validate"
	if o.Res <= 0 {
		return status.New(status.DomainError, op, "res must be > 0")
	}
	if o.RhoHi <= o.RhoLo {
		return status.New(status.DomainError, op, "range must be non-empty (rho_hi > rho_lo)")
	}
	switch o.InterpOrder {
	case InterpExact, InterpOrder2, InterpOrder3, InterpOrder4:
	default:
		return status.New(status.InvalidOption, op, "interp_order must be 0, 2, 3, or 4")
	}
	if o.Strategy.Kind == Legendre {
		if o.Strategy.Order < 2 || o.Strategy.Order > 8 {
			return status.New(status.InvalidOption, op, "Legendre order must be in [2,8]")
		}
	}
	if o.UseBFac {
		if o.Sigma <= 0 || o.Omega <= 0 {
			return status.New(status.DomainError, op, "sigma and omega must be > 0 when use_bfac is set")
		}
		if o.SampleIntervalSec <= 0 {
			return status.New(status.DomainError, op, "SampleIntervalSec must be > 0 when use_bfac is set")
		}
	}
	return nil
}
