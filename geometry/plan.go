package geometry

import (
	"math"
	"sort"

	"github.com/ringoccs/ringoccs-go/special"
	"github.com/ringoccs/ringoccs-go/status"
	"github.com/ringoccs/ringoccs-go/window"
)

// SampleState mirrors status.SampleState but is redeclared here as a
// type alias for callers that only import geometry.
type SampleState = status.SampleState

// PlannedSample carries the per-output-sample geometry the transform
// driver consumes: its window width W_i (stored in HalfWidth, which holds
// the full width, not half of it), index span, and state.
type PlannedSample struct {
	Index      int // index into the CalibratedProfile
	HalfWidth  float64
	SpanLo     int
	SpanHi     int
	State      SampleState
	FailReason error
}

// InversionPlan is spec.md §3's derived InversionPlan: per-sample window
// widths and index spans, plus the precomputed k*D array.
type InversionPlan struct {
	Profile *CalibratedProfile
	Options *Options
	Window  window.Window

	Samples []PlannedSample // one entry per output index in [loIdx, hiIdx]
	KD      []float64       // alias of Profile.KD, kept for driver locality

	LoIndex, HiIndex int // resolved index bounds of Options.RhoLo/RhoHi
}

// BuildPlan constructs the InversionPlan for profile and options
// (spec.md §4.3 window-width planner plus the index-span check of §3: a
// span that runs past the data is reported as a RangeError, not clamped).
func BuildPlan(profile *CalibratedProfile, options *Options) (*InversionPlan, error) {
	const op = "BuildPlan"
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}

	dRho := profile.DeltaRho()
	if options.Res < 2*dRho {
		return nil, status.New(status.DomainError, op, "res < 2*dRho (Nyquist)")
	}

	w, err := window.New(options.Window)
	if err != nil {
		return nil, err
	}

	loIdx, hiIdx, err := resolveRange(profile.Rho, options.RhoLo, options.RhoHi)
	if err != nil {
		return nil, err
	}

	n := profile.Len()
	samples := make([]PlannedSample, 0, hiIdx-loIdx+1)
	for i := loIdx; i <= hiIdx; i++ {
		ps := PlannedSample{Index: i, State: status.Planned}

		width, werr := sampleWidth(profile, options, i)
		if werr != nil {
			ps.State = status.Failed
			ps.FailReason = werr
			return nil, werr
		}
		ps.HalfWidth = width

		half := window.HalfWidthSamples(width, dRho)
		lo, hi := i-half, i+half
		if lo < 0 || hi >= n {
			rerr := status.NewRangeError(op, i, half, n)
			ps.State = status.Failed
			ps.FailReason = rerr
			return nil, rerr
		}
		ps.SpanLo, ps.SpanHi = lo, hi
		ps.State = status.InRange
		samples = append(samples, ps)
	}

	return &InversionPlan{
		Profile: profile,
		Options: options,
		Window:  w,
		Samples: samples,
		KD:      profile.KD,
		LoIndex: loIdx,
		HiIndex: hiIdx,
	}, nil
}

func resolveRange(rho []float64, lo, hi float64) (int, int, error) {
	const op = "BuildPlan.resolveRange"
	loIdx := sort.SearchFloat64s(rho, lo)
	hiIdx := sort.SearchFloat64s(rho, hi)
	if hiIdx < len(rho) && rho[hiIdx] > hi {
		hiIdx--
	}
	if hiIdx == len(rho) {
		hiIdx = len(rho) - 1
	}
	if loIdx > hiIdx || loIdx >= len(rho) || hiIdx < 0 {
		return 0, 0, status.New(status.DomainError, op, "range does not intersect data span")
	}
	return loIdx, hiIdx, nil
}

// sampleWidth computes W_i for output sample i via the standard form or,
// when Options.UseBFac, the b-factor form (spec.md §4.3).
func sampleWidth(profile *CalibratedProfile, options *Options, i int) (float64, error) {
	f := profile.F[i]
	if !options.UseBFac {
		return 2 * f * f / options.Res, nil
	}
	rhoDot := radialVelocity(profile, i, options.SampleIntervalSec)
	return bFactorWidth(f, rhoDot, options.Sigma, options.Omega, options.Res)
}

// radialVelocity estimates the intercept radial velocity via a centered
// finite difference of rho over the configured sample cadence — see the
// doc comment on Options.SampleIntervalSec.
func radialVelocity(profile *CalibratedProfile, i int, dtSec float64) float64 {
	n := profile.Len()
	lo, hi := i-1, i+1
	if lo < 0 {
		lo = 0
	}
	if hi >= n {
		hi = n - 1
	}
	if hi == lo {
		return 0
	}
	return (profile.Rho[hi] - profile.Rho[lo]) / (float64(hi-lo) * dtSec)
}

// bFactorWidth solves spec.md §4.3's b-factor relation for W_i:
//
//	b = omega^2 sigma^2 W / (2 rhoDot)
//	res = (2F^2/W) * (b^2/2) / (e^-b + b - 1)
//
// which reduces, with k1 = omega^2 sigma^2/(2 rhoDot) and b = k1*W, to
// y = b/(e^-b+b-1)
// with y = res*2*rhoDot/(F^2*omega^2*sigma^2), solved via
// P = y/(1-y), b = LambertW(P*e^P) - P, W = b*2*rhoDot/(omega^2*sigma^2).
func bFactorWidth(f, rhoDot, sigma, omega, res float64) (float64, error) {
	const op = "bFactorWidth"
	if rhoDot == 0 {
		return 0, status.New(status.DomainError, op, "rho_dot is zero")
	}
	k1 := omega * omega * sigma * sigma / (2 * rhoDot)
	y := res / (f * f * k1)
	if y <= 1 {
		return 0, status.New(status.DomainError, op, "b-factor equation has no solution (y <= 1)")
	}
	p := y / (1 - y)
	lw, err := special.LambertW(p * math.Exp(p))
	if err != nil {
		return 0, status.Wrap(status.DomainError, op, "LambertW inversion failed", err)
	}
	b := lw - p
	w := b / k1
	if w <= 0 {
		return 0, status.New(status.DomainError, op, "b-factor solution is non-positive")
	}
	return w, nil
}
