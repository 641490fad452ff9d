package transform

import (
	"math"
	"math/cmplx"

	"github.com/ringoccs/ringoccs-go/geometry"
	"github.com/ringoccs/ringoccs-go/status"
)

// Progress is an optional per-sample or per-block callback (spec.md §5).
type Progress func(done, total int)

// Run walks plan's in-range output indices, dispatching each to its
// selected strategy and advancing the per-sample state machine
// (spec.md §4.6, status.SampleState). The first fatal error aborts the
// whole run and discards any partial output (spec.md §7 policy).
func Run(plan *geometry.InversionPlan, progress Progress) (*geometry.ReconstructedProfile, error) {
	if plan.Options.Strategy.Kind == geometry.FFT {
		out, err := runFFT(plan)
		if err != nil {
			return nil, err
		}
		if plan.Options.RunForward {
			fwd, ferr := runForward(plan, out)
			if ferr != nil {
				return nil, ferr
			}
			out.THatFwd = fwd
		}
		return out, nil
	}

	n := len(plan.Samples)
	out := &geometry.ReconstructedProfile{
		Rho:             make([]float64, n),
		T:               make([]complex128, n),
		Power:           make([]float64, n),
		Phase:           make([]float64, n),
		Tau:             make([]float64, n),
		RawTauThreshold: make([]float64, n),
		TauThreshold:    make([]float64, n),
	}

	dRho := plan.Profile.DeltaRho()

	for k := range plan.Samples {
		ps := &plan.Samples[k]
		ps.State = status.SpanAssembled

		t, nI, err := accumulate(plan, ps)
		if err != nil {
			ps.State = status.Failed
			ps.FailReason = err
			return nil, err
		}
		ps.State = status.Accumulated
		if plan.Options.Normalize {
			ps.State = status.Normalized
		}

		i := ps.Index
		out.Rho[k] = plan.Profile.Rho[i]
		out.T[k] = t
		out.Power[k] = cmplx.Abs(t) * cmplx.Abs(t)
		out.Phase[k] = cmplx.Phase(t)
		out.Tau[k] = tauFromPower(plan.Profile.B[i], out.Power[k])

		normEq, nerr := plan.Window.NormEq(ps.HalfWidth)
		if nerr != nil {
			ps.State = status.Failed
			ps.FailReason = nerr
			return nil, nerr
		}
		rawPow, nerr := noiseFloorPower(plan.Profile, ps.SpanLo, ps.SpanHi, ps.HalfWidth, dRho, normEq)
		if nerr != nil {
			ps.State = status.Failed
			ps.FailReason = nerr
			return nil, nerr
		}
		out.RawTauThreshold[k] = tauFromPower(plan.Profile.B[i], rawPow)
		out.TauThreshold[k] = tauFromPower(plan.Profile.B[i], rawPow/(nI*nI))

		ps.State = status.Done
		if progress != nil {
			progress(k+1, n)
		}
	}

	if plan.Options.RunForward {
		fwd, err := runForward(plan, out)
		if err != nil {
			return nil, err
		}
		out.THatFwd = fwd
	}

	return out, nil
}

// tauFromPower resolves spec.md's two conflicting optical-depth
// formulas (§3: "-2*sin(B)*log(power)"; GLOSSARY: "-sin|B|*log(|T|^2)")
// by keeping §3's coefficient of 2 and using |sin(B)| for sign safety,
// per §3's own "with appropriate sign convention" phrase — see
// DESIGN.md's Open Question log.
func tauFromPower(b, power float64) float64 {
	if power <= 0 {
		return math.Inf(1)
	}
	return -2 * math.Abs(math.Sin(b)) * math.Log(power)
}
