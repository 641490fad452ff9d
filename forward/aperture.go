// Package forward implements spec.md §2's diffraction forward models:
// closed-form Fresnel diffraction of canonical ring apertures, used to
// validate the transform driver's reconstruction against a known
// ground truth (spec.md §8's reconstruction-forward round-trip
// property and end-to-end scenario 1).
//
// Every model is built from the same Fresnel-Kirchhoff integral the
// transform package's runForward uses as its self-check kernel:
//
//	T_hat(rho) = ((1+i)/(2F)) * integral T(rho') * exp(i*(pi/2)*((rho'-rho)/F)^2) drho'
//
// so a uniform-transmission interval [a,b] contributes
// F*[(C(s2)-C(s1)) + i*(S(s2)-S(s1))] with s = (edge-rho)/F, and the
// unbounded integral over all rho' contributes F*(1+i) (spec.md §8's
// FresnelC/S(infinity) = 0.5 property applied at both integration
// limits). Grounded on the teacher's sincDiffraction.go, which builds
// the analogous weight from the same Fresnel-integral substitution;
// this package replaces its undefined fresnelCephesScalar with
// special.FresnelC/S.
package forward

import (
	"math"

	"github.com/ringoccs/ringoccs-go/status"
	"github.com/ringoccs/ringoccs-go/special"
)

// stripIntegral returns F*[(C(s2)-C(s1)) + i*(S(s2)-S(s1))], the
// Fresnel-Kirchhoff contribution of a uniform-transmission interval
// [a,b] to the diffracted amplitude at rho, evaluated at Fresnel scale
// f.
func stripIntegral(rho, a, b, f float64) complex128 {
	s1 := (a - rho) / f
	s2 := (b - rho) / f
	dc := special.FresnelC(s2) - special.FresnelC(s1)
	ds := special.FresnelS(s2) - special.FresnelS(s1)
	return complex(f*dc, f*ds)
}

// halfLineIntegral returns the Fresnel-Kirchhoff contribution of a
// semi-infinite uniform-transmission region, either (edge, +inf) when
// illuminatedAbove is true or (-inf, edge) otherwise.
func halfLineIntegral(rho, edge, f float64, illuminatedAbove bool) complex128 {
	s := (edge - rho) / f
	if illuminatedAbove {
		return complex(f*(0.5-special.FresnelC(s)), f*(0.5-special.FresnelS(s)))
	}
	return complex(f*(special.FresnelC(s)+0.5), f*(special.FresnelS(s)+0.5))
}

// prefactor is (1+i)/(2F), the forward-model analogue of the transform
// driver's reconstruction prefactor (1-i)/(2F) (see the package doc
// comment).
func prefactor(f float64) complex128 {
	return complex(1, 1) / complex(2*f, 0)
}

// Gap evaluates a single open slit of transmission 1 on [a,b] and 0
// elsewhere: the model for a gap opened in an otherwise opaque ring
// sheet, or equivalently a single-slit diffraction aperture.
func Gap(rho, a, b, f float64) (complex128, error) {
	if err := validateAperture(a, b, f); err != nil {
		return 0, err
	}
	return prefactor(f) * stripIntegral(rho, a, b, f), nil
}

// SingleSlit is an alias for Gap, spec.md §2's "single slit" model.
func SingleSlit(rho, a, b, f float64) (complex128, error) {
	return Gap(rho, a, b, f)
}

// Ringlet evaluates a single opaque strip of transmission 0 on [a,b]
// and 1 elsewhere: the model for an isolated ring feature (spec.md §8
// end-to-end scenario 1).
func Ringlet(rho, a, b, f float64) (complex128, error) {
	if err := validateAperture(a, b, f); err != nil {
		return 0, err
	}
	// T_hat = ((1+i)/(2F)) * [integral over all rho' minus the strip],
	// and the unbounded integral is F*(1+i); (1+i)^2/2 = i.
	full := complex(0, 1)
	return full - prefactor(f)*stripIntegral(rho, a, b, f), nil
}

// StraightEdge evaluates the semi-infinite knife-edge diffraction
// pattern of a single boundary at edge, illuminated on the rho > edge
// side when illuminatedAbove is true.
func StraightEdge(rho, edge, f float64, illuminatedAbove bool) (complex128, error) {
	if f <= 0 {
		return 0, status.New(status.DomainError, "StraightEdge", "F must be > 0")
	}
	return prefactor(f) * halfLineIntegral(rho, edge, f, illuminatedAbove), nil
}

// DoubleSlit evaluates two independent open slits [a1,b1] and [a2,b2];
// their contributions add by linearity of the Fresnel-Kirchhoff
// integral.
func DoubleSlit(rho, a1, b1, a2, b2, f float64) (complex128, error) {
	g1, err := Gap(rho, a1, b1, f)
	if err != nil {
		return 0, err
	}
	g2, err := Gap(rho, a2, b2, f)
	if err != nil {
		return 0, err
	}
	return g1 + g2, nil
}

// SquareWave evaluates a finite train of open slits of width dutyWidth
// spaced at period, starting at phaseOrigin, truncated to [rhoLo,
// rhoHi]: a finite approximation of an infinite periodic ring pattern,
// documented as such since a genuinely infinite sum has no closed form
// in this integral.
func SquareWave(rho, phaseOrigin, period, dutyWidth, rhoLo, rhoHi, f float64) (complex128, error) {
	const op = "SquareWave"
	if period <= 0 || dutyWidth <= 0 || dutyWidth > period {
		return 0, status.New(status.DomainError, op, "period and dutyWidth must satisfy 0 < dutyWidth <= period")
	}
	if f <= 0 {
		return 0, status.New(status.DomainError, op, "F must be > 0")
	}
	firstK := int(math.Floor((rhoLo - phaseOrigin) / period))
	lastK := int(math.Ceil((rhoHi - phaseOrigin) / period))
	var sum complex128
	for k := firstK; k <= lastK; k++ {
		a := phaseOrigin + float64(k)*period
		b := a + dutyWidth
		if b < rhoLo || a > rhoHi {
			continue
		}
		sum += stripIntegral(rho, a, b, f)
	}
	return prefactor(f) * sum, nil
}

func validateAperture(a, b, f float64) error {
	const op = "forward.validateAperture"
	if f <= 0 {
		return status.New(status.DomainError, op, "F must be > 0")
	}
	if b <= a {
		return status.New(status.DomainError, op, "aperture requires b > a")
	}
	return nil
}
