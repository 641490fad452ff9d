// Package ringoccs is the Fresnel inversion engine's public facade: it
// ties the geometry, phase, window, and transform packages together
// behind the two structured values spec.md §6 names as the core's
// external interface, CalibratedProfile and ReconstructionOptions.
package ringoccs

import (
	"github.com/ringoccs/ringoccs-go/geometry"
	"github.com/ringoccs/ringoccs-go/transform"
)

// CalibratedProfile, Options, and ReconstructedProfile are re-exported
// so callers only need to import this package for the common path.
type (
	CalibratedProfile   = geometry.CalibratedProfile
	Options             = geometry.Options
	ReconstructedProfile = geometry.ReconstructedProfile
	StrategySpec        = geometry.StrategySpec
)

// Re-exported strategy and window selectors.
const (
	Fresnel         = geometry.Fresnel
	Legendre        = geometry.Legendre
	Newton          = geometry.Newton
	PerturbedNewton = geometry.PerturbedNewton
	EllipticNewton  = geometry.EllipticNewton
	FFT             = geometry.FFT
)

// Progress is an optional per-sample progress callback (spec.md §5).
type Progress = transform.Progress

// Reconstruct is the core's single entry point: build the inversion
// plan for profile and options, then run the transform driver over it.
// The returned error is always a *status.Error carrying one of the
// five kinds of spec.md §7's taxonomy.
func Reconstruct(profile *CalibratedProfile, options *Options, progress Progress) (*ReconstructedProfile, error) {
	plan, err := geometry.BuildPlan(profile, options)
	if err != nil {
		return nil, err
	}
	return transform.Run(plan, progress)
}
