// Package config loads CalibratedProfile and ReconstructionOptions
// records from JSON5 parameter files, mirroring the teacher's
// jsonProcessing.go pattern: unmarshal into a generic map, then walk it
// leaf by leaf with descriptive per-field errors rather than panics.
package config

import (
	"strconv"

	json "github.com/KevinWang15/go-json5"

	"github.com/ringoccs/ringoccs-go/geometry"
	"github.com/ringoccs/ringoccs-go/status"
	"github.com/ringoccs/ringoccs-go/window"
)

// getLeafValue walks a dotted path of nested JSON objects, exactly as
// the teacher's jsonProcessing.go does.
func getLeafValue(table map[string]interface{}, path ...string) (interface{}, bool) {
	var cur interface{} = table
	for _, p := range path {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func requireFloat64Array(table map[string]interface{}, op, key string) ([]float64, error) {
	v, ok := getLeafValue(table, key)
	if !ok {
		return nil, status.New(status.InvalidOption, op, key+": not found")
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil, status.New(status.InvalidOption, op, key+": is not an array")
	}
	out := make([]float64, len(raw))
	for i, e := range raw {
		f, ok := e.(float64)
		if !ok {
			return nil, status.New(status.InvalidOption, op, key+"["+strconv.Itoa(i)+"]: is not a number")
		}
		out[i] = f
	}
	return out, nil
}

func requireFloat64(table map[string]interface{}, op, key string) (float64, error) {
	v, ok := getLeafValue(table, key)
	if !ok {
		return 0, status.New(status.InvalidOption, op, key+": not found")
	}
	f, ok := v.(float64)
	if !ok {
		return 0, status.New(status.InvalidOption, op, key+": is not a number")
	}
	return f, nil
}

func optionalFloat64(table map[string]interface{}, key string, def float64) float64 {
	v, ok := getLeafValue(table, key)
	if !ok {
		return def
	}
	f, ok := v.(float64)
	if !ok {
		return def
	}
	return f
}

func optionalBool(table map[string]interface{}, key string, def bool) bool {
	v, ok := getLeafValue(table, key)
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}

func optionalString(table map[string]interface{}, key, def string) string {
	v, ok := getLeafValue(table, key)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

// LoadProfile parses a JSON5-encoded CalibratedProfile: six parallel
// real arrays under "rho", "f", "phi", "kd", "b", "d", plus a complex
// amplitude given as parallel "t_hat_re"/"t_hat_im" real arrays (JSON
// has no native complex type).
func LoadProfile(data []byte) (*geometry.CalibratedProfile, error) {
	const op = "config.LoadProfile"
	var table map[string]interface{}
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, status.Wrap(status.InvalidOption, op, "invalid JSON5", err)
	}

	rho, err := requireFloat64Array(table, op, "rho")
	if err != nil {
		return nil, err
	}
	f, err := requireFloat64Array(table, op, "f")
	if err != nil {
		return nil, err
	}
	phi, err := requireFloat64Array(table, op, "phi")
	if err != nil {
		return nil, err
	}
	kd, err := requireFloat64Array(table, op, "kd")
	if err != nil {
		return nil, err
	}
	b, err := requireFloat64Array(table, op, "b")
	if err != nil {
		return nil, err
	}
	d, err := requireFloat64Array(table, op, "d")
	if err != nil {
		return nil, err
	}
	re, err := requireFloat64Array(table, op, "t_hat_re")
	if err != nil {
		return nil, err
	}
	im, err := requireFloat64Array(table, op, "t_hat_im")
	if err != nil {
		return nil, err
	}
	if len(re) != len(im) {
		return nil, status.New(status.InvalidOption, op, "t_hat_re and t_hat_im lengths differ")
	}
	tHat := make([]complex128, len(re))
	for i := range re {
		tHat[i] = complex(re[i], im[i])
	}

	profile := &geometry.CalibratedProfile{Rho: rho, F: f, Phi: phi, KD: kd, B: b, D: d, THat: tHat}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

var windowTypeNames = map[string]window.Type{
	"rect":        window.Rect,
	"cos_squared": window.CosSquared,
	"kb20":        window.KB20,
	"kb25":        window.KB25,
	"kb35":        window.KB35,
	"kbmd20":      window.KBMD20,
	"kbmd25":      window.KBMD25,
	"kbmd35":      window.KBMD35,
	"kb_alpha":    window.KBAlpha,
	"kbmd_alpha":  window.KBMDAlpha,
}

var strategyKindNames = map[string]geometry.StrategyKind{
	"fresnel":          geometry.Fresnel,
	"legendre":         geometry.Legendre,
	"newton":           geometry.Newton,
	"perturbed_newton": geometry.PerturbedNewton,
	"elliptic_newton":  geometry.EllipticNewton,
	"fft":              geometry.FFT,
}

// LoadOptions parses a JSON5-encoded ReconstructionOptions record.
func LoadOptions(data []byte) (*geometry.Options, error) {
	const op = "config.LoadOptions"
	var table map[string]interface{}
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, status.Wrap(status.InvalidOption, op, "invalid JSON5", err)
	}

	res, err := requireFloat64(table, op, "res")
	if err != nil {
		return nil, err
	}
	rhoLo, err := requireFloat64(table, op, "rho_lo")
	if err != nil {
		return nil, err
	}
	rhoHi, err := requireFloat64(table, op, "rho_hi")
	if err != nil {
		return nil, err
	}

	windowName := optionalString(table, "window", "rect")
	winType, ok := windowTypeNames[windowName]
	if !ok {
		return nil, status.New(status.InvalidOption, op, "window: unrecognized window type "+windowName)
	}
	alpha := optionalFloat64(table, "alpha", 0)

	strategyName := optionalString(table, "strategy", "fresnel")
	kind, ok := strategyKindNames[strategyName]
	if !ok {
		return nil, status.New(status.InvalidOption, op, "strategy: unrecognized strategy "+strategyName)
	}
	order := int(optionalFloat64(table, "legendre_order", 4))

	var perturbation [5]float64
	if _, present := getLeafValue(table, "perturbation"); present {
		perturbArr, perr := requireFloat64Array(table, op, "perturbation")
		if perr != nil {
			return nil, perr
		}
		for i := 0; i < len(perturbArr) && i < 5; i++ {
			perturbation[i] = perturbArr[i]
		}
	}

	opts := &geometry.Options{
		Res:               res,
		Window:            window.Spec{Type: winType, Alpha: alpha},
		Strategy:          geometry.StrategySpec{Kind: kind, Order: order},
		Normalize:         optionalBool(table, "normalize", true),
		UseBFac:           optionalBool(table, "use_bfac", false),
		Sigma:             optionalFloat64(table, "sigma", 0),
		Omega:             optionalFloat64(table, "omega", 0),
		SampleIntervalSec: optionalFloat64(table, "sample_interval_sec", 0),
		RhoLo:             rhoLo,
		RhoHi:             rhoHi,
		Perturbation:      perturbation,
		Ecc:               optionalFloat64(table, "ecc", 0),
		Peri:              optionalFloat64(table, "peri", 0),
		InterpOrder:       int(optionalFloat64(table, "interp_order", 0)),
		RunForward:        optionalBool(table, "run_forward", false),
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}
