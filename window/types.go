// Package window implements the window-function library of spec.md §4.2:
// a real, even, compactly-supported family used by the transform driver
// to taper the quadrature sum over each output sample's span.
package window

import (
	"fmt"

	"github.com/ringoccs/ringoccs-go/status"
)

// Type enumerates the window families ReconstructionOptions can select.
type Type int

const (
	Rect Type = iota
	CosSquared
	KB20
	KB25
	KB35
	KBMD20
	KBMD25
	KBMD35
	KBAlpha
	KBMDAlpha
)

func (t Type) String() string {
	switch t {
	case Rect:
		return "Rect"
	case CosSquared:
		return "CosSquared"
	case KB20:
		return "KB20"
	case KB25:
		return "KB25"
	case KB35:
		return "KB35"
	case KBMD20:
		return "KBMD20"
	case KBMD25:
		return "KBMD25"
	case KBMD35:
		return "KBMD35"
	case KBAlpha:
		return "KBAlpha"
	case KBMDAlpha:
		return "KBMDAlpha"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Window is a real, even function with compact support [-W/2, W/2].
type Window interface {
	// Eval returns w(x; W). It is zero for |x| >= W/2.
	Eval(x, w float64) float64
	// NormEq returns the normalized equivalent width for support width w.
	NormEq(w float64) (float64, error)
}

// Spec selects a window family; Alpha is only consulted for KBAlpha and
// KBMDAlpha.
type Spec struct {
	Type  Type
	Alpha float64
}

// New builds the Window described by spec.
func New(spec Spec) (Window, error) {
	const op = "window.New"
	switch spec.Type {
	case Rect:
		return rectWindow{}, nil
	case CosSquared:
		return cosSquaredWindow{}, nil
	case KB20:
		return kaiserBessel{alpha: 2.0}, nil
	case KB25:
		return kaiserBessel{alpha: 2.5}, nil
	case KB35:
		return kaiserBessel{alpha: 3.5}, nil
	case KBMD20:
		return kaiserBesselModified{alpha: 2.0}, nil
	case KBMD25:
		return kaiserBesselModified{alpha: 2.5}, nil
	case KBMD35:
		return kaiserBesselModified{alpha: 3.5}, nil
	case KBAlpha:
		if spec.Alpha < 0 {
			return nil, status.New(status.DomainError, op, "alpha must be >= 0")
		}
		return kaiserBessel{alpha: spec.Alpha}, nil
	case KBMDAlpha:
		if spec.Alpha <= 0 {
			return nil, status.New(status.DomainError, op, "alpha must be > 0")
		}
		return kaiserBesselModified{alpha: spec.Alpha}, nil
	default:
		return nil, status.New(status.InvalidOption, op, fmt.Sprintf("unknown window type %v", spec.Type))
	}
}
