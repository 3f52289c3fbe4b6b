package mass

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit selects how a Tolerance value is interpreted.
type Unit int

const (
	// Dalton is an absolute window in Daltons.
	Dalton Unit = iota
	// PPM is a relative window in parts-per-million of the reference mass.
	PPM
)

// String returns "Da" or "ppm".
func (u Unit) String() string {
	if u == PPM {
		return "ppm"
	}
	return "Da"
}

// Tolerance is a symmetric matching window around a reference mass.
type Tolerance struct {
	Value float64
	Unit  Unit
}

// Daltons returns an absolute tolerance.
func Daltons(v float64) Tolerance { return Tolerance{Value: v, Unit: Dalton} }

// PartsPerMillion returns a relative tolerance.
func PartsPerMillion(v float64) Tolerance { return Tolerance{Value: v, Unit: PPM} }

// Width returns the half-width of the window, in Daltons, around ref.
func (t Tolerance) Width(ref float64) float64 {
	if t.Unit == PPM {
		if ref < 0 {
			ref = -ref
		}
		return ref * t.Value / 1e6
	}
	return t.Value
}

// Window returns the inclusive [lo, hi] bounds around ref.
func (t Tolerance) Window(ref float64) (lo, hi float64) {
	w := t.Width(ref)
	return ref - w, ref + w
}

// Within reports whether observed lies inside the window around ref.
func (t Tolerance) Within(ref, observed float64) bool {
	lo, hi := t.Window(ref)
	return observed >= lo && observed <= hi
}

// String formats the tolerance as "10ppm" or "0.02Da".
func (t Tolerance) String() string {
	return strconv.FormatFloat(t.Value, 'f', -1, 64) + t.Unit.String()
}

// ParseTolerance reads values such as "10ppm", "0.5 Da" or "0.02da".
// A bare number is taken as Daltons.
func ParseTolerance(s string) (Tolerance, error) {
	raw := strings.TrimSpace(s)
	unit := Dalton
	lower := strings.ToLower(raw)
	switch {
	case strings.HasSuffix(lower, "ppm"):
		unit = PPM
		raw = raw[:len(raw)-3]
	case strings.HasSuffix(lower, "da"):
		raw = raw[:len(raw)-2]
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return Tolerance{}, fmt.Errorf("%w: %q", ErrBadTolerance, s)
	}

	return Tolerance{Value: v, Unit: unit}, nil
}
