package fragment

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvms/mass"
)

// IonType identifies a fragment ion series.
type IonType int

// Ion series. Each one is statically bound to a terminus; see Terminus.
const (
	A IonType = iota
	ADot
	B
	BDot
	C
	CDot
	X
	XDot
	Y
	YDot
	Z
	ZDot

	numIonTypes
)

type ionInfo struct {
	name     string
	terminus Terminus
	cap      float64
}

// ionTable is fixed: caps are neutral mass offsets added to the summed
// residue masses of the fragment; radical ("dot") series carry one extra H.
var ionTable = [numIonTypes]ionInfo{
	A:    {"a", NTerminus, -mass.CarbonMonoxide},
	ADot: {"adot", NTerminus, -mass.CarbonMonoxide + mass.Hydrogen},
	B:    {"b", NTerminus, 0},
	BDot: {"bdot", NTerminus, mass.Hydrogen},
	C:    {"c", NTerminus, mass.Ammonia},
	CDot: {"cdot", NTerminus, mass.Ammonia + mass.Hydrogen},
	X:    {"x", CTerminus, mass.Water + mass.CarbonMonoxide - 2*mass.Hydrogen},
	XDot: {"xdot", CTerminus, mass.Water + mass.CarbonMonoxide - mass.Hydrogen},
	Y:    {"y", CTerminus, mass.Water},
	YDot: {"ydot", CTerminus, mass.Water + mass.Hydrogen},
	Z:    {"z", CTerminus, mass.Water - mass.Ammonia},
	ZDot: {"zdot", CTerminus, mass.Water - mass.Ammonia + mass.Hydrogen},
}

// Valid reports whether t is one of the defined series.
func (t IonType) Valid() bool { return t >= A && t < numIonTypes }

// Terminus returns the end the series is counted from.
func (t IonType) Terminus() Terminus {
	if !t.Valid() {
		return NTerminus
	}
	return ionTable[t].terminus
}

// Cap returns the neutral mass offset of the series relative to the sum of
// its residue masses.
func (t IonType) Cap() float64 {
	if !t.Valid() {
		return 0
	}
	return ionTable[t].cap
}

// String returns the series name: "a", "adot", "b", ..., "zdot".
func (t IonType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("IonType(%d)", int(t))
	}
	return ionTable[t].name
}

// IonTypes lists every series in declaration order.
func IonTypes() []IonType {
	out := make([]IonType, 0, numIonTypes)
	for t := A; t < numIonTypes; t++ {
		out = append(out, t)
	}
	return out
}

// ParseIonType resolves a series name case-insensitively ("b", "Y", "zdot").
func ParseIonType(s string) (IonType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t := A; t < numIonTypes; t++ {
		if ionTable[t].name == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIonType, s)
}

// ParseIonTypes resolves a comma separated list such as "b,y".
func ParseIonTypes(s string) ([]IonType, error) {
	var out []IonType
	for _, f := range strings.Split(s, ",") {
		if strings.TrimSpace(f) == "" {
			continue
		}
		t, err := ParseIonType(f)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
