// SPDX-License-Identifier: MIT

package mass

import "math"

// DefaultEpsilon is the absolute tolerance, in Daltons, under which two
// masses are considered equal.
const DefaultEpsilon = 1e-9

// Monoisotopic masses in Daltons.
const (
	Proton         = 1.00727646688
	Hydrogen       = 1.00782503207
	Water          = 18.0105646837
	Ammonia        = 17.0265491015
	CarbonMonoxide = 27.9949146221
)

// Equal reports whether a and b differ by less than DefaultEpsilon.
func Equal(a, b float64) bool { return EqualWithin(a, b, DefaultEpsilon) }

// EqualWithin reports whether |a-b| < eps. NaN is never equal to anything.
func EqualWithin(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// ToMZ converts a neutral mass to the m/z of the given charge state.
// Negative charges remove protons.
func ToMZ(m float64, charge int) (float64, error) {
	if charge == 0 {
		return 0, ErrZeroCharge
	}
	z := float64(charge)

	return (m + z*Proton) / math.Abs(z), nil
}

// FromMZ converts an m/z of the given charge state back to a neutral mass.
func FromMZ(mz float64, charge int) (float64, error) {
	if charge == 0 {
		return 0, ErrZeroCharge
	}
	z := float64(charge)

	return mz*math.Abs(z) - z*Proton, nil
}
