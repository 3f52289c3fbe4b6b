package sites

import (
	"fmt"
	"math/bits"
	"strings"
)

// Union returns the sites present in m or o.
func (m Mask) Union(o Mask) Mask { return m | o }

// Intersect returns the sites present in both m and o.
func (m Mask) Intersect(o Mask) Mask { return m & o }

// Without returns m with every site of o removed.
func (m Mask) Without(o Mask) Mask { return m &^ o }

// Has reports whether m shares at least one site with site.
// For a single-bit argument this is plain membership.
func (m Mask) Has(site Mask) bool { return m&site != 0 }

// IsEmpty reports whether no site is set.
func (m Mask) IsEmpty() bool { return m == None }

// Count returns the number of sites set in m.
func (m Mask) Count() int { return bits.OnesCount32(uint32(m)) }

// Sites decomposes m into its single-bit sites in ascending bit order.
// Bits above ProtC are ignored.
func (m Mask) Sites() []Mask {
	m &= All
	out := make([]Mask, 0, m.Count())
	for m != 0 {
		low := m & -m
		out = append(out, low)
		m &^= low
	}

	return out
}

// String renders m as site names joined by '|', "None" for the empty mask
// and "All" when every defined site is present.
func (m Mask) String() string {
	switch m & All {
	case None:
		return "None"
	case All:
		return "All"
	}
	parts := make([]string, 0, m.Count())
	for _, s := range m.Sites() {
		parts = append(parts, siteNames[bits.TrailingZeros32(uint32(s))])
	}

	return strings.Join(parts, "|")
}

// Parse reads a '|' or ',' separated list of site names such as "S|T|Y" or
// "K,NPep". Names are case-sensitive for the terminal sites and
// case-insensitive for single residue letters. "None" and "All" are accepted.
func Parse(expr string) (Mask, error) {
	var m Mask
	fields := strings.FieldsFunc(expr, func(r rune) bool {
		return r == '|' || r == ',' || r == ' '
	})
	for _, f := range fields {
		s, ok := lookupName(f)
		if !ok {
			return None, fmt.Errorf("%w: %q", ErrUnknownSite, f)
		}
		m |= s
	}

	return m, nil
}

func lookupName(name string) (Mask, bool) {
	switch name {
	case "None":
		return None, true
	case "All":
		return All, true
	}
	if len(name) == 1 {
		return FromResidue(name[0])
	}
	for i, n := range siteNames {
		if n == name {
			return Mask(1) << i, true
		}
	}

	return None, false
}
