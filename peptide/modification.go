// SPDX-License-Identifier: MIT

package peptide

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvms/sites"
)

// Modification is a named mass delta restricted to a set of sites.
type Modification struct {
	Name  string
	Mass  float64
	Sites sites.Mask
}

// MonoisotopicMass returns the mass delta.
func (m *Modification) MonoisotopicMass() float64 { return m.Mass }

// Token returns the bracket contents used in annotated sequences.
func (m *Modification) Token() string { return m.Name }

// String formats the modification as "Phospho(+79.966331 @ S|T|Y)".
func (m *Modification) String() string {
	return fmt.Sprintf("%s(%+.6f @ %s)", m.Name, m.Mass, m.Sites)
}

// ModificationSet resolves annotation tokens to modifications.
type ModificationSet struct {
	byName map[string]*Modification
}

// NewModificationSet returns a set holding mods. Later entries replace
// earlier ones with the same name.
func NewModificationSet(mods ...*Modification) *ModificationSet {
	s := &ModificationSet{byName: make(map[string]*Modification, len(mods))}
	for _, m := range mods {
		s.Add(m)
	}

	return s
}

// DefaultModifications returns a set of common modifications.
func DefaultModifications() *ModificationSet {
	return NewModificationSet(
		&Modification{Name: "Acetyl", Mass: 42.010565, Sites: sites.K | sites.NPep | sites.NProt},
		&Modification{Name: "Amidated", Mass: -0.984016, Sites: sites.PepC | sites.ProtC},
		&Modification{Name: "Carbamidomethyl", Mass: 57.021464, Sites: sites.C},
		&Modification{Name: "Deamidated", Mass: 0.984016, Sites: sites.N | sites.Q},
		&Modification{Name: "Methyl", Mass: 14.01565, Sites: sites.K | sites.R},
		&Modification{Name: "Oxidation", Mass: 15.994915, Sites: sites.M | sites.W},
		&Modification{Name: "Phospho", Mass: 79.966331, Sites: sites.S | sites.T | sites.Y},
	)
}

// Add inserts m, replacing any modification with the same name.
func (s *ModificationSet) Add(m *Modification) {
	if m == nil {
		return
	}
	s.byName[m.Name] = m
}

// Lookup returns the modification registered under name.
func (s *ModificationSet) Lookup(name string) (*Modification, bool) {
	if s == nil {
		return nil, false
	}
	m, ok := s.byName[name]
	return m, ok
}

// Resolve looks a token up by name, falling back to a signed mass delta such
// as "+79.966331", which yields an anonymous modification allowed anywhere.
func (s *ModificationSet) Resolve(token string) (*Modification, error) {
	if m, ok := s.Lookup(token); ok {
		return m, nil
	}
	if strings.HasPrefix(token, "+") || strings.HasPrefix(token, "-") {
		if v, err := strconv.ParseFloat(token, 64); err == nil {
			return &Modification{Name: token, Mass: v, Sites: sites.All}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownModification, token)
}

// Names returns the registered names in sorted order.
func (s *ModificationSet) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.byName))
	for n := range s.byName {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// Len returns the number of registered modifications.
func (s *ModificationSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.byName)
}
