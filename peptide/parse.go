package peptide

import (
	"fmt"

	"github.com/katalvlaran/lvms/annotated"
)

// Parse builds a peptide from an annotated sequence, resolving every token
// through set. A nil set resolves only signed mass tokens such as "[+15.9949]".
func Parse(s string, set *ModificationSet, opts ...annotated.Option) (*Peptide, error) {
	parsed, err := annotated.Parse(s, opts...)
	if err != nil {
		return nil, err
	}
	p, err := New(parsed.Sequence)
	if err != nil {
		return nil, err
	}
	for _, slot := range parsed.Mods.Slots() {
		mod, err := set.Resolve(annotated.Unbracket(parsed.Mods[slot]))
		if err != nil {
			return nil, err
		}
		if err := p.SetModification(slot, mod); err != nil {
			return nil, fmt.Errorf("parse %q: %w", s, err)
		}
	}

	return p, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(s string, set *ModificationSet) *Peptide {
	p, err := Parse(s, set)
	if err != nil {
		panic(err)
	}
	return p
}
