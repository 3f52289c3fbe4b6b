package peptide

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvms/annotated"
	"github.com/katalvlaran/lvms/fragment"
	"github.com/katalvlaran/lvms/mass"
	"github.com/katalvlaran/lvms/sites"
)

// Peptide is a residue sequence with one optional modification per slot.
type Peptide struct {
	seq  string
	mods []*Modification // len(seq)+2
}

var _ fragment.Polymer = (*Peptide)(nil)

// New returns an unmodified peptide. Residues are upper-cased and must be
// standard one-letter codes.
func New(seq string) (*Peptide, error) {
	if seq == "" {
		return nil, ErrEmptySequence
	}
	up := strings.ToUpper(seq)
	for i := 0; i < len(up); i++ {
		if _, ok := ResidueMass(up[i]); !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidResidue, up[i], i+1)
		}
	}

	return &Peptide{seq: up, mods: make([]*Modification, len(up)+2)}, nil
}

// Len returns the number of residues.
func (p *Peptide) Len() int { return len(p.seq) }

// Sequence returns the plain residue sequence.
func (p *Peptide) Sequence() string { return p.seq }

// AnnotatedSequence renders the sequence with every modification token.
// A C-terminal modification has no annotated form and is omitted.
func (p *Peptide) AnnotatedSequence() string {
	return annotated.Render(p.seq, p.tokens(), annotated.Full(len(p.seq)))
}

// String returns AnnotatedSequence.
func (p *Peptide) String() string { return p.AnnotatedSequence() }

func (p *Peptide) tokens() annotated.Mods {
	return annotated.FromSlots(len(p.seq), func(slot int) (string, bool) {
		if m := p.mods[slot]; m != nil {
			return m.Token(), true
		}
		return "", false
	})
}

// ModificationAt implements fragment.Polymer.
func (p *Peptide) ModificationAt(slot int) (fragment.Modification, bool) {
	m := p.Modification(slot)
	if m == nil {
		return nil, false
	}
	return m, true
}

// Modification returns the modification in slot, nil when empty or out of range.
func (p *Peptide) Modification(slot int) *Modification {
	if slot < 0 || slot >= len(p.mods) {
		return nil
	}
	return p.mods[slot]
}

// SiteAt returns the site mask a modification must match to occupy slot:
// NPep|NProt for slot 0, the residue bit for 1..L and PepC|ProtC for L+1.
// Out-of-range slots return sites.None.
func (p *Peptide) SiteAt(slot int) sites.Mask {
	switch {
	case slot == 0:
		return sites.NPep | sites.NProt
	case slot == len(p.seq)+1:
		return sites.PepC | sites.ProtC
	case slot > 0 && slot <= len(p.seq):
		s, _ := sites.FromResidue(p.seq[slot-1])
		return s
	}
	return sites.None
}

// SetModification places mod in slot, replacing what was there. A nil mod
// clears the slot.
func (p *Peptide) SetModification(slot int, mod *Modification) error {
	if slot < 0 || slot >= len(p.mods) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrSlotOutOfRange, slot, len(p.seq)+1)
	}
	if mod != nil && !mod.Sites.Has(p.SiteAt(slot)) {
		return fmt.Errorf("%w: %s at slot %d (%s)", ErrSiteNotAllowed, mod.Name, slot, p.SiteAt(slot))
	}
	p.mods[slot] = mod

	return nil
}

// ApplyModification places mod on every slot whose site is in
// mod.Sites & restrict and returns how many slots were set.
func (p *Peptide) ApplyModification(mod *Modification, restrict sites.Mask) int {
	if mod == nil {
		return 0
	}
	allowed := mod.Sites & restrict
	n := 0
	for slot := range p.mods {
		if allowed.Has(p.SiteAt(slot)) {
			p.mods[slot] = mod
			n++
		}
	}

	return n
}

// ClearModifications empties every slot.
func (p *Peptide) ClearModifications() {
	clear(p.mods)
}

// ModificationCount returns the number of occupied slots.
func (p *Peptide) ModificationCount() int {
	n := 0
	for _, m := range p.mods {
		if m != nil {
			n++
		}
	}
	return n
}

// MonoisotopicMass returns the neutral mass: residues, water and every
// modification.
func (p *Peptide) MonoisotopicMass() float64 {
	return p.windowMass(annotated.Full(len(p.seq))) + mass.Water
}

// windowMass sums residue and modification masses over a clamped window.
func (p *Peptide) windowMass(w annotated.Window) float64 {
	l := len(p.seq)
	w = w.Clamp(l)
	var sum float64
	for slot := w.First; slot <= w.Last; slot++ {
		if slot >= 1 && slot <= l {
			m, _ := ResidueMass(p.seq[slot-1])
			sum += m
		}
		if m := p.mods[slot]; m != nil {
			sum += m.Mass
		}
	}

	return sum
}
