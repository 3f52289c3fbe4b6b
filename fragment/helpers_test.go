package fragment_test

import (
	"github.com/katalvlaran/lvms/annotated"
	"github.com/katalvlaran/lvms/fragment"
)

// testMod is a minimal fragment.Modification.
type testMod struct {
	name string
	mass float64
}

func (m testMod) MonoisotopicMass() float64 { return m.mass }
func (m testMod) Token() string             { return m.name }

var (
	modAcetyl   = testMod{"Acetyl", 42.010565}
	modPhospho  = testMod{"Phospho", 79.966331}
	modMethyl   = testMod{"Methyl", 14.01565}
	modAmidated = testMod{"Amidated", -0.984016}
)

// testPolymer is a fixed slot array over a plain sequence.
type testPolymer struct {
	seq   string
	slots map[int]fragment.Modification
}

func newPolymer(seq string, slots map[int]fragment.Modification) *testPolymer {
	return &testPolymer{seq: seq, slots: slots}
}

func (p *testPolymer) Len() int         { return len(p.seq) }
func (p *testPolymer) Sequence() string { return p.seq }

func (p *testPolymer) AnnotatedSequence() string {
	return annotated.Render(p.seq, annotated.FromSlots(len(p.seq), func(slot int) (string, bool) {
		m, ok := p.slots[slot]
		if !ok {
			return "", false
		}
		return m.Token(), true
	}), annotated.Full(len(p.seq)))
}

func (p *testPolymer) ModificationAt(slot int) (fragment.Modification, bool) {
	m, ok := p.slots[slot]
	return m, ok
}

// peptideFixture is "[Acetyl]-PEP[Phospho]TID[Methyl]E" with an amidated C-terminus.
func peptideFixture() *testPolymer {
	return newPolymer("PEPTIDE", map[int]fragment.Modification{
		0: modAcetyl,
		3: modPhospho,
		6: modMethyl,
		8: modAmidated,
	})
}

func tokens(f *fragment.Fragment) []string {
	var out []string
	for m := range f.Modifications() {
		out = append(out, m.Token())
	}
	return out
}
