package fragment

import (
	"iter"
	"strconv"

	"github.com/katalvlaran/lvms/annotated"
	"github.com/katalvlaran/lvms/mass"
)

// Fragment is one fragment ion. It is immutable after New.
type Fragment struct {
	ionType IonType
	number  int
	mass    float64
	parent  Polymer
}

// New returns a fragment carrying the given fields. number is not validated
// against the parent length; derived views clamp it. parent may be nil.
func New(t IonType, number int, monoisotopicMass float64, parent Polymer) *Fragment {
	return &Fragment{ionType: t, number: number, mass: monoisotopicMass, parent: parent}
}

// Type returns the ion series.
func (f *Fragment) Type() IonType { return f.ionType }

// Number returns the fragment length counted from its terminus.
func (f *Fragment) Number() int { return f.number }

// MonoisotopicMass returns the mass supplied at construction.
func (f *Fragment) MonoisotopicMass() float64 { return f.mass }

// Parent returns the parent polymer, nil when detached.
func (f *Fragment) Parent() Polymer { return f.parent }

// Detached reports whether the fragment has no parent.
func (f *Fragment) Detached() bool { return f.parent == nil }

// Window returns the clamped slot window of the fragment inside its parent.
// Detached fragments return an empty window. A C-terminal ion longer than
// the parent clamps down to slot 0, so its window, annotated sequence and
// modifications then include the N-terminal slot as well.
func (f *Fragment) Window() annotated.Window {
	if f.parent == nil {
		return annotated.Window{First: 1, Last: 0}
	}
	l := f.parent.Len()
	if f.ionType.Terminus() == NTerminus {
		return annotated.NTerminal(f.number).Clamp(l)
	}
	return annotated.CTerminal(l, f.number).Clamp(l)
}

// Sequence returns the plain residues covered by the fragment.
func (f *Fragment) Sequence() string {
	if f.parent == nil {
		return ""
	}
	seq := f.parent.Sequence()
	n := min(max(f.number, 0), len(seq))
	if f.ionType.Terminus() == NTerminus {
		return seq[:n]
	}
	return seq[len(seq)-n:]
}

// AnnotatedSequence returns the covered residues with their modification
// tokens. The N-terminal token appears when the window reaches slot 0.
func (f *Fragment) AnnotatedSequence() string {
	if f.parent == nil {
		return ""
	}
	p := f.parent
	mods := annotated.FromSlots(p.Len(), func(slot int) (string, bool) {
		m, ok := p.ModificationAt(slot)
		if !ok {
			return "", false
		}
		return m.Token(), true
	})

	return annotated.Render(p.Sequence(), mods, f.Window())
}

// Modifications yields the parent modifications inside the fragment window,
// skipping empty slots, from the lowest slot to the highest.
func (f *Fragment) Modifications() iter.Seq[Modification] {
	return func(yield func(Modification) bool) {
		if f.parent == nil {
			return
		}
		w := f.Window()
		for slot := w.First; slot <= w.Last; slot++ {
			m, ok := f.parent.ModificationAt(slot)
			if !ok {
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}

// ModificationMass sums the masses of Modifications.
func (f *Fragment) ModificationMass() float64 {
	var sum float64
	for m := range f.Modifications() {
		sum += m.MonoisotopicMass()
	}
	return sum
}

// MZ returns the m/z of the fragment at the given charge.
func (f *Fragment) MZ(charge int) (float64, error) {
	return mass.ToMZ(f.mass, charge)
}

// String returns the ion label, e.g. "y3".
func (f *Fragment) String() string {
	return f.ionType.String() + strconv.Itoa(f.number)
}

// Equal reports whether f and o have the same ion type and number and
// masses within mass.DefaultEpsilon. Parents are not compared.
func (f *Fragment) Equal(o *Fragment) bool {
	return f.EqualWithin(o, mass.DefaultEpsilon)
}

// EqualWithin is Equal with an explicit mass epsilon.
func (f *Fragment) EqualWithin(o *Fragment, eps float64) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.ionType == o.ionType && f.number == o.number && mass.EqualWithin(f.mass, o.mass, eps)
}

// Key returns the hash key of f. The mass is left out so that fragments
// equal under any epsilon land in the same bucket.
func (f *Fragment) Key() Key {
	return Key{Type: f.ionType, Number: f.number}
}
