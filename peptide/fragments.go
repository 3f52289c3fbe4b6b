package peptide

import (
	"iter"

	"github.com/katalvlaran/lvms/annotated"
	"github.com/katalvlaran/lvms/fragment"
)

// Fragment returns the fragment ion of series t and length n with its
// neutral monoisotopic mass: residues and modifications inside the ion
// window plus the series cap.
func (p *Peptide) Fragment(t fragment.IonType, n int) *fragment.Fragment {
	w := annotated.NTerminal(n)
	if t.Terminus() == fragment.CTerminus {
		w = annotated.CTerminal(len(p.seq), n)
	}

	return fragment.New(t, n, p.windowMass(w)+t.Cap(), p)
}

// Fragments yields, for each series in types, the fragments of length
// 1..L-1 in ascending length.
func (p *Peptide) Fragments(types ...fragment.IonType) iter.Seq[*fragment.Fragment] {
	return func(yield func(*fragment.Fragment) bool) {
		for _, t := range types {
			for n := 1; n < len(p.seq); n++ {
				if !yield(p.Fragment(t, n)) {
					return
				}
			}
		}
	}
}

// FragmentList collects Fragments into a slice.
func (p *Peptide) FragmentList(types ...fragment.IonType) []*fragment.Fragment {
	out := make([]*fragment.Fragment, 0, len(types)*max(len(p.seq)-1, 0))
	for f := range p.Fragments(types...) {
		out = append(out, f)
	}
	return out
}
