package annotated

import "strings"

// Render emits the annotated substring of seq covered by w.
//
// Each residue in the window is followed by its token when mods holds one.
// When the window starts at slot 0 the N-terminal token is written first in
// the "[token]-" form, even if no residue follows, so "[Acetyl]-" renders
// back to itself. The C-terminal slot has no string syntax and is never
// written. Windows reaching outside [0, L+1] are clamped.
//
// Complexity: O(window length).
func Render(seq string, mods Mods, w Window) string {
	l := len(seq)
	w = w.Clamp(l)
	if w.Empty() {
		return ""
	}
	first, last := max(w.First, 1), min(w.Last, l)

	var b strings.Builder
	b.Grow(max(last-first+1, 0) + 16*len(mods))
	if w.First == 0 {
		if tok, ok := mods[0]; ok {
			b.WriteString(tok)
			b.WriteByte('-')
		}
	}
	for slot := first; slot <= last; slot++ {
		b.WriteByte(seq[slot-1])
		if tok, ok := mods[slot]; ok {
			b.WriteString(tok)
		}
	}

	return b.String()
}

// FromSlots builds a Mods map from a slot array of a length-L sequence.
// at reports the bare token for a slot; FromSlots adds the brackets.
func FromSlots(l int, at func(slot int) (string, bool)) Mods {
	mods := make(Mods)
	for slot := 0; slot <= l+1; slot++ {
		if tok, ok := at(slot); ok {
			mods[slot] = Bracket(tok)
		}
	}

	return mods
}
