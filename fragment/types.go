// SPDX-License-Identifier: MIT

package fragment

// Modification is the capability a fragment needs from a modification.
type Modification interface {
	// MonoisotopicMass is the mass delta contributed by the modification.
	MonoisotopicMass() float64
	// Token is the display text placed between brackets, e.g. "Phospho".
	Token() string
}

// Polymer is the read-only view of a parent peptide.
//
// Slot indices run over [0, Len()+1]: slot 0 is the N-terminus, slot i in
// 1..Len() is residue i-1 and slot Len()+1 is the C-terminus.
type Polymer interface {
	Len() int
	Sequence() string
	AnnotatedSequence() string
	// ModificationAt reports the modification in slot, false when empty or
	// when slot is outside [0, Len()+1].
	ModificationAt(slot int) (Modification, bool)
}

// Terminus is the peptide end a fragment is measured from.
type Terminus int

const (
	// NTerminus is the amino end.
	NTerminus Terminus = iota
	// CTerminus is the carboxyl end.
	CTerminus
)

// String returns "N" or "C".
func (t Terminus) String() string {
	if t == CTerminus {
		return "C"
	}
	return "N"
}

// Key is the hashable part of a Fragment identity: ion type and number.
// Fragments that are Equal always share a Key; fragments sharing a Key are
// told apart by Equal.
type Key struct {
	Type   IonType
	Number int
}
