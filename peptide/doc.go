// Package peptide is the reference implementation of fragment.Polymer: a
// plain residue sequence with L+2 modification slots, built directly or
// parsed from an annotated string.
//
//	set := peptide.DefaultModifications()
//	p, err := peptide.Parse("[Acetyl]-PEPS[Phospho]TIDE", set)
//	if err != nil {
//	  // ErrUnknownModification, ErrSiteNotAllowed, annotated.ErrMalformedAnnotation, ...
//	}
//	for f := range p.Fragments(fragment.B, fragment.Y) {
//	  fmt.Println(f, f.AnnotatedSequence(), f.MonoisotopicMass())
//	}
//
// Slot legality is checked against sites: slot 0 accepts modifications
// allowed on NPep or NProt, residue slots accept modifications allowed on
// their residue letter, and slot L+1 accepts PepC or ProtC.
//
// Masses come from a fixed monoisotopic residue table; fragment masses add
// the ion series cap from fragment.IonType.Cap.
//
// Snapshot discipline: fragments borrow the peptide's slots without copying.
// Finish every SetModification/ApplyModification/ClearModifications call
// before handing fragments to other goroutines; a Peptide is not safe for
// concurrent mutation.
package peptide
