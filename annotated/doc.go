// Package annotated converts between modification-annotated peptide strings
// and their slot-indexed form.
//
// Annotated sequences interleave residue letters with bracketed
// modification tokens:
//
//	[Acetyl]-PEPS[Phospho]TIDE
//
// Grammar:
//
//	AnnotatedSeq := [NTermMod '-']? (Residue [Mod]?)*
//	Mod          := '[' token-chars-without-']' ']'
//
// Slots:
//
//	A peptide of length L has L+2 modification slots. Slot 0 is the
//	N-terminus, slot i (1..L) belongs to residue i-1 of the plain sequence and
//	slot L+1 is the C-terminus. Parse returns the plain sequence plus a Mods
//	map from slot to bracketed token; Render walks a closed slot Window and
//	re-emits the annotated substring. The C-terminal slot has no string syntax
//	and is only reachable through the Window API.
//
// Parsing is an explicit two-state machine (Scanning, InToken) driven one
// byte at a time by Scanner; Parse is a thin loop around it. Malformed input
// (unterminated bracket, stray ']' or '-', a slot modified twice) fails with
// a *SyntaxError wrapping ErrMalformedAnnotation and never returns partial
// output.
//
// Index convention:
//
//	Unshifted (default) assigns every token to the slot of the residue it
//	follows. Reference reproduces a legacy scanner that advanced its residue
//	counter when a token closed, so every token after the first one lands one
//	slot further right per preceding token. Select it with
//	WithConvention(Reference) only when byte-for-byte agreement with data
//	produced by that scanner matters.
//
// Round trip (Unshifted):
//
//	p, _ := annotated.Parse(s)
//	annotated.Render(p.Sequence, p.Mods, annotated.Full(len(p.Sequence))) == s
//
// All functions are pure and safe for concurrent use.
package annotated
