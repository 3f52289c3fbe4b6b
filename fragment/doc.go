// Package fragment models a single peptide fragment ion.
//
// A Fragment carries an ion type (a, b, c, x, y, z and their radical
// variants), an ordinal number counted from the ion's terminus, a
// precomputed monoisotopic mass and an optional, non-owning reference to its
// parent Polymer. The fragment never computes its own mass; it is a carrier.
//
// Derived views slice the parent:
//
//	Sequence            first (N-terminal ions) or last (C-terminal ions) number residues
//	AnnotatedSequence   the same window rendered with bracketed modification tokens
//	Modifications       lazy sequence of the parent modifications inside the window
//
// Slot windows:
//
//	N-terminal ion of number n:           [0, n]
//	C-terminal ion of number n, length L: [(L+1)-n, L+1]
//
// Out-of-range numbers are clamped like substring bounds instead of failing.
// An over-long C-terminal ion therefore reaches slot 0 and picks up the
// N-terminal modification.
// A fragment without a parent yields empty results from every derived view.
//
// Identity: two fragments are Equal when ion type and number match and the
// masses agree within mass.DefaultEpsilon (EqualWithin takes any epsilon).
// Key returns the (type, number) hash key: Equal fragments always share it.
// Set buckets fragments by Key and resolves membership with EqualWithin.
//
// Fragments are immutable and safe for concurrent reads as long as the
// parent's modification slots are not mutated meanwhile.
package fragment
