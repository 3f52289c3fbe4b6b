// Package lvms models annotated peptide sequences and their fragment ions.
//
// A modified peptide is written as residues with bracketed modification
// tokens after the residue they decorate, and an optional N-terminal token
// followed by a hyphen:
//
//	[Acetyl]-PEPT[Phospho]IDE
//
// Internally a sequence of length L has L+2 slots: 0 is the N-terminus,
// 1..L are the residues and L+1 is the C-terminus.
//
//	slot:  0   1 2 3 4 5 6 7   8
//	      [N]  P E P T I D E  [C]
//
// The module is organised as:
//
//	sites/        site bitmask (20 residues, U, peptide and protein termini)
//	annotated/    annotated sequence scanner, slot windows and rendering
//	mass/         mass constants, tolerance windows, m/z conversion
//	fragment/     ion series and Fragment, a view onto a parent polymer
//	peptide/      a Polymer implementation with a modification catalogue
//	cmd/lvms      command line front end (parse, fragments, sites)
//	examples/     small scenario programs
//
// Library packages do not log and never panic on user input; every error is
// a sentinel or wraps one so callers can match it with errors.Is.
//
//	go install github.com/katalvlaran/lvms/cmd/lvms@latest
package lvms
