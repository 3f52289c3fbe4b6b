package peptide

import "errors"

var (
	// ErrEmptySequence indicates a peptide without residues.
	ErrEmptySequence = errors.New("peptide: empty sequence")

	// ErrInvalidResidue indicates a character that is not a residue letter.
	ErrInvalidResidue = errors.New("peptide: invalid residue")

	// ErrSlotOutOfRange indicates a slot outside [0, L+1].
	ErrSlotOutOfRange = errors.New("peptide: slot out of range")

	// ErrSiteNotAllowed indicates a modification whose sites exclude the slot.
	ErrSiteNotAllowed = errors.New("peptide: modification not allowed at site")

	// ErrUnknownModification indicates a token that names no known modification.
	ErrUnknownModification = errors.New("peptide: unknown modification")
)
