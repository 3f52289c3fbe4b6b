// SPDX-License-Identifier: MIT

package sites

// Mask is a set of modification sites, one bit per site.
type Mask uint32

// Residue sites. The bit order follows the conventional residue listing
// used by modification tables and must stay stable: masks are persisted in
// configuration files by name, but callers may also store raw values.
const (
	A Mask = 1 << iota
	R
	N
	D
	C
	E
	Q
	G
	H
	I
	L
	K
	M
	F
	P
	S
	T
	U
	W
	Y
	V

	// NPep is the N-terminus of the peptide.
	NPep
	// PepC is the C-terminus of the peptide.
	PepC
	// NProt is the N-terminus of the protein.
	NProt
	// ProtC is the C-terminus of the protein.
	ProtC

	sentinel
)

const (
	// None is the empty mask.
	None Mask = 0

	// All has every defined site bit set.
	All Mask = sentinel - 1

	// Residues has every residue bit set and no terminal bits.
	Residues Mask = NPep - 1

	// Termini has the four structural terminal bits set.
	Termini Mask = NPep | PepC | NProt | ProtC
)

// siteNames lists one name per bit, in bit order.
var siteNames = [...]string{
	"A", "R", "N", "D", "C", "E", "Q", "G", "H", "I", "L",
	"K", "M", "F", "P", "S", "T", "U", "W", "Y", "V",
	"NPep", "PepC", "NProt", "ProtC",
}
