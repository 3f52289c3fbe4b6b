// Package sites describes where a chemical modification may attach on a peptide.
//
// What is a site mask?
//
//	Every standard residue letter and each of the four structural termini
//	(peptide N/C, protein N/C) owns exactly one bit of a Mask. A modification
//	that may sit on serine, threonine or tyrosine carries S|T|Y; asking whether
//	it may sit on a given position is a single AND:
//
//	  mask.Has(sites.S) // true
//	  mask.Has(sites.K) // false
//
// Masks are plain values: combine them with | or Union, intersect with & or
// Intersect. Every bit pattern is a valid Mask; the package never decides
// whether a combination is chemically meaningful.
//
// Residue letters map to their site bit through a fixed 256-entry table
// (FromResidue), so the lookup is allocation-free and case-insensitive.
//
// Usage:
//
//	m, err := sites.Parse("S|T|Y")
//	if err != nil {
//	  // handle sites.ErrUnknownSite
//	}
//	site, _ := sites.FromResidue('s')
//	fmt.Println(m.Has(site)) // true
package sites
