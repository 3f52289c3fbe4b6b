package sites

var residueSite [256]Mask

func init() {
	for i := 0; i <= 20; i++ {
		c := siteNames[i][0]
		residueSite[c] = Mask(1) << i
		residueSite[c+'a'-'A'] = Mask(1) << i
	}
}

// FromResidue returns the site bit of a one-letter residue code.
// Lower-case letters resolve like upper-case ones; anything else reports false.
func FromResidue(c byte) (Mask, bool) {
	s := residueSite[c]
	return s, s != None
}

// IsResidue reports whether c is a known residue letter.
func IsResidue(c byte) bool { return residueSite[c] != None }
