package peptide

// Monoisotopic residue masses in Daltons (residue = amino acid - H2O).
var residueMasses = map[byte]float64{
	'A': 71.03711381,
	'R': 156.10111105,
	'N': 114.04292747,
	'D': 115.02694303,
	'C': 103.00918451,
	'E': 129.04259309,
	'Q': 128.05857751,
	'G': 57.02146374,
	'H': 137.05891188,
	'I': 113.08406400,
	'L': 113.08406400,
	'K': 128.09496302,
	'M': 131.04048508,
	'F': 147.06841391,
	'P': 97.05276385,
	'S': 87.03202841,
	'T': 101.04767847,
	'U': 150.95363559,
	'W': 186.07931300,
	'Y': 163.06332853,
	'V': 99.06841391,
}

var residueMass [256]float64

func init() {
	for c, m := range residueMasses {
		residueMass[c] = m
	}
}

// ResidueMass returns the monoisotopic residue mass of an upper-case
// one-letter code, false for unknown letters.
func ResidueMass(c byte) (float64, bool) {
	m := residueMass[c]
	return m, m != 0
}
