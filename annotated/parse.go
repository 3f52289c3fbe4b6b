package annotated

// Parse splits an annotated sequence into its plain sequence and a
// slot-indexed token map. Input without brackets is returned unchanged with
// an empty map.
//
// Errors: a *SyntaxError wrapping ErrMalformedAnnotation.
//
// Complexity: O(n) time and space.
func Parse(s string, opts ...Option) (Parsed, error) {
	sc := NewScanner(opts...)
	for i := 0; i < len(s); i++ {
		if err := sc.Step(i, s[i]); err != nil {
			return Parsed{}, err
		}
	}

	return sc.Finish()
}

// Strip returns only the plain residue sequence of s.
func Strip(s string, opts ...Option) (string, error) {
	p, err := Parse(s, opts...)
	if err != nil {
		return "", err
	}
	return p.Sequence, nil
}
