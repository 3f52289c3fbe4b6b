package fragment

// Set is a collection of distinct fragments under a mass epsilon.
// The zero value is not usable; call NewSet.
type Set struct {
	eps     float64
	buckets map[Key][]*Fragment
	n       int
}

// NewSet returns a Set comparing masses within eps and holding frags.
func NewSet(eps float64, frags ...*Fragment) *Set {
	s := &Set{eps: eps, buckets: make(map[Key][]*Fragment)}
	for _, f := range frags {
		s.Add(f)
	}
	return s
}

// Add inserts f unless an equal fragment is already present and reports
// whether it was inserted. nil is ignored.
func (s *Set) Add(f *Fragment) bool {
	if f == nil || s.Contains(f) {
		return false
	}
	k := f.Key()
	s.buckets[k] = append(s.buckets[k], f)
	s.n++
	return true
}

// Contains reports whether a fragment EqualWithin the set epsilon is present.
func (s *Set) Contains(f *Fragment) bool {
	if f == nil {
		return false
	}
	for _, g := range s.buckets[f.Key()] {
		if f.EqualWithin(g, s.eps) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct fragments.
func (s *Set) Len() int { return s.n }
