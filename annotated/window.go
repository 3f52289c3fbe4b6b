package annotated

import "fmt"

// Window is a closed range of slot indices [First, Last].
// A window with First > Last is empty.
type Window struct {
	First, Last int
}

// Full covers every slot of a length-L sequence: [0, L+1].
func Full(l int) Window { return Window{First: 0, Last: l + 1} }

// NTerminal covers the N-terminal slot and the first n residue slots: [0, n].
func NTerminal(n int) Window { return Window{First: 0, Last: n} }

// CTerminal covers the last n residue slots and the C-terminal slot of a
// length-L sequence: [(L+1)-n, L+1].
func CTerminal(l, n int) Window { return Window{First: l + 1 - n, Last: l + 1} }

// Empty reports whether w contains no slot.
func (w Window) Empty() bool { return w.First > w.Last }

// Contains reports whether slot lies inside w.
func (w Window) Contains(slot int) bool { return slot >= w.First && slot <= w.Last }

// Clamp intersects w with [0, L+1].
func (w Window) Clamp(l int) Window {
	return Window{First: max(w.First, 0), Last: min(w.Last, l+1)}
}

// Validate reports ErrInvalidSlotIndex when a non-empty w reaches outside
// [0, L+1].
func (w Window) Validate(l int) error {
	if w.Empty() {
		return nil
	}
	if w.First < 0 || w.Last > l+1 {
		return fmt.Errorf("%w: [%d, %d] outside [0, %d]", ErrInvalidSlotIndex, w.First, w.Last, l+1)
	}
	return nil
}

// String formats w as "[first, last]".
func (w Window) String() string { return fmt.Sprintf("[%d, %d]", w.First, w.Last) }
