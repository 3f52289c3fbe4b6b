package annotated

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedAnnotation indicates an annotated sequence that does not
	// follow the grammar: unterminated bracket, stray closer, duplicate slot.
	ErrMalformedAnnotation = errors.New("annotated: malformed annotation")

	// ErrInvalidSlotIndex indicates a window reaching outside [0, L+1].
	ErrInvalidSlotIndex = errors.New("annotated: slot index out of range")
)

// SyntaxError locates a parse failure inside the input string.
type SyntaxError struct {
	// Offset is the byte offset of the offending character, or len(input)
	// when the input ended too early.
	Offset int
	// Char is the offending byte, 0 at end of input.
	Char byte
	// Reason describes what was wrong.
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("%s at end of input: %s", ErrMalformedAnnotation.Error(), e.Reason)
	}
	return fmt.Sprintf("%s at offset %d (%q): %s", ErrMalformedAnnotation.Error(), e.Offset, e.Char, e.Reason)
}

// Unwrap makes errors.Is(err, ErrMalformedAnnotation) hold.
func (e *SyntaxError) Unwrap() error { return ErrMalformedAnnotation }
