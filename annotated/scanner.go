package annotated

import (
	"github.com/katalvlaran/lvms/sites"
)

// Scanner is the byte-at-a-time state machine behind Parse.
//
// A Scanner is single-use: feed every byte of one input through Step, then
// call Finish. It is not safe for concurrent use.
type Scanner struct {
	opts  options
	state State

	pos      int // residues consumed, plus one per close under Reference
	anchor   int // slot-1 the open token will attach to; -1 means N-terminal
	tokStart int

	seq  []byte
	tok  []byte
	mods Mods
	err  error
}

// NewScanner returns a Scanner in the Scanning state.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{mods: make(Mods)}
	for _, opt := range opts {
		opt(&s.opts)
	}

	return s
}

// State returns the current state.
func (s *Scanner) State() State { return s.state }

// Step consumes the byte c found at offset off of the input.
// After the first error every further Step returns that same error.
func (s *Scanner) Step(off int, c byte) error {
	if s.err != nil {
		return s.err
	}
	switch s.state {
	case Scanning:
		s.err = s.scan(off, c)
	case InToken:
		s.err = s.token(off, c)
	}

	return s.err
}

func (s *Scanner) scan(off int, c byte) error {
	switch c {
	case '[':
		s.state = InToken
		s.anchor = s.pos - 1
		s.tokStart = off
		s.tok = append(s.tok[:0], c)
		return nil
	case ']':
		return &SyntaxError{Offset: off, Char: c, Reason: "']' without matching '['"}
	case '-':
		if s.pos == 0 {
			return &SyntaxError{Offset: off, Char: c, Reason: "'-' without an N-terminal token"}
		}
		return &SyntaxError{Offset: off, Char: c, Reason: "N-terminal closer after residues"}
	}
	if s.opts.strict && !sites.IsResidue(c) {
		return &SyntaxError{Offset: off, Char: c, Reason: "not a residue letter"}
	}
	s.seq = append(s.seq, c)
	s.pos++

	return nil
}

func (s *Scanner) token(off int, c byte) error {
	switch {
	case c == ']' && s.pos != 0:
		s.tok = append(s.tok, c)
		return s.close(off, c, s.anchor+1)
	case c == '-' && s.pos == 0 && s.tok[len(s.tok)-1] == ']':
		// the hyphen is syntax; the token keeps only its brackets
		return s.close(off, c, 0)
	}
	s.tok = append(s.tok, c)

	return nil
}

func (s *Scanner) close(off int, c byte, slot int) error {
	if len(s.tok) <= 2 {
		return &SyntaxError{Offset: off, Char: c, Reason: "empty modification token"}
	}
	if _, dup := s.mods[slot]; dup {
		return &SyntaxError{Offset: s.tokStart, Char: '[', Reason: "slot already carries a modification"}
	}
	s.mods[slot] = string(s.tok)
	s.state = Scanning
	if s.opts.convention == Reference {
		s.pos++
	}

	return nil
}

// Finish ends the input and returns the parse result. An open token at this
// point is an unterminated bracket.
func (s *Scanner) Finish() (Parsed, error) {
	if s.err != nil {
		return Parsed{}, s.err
	}
	if s.state == InToken {
		s.err = &SyntaxError{Offset: s.tokStart, Reason: "unterminated modification token"}
		return Parsed{}, s.err
	}

	return Parsed{Sequence: string(s.seq), Mods: s.mods}, nil
}
