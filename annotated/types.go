// SPDX-License-Identifier: MIT

package annotated

import (
	"fmt"
	"sort"
	"strings"
)

// Mods maps a slot index to its bracketed modification token, e.g. 3 → "[Phospho]".
type Mods map[int]string

// Slots returns the occupied slot indices in ascending order.
func (m Mods) Slots() []int {
	out := make([]int, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Ints(out)

	return out
}

// Clone returns an independent copy of m.
func (m Mods) Clone() Mods {
	out := make(Mods, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// Parsed is the result of Parse: the plain residue sequence and its tokens.
type Parsed struct {
	Sequence string
	Mods     Mods
}

// Annotated renders p back over its full slot range.
func (p Parsed) Annotated() string {
	return Render(p.Sequence, p.Mods, Full(len(p.Sequence)))
}

// Convention selects how slot indices are assigned while parsing.
type Convention int

const (
	// Unshifted assigns each token to the slot of the residue it follows.
	Unshifted Convention = iota

	// Reference advances the residue counter on every token close, shifting
	// all later tokens by one slot per preceding token.
	Reference
)

// String returns "unshifted" or "reference".
func (c Convention) String() string {
	switch c {
	case Unshifted:
		return "unshifted"
	case Reference:
		return "reference"
	default:
		return fmt.Sprintf("Convention(%d)", int(c))
	}
}

// ParseConvention reads a convention name, case-insensitively.
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unshifted":
		return Unshifted, nil
	case "reference":
		return Reference, nil
	}
	return Unshifted, fmt.Errorf("annotated: unknown convention %q", s)
}

// State is the scanner state.
type State int

const (
	// Scanning consumes residue letters.
	Scanning State = iota
	// InToken accumulates a bracketed modification token.
	InToken
)

// String returns "Scanning" or "InToken".
func (s State) String() string {
	if s == InToken {
		return "InToken"
	}
	return "Scanning"
}

// Option configures Parse and NewScanner.
type Option func(*options)

type options struct {
	convention Convention
	strict     bool
}

// WithConvention selects the slot index convention. Default Unshifted.
func WithConvention(c Convention) Option {
	return func(o *options) { o.convention = c }
}

// WithStrictResidues rejects residue characters that are not standard
// one-letter residue codes.
func WithStrictResidues() Option {
	return func(o *options) { o.strict = true }
}

// Bracket wraps a modification name in brackets: "Phospho" → "[Phospho]".
func Bracket(name string) string { return "[" + name + "]" }

// Unbracket strips one pair of surrounding brackets if present.
func Unbracket(tok string) string {
	if len(tok) >= 2 && tok[0] == '[' && tok[len(tok)-1] == ']' {
		return tok[1 : len(tok)-1]
	}
	return tok
}
