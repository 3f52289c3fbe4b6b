package mass

import "errors"

var (
	// ErrZeroCharge indicates an m/z conversion was requested with charge 0.
	ErrZeroCharge = errors.New("mass: charge must be non-zero")

	// ErrBadTolerance indicates a tolerance string or value could not be used.
	ErrBadTolerance = errors.New("mass: invalid tolerance")
)
