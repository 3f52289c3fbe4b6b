package fragment

import "errors"

// ErrUnknownIonType indicates an ion series name that is not defined.
var ErrUnknownIonType = errors.New("fragment: unknown ion type")
