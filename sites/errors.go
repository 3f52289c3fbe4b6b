package sites

import "errors"

// ErrUnknownSite indicates that a site name could not be resolved to a Mask bit.
var ErrUnknownSite = errors.New("sites: unknown site")
