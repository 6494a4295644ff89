package dateutil

import "errors"

// ErrInvalidArgument is the single error kind of this package. It covers
// absent (zero) arguments, text that cannot be parsed and patterns that
// cannot be compiled. Every returned error wraps it.
var ErrInvalidArgument = errors.New("invalid argument")
