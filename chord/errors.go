package chord

import "errors"

var (
	// ErrNotFound reports a name or interval set matching no
	// registered chord quality.
	ErrNotFound = errors.New("chord quality not found")

	// ErrMalformed reports chord text whose leading pitch name cannot
	// be parsed.
	ErrMalformed = errors.New("malformed chord")

	// ErrUnimplemented reports an inversion of an already-inverted
	// quality, which would silently compound otherwise.
	ErrUnimplemented = errors.New("unimplemented")
)
