package object

import "errors"

// Domain errors for value normalization.
var (
	// ErrDecode indicates a stream's filter pipeline could not be applied,
	// or the decoded bytes were not valid ASCII text.
	ErrDecode = errors.New("stream decode failed")

	// ErrCycle indicates the object graph loops back on itself under
	// reference resolution.
	ErrCycle = errors.New("cycle detected in object graph")

	// ErrNoResolver indicates an indirect reference was encountered but no
	// resolver is available.
	ErrNoResolver = errors.New("no resolver for indirect reference")
)
