package ioformat

import "errors"

// Sentinel errors for the text formats this package parses.
var (
	// ErrEmptyInput indicates the input held no significant (non-blank,
	// non-comment) lines at all.
	ErrEmptyInput = errors.New("ioformat: no significant input lines")

	// ErrMalformedHeader indicates the count line could not be parsed as
	// the integer(s) the format requires.
	ErrMalformedHeader = errors.New("ioformat: malformed header line")

	// ErrMalformedEdge indicates an edge line had fewer than its two
	// required endpoint tokens, or an endpoint that is not an integer.
	ErrMalformedEdge = errors.New("ioformat: malformed edge line")

	// ErrMalformedVertex indicates a vertex line did not have the "id x y"
	// shape a planar embedding requires.
	ErrMalformedVertex = errors.New("ioformat: malformed vertex line")

	// ErrVertexCountMismatch indicates the planar format's declared vertex
	// count did not match the number of vertex lines actually present.
	ErrVertexCountMismatch = errors.New("ioformat: declared vertex count does not match vertex line count")

	// ErrMalformedQuery indicates a diversion query line did not carry all
	// four required integers "s t u v".
	ErrMalformedQuery = errors.New("ioformat: malformed diversion query line")
)
