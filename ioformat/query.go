package ioformat

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DiversionQuery names the four vertices a network-diversion run needs
// beyond the graph itself: source, sink, and the two endpoints of the edge
// every surviving path must be routed through.
type DiversionQuery struct {
	S, T int
	U, V int
}

// ParseDiversionQuery reads a single "s t u v" line, the companion query
// format alongside a plain or planar graph file.
func ParseDiversionQuery(r io.Reader) (DiversionQuery, error) {
	lines, err := significantLines(r)
	if err != nil {
		return DiversionQuery{}, err
	}
	if len(lines) == 0 {
		return DiversionQuery{}, ErrEmptyInput
	}

	fields := strings.Fields(lines[0])
	if len(fields) < 4 {
		return DiversionQuery{}, fmt.Errorf("%w: %q", ErrMalformedQuery, lines[0])
	}

	vals := make([]int, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return DiversionQuery{}, fmt.Errorf("%w: %q", ErrMalformedQuery, lines[0])
		}
		vals[i] = v
	}

	return DiversionQuery{S: vals[0], T: vals[1], U: vals[2], V: vals[3]}, nil
}

// WriteDiversionQuery renders q in the format ParseDiversionQuery reads
// back.
func WriteDiversionQuery(w io.Writer, q DiversionQuery) error {
	_, err := fmt.Fprintf(w, "%d %d %d %d\n", q.S, q.T, q.U, q.V)

	return err
}
