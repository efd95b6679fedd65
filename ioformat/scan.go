package ioformat

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/planarcut/weight"
)

// significantLines reads every line of r, trimmed, dropping blanks and '%'
// comments, mirroring the original parser's line filter.
func significantLines(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		out = append(out, line)
	}

	return out, scanner.Err()
}

// parseWeight converts s to W, falling back to 1 when s is absent or does
// not parse as a number, matching BasicEdge::from_str's unwrap_or_else.
func parseWeight[W weight.Weight](s string) W {
	if s == "" {
		return W(1)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return W(1)
	}

	return W(f)
}

// parseEdgeLine splits a "u v [w]" line into its tokens, failing only when
// the two endpoint tokens are missing or do not parse as integers.
func parseEdgeLine[W weight.Weight](line string) (u, v int, w W, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, 0, ErrMalformedEdge
	}

	u, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, ErrMalformedEdge
	}
	v, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, ErrMalformedEdge
	}

	if len(fields) >= 3 {
		w = parseWeight[W](fields[2])
	} else {
		w = parseWeight[W]("")
	}

	return u, v, w, nil
}
