// Command divert computes a minimum-weight network diversion: the
// smallest-cost edge set whose removal forces every surviving s-t path in a
// planar graph through a named edge.
//
// Usage: divert <file_name> <s> <t> <b1> <b2>
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/planarcut/diversion"
	"github.com/katalvlaran/planarcut/ioformat"
)

func main() {
	if len(os.Args) != 6 {
		fmt.Fprintf(os.Stderr, "Usage: %s <file_name> <s> <t> <b1> <b2>\n", os.Args[0])
		os.Exit(1)
	}

	fname := os.Args[1]
	s, errS := strconv.Atoi(os.Args[2])
	t, errT := strconv.Atoi(os.Args[3])
	b1, errB1 := strconv.Atoi(os.Args[4])
	b2, errB2 := strconv.Atoi(os.Args[5])
	if errS != nil || errT != nil || errB1 != nil || errB2 != nil {
		fmt.Fprintln(os.Stderr, "s, t, b1 and b2 must be integers")
		os.Exit(1)
	}

	f, err := os.Open(fname)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not find the graph: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	res, err := ioformat.ParsePlanarGraph[float64](f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read the graph: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	result, err := diversion.Divert[float64](res.Graph, s, t, b1, b2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "diversion failed: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start).Seconds()

	switch result.Status() {
	case diversion.Impossible:
		fmt.Printf("%.3f s: WARN: No cut found\n", elapsed)
	case diversion.NoCutNeeded:
		fmt.Printf("%.3f s\n", elapsed)
	case diversion.Cut:
		fmt.Printf("%.3f s\n", elapsed)
		edges, _ := result.Edges()
		for _, e := range edges {
			fmt.Printf("%d,%d\n", e.From(), e.To())
		}
	}
}
