package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/lglayout/lglayout/core"
)

// ReadNCOL parses the NCOL format: one edge per line, "<id1> <id2> [<weight>]".
func ReadNCOL(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted())

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			break
		}

		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("%w: %q", ErrInputFormat, line)
		}

		from, to := fields[0], fields[1]
		weight := 0.0
		if len(fields) == 3 {
			var err error
			weight, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad weight %q: %v", ErrInputFormat, fields[2], err)
			}
		}

		if err := ensureVertex(g, from); err != nil {
			return nil, err
		}
		if err := ensureVertex(g, to); err != nil {
			return nil, err
		}
		if !g.HasEdge(from, to) {
			if _, err := g.AddEdge(from, to, weight); err != nil {
				return nil, fmt.Errorf("%w: adding edge (%s,%s): %v", ErrInputFormat, from, to, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputFormat, err)
	}

	return g, nil
}

// WriteNCOL writes g in the NCOL format, vertices visited in ascending id
// order, one line per edge, restricted (like WriteLGL) to the half of each
// undirected edge whose first endpoint sorts lower.
func WriteNCOL(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)

	vertices := append([]string(nil), g.Vertices()...)
	sort.Strings(vertices)

	for _, v1 := range vertices {
		neighbors, err := higherNeighbors(g, v1)
		if err != nil {
			return err
		}
		for _, n := range neighbors {
			if g.Weighted() {
				if _, err := fmt.Fprintf(bw, "%s %s %g\n", v1, n.id, n.weight); err != nil {
					return err
				}

				continue
			}
			if _, err := fmt.Fprintf(bw, "%s %s\n", v1, n.id); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
