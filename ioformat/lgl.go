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

// ErrInputFormat is fatal per spec.md §7: any read error on the graph file
// itself (bad token, missing field) aborts before simulation starts.
var ErrInputFormat = fmt.Errorf("ioformat: malformed input")

// ReadLGL parses the LGL format: a run of blocks, each headed by a line
// "# <id>" followed by zero or more "<neighbor> [<weight>]" lines naming an
// edge from that block's header to neighbor. A blank line ends input early
// (graph.hpp's readLGL terminates on the first empty line).
func ReadLGL(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted())

	scanner := bufio.NewScanner(r)
	var head string
	haveHead := false

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			break
		}

		if strings.HasPrefix(line, "# ") {
			head = strings.TrimSpace(line[2:])
			if head == "" {
				return nil, fmt.Errorf("%w: empty block header", ErrInputFormat)
			}
			if err := ensureVertex(g, head); err != nil {
				return nil, err
			}
			haveHead = true

			continue
		}

		if !haveHead {
			return nil, fmt.Errorf("%w: edge line before any block header", ErrInputFormat)
		}

		fields := strings.Fields(line)
		if len(fields) < 1 || len(fields) > 2 {
			return nil, fmt.Errorf("%w: %q", ErrInputFormat, line)
		}

		neighbor := fields[0]
		weight := 0.0
		if len(fields) == 2 {
			var err error
			weight, err = strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad weight %q: %v", ErrInputFormat, fields[1], err)
			}
		}

		if err := ensureVertex(g, neighbor); err != nil {
			return nil, err
		}
		if !g.HasEdge(head, neighbor) {
			if _, err := g.AddEdge(head, neighbor, weight); err != nil {
				return nil, fmt.Errorf("%w: adding edge (%s,%s): %v", ErrInputFormat, head, neighbor, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputFormat, err)
	}

	return g, nil
}

func ensureVertex(g *core.Graph, id string) error {
	// AddVertex is idempotent: a repeat id is a no-op, not an error.
	if err := g.AddVertex(id); err != nil {
		return fmt.Errorf("%w: adding vertex %q: %v", ErrInputFormat, id, err)
	}

	return nil
}

// WriteLGL writes g in the LGL format, one block per vertex with at least
// one edge, vertices in ascending id order, each block's neighbors in
// ascending id order and restricted to edges where the neighbor's id sorts
// after the block's own id (graph.hpp's writeLGL dedup rule: the edge is
// emitted once, from its lexicographically smaller endpoint).
func WriteLGL(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)

	vertices := append([]string(nil), g.Vertices()...)
	sort.Strings(vertices)

	for _, v1 := range vertices {
		neighbors, err := higherNeighbors(g, v1)
		if err != nil {
			return err
		}
		if len(neighbors) == 0 {
			continue
		}

		if _, err := fmt.Fprintf(bw, "# %s\n", v1); err != nil {
			return err
		}
		for _, n := range neighbors {
			if g.Weighted() {
				if _, err := fmt.Fprintf(bw, "%s %g\n", n.id, n.weight); err != nil {
					return err
				}

				continue
			}
			if _, err := fmt.Fprintf(bw, "%s\n", n.id); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

type weightedNeighbor struct {
	id     string
	weight float64
}

// higherNeighbors returns v1's neighbors whose id sorts strictly after v1,
// sorted ascending — the half of each undirected edge writeLGL emits.
func higherNeighbors(g *core.Graph, v1 string) ([]weightedNeighbor, error) {
	edges, err := g.Neighbors(v1)
	if err != nil {
		return nil, err
	}

	var out []weightedNeighbor
	for _, e := range edges {
		other := e.To
		if other == v1 {
			other = e.From
		}
		if other <= v1 {
			continue
		}
		out = append(out, weightedNeighbor{id: other, weight: e.Weight})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out, nil
}
