package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/lglayout/lglayout/guidetree"
	"github.com/lglayout/lglayout/vecmath"
)

// WriteRoot writes the guiding tree's root id, one line, matching
// lglayout.C's "-root" output file.
func WriteRoot(w io.Writer, tree *guidetree.Tree) error {
	_, err := fmt.Fprintf(w, "%s\n", tree.Root)

	return err
}

// WriteEdgeLevels writes one "<from> <to> <level>" line per MST edge, level
// being the deeper endpoint's BFS depth — the level at which that edge was
// first activated during a staged run. Lines are sorted by (from, to) for
// deterministic output.
func WriteEdgeLevels(w io.Writer, tree *guidetree.Tree) error {
	bw := bufio.NewWriter(w)

	type row struct {
		from, to string
		level    int
	}
	rows := make([]row, 0, len(tree.Edges))
	for _, e := range tree.Edges {
		level := tree.Level[e.From]
		if tree.Level[e.To] > level {
			level = tree.Level[e.To]
		}
		rows = append(rows, row{from: e.From, to: e.To, level: level})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].from != rows[j].from {
			return rows[i].from < rows[j].from
		}

		return rows[i].to < rows[j].to
	})

	for _, r := range rows {
		if _, err := fmt.Fprintf(bw, "%s %s %d\n", r.from, r.to, r.level); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WritePositions writes one "<id> <coord0> <coord1> ..." line per vertex,
// ids in ascending order, matching lglayout.C's final coordinate dump.
func WritePositions(w io.Writer, positions map[string]vecmath.Vector) error {
	bw := bufio.NewWriter(w)

	ids := make([]string, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		pos := positions[id]
		coords := make([]string, len(pos))
		for i, c := range pos {
			coords[i] = strconv.FormatFloat(c, 'g', -1, 64)
		}
		if _, err := fmt.Fprintf(bw, "%s %s\n", id, strings.Join(coords, " ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadPositions parses the format WritePositions produces, for feeding
// previously-computed coordinates back in as seed positions.
func ReadPositions(r io.Reader) (map[string]vecmath.Vector, error) {
	positions := make(map[string]vecmath.Vector)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: %q", ErrInputFormat, line)
		}

		id := fields[0]
		coords := make(vecmath.Vector, len(fields)-1)
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad coordinate %q: %v", ErrInputFormat, f, err)
			}
			coords[i] = v
		}
		positions[id] = coords
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputFormat, err)
	}

	return positions, nil
}
