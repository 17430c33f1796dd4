package engine

import "github.com/lglayout/lglayout/vecmath"

// buildResult snapshots final positions out of the particle container.
func (d *Driver) buildResult() *Result {
	positions := make(map[string]vecmath.Vector, len(d.tree.Vertices))
	for _, p := range d.container.All() {
		positions[p.ID] = p.Position.Clone()
	}

	return &Result{
		Positions: positions,
		Tree:      d.tree,
		Dropped:   d.dropped,
	}
}
