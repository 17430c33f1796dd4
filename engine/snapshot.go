package engine

import "github.com/lglayout/lglayout/vecmath"

// emitSnapshot invokes OnSnapshot, if set, with the current positions.
//
// spec.md's snapshot-filename Open Question notes that a filename built
// from only the iteration number collides across layers that happen to
// reach the same count; d.snapshotSeq is a run-wide monotonic counter
// threaded alongside (level, iteration) so a caller building filenames
// from all three never collides.
func (d *Driver) emitSnapshot(level, iteration int) {
	if d.OnSnapshot == nil {
		return
	}

	d.snapshotSeq++
	positions := make(map[string]vecmath.Vector, len(d.tree.Vertices))
	for _, p := range d.container.All() {
		positions[p.ID] = p.Position.Clone()
	}

	d.OnSnapshot(level, iteration, d.snapshotSeq, positions)
}
