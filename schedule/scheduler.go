package schedule

import "github.com/lglayout/lglayout/spatialgrid"

// Scheduler holds the computed visit list for one grid.
type Scheduler struct {
	visitList []int
}

// GenerateST builds the single-threaded visit list: every voxel in its
// natural (identity) order, with no coloring pass needed since there is
// only ever one worker touching the grid.
func GenerateST(g *spatialgrid.Grid) *Scheduler {
	list := make([]int, len(g.Voxels))
	for i := range list {
		list[i] = i
	}

	return &Scheduler{visitList: list}
}

// GenerateMT builds the multi-threaded visit list by the coloring algorithm
// of spec.md §4.2: repeated passes over the grid in row-major order; a
// voxel is claimed in pass k if unclaimed and no neighbor was claimed in
// this same pass; once claimed, its stencil neighbors are provisionally
// blocked for the remainder of the pass. Each pass claims at least one
// voxel, guaranteeing termination.
func GenerateMT(g *spatialgrid.Grid) *Scheduler {
	n := len(g.Voxels)
	for i := range g.Voxels {
		g.Voxels[i].Mark = 0 // 0 == unmarked
	}

	visitList := make([]int, 0, n)
	remaining := n
	pass := 1
	for remaining > 0 {
		claimedThisPass := make([]int, 0)
		for i := 0; i < n; i++ {
			v := g.Voxels[i]
			if v.Mark != 0 {
				continue // already claimed (permanent) or blocked this pass
			}
			blocked := false
			for _, nb := range g.NeighborVoxels(v) {
				if nb.Index != v.Index && nb.Mark == pass {
					blocked = true

					break
				}
			}
			if blocked {
				continue
			}

			// Claim it.
			v.Mark = -1 // -1 == permanently claimed
			visitList = append(visitList, v.Index)
			claimedThisPass = append(claimedThisPass, v.Index)
			remaining--

			for _, nb := range g.NeighborVoxels(v) {
				if nb.Mark != -1 {
					nb.Mark = pass
				}
			}
		}

		// Clear non-permanent marks before the next pass.
		for i := 0; i < n; i++ {
			if g.Voxels[i].Mark != -1 {
				g.Voxels[i].Mark = 0
			}
		}

		if len(claimedThisPass) == 0 {
			// Defensive: should be unreachable per the algorithm's
			// termination guarantee, but avoid an infinite loop if the
			// stencil geometry ever violates it.
			break
		}
		pass++
	}

	return &Scheduler{visitList: visitList}
}

// ThreadCheck caps a requested worker count at voxelsPerEdge[0]/2, the bound
// below which the coloring property can no longer be guaranteed on a small
// grid (spec.md §4.2).
func ThreadCheck(requested int, g *spatialgrid.Grid) int {
	cap := g.VoxelsPerEdge[0] / 2
	if cap < 1 {
		cap = 1
	}
	if requested > cap {
		return cap
	}
	if requested < 1 {
		return 1
	}

	return requested
}

// VoxelListFor returns the strided slice of the visit list assigned to
// worker w out of threads total: V[w], V[w+threads], V[w+2*threads], ...
func (s *Scheduler) VoxelListFor(worker, threads int) []int {
	if threads < 1 {
		threads = 1
	}
	out := make([]int, 0, len(s.visitList)/threads+1)
	for i := worker; i < len(s.visitList); i += threads {
		out = append(out, s.visitList[i])
	}

	return out
}

// VisitList returns the full computed visit list.
func (s *Scheduler) VisitList() []int { return s.visitList }
