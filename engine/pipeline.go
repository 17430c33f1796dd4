package engine

import (
	"fmt"

	"github.com/lglayout/lglayout/simparticle"
	"github.com/lglayout/lglayout/workerpool"
)

// edgeStats is one worker's partial sum of layer-L edge lengths, reduced by
// the driver into the mean edge length dx that drives the convergence test
// (spec.md §4.4 Stage D).
type edgeStats struct {
	sumLength float64
	count     int
}

// runStageA applies pairwise repulsion between every particle revealed so
// far and its spatial neighbors, sharded by voxel across the pool. Per
// spec.md §4.4, Stage A's equilibrium distance is nbhdRadius, not the
// attraction eqDistance used by Stage B.
func (d *Driver) runStageA(revealed map[string]bool) error {
	d.handler.SpringConstant = d.cfg.CasualSpringConstant
	d.handler.SetEqDistance(d.cfg.NbhdRadius)

	fns := make([]func() error, d.threads)
	for w := 0; w < d.threads; w++ {
		worker := w
		fns[worker] = func() error {
			for _, vi := range d.scheduler.VoxelListFor(worker, d.threads) {
				v := d.grid.Voxels[vi]
				occupants := v.Occupants()
				for _, nb := range d.grid.NeighborVoxels(v) {
					for _, q := range nb.Occupants() {
						for _, p := range occupants {
							// Within one voxel each unordered pair is taken once (i < j);
							// the half stencil already visits each cross-voxel pair once.
							if nb == v && p.Index >= q.Index {
								continue
							}
							if !revealed[p.ID] || !revealed[q.ID] {
								continue
							}
							d.handler.Interact(p, q)
						}
					}
				}
			}

			return nil
		}
	}

	return workerpool.AwaitAll(d.pool.SubmitAll(fns))
}

// runStageB applies the spring-back attraction along every active layout
// edge, sharded by a simple stride over the edge list (edges have no
// natural voxel locality the way particles do).
func (d *Driver) runStageB() error {
	d.handler.SpringConstant = d.cfg.SpecialSpringConstant
	d.handler.SetEqDistance(d.cfg.EqDistance)

	edges := d.layout.Edges()
	fns := make([]func() error, d.threads)
	for w := 0; w < d.threads; w++ {
		worker := w
		fns[worker] = func() error {
			for i := worker; i < len(edges); i += d.threads {
				e := edges[i]
				p, err := d.container.ByID(e.From)
				if err != nil {
					return err
				}
				q, err := d.container.ByID(e.To)
				if err != nil {
					return err
				}
				d.handler.Attract(p, q)
			}

			return nil
		}
	}

	return workerpool.AwaitAll(d.pool.SubmitAll(fns))
}

// runStageC clamps accumulated force, integrates motion, and re-homes each
// particle at level ≤ L in the spatial grid. Sharded by particle index
// stride.
func (d *Driver) runStageC(level int) error {
	all := d.container.All()

	fns := make([]func() error, d.threads)
	for w := 0; w < d.threads; w++ {
		worker := w
		fns[worker] = func() error {
			for i := worker; i < len(all); i += d.threads {
				p := all[i]
				if d.tree.Level[p.ID] > level || p.IsAnchor {
					p.Force.Reset()

					continue
				}

				d.handler.EnforceForceLimit(p)
				d.handler.Integrate(p)
				p.Force.Reset()

				if err := d.grid.Shift(p); err != nil {
					d.logf("lglayout: grid placement warning for %q: %v\n", p.ID, err)
				}
			}

			return nil
		}
	}

	return workerpool.AwaitAll(d.pool.SubmitAll(fns))
}

// runStageD reduces the mean length of every active layout edge touching
// level L, the statistic the convergence test tracks across iterations
// (spec.md §4.4 Stage D).
func (d *Driver) runStageD(level int) (float64, error) {
	edges := d.layout.Edges()
	partials := make([]edgeStats, d.threads)

	fns := make([]func() error, d.threads)
	for w := 0; w < d.threads; w++ {
		worker := w
		fns[worker] = func() error {
			st := &partials[worker]
			for i := worker; i < len(edges); i += d.threads {
				e := edges[i]
				if d.tree.Level[e.From] != level && d.tree.Level[e.To] != level {
					continue
				}
				p, err := d.container.ByID(e.From)
				if err != nil {
					return err
				}
				q, err := d.container.ByID(e.To)
				if err != nil {
					return err
				}
				st.sumLength += p.Position.Distance(q.Position)
				st.count++
			}

			return nil
		}
	}

	if err := workerpool.AwaitAll(d.pool.SubmitAll(fns)); err != nil {
		return 0, err
	}

	var sum float64
	var count int
	for _, st := range partials {
		sum += st.sumLength
		count += st.count
	}
	if count == 0 {
		return 0, nil
	}

	return sum / float64(count), nil
}

// convergenceState tracks the two trailing measurements the §4.4 stopping
// test compares against, reset at the start of each layer's inner loop
// (and again for the final settle).
type convergenceState struct {
	dxPrev, avgPrev float64
	haveDxPrev      bool
}

// converged applies spec.md §4.4's three-part test: relative change in dx,
// the hard 150-iteration cap, or relative change in the trailing average
// of dx. It mutates st with this iteration's dx for the next call.
func (st *convergenceState) converged(dx float64, iteration int, cutoff float64) bool {
	defer func() {
		st.haveDxPrev = true
		st.dxPrev = dx
	}()

	if iteration > 150 {
		return true
	}
	if !st.haveDxPrev {
		return false
	}
	if dx != 0 && absf(dx-st.dxPrev)/dx < cutoff {
		return true
	}

	avg := (st.dxPrev + dx) / 2
	converged := avg != 0 && absf(avg-st.avgPrev)/avg < 0.1*cutoff
	st.avgPrev = avg

	return converged
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}

// activateEdges adds to the layout graph every edge of the full graph whose
// endpoints are both now revealed (LayoutTreeOnly=false), or, when
// LayoutTreeOnly is set, only the strict MST parent-child edges among
// revealed vertices (spec.md's LayoutGraph invariant).
func (d *Driver) activateEdges(revealed map[string]bool) error {
	if d.cfg.LayoutTreeOnly {
		for _, id := range d.tree.Vertices {
			if !revealed[id] || id == d.tree.Root {
				continue
			}
			parent := d.tree.Parent[id]
			if !revealed[parent] {
				continue
			}
			if err := d.addLayoutEdge(parent, id); err != nil {
				return err
			}
		}

		return nil
	}

	for _, e := range d.full.Edges() {
		if !revealed[e.From] || !revealed[e.To] {
			continue
		}
		if err := d.addLayoutEdge(e.From, e.To); err != nil {
			return err
		}
	}

	return nil
}

// addLayoutEdge is only ever called from Run's single-threaded per-layer
// loop, never from inside a worker stage, so d.added needs no lock.
func (d *Driver) addLayoutEdge(a, b string) error {
	key := edgeKey(a, b)
	if d.added[key] {
		return nil
	}
	if _, err := d.layout.AddEdge(a, b, 1); err != nil {
		return fmt.Errorf("engine: activating layout edge (%s,%s): %w", a, b, err)
	}
	d.added[key] = true

	return nil
}

// placeRevealed inserts every newly-revealed, not-yet-gridded particle into
// the spatial grid. Particles that already carry a loaded or interpolated
// position (seed.LoadPositions/Interpolate) are placed as-is rather than
// re-seeded by SeedChildren, which only touches zero (uninitialized)
// positions.
func (d *Driver) placeRevealed(revealed map[string]bool) {
	for _, p := range d.container.All() {
		if !revealed[p.ID] {
			continue
		}
		if p.Container != simparticle.NoContainer {
			continue
		}
		if err := d.grid.Place(p); err != nil {
			d.logf("lglayout: grid placement warning for %q: %v\n", p.ID, err)
		}
	}
}
