package engine

import (
	"fmt"

	"github.com/lglayout/lglayout/placement"
	"github.com/lglayout/lglayout/simparticle"
)

// Run executes the full per-layer simulation and returns final positions.
// The Driver's worker pool is shut down before Run returns, successfully or
// not; callers should not reuse a Driver across multiple Run calls.
func (d *Driver) Run() (*Result, error) {
	defer d.pool.Shutdown()

	settleLevel := d.totalLevel

	if d.allInitialized {
		d.logf("lglayout: all positions supplied, skipping layer activation\n")
		revealed := make(map[string]bool, len(d.tree.Vertices))
		for _, id := range d.tree.Vertices {
			revealed[id] = true
		}
		if err := d.activateEdges(revealed); err != nil {
			return nil, err
		}
		d.placeRevealed(revealed)
	} else {
		for level := 1; level <= d.totalLevel; level++ {
			if err := d.runLayer(level); err != nil {
				return nil, err
			}
		}
	}

	d.logf("lglayout: final settle\n")
	if err := d.relax(settleLevel, d.cfg.CutoffPrecision/10); err != nil {
		return nil, fmt.Errorf("engine: final settle: %w", err)
	}

	return d.buildResult(), nil
}

// runLayer activates layer `level`'s tree edges, seeds its new vertices'
// positions, grids them, and relaxes the layout to convergence.
func (d *Driver) runLayer(level int) error {
	revealed := make(map[string]bool, len(d.tree.Vertices))
	for _, id := range d.tree.Vertices {
		if d.tree.Level[id] <= level {
			revealed[id] = true
		}
	}

	if err := d.activateEdges(revealed); err != nil {
		return err
	}

	if err := d.seedLayer(level); err != nil {
		return err
	}

	d.placeRevealed(revealed)

	d.logf("lglayout: layer %d/%d (%d vertices revealed)\n", level, d.totalLevel, len(revealed))

	return d.relax(level, d.cfg.CutoffPrecision)
}

// seedLayer places every vertex entering `level` near its parent, per
// spec.md §4.5. A vertex that already carries a non-zero (loaded or
// interpolated) position is left untouched by SeedChildren, which only
// scatters particles still at the origin.
func (d *Driver) seedLayer(level int) error {
	parents := make(map[string]bool)
	for _, id := range d.tree.Vertices {
		if d.tree.Level[id] != level {
			continue
		}
		if id == d.tree.Root {
			continue
		}
		parents[d.tree.Parent[id]] = true
	}

	placed := d.particlesBelowLevel(level)

	opts := placement.Options{
		Distance:   d.cfg.PlacementDistance,
		Radius:     d.cfg.PlacementRadius,
		LeafsClose: d.cfg.PlaceLeafsClose,
	}

	for parentID := range parents {
		parentP, err := d.container.ByID(parentID)
		if err != nil {
			return err
		}

		childIDs := d.childrenOf[parentID]
		children := make([]*simparticle.Particle, 0, len(childIDs))
		for _, cid := range childIDs {
			if d.tree.Level[cid] != level {
				continue
			}
			cp, err := d.container.ByID(cid)
			if err != nil {
				return err
			}
			if cp.IsPositionInitialized() {
				continue
			}
			children = append(children, cp)
		}
		if len(children) == 0 {
			continue
		}

		var grandparentP *simparticle.Particle
		if parentID != d.tree.Root {
			gp := d.tree.Parent[parentID]
			grandparentP, err = d.container.ByID(gp)
			if err != nil {
				return err
			}
		}

		isLeaf := func(childID string) bool {
			return len(d.childrenOf[childID]) == 0
		}

		placement.SeedChildren(parentP, children, placed, grandparentP, level, isLeaf, opts, d.rng)
	}

	return nil
}

func (d *Driver) particlesBelowLevel(level int) []*simparticle.Particle {
	var out []*simparticle.Particle
	for _, p := range d.container.All() {
		if d.tree.Level[p.ID] < level {
			out = append(out, p)
		}
	}

	return out
}

// relax runs Stage A through D to convergence (or the 150-iteration hard
// cap, or cfg.MaxIterations, whichever binds first) for vertices at or
// below `level`, testing convergence against cutoff.
func (d *Driver) relax(level int, cutoff float64) error {
	var state convergenceState
	maxIter := d.cfg.MaxIterations
	if maxIter > 150 || maxIter <= 0 {
		maxIter = 150
	}

	revealed := make(map[string]bool, len(d.tree.Vertices))
	for _, id := range d.tree.Vertices {
		if d.tree.Level[id] <= level {
			revealed[id] = true
		}
	}

	for iteration := 1; iteration <= maxIter; iteration++ {
		if err := d.runStageA(revealed); err != nil {
			return err
		}
		if err := d.runStageB(); err != nil {
			return err
		}
		if err := d.runStageC(level); err != nil {
			return err
		}
		dx, err := d.runStageD(level)
		if err != nil {
			return err
		}

		if d.cfg.WriteInterval > 0 && iteration%d.cfg.WriteInterval == 0 {
			d.emitSnapshot(level, iteration)
		}

		if state.converged(dx, iteration, cutoff) {
			break
		}
	}

	return nil
}
