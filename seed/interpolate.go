package seed

import (
	"github.com/lglayout/lglayout/core"
	"github.com/lglayout/lglayout/simparticle"
	"github.com/lglayout/lglayout/vecmath"
)

// Interpolate fills in positions for vertices left at the origin: repeatedly,
// for each still-unset vertex with at least one already-positioned neighbor
// in g, its position becomes the arithmetic mean of those neighbors'
// positions. Repeats until a full pass makes no change. Returns the number
// of vertices filled in.
func Interpolate(g *core.Graph, container *simparticle.Container) (int, error) {
	filled := 0
	changed := true
	for changed {
		changed = false
		for _, id := range g.Vertices() {
			p, err := container.ByID(id)
			if err != nil {
				continue
			}
			if !p.Position.IsZero() {
				continue
			}

			neighborIDs, err := g.NeighborIDs(id)
			if err != nil {
				return filled, err
			}

			sum := vecmath.New(container.Dim())
			count := 0
			for _, nbr := range neighborIDs {
				np, err := container.ByID(nbr)
				if err != nil {
					continue
				}
				if np.Position.IsZero() {
					continue
				}
				sum.Translate(np.Position)
				count++
			}
			if count == 0 {
				continue
			}
			sum.ScaleScalar(1 / float64(count))
			p.Position = sum
			filled++
			changed = true
		}
	}

	return filled, nil
}
