package seed

import (
	"github.com/lglayout/lglayout/simparticle"
	"github.com/lglayout/lglayout/vecmath"
)

// LoadPositions writes coords into the matching particles of container,
// skipping ids the container doesn't hold. Vertices absent from coords
// keep their zero position for Interpolate/PruneDisconnected to resolve.
func LoadPositions(container *simparticle.Container, coords map[string]vecmath.Vector) {
	for id, pos := range coords {
		p, err := container.ByID(id)
		if err != nil {
			continue
		}
		p.Position = pos.Clone()
	}
}

// LoadMasses writes masses into the matching particles of container.
// Vertices absent from masses default to Particle.New's zero mass.
func LoadMasses(container *simparticle.Container, masses map[string]float64) {
	for id, m := range masses {
		p, err := container.ByID(id)
		if err != nil {
			continue
		}
		p.Mass = m
	}
}

// LoadAnchors flags the given ids as anchors: never repositioned by
// placement or integration.
func LoadAnchors(container *simparticle.Container, anchorIDs []string) {
	for _, id := range anchorIDs {
		p, err := container.ByID(id)
		if err != nil {
			continue
		}
		p.IsAnchor = true
	}
}
