package placement

import (
	"math"
	"math/rand"

	"github.com/lglayout/lglayout/simparticle"
	"github.com/lglayout/lglayout/vecmath"
)

// DistanceUnset marks Options.Distance as "not supplied by the caller",
// matching spec.md's documented default of -1 for placementDistance.
const DistanceUnset = -1.0

// Options configures how a layer's children are scattered.
type Options struct {
	// Distance is the placementDistance override. DistanceUnset (-1) means
	// "use the dimension-aware formula".
	Distance float64

	// Radius is the placementRadius of the sphere children are scattered on.
	Radius float64

	// LeafsClose collapses an all-leaf child batch onto its parent
	// (Distance forced to 0) instead of scattering it away.
	LeafsClose bool
}

// formulaDistance is the default placement distance when the caller
// supplies none: min(0.25*sqrt(n), 10) in 2D, min(0.25*n^0.34, 10) in 3D,
// where n is the child count.
func formulaDistance(dim, n int) float64 {
	fn := float64(n)
	if dim == 2 {
		return math.Min(0.25*math.Sqrt(fn), 10)
	}

	return math.Min(0.25*math.Pow(fn, 0.34), 10)
}

// CenterOfMass returns the mass-weighted centroid of placed. Particles with
// zero mass contribute position but no weight (guarded against a
// zero-total-mass division). Returns a zero vector of dim if placed is empty.
func CenterOfMass(dim int, placed []*simparticle.Particle) vecmath.Vector {
	sum := vecmath.New(dim)
	if len(placed) == 0 {
		return sum
	}

	var totalMass float64
	for _, p := range placed {
		m := p.Mass
		if m == 0 {
			m = 1
		}
		weighted := p.Position.Clone()
		weighted.ScaleScalar(m)
		sum.Translate(weighted)
		totalMass += m
	}
	if totalMass == 0 {
		return sum
	}
	sum.ScaleScalar(1 / totalMass)

	return sum
}

// Direction computes the unit-ish seed direction for parent's children:
// unit(parent - cm) + unit(parent - grandparent), halved. If grandparent is
// nil (parent is the tree root) or parent and grandparent coincide, only
// the first term is used, unhalved — spec.md §4.5's "root's children" case.
func Direction(parent *simparticle.Particle, cm vecmath.Vector, grandparent *simparticle.Particle) vecmath.Vector {
	d1 := parent.Position.Sub(cm).Unit()
	if grandparent == nil {
		return d1
	}

	raw2 := parent.Position.Sub(grandparent.Position)
	if raw2.Magnitude() < 1e-12 {
		return d1
	}

	d2 := raw2.Unit()
	d := d1.Add(d2)
	d.ScaleScalar(0.5)

	return d
}

// SeedChildren places children of parent entering layer L. placed holds all
// vertices at level < L (for the center-of-mass term); grandparent is
// parent's own MST parent, or nil at the root. isLeaf reports whether a
// child has no grand-children of its own, used for the LeafsClose collapse.
// Anchored children are left untouched (they keep their loaded coordinates).
func SeedChildren(
	parent *simparticle.Particle,
	children []*simparticle.Particle,
	placed []*simparticle.Particle,
	grandparent *simparticle.Particle,
	level int,
	isLeaf func(childID string) bool,
	opts Options,
	rng *rand.Rand,
) {
	if len(children) == 0 {
		return
	}
	dim := parent.Position.Dim()
	draw := rng.Float64

	if level == 1 {
		scatterOnto(parent.Position, 1.0, children, dim, draw)

		return
	}

	cm := CenterOfMass(dim, placed)
	d := Direction(parent, cm, grandparent)

	scalef := opts.Distance
	if scalef == DistanceUnset {
		scalef = formulaDistance(dim, len(children))
	}
	if opts.LeafsClose && allLeaves(children, isLeaf) {
		scalef = 0
	}
	d.ScaleScalar(scalef)

	spot := parent.Position.Clone()
	spot.Translate(d)

	scatterOnto(spot, opts.Radius, children, dim, draw)
}

func allLeaves(children []*simparticle.Particle, isLeaf func(childID string) bool) bool {
	for _, c := range children {
		if !isLeaf(c.ID) {
			return false
		}
	}

	return true
}

func scatterOnto(spot vecmath.Vector, radius float64, children []*simparticle.Particle, dim int, draw func() float64) {
	points := vecmath.SeriesOfPointsOnSphere(dim, spot, radius, len(children), draw)
	for i, c := range children {
		if c.IsAnchor {
			continue
		}
		c.Position = points[i]
	}
}
