package interaction

import (
	"math"
	"math/rand"

	"github.com/lglayout/lglayout/simparticle"
	"github.com/lglayout/lglayout/vecmath"
)

// EllipseFactors is a per-dimension anisotropy multiplier applied to
// positions before measuring the Hookean separation distance. An empty
// slice means isotropic (every factor is 1); a slice shorter than the
// particle dimension is padded by repeating its last entry, matching
// particleInteractionHandler.hpp's ellipseFactors setter.
type EllipseFactors []float64

// NormalizeEllipseFactors returns ef resized to dim, or nil if ef is empty
// or every entry is already 1 (the teacher's own optimization: treat an
// all-ones anisotropy vector as "no anisotropy" and skip the per-pair work).
func NormalizeEllipseFactors(ef EllipseFactors, dim int) EllipseFactors {
	if len(ef) == 0 {
		return nil
	}
	allOnes := true
	for _, f := range ef {
		if f != 1 {
			allOnes = false

			break
		}
	}
	if allOnes {
		return nil
	}
	if len(ef) >= dim {
		return ef[:dim]
	}
	out := make(EllipseFactors, dim)
	copy(out, ef)
	last := ef[len(ef)-1]
	for i := len(ef); i < dim; i++ {
		out[i] = last
	}

	return out
}

// Handler computes pairwise forces and integrates motion. It is stateless
// except for the tunable scalars below, which the driver reconfigures
// between Stage A (repulsion) and Stage B (attraction) per spec.md §4.4.
type Handler struct {
	SpringConstant   float64
	EqDistance       float64
	eqDistanceSq     float64
	NoiseAmplitude   float64
	EllipseFactors   EllipseFactors
	ForceConstraint  float64
	TimeStep         float64
	Rand             *rand.Rand
}

// New returns a Handler with the given spring constant and equilibrium
// distance; other fields default to zero and should be set by the caller
// before first use.
func New(springConstant, eqDistance float64, rng *rand.Rand) *Handler {
	h := &Handler{
		SpringConstant: springConstant,
		Rand:           rng,
	}
	h.SetEqDistance(eqDistance)

	return h
}

// SetEqDistance sets the equilibrium separation and its cached square (used
// by Interact's fast reject test).
func (h *Handler) SetEqDistance(d float64) {
	h.EqDistance = d
	h.eqDistanceSq = d * d
}

// Interact computes the repulsive/attractive spring force between p1 and
// p2, short-circuiting if their squared distance is at or beyond
// eqDistance² (spec.md §4.3 step 1).
func (h *Handler) Interact(p1, p2 *simparticle.Particle) {
	if p1.Position.DistanceSquared(p2.Position) >= h.eqDistanceSq {
		return
	}
	h.springRepulsive(p1, p2)
}

// Attract computes the spring-repulsive law's reverse gate used by the
// driver's Stage B: force is applied only when p1 and p2 are farther apart
// than h.EqDistance (pulling a stretched edge back toward equilibrium),
// unlike Interact's "apply only when closer than EqDistance" repulsion gate.
func (h *Handler) Attract(p1, p2 *simparticle.Particle) {
	if p1.Position.Distance(p2.Position) <= h.EqDistance {
		return
	}
	h.springRepulsive(p1, p2)
}

func (h *Handler) springRepulsive(p1, p2 *simparticle.Particle) {
	p1Anchor, p2Anchor := p1.IsAnchor, p2.IsAnchor

	if p1.Collides(p2) {
		if !p1Anchor {
			h.AddNoise(p1)
		}
		if !p2Anchor {
			h.AddNoise(p2)
		}

		return
	}

	x1 := p1.Position.Clone()
	x2 := p2.Position.Clone()
	for i := 0; i < len(h.EllipseFactors) && i < len(x1); i++ {
		x1[i] *= h.EllipseFactors[i]
		x2[i] *= h.EllipseFactors[i]
	}

	dist := x1.Distance(x2)
	if dist == 0 {
		// Numeric clamp (spec.md §4.9): zero-magnitude separation skips the
		// pair entirely rather than dividing by zero.
		return
	}
	sepFromIdeal := dist - h.EqDistance
	scale := -h.SpringConstant * sepFromIdeal / dist

	dim := len(p1.Position)
	f := make(vecmath.Vector, dim)
	fNeg := make(vecmath.Vector, dim)
	for i := 0; i < dim; i++ {
		dx := x1[i] - x2[i]
		comp := dx * scale
		f[i] = comp
		fNeg[i] = -comp
	}

	if !p1Anchor {
		if p2Anchor {
			f.ScaleScalar(2)
		}
		for i := 0; i < dim; i++ {
			p1.Force.Add(i, f[i])
		}
	}
	if !p2Anchor {
		if p1Anchor {
			fNeg.ScaleScalar(2)
		}
		for i := 0; i < dim; i++ {
			p2.Force.Add(i, fNeg[i])
		}
	}
}

// AddNoise adds a per-dimension random force of magnitude up to
// NoiseAmplitude, sign chosen uniformly, into p's accumulator. Invoked on
// collision in place of a spring force (spec.md §4.3's noise step).
func (h *Handler) AddNoise(p *simparticle.Particle) {
	for d := 0; d < len(p.Position); d++ {
		factor := h.NoiseAmplitude
		if h.Rand.Float64() < 0.5 {
			factor = -factor
		}
		p.Force.Add(d, factor*h.Rand.Float64())
	}
}

// EnforceForceLimit clamps each component of p's force to
// [-ForceConstraint, ForceConstraint] under p's own mutex, a
// read-modify-write that cannot use the lock-free atomic add path (spec.md
// §4.3's force limiter).
func (h *Handler) EnforceForceLimit(p *simparticle.Particle) {
	p.WithForceLock(func() {
		for d := 0; d < len(p.Position); d++ {
			v := p.Force.Load(d)
			if v > h.ForceConstraint {
				p.Force.Add(d, h.ForceConstraint-v)
			} else if v < -h.ForceConstraint {
				p.Force.Add(d, -h.ForceConstraint-v)
			}
		}
	})
}

// maxStep is the per-iteration displacement cap that keeps particles from
// tunneling through voxels in a single step (spec.md §4.3).
const maxStep = 0.05

// Integrate applies first-order Euler integration with the per-step
// displacement clamp: dx[i] = clamp(f[i]*dt, -0.05, 0.05).
func (h *Handler) Integrate(p *simparticle.Particle) {
	for i := 0; i < len(p.Position); i++ {
		finc := p.Force.Load(i) * h.TimeStep
		if finc < 0 {
			finc = -math.Min(maxStep, math.Abs(finc))
		} else {
			finc = math.Min(maxStep, finc)
		}
		p.Position[i] += finc
	}
}
