package simparticle

import (
	"sync"

	"github.com/lglayout/lglayout/vecmath"
)

// NoContainer is the sentinel Container value meaning "not currently placed
// in any voxel" (ported from particle.hpp's NONE).
const NoContainer = -1

// Particle is one graph vertex's simulation state.
//
// Concurrency:
//   - Position is written only by the particle's owning worker during Stage
//     C, and read concurrently by any worker during Stages A, B, D.
//   - Force is written concurrently (via atomic add) during Stages A and B,
//     read and reset during Stage C.
//   - mu guards the read-modify-write force-limiting step in Stage C; no
//     other stage touches it, so contention is never observed in practice.
type Particle struct {
	// Index is this particle's stable position in its ParticleContainer.
	Index int

	// ID is the originating graph vertex id.
	ID string

	Position vecmath.Vector
	Force    AtomicForce

	Radius   float64
	Mass     float64
	IsAnchor bool

	// Container is the index of the voxel currently holding this particle,
	// or NoContainer if it is not placed in the grid.
	Container int

	mu sync.Mutex
}

// New returns a Particle at the origin with the given dimension, index, id.
// Position starts at the zero vector, which per the engine's documented
// convention also means "uninitialized" — callers that want a legitimate
// origin particle must perturb it by a negligible, non-zero amount before
// simulation begins (see seed package doc).
func New(dim int, index int, id string) *Particle {
	return &Particle{
		Index:     index,
		ID:        id,
		Position:  vecmath.New(dim),
		Force:     NewAtomicForce(dim),
		Container: NoContainer,
	}
}

// IsPositionInitialized reports whether Position is not the all-zero vector.
func (p *Particle) IsPositionInitialized() bool {
	return !p.Position.IsZero()
}

// Collides reports whether p and q overlap: Euclidean distance between their
// positions is at most the sum of their radii.
func (p *Particle) Collides(q *Particle) bool {
	return p.Position.Distance(q.Position) <= p.Radius+q.Radius
}

// WithForceLock runs fn while holding the particle's force-limiting mutex.
// Used by interaction.EnforceForceLimit for its clamp read-modify-write.
func (p *Particle) WithForceLock(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn()
}

// Reset clears force and container membership, matching particle.hpp's
// resetValues used when a particle is dropped during interpolation cleanup.
func (p *Particle) Reset() {
	p.Force.Reset()
	p.Container = NoContainer
}
