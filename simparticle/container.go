package simparticle

import "errors"

// ErrIDNotFound indicates a lookup by vertex id found no matching particle.
var ErrIDNotFound = errors.New("simparticle: id not found")

// ErrDuplicateID indicates Add was called with an id already present.
var ErrDuplicateID = errors.New("simparticle: duplicate id")

// Container is an ordered array of Particles indexed by a stable integer
// position, with a parallel id→index lookup. Mirrors LGL's
// ParticleContainer: particles[i].index == i is an invariant maintained by
// every mutator below.
type Container struct {
	dim       int
	particles []*Particle
	byID      map[string]int
}

// NewContainer returns an empty container for particles of the given
// dimension (2 or 3).
func NewContainer(dim int) *Container {
	return &Container{
		dim:  dim,
		byID: make(map[string]int),
	}
}

// Dim returns the configured dimension.
func (c *Container) Dim() int { return c.dim }

// Len returns the number of particles.
func (c *Container) Len() int { return len(c.particles) }

// Add appends a new particle for id and returns it. Returns ErrDuplicateID
// if id is already present.
func (c *Container) Add(id string) (*Particle, error) {
	if _, ok := c.byID[id]; ok {
		return nil, ErrDuplicateID
	}
	idx := len(c.particles)
	p := New(c.dim, idx, id)
	c.particles = append(c.particles, p)
	c.byID[id] = idx

	return p, nil
}

// At returns the particle at the given stable index.
func (c *Container) At(index int) *Particle { return c.particles[index] }

// ByID returns the particle for id, or ErrIDNotFound.
func (c *Container) ByID(id string) (*Particle, error) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, ErrIDNotFound
	}

	return c.particles[idx], nil
}

// All returns the underlying slice. Callers must not retain it across a
// mutating call to Erase.
func (c *Container) All() []*Particle { return c.particles }

// Erase removes the particles at the given ids, compacting indices so that
// particles[i].Index == i remains true afterward. Used when
// disregardDisconnected drops wholly-uninitialized components after
// position interpolation (spec.md §4.7).
func (c *Container) Erase(ids []string) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := c.particles[:0]
	for _, p := range c.particles {
		if _, isDropped := drop[p.ID]; isDropped {
			delete(c.byID, p.ID)
			continue
		}
		kept = append(kept, p)
	}
	c.particles = kept

	for i, p := range c.particles {
		p.Index = i
		c.byID[p.ID] = i
	}
}
