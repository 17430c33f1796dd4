package voxel

import (
	"sync"

	"github.com/lglayout/lglayout/simparticle"
	"github.com/lglayout/lglayout/vecmath"
)

// fuzzEps is the inclusion tolerance used by Contains, guarding against
// floating-point edge effects at voxel boundaries (spec.md §4.1).
const fuzzEps = 0.001

// Unmarked, Claimed are scheduler mark sentinels. Any other value records
// the 1-based pass number in which this voxel was provisionally blocked by
// a neighbor's claim (spec.md §4.2).
const (
	Unmarked = 0
	Claimed  = -1
)

// Voxel is one axis-aligned cell of the uniform grid. Occupants are held as
// non-owning particle pointers keyed by particle index: the voxel never
// outlives, nor is consulted by, anything but the grid and scheduler that
// own it.
type Voxel struct {
	// Index is this voxel's position in the grid's flat voxel array.
	Index int

	Origin   vecmath.Vector // the low corner of the cube
	HalfEdge float64

	// Mark is the scheduler's per-pass claim state: Unmarked, Claimed, or a
	// pass number (spec.md §4.2).
	Mark int

	occupants map[int]*simparticle.Particle
	mu        sync.Mutex
}

// New returns an empty voxel at the given grid index and origin.
func New(index int, origin vecmath.Vector, halfEdge float64) *Voxel {
	return &Voxel{
		Index:     index,
		Origin:    origin,
		HalfEdge:  halfEdge,
		occupants: make(map[int]*simparticle.Particle),
	}
}

// Center returns the voxel's geometric center.
func (v *Voxel) Center() vecmath.Vector {
	c := v.Origin.Clone()
	c.TranslateScalar(v.HalfEdge)

	return c
}

// Contains reports whether x lies within this voxel, with a small fuzz
// tolerance on each face to absorb floating-point drift at boundaries.
func (v *Voxel) Contains(x vecmath.Vector) bool {
	for i := range x {
		lo := v.Origin[i] - fuzzEps
		hi := v.Origin[i] + 2*v.HalfEdge + fuzzEps
		if x[i] < lo || x[i] > hi {
			return false
		}
	}

	return true
}

// Insert adds p to this voxel's occupant set under lock.
func (v *Voxel) Insert(p *simparticle.Particle) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.occupants[p.Index] = p
}

// Delete removes p from this voxel's occupant set under lock.
func (v *Voxel) Delete(p *simparticle.Particle) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.occupants, p.Index)
}

// Occupants returns a snapshot slice of the current occupants. Safe to call
// without external locking; the snapshot may be stale the instant it
// returns, which is acceptable since only Stage C mutates membership and it
// runs without overlap with the stages that read occupants (spec.md §5).
func (v *Voxel) Occupants() []*simparticle.Particle {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]*simparticle.Particle, 0, len(v.occupants))
	for _, p := range v.occupants {
		out = append(out, p)
	}

	return out
}

// Len returns the current occupant count.
func (v *Voxel) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return len(v.occupants)
}
