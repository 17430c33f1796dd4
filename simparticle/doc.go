// Package simparticle holds a graph vertex's simulation state: position,
// mass, radius, anchor flag, and a lock-free force accumulator. Grounded on
// LGL's particle.hpp (Particle<prec_,dimension_>), translated to the
// teacher's style: exported struct, sentinel errors, and an ordered
// container type mirroring core.Graph's adjacency bookkeeping.
package simparticle
