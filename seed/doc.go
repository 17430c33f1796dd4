// Package seed loads initial per-vertex positions, masses, and anchor flags
// into a simparticle.Container, then fills in any vertices left unset by
// iteratively averaging each one's already-positioned neighbors until no
// further change occurs. Vertices whose whole connected component never
// receives a position (no path to any caller-supplied coordinate) are
// either left at the origin for the simulation to move, or pruned from the
// container when disregardDisconnected is configured.
//
// "Uninitialized" is detected by the conflated proxy spec.md documents:
// a position with every coordinate exactly zero. A caller who legitimately
// wants a vertex to start at the origin should pre-perturb it by a
// negligible amount.
package seed
