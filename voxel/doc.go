// Package voxel defines a single cell of the uniform spatial grid: an
// axis-aligned cube holding non-owning references to the particles
// currently inside it, a scheduler mark, and a mutex guarding occupant-set
// mutation. Grounded on LGL's grid.hpp voxel bookkeeping (the Voxel struct
// embedded in Grid), split into its own package in the teacher's style of
// one type-per-package for small, widely-shared primitives.
package voxel
