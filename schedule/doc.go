// Package schedule builds the grid scheduler's voxel visit list: a
// permutation of every voxel such that round-robin dispatch to a fixed
// worker count never has two workers simultaneously inside voxels whose
// stencils overlap. Grounded on LGL's gridSchedual.hpp
// (GridSchedual_MTS<Grid>).
package schedule
