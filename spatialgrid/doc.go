// Package spatialgrid implements the uniform voxel grid used for O(n)
// repulsion-neighbor enumeration: bounding-box padding and allocation,
// point-to-voxel localization, particle placement/removal/shift, and the
// fixed 14/5/2-offset neighbor stencil (3D/2D/1D). Grounded on LGL's
// grid.hpp (Grid<Occupant>, GridIter, NbhrVoxelPositions).
package spatialgrid
