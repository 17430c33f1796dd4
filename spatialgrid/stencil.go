package spatialgrid

// offsets3D is the 14-offset neighbor stencil from spec.md §4.1, including
// the zero offset (the voxel itself). It is constructed so that iterating
// it from any voxel, and unioning with the symmetric opposite offsets,
// covers every one of the 26 geometric neighbors in 3D exactly once across
// the whole grid — the half-offset trick that avoids double-counting
// interacting pairs.
var offsets3D = [][3]int{
	{0, 0, 0},
	{1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {-1, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}, {-1, 1, 1},
	{-1, 0, 1}, {-1, -1, 1}, {0, -1, 1}, {1, -1, 1},
}

// stencilOffsets returns the dimension-appropriate prefix of offsets3D,
// truncated to dim components per voxel (spec.md §4.1: 14 offsets in 3D, the
// first 5 in 2D, the first 2 in 1D).
func stencilOffsets(dim int) [][]int {
	var n int
	switch dim {
	case 1:
		n = 2
	case 2:
		n = 5
	case 3:
		n = 14
	default:
		panic("spatialgrid: dimension must be 1, 2, or 3")
	}

	out := make([][]int, n)
	for i := 0; i < n; i++ {
		out[i] = make([]int, dim)
		for d := 0; d < dim; d++ {
			out[i][d] = offsets3D[i][d]
		}
	}

	return out
}
