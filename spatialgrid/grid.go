package spatialgrid

import (
	"errors"
	"math"

	"github.com/lglayout/lglayout/simparticle"
	"github.com/lglayout/lglayout/vecmath"
	"github.com/lglayout/lglayout/voxel"
)

// ErrOutOfGrid is returned by VoxelOf/Place when a position falls outside
// every voxel's fuzzy bounds (spec.md §4.1).
var ErrOutOfGrid = errors.New("spatialgrid: position outside grid bounds")

// Grid is a uniform axis-aligned voxel grid covering a bounding box, built
// once per run after initial positions are known (spec.md §3).
type Grid struct {
	Dim           int
	Min           vecmath.Vector
	EdgeLength    float64
	VoxelsPerEdge []int
	strides       []int
	Voxels        []*voxel.Voxel
	stencil       [][]int
}

// Build allocates a grid covering [min,max], padded by one voxel edge on both
// sides of each dimension with the voxel count rounded up, with cells of
// the given edge length (spec.md §4.1 build(min,max,edgeLength)).
func Build(dim int, min, max vecmath.Vector, edgeLength float64) *Grid {
	paddedMin := make(vecmath.Vector, dim)
	voxelsPerEdge := make([]int, dim)
	for d := 0; d < dim; d++ {
		paddedMin[d] = min[d] - edgeLength
		span := (max[d] + edgeLength) - paddedMin[d]
		voxelsPerEdge[d] = int(math.Ceil(span / edgeLength))
		if voxelsPerEdge[d] < 1 {
			voxelsPerEdge[d] = 1
		}
	}

	strides := make([]int, dim)
	strides[0] = 1
	for d := 1; d < dim; d++ {
		strides[d] = strides[d-1] * voxelsPerEdge[d-1]
	}

	total := 1
	for _, n := range voxelsPerEdge {
		total *= n
	}

	g := &Grid{
		Dim:           dim,
		Min:           paddedMin,
		EdgeLength:    edgeLength,
		VoxelsPerEdge: voxelsPerEdge,
		strides:       strides,
		Voxels:        make([]*voxel.Voxel, total),
		stencil:       stencilOffsets(dim),
	}

	coord := make([]int, dim)
	for idx := 0; idx < total; idx++ {
		rem := idx
		origin := make(vecmath.Vector, dim)
		for d := 0; d < dim; d++ {
			coord[d] = (rem / strides[d]) % voxelsPerEdge[d]
			origin[d] = paddedMin[d] + float64(coord[d])*edgeLength
		}
		g.Voxels[idx] = voxel.New(idx, origin, edgeLength/2)
	}

	return g
}

// coordOf returns the per-dimension voxel coordinate of x, and ok=false if x
// falls outside the grid.
func (g *Grid) coordOf(x vecmath.Vector) (coord []int, ok bool) {
	coord = make([]int, g.Dim)
	for d := 0; d < g.Dim; d++ {
		c := int(math.Floor((x[d] - g.Min[d]) / g.EdgeLength))
		if c < 0 || c >= g.VoxelsPerEdge[d] {
			return nil, false
		}
		coord[d] = c
	}

	return coord, true
}

func (g *Grid) indexOf(coord []int) int {
	idx := 0
	for d := 0; d < g.Dim; d++ {
		idx += coord[d] * g.strides[d]
	}

	return idx
}

// VoxelOf returns the voxel containing x, verified by a fuzzy-inclusion
// check against the candidate voxel's bounds (spec.md §4.1).
func (g *Grid) VoxelOf(x vecmath.Vector) (*voxel.Voxel, error) {
	coord, ok := g.coordOf(x)
	if !ok {
		return nil, ErrOutOfGrid
	}
	v := g.Voxels[g.indexOf(coord)]
	if !v.Contains(x) {
		return nil, ErrOutOfGrid
	}

	return v, nil
}

// Place inserts p into the voxel containing its current position, recording
// the voxel index on p.Container. Returns ErrOutOfGrid if p's position is
// outside every voxel.
func (g *Grid) Place(p *simparticle.Particle) error {
	v, err := g.VoxelOf(p.Position)
	if err != nil {
		return err
	}
	v.Insert(p)
	p.Container = v.Index

	return nil
}

// Remove deletes p from its current voxel, if any, and clears p.Container.
func (g *Grid) Remove(p *simparticle.Particle) {
	if p.Container == simparticle.NoContainer {
		return
	}
	g.Voxels[p.Container].Delete(p)
	p.Container = simparticle.NoContainer
}

// Shift re-homes p after its position changed: a no-op if it still fits its
// current voxel (the fast path that avoids any lock acquisition for the
// common case), otherwise remove-then-place into the new voxel. If the new
// position is entirely outside the grid, p is left with Container set to
// NoContainer and the caller is expected to log this as a soft
// GridPlacement error per spec.md §4.9 / §7.
func (g *Grid) Shift(p *simparticle.Particle) error {
	if p.Container != simparticle.NoContainer {
		cur := g.Voxels[p.Container]
		if cur.Contains(p.Position) {
			return nil
		}
		cur.Delete(p)
		p.Container = simparticle.NoContainer
	}

	v, err := g.VoxelOf(p.Position)
	if err != nil {
		return err
	}
	v.Insert(p)
	p.Container = v.Index

	return nil
}

// NeighborVoxels returns the voxels in v's stencil (including v itself),
// skipping any offset that would cross the grid boundary.
func (g *Grid) NeighborVoxels(v *voxel.Voxel) []*voxel.Voxel {
	base, ok := g.coordOf(v.Center())
	if !ok {
		return nil
	}

	out := make([]*voxel.Voxel, 0, len(g.stencil))
	coord := make([]int, g.Dim)
	for _, off := range g.stencil {
		inBounds := true
		for d := 0; d < g.Dim; d++ {
			c := base[d] + off[d]
			if c < 0 || c >= g.VoxelsPerEdge[d] {
				inBounds = false

				break
			}
			coord[d] = c
		}
		if !inBounds {
			continue
		}
		out = append(out, g.Voxels[g.indexOf(coord)])
	}

	return out
}
