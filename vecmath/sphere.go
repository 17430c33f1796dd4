package vecmath

import "math"

// PointOnSphere draws a uniformly-distributed point on the surface of a unit
// sphere of the given dimension (2 or 3), using rng in [0,1) for each draw.
// Ported from sphere.hpp's uniform_on_sphere_vec: 2D samples a uniform angle,
// 3D uses the standard spherical parametrization with φ = acos(1-2U) to
// avoid clustering at the poles.
func PointOnSphere(dim int, rng func() float64) Vector {
	switch dim {
	case 2:
		theta := rng() * 2 * math.Pi

		return Vector{math.Cos(theta), math.Sin(theta)}
	case 3:
		theta := rng() * 2 * math.Pi
		phi := math.Acos(1 - 2*rng())

		return Vector{
			math.Cos(theta) * math.Sin(phi),
			math.Sin(theta) * math.Sin(phi),
			math.Cos(phi),
		}
	default:
		panic("vecmath: PointOnSphere supports dimension 2 or 3 only")
	}
}

// RandomPointOnSurface scales a unit-sphere sample by radius and recenters
// it at center, matching sphere.hpp's randomPointOnSurface.
func RandomPointOnSurface(dim int, center Vector, radius float64, rng func() float64) Vector {
	p := PointOnSphere(dim, rng)
	p.ScaleScalar(radius)
	p.Translate(center)

	return p
}

// SeriesOfPointsOnSphere draws count independent points on the surface of a
// sphere of the given radius centered at center.
func SeriesOfPointsOnSphere(dim int, center Vector, radius float64, count int, rng func() float64) []Vector {
	out := make([]Vector, count)
	for i := range out {
		out[i] = RandomPointOnSurface(dim, center, radius, rng)
	}

	return out
}
