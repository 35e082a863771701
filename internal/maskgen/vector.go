package maskgen

import "github.com/lukaszgryglicki/symellipsoid/spatial"

// Vector4 represents a direction (not a position) in 4D space.
type Vector4 struct {
	X, Y, Z, W Real
}

// Truncate returns the first dim components (3 or 4) as a spatial vector.
func (v Vector4) Truncate(dim int) spatial.Vector[Real] {
	if dim > 3 {
		return spatial.Vector[Real]{v.X, v.Y, v.Z, v.W}
	}
	return spatial.Vector[Real]{v.X, v.Y, v.Z}
}
