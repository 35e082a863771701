package maskgen

import "github.com/lukaszgryglicki/symellipsoid/spatial"

// Point4 represents a point in 4-dimensional space.
type Point4 struct {
	X Real `json:"x" yaml:"x"`
	Y Real `json:"y" yaml:"y"`
	Z Real `json:"z" yaml:"z"`
	W Real `json:"w" yaml:"w"`
}

// Coords writes the first dim coordinates of p into dst (dim is 3 or 4)
// and returns it, so hot loops can reuse one buffer per worker.
func (p Point4) Coords(dst spatial.Vector[Real], dim int) spatial.Vector[Real] {
	dst = dst[:0]
	dst = append(dst, p.X, p.Y, p.Z)
	if dim > 3 {
		dst = append(dst, p.W)
	}
	return dst
}
