package maskgen

import (
	"testing"

	"github.com/lukaszgryglicki/symellipsoid/spatial"
)

// halfSpace is an unbounded predicate: x >= 0.
type halfSpace struct{}

func (halfSpace) Evaluate(p spatial.Vector[Real]) spatial.Output {
	if p[0] >= 0 {
		return spatial.Inside
	}
	return spatial.Outside
}

func mustEllipsoidShape(t *testing.T, name string, center, o []Real, a, b Real, color RGB) *Shape {
	t.Helper()
	sh, err := EllipsoidCfg{
		Name:          name,
		Center:        center,
		Direction:     o,
		UniqueAxis:    a,
		SymmetricAxes: b,
		Color:         color,
	}.Build()
	if err != nil {
		t.Fatalf("build ellipsoid %q: %v", name, err)
	}
	return sh
}

func mustSphereShape(t *testing.T, name string, center []Real, r Real, color RGB) *Shape {
	t.Helper()
	sh, err := SphereCfg{Name: name, Center: center, Radius: r, Color: color}.Build()
	if err != nil {
		t.Fatalf("build sphere %q: %v", name, err)
	}
	return sh
}

func cigar(t *testing.T) *Shape {
	return mustEllipsoidShape(t, "cigar", []Real{0, 0, 0}, []Real{0, 0, 1}, 4, 2, RGB{1, 0.5, 0})
}

// voxelAt returns the accumulated color of voxel (i,j,k).
func voxelAt(s *Scene, i, j, k int) RGB {
	base := s.idx(i, j, k, ChR)
	return RGB{s.Buf[base+ChR], s.Buf[base+ChG], s.Buf[base+ChB]}
}
