package maskgen

import (
	"math"

	"github.com/lukaszgryglicki/symellipsoid/spatial"
)

// voxelBox is an inclusive range of voxel indices.
type voxelBox struct {
	I0, I1, J0, J1, K0, K1 int
}

func (b voxelBox) empty() bool { return b.I0 > b.I1 || b.J0 > b.J1 || b.K0 > b.K1 }

func (s *Scene) fullBox() voxelBox {
	return voxelBox{0, s.Nx - 1, 0, s.Ny - 1, 0, s.Nz - 1}
}

// voxelRange returns the voxels whose centers may fall inside the box
// [min,max]. For 4D boxes the scene hyperplane W=Center.W must cross the box,
// otherwise the range is empty.
func (s *Scene) voxelRange(min, max spatial.Vector[Real]) voxelBox {
	if len(min) > 3 && (s.Center.W < min[3] || s.Center.W > max[3]) {
		return voxelBox{0, -1, 0, -1, 0, -1}
	}
	// voxel i has center MinX + (i+0.5)*DX; first i with center >= lo is ceil((lo-MinX)/DX - 0.5).
	// One voxel of slack on each side absorbs rounding at the box faces.
	axis := func(lo, hi, origin, d Real, n int) (int, int) {
		a := int(math.Ceil((lo-origin)/d-0.5)) - 1
		b := int(math.Floor((hi-origin)/d-0.5)) + 1
		if a > n-1 || b < 0 {
			return 0, -1
		}
		return clampInt(a, 0, n-1), clampInt(b, 0, n-1)
	}
	var box voxelBox
	box.I0, box.I1 = axis(min[0], max[0], s.MinX, s.DX, s.Nx)
	box.J0, box.J1 = axis(min[1], max[1], s.MinY, s.DY, s.Ny)
	box.K0, box.K1 = axis(min[2], max[2], s.MinZ, s.DZ, s.Nz)
	return box
}

// shapeBox is the voxel range a shape needs to visit.
func (s *Scene) shapeBox(sh *Shape) voxelBox {
	min, max, ok := sh.bounds()
	if !ok {
		return s.fullBox()
	}
	return s.voxelRange(min, max)
}
