package maskgen

import (
	"fmt"
	"math"

	"github.com/lukaszgryglicki/symellipsoid/spatial"
)

// Mat4 is a row-major 4×4 matrix; only rotations are built from it.
type Mat4 struct {
	M [4][4]Real
}

func I4() Mat4 {
	var R Mat4
	for i := 0; i < 4; i++ {
		R.M[i][i] = 1
	}
	return R
}

// Mul returns A·B.
func (A Mat4) Mul(B Mat4) Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			for k := 0; k < 4; k++ {
				R.M[r][c] += A.M[r][k] * B.M[k][c]
			}
		}
	}
	return R
}

// MulVec returns A·v.
func (A Mat4) MulVec(v Vector4) Vector4 {
	in := [4]Real{v.X, v.Y, v.Z, v.W}
	var out [4]Real
	for r := range out {
		for c, x := range in {
			out[r] += A.M[r][c] * x
		}
	}
	return Vector4{out[0], out[1], out[2], out[3]}
}

// Angles in radians for rotations in coordinate planes.
type Rot4 struct {
	XY, XZ, XW, YZ, YW, ZW Real
}

// planeRot returns the identity with the (a,b) plane rotated by angle.
func planeRot(a, b int, angle Real) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	M := I4()
	M.M[a][a], M.M[a][b] = c, -s
	M.M[b][a], M.M[b][b] = s, c
	return M
}

func rotXY(a Real) Mat4 { return planeRot(0, 1, a) }
func rotXZ(a Real) Mat4 { return planeRot(0, 2, a) }
func rotXW(a Real) Mat4 { return planeRot(0, 3, a) }
func rotYZ(a Real) Mat4 { return planeRot(1, 2, a) }
func rotYW(a Real) Mat4 { return planeRot(1, 3, a) }
func rotZW(a Real) Mat4 { return planeRot(2, 3, a) }

// Compose rotation from angles.
func rotFromAngles(r Rot4) Mat4 {
	R := I4()
	R = rotZW(r.ZW).Mul(R)
	R = rotYW(r.YW).Mul(R)
	R = rotYZ(r.YZ).Mul(R)
	R = rotXW(r.XW).Mul(R)
	R = rotXZ(r.XZ).Mul(R)
	R = rotXY(r.XY).Mul(R)
	return R
}

// axisFromRotation rotates the last basis axis of a dim-dimensional space
// (e_Z for dim 3, e_W for dim 4) by r. The result is unit length up to
// rounding. In 3D only the XY, XZ and YZ planes are allowed.
func axisFromRotation(dim int, r Rot4) (spatial.Vector[Real], error) {
	var base Vector4
	switch dim {
	case 3:
		if r.XW != 0 || r.YW != 0 || r.ZW != 0 {
			return nil, fmt.Errorf("3D rotation must not use XW/YW/ZW planes, got %+v", r)
		}
		base = Vector4{0, 0, 1, 0}
	case 4:
		base = Vector4{0, 0, 0, 1}
	default:
		return nil, fmt.Errorf("rotation needs dimension 3 or 4, got %d", dim)
	}
	return rotFromAngles(r).MulVec(base).Truncate(dim), nil
}
