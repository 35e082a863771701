package maskgen

// Scene stores a 3D voxel volume (axis-aligned in X,Y,Z) embedded at W=Center.W.
// 4D shapes are rasterized as their cross-section with that hyperplane.
type Scene struct {
	Center               Point4
	Width, Height, Depth Real
	Nx, Ny, Nz           int
	Buf                  []Real // flat: (((i*Ny)+j)*Nz + k)*3 + c

	// cached bounds & mapping
	MinX, MaxX Real
	MinY, MaxY Real
	MinZ, MaxZ Real
	InvSpanX   Real
	InvSpanY   Real
	InvSpanZ   Real
	DX, DY, DZ Real // voxel size
	StrideX    int  // i * StrideX + j * StrideY + k*3 + c
	StrideY    int
}

// NewScene allocates a zero-initialized flat voxel grid and precomputes bounds & strides.
func NewScene(center Point4, width, height, depth Real, nx, ny, nz int) *Scene {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		panic("voxel resolution must be positive")
	}
	if !(width > 0 && height > 0 && depth > 0) {
		panic("scene size must be positive")
	}

	halfX := width * 0.5
	halfY := height * 0.5
	halfZ := depth * 0.5
	minX, maxX := center.X-halfX, center.X+halfX
	minY, maxY := center.Y-halfY, center.Y+halfY
	minZ, maxZ := center.Z-halfZ, center.Z+halfZ

	strideY := nz * 3
	strideX := ny * strideY

	s := &Scene{
		Center: center,
		Width:  width,
		Height: height,
		Depth:  depth,
		Nx:     nx,
		Ny:     ny,
		Nz:     nz,
		Buf:    make([]Real, nx*ny*nz*3),

		MinX:     minX,
		MaxX:     maxX,
		MinY:     minY,
		MaxY:     maxY,
		MinZ:     minZ,
		MaxZ:     maxZ,
		InvSpanX: 1.0 / (maxX - minX),
		InvSpanY: 1.0 / (maxY - minY),
		InvSpanZ: 1.0 / (maxZ - minZ),
		DX:       width / Real(nx),
		DY:       height / Real(ny),
		DZ:       depth / Real(nz),
		StrideX:  strideX,
		StrideY:  strideY,
	}
	DebugLog("Created scene center=%+v, size=(%.2f, %.2f, %.2f), resolution=(%d, %d, %d)", center, width, height, depth, nx, ny, nz)
	return s
}

// VoxelSize returns the physical size of each voxel along X,Y,Z.
func (s *Scene) VoxelSize() (dx, dy, dz Real) {
	DebugLogOnce("Voxel size: (%.5f, %.5f, %.5f)", s.DX, s.DY, s.DZ)
	return s.DX, s.DY, s.DZ
}

// VoxelIndexOf maps a 4D point to voxel indices and also returns normalized coords (u,v,w) in [0,1].
// The W coordinate is ignored.
func (s *Scene) VoxelIndexOf(p Point4) (ok bool, i, j, k int, ux, uy, uz Real) {
	if p.X < s.MinX || p.X >= s.MaxX || p.Y < s.MinY || p.Y >= s.MaxY || p.Z < s.MinZ || p.Z >= s.MaxZ {
		return false, 0, 0, 0, 0, 0, 0
	}
	ux = (p.X - s.MinX) * s.InvSpanX
	uy = (p.Y - s.MinY) * s.InvSpanY
	uz = (p.Z - s.MinZ) * s.InvSpanZ
	i = int(ux * Real(s.Nx))
	j = int(uy * Real(s.Ny))
	k = int(uz * Real(s.Nz))
	if i == s.Nx {
		i = s.Nx - 1
	}
	if j == s.Ny {
		j = s.Ny - 1
	}
	if k == s.Nz {
		k = s.Nz - 1
	}
	return true, i, j, k, ux, uy, uz
}

// VoxelCenter returns the sample point of voxel (i,j,k), lying on the W=Center.W hyperplane.
func (s *Scene) VoxelCenter(i, j, k int) Point4 {
	return Point4{
		X: s.MinX + (Real(i)+0.5)*s.DX,
		Y: s.MinY + (Real(j)+0.5)*s.DY,
		Z: s.MinZ + (Real(k)+0.5)*s.DZ,
		W: s.Center.W,
	}
}

// Flat buffer index helper (c ∈ {ChR,ChG,ChB}).
func (s *Scene) idx(i, j, k, c int) int {
	return i*s.StrideX + j*s.StrideY + k*3 + c
}
