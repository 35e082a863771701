package maskgen

import "testing"

func TestSceneMapping(t *testing.T) {
	s := NewScene(Point4{0, 0, 0, 0}, 2, 4, 6, 10, 20, 30)
	if s.StrideY != s.Nz*3 {
		t.Fatalf("StrideY wrong: %d", s.StrideY)
	}
	if s.StrideX != s.Ny*s.StrideY {
		t.Fatalf("StrideX wrong: %d", s.StrideX)
	}
	// bounds: X∈[-1,1], Y∈[-2,2], Z∈[-3,3]
	ok, i, j, k, ux, uy, uz := s.VoxelIndexOf(Point4{0, 0, 0, 0})
	if !ok || i != 5 || j != 10 || k != 15 {
		t.Fatalf("IndexOf center wrong: ok=%v i=%d j=%d k=%d (ux=%.3f uy=%.3f uz=%.3f)", ok, i, j, k, ux, uy, uz)
	}
	if ok, _, _, _, _, _, _ := s.VoxelIndexOf(Point4{1, 0, 0, 0}); ok {
		t.Fatal("max face is exclusive")
	}
}

func TestIdxAndVoxelSize(t *testing.T) {
	s := NewScene(Point4{0, 0, 0, 0}, 2, 2, 2, 4, 4, 4)
	dx, dy, dz := s.VoxelSize()
	if dx != 0.5 || dy != 0.5 || dz != 0.5 {
		t.Fatalf("voxel size wrong: %.3f %.3f %.3f", dx, dy, dz)
	}
	idx := s.idx(1, 2, 3, ChG)
	if idx != 1*s.StrideX+2*s.StrideY+3*3+1 {
		t.Fatalf("idx wrong: %d", idx)
	}
}

func TestVoxelCenterRoundTrip(t *testing.T) {
	s := NewScene(Point4{1, -2, 3, 7}, 3, 5, 7, 6, 5, 7)
	for i := 0; i < s.Nx; i++ {
		for j := 0; j < s.Ny; j++ {
			for k := 0; k < s.Nz; k++ {
				p := s.VoxelCenter(i, j, k)
				if p.W != 7 {
					t.Fatalf("voxel center must lie on W=%v, got %+v", s.Center.W, p)
				}
				ok, ii, jj, kk, _, _, _ := s.VoxelIndexOf(p)
				if !ok || ii != i || jj != j || kk != k {
					t.Fatalf("round trip (%d,%d,%d) -> %+v -> (%v,%d,%d,%d)", i, j, k, p, ok, ii, jj, kk)
				}
			}
		}
	}
}

func TestVoxelAt(t *testing.T) {
	s := NewScene(Point4{}, 1, 1, 1, 2, 2, 2)
	base := s.idx(1, 0, 1, ChR)
	s.Buf[base], s.Buf[base+1], s.Buf[base+2] = 0.25, 0.5, 1
	if got := voxelAt(s, 1, 0, 1); got != (RGB{0.25, 0.5, 1}) {
		t.Fatalf("voxel wrong: %+v", got)
	}
	if got := voxelAt(s, 0, 1, 1); got != (RGB{}) {
		t.Fatalf("untouched voxel should be black, got %+v", got)
	}
}

func TestNewScenePanics(t *testing.T) {
	for name, fn := range map[string]func(){
		"zero resolution": func() { NewScene(Point4{}, 1, 1, 1, 0, 1, 1) },
		"zero size":       func() { NewScene(Point4{}, 1, 0, 1, 1, 1, 1) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			fn()
		})
	}
}
