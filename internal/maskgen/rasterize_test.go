package maskgen

import (
	"math"
	"testing"

	"github.com/lukaszgryglicki/symellipsoid/spatial"
)

// bruteCount evaluates sh at every voxel center without cropping.
func bruteCount(s *Scene, sh *Shape) int {
	buf := make(spatial.Vector[Real], 0, 4)
	n := 0
	for i := 0; i < s.Nx; i++ {
		for j := 0; j < s.Ny; j++ {
			for k := 0; k < s.Nz; k++ {
				if sh.Evaluate(s.VoxelCenter(i, j, k), buf) == spatial.Inside {
					n++
				}
			}
		}
	}
	return n
}

func TestRasterizeMatchesBruteForce(t *testing.T) {
	s := NewScene(Point4{}, 12, 12, 12, 48, 48, 48)
	tilted := mustEllipsoidShape(t, "tilted", []Real{1, -1, 0.5}, []Real{0.6, 0, 0.8}, 3, 1.25, RGB{0, 1, 0})
	shapes := []*Shape{cigar(t), tilted}

	stats := Rasterize(s, shapes)
	for n, sh := range shapes {
		if want := bruteCount(s, sh); stats.Inside[n] != want {
			t.Fatalf("%s: got %d inside voxels, brute force %d", sh.Name, stats.Inside[n], want)
		}
	}
	if total := int64(s.Nx * s.Ny * s.Nz * len(shapes)); stats.Evaluated >= total {
		t.Fatalf("bounding boxes should crop work: %d evaluations of %d", stats.Evaluated, total)
	}
}

func TestRasterizeColorsAndVolume(t *testing.T) {
	s := NewScene(Point4{}, 12, 12, 12, 48, 48, 48)
	sh := cigar(t)
	stats := Rasterize(s, []*Shape{sh})

	// voxel (24,24,24) has center (0.125, 0.125, 0.125)
	if got := voxelAt(s, 24, 24, 24); got != sh.Color {
		t.Fatalf("center voxel color %+v, want %+v", got, sh.Color)
	}
	if got := voxelAt(s, 0, 0, 0); got != (RGB{}) {
		t.Fatalf("corner voxel should stay black, got %+v", got)
	}

	var sumR Real
	for i := ChR; i < len(s.Buf); i += 3 {
		sumR += s.Buf[i]
	}
	if int(sumR) != stats.Inside[0] {
		t.Fatalf("red channel sum %v != inside voxels %d", sumR, stats.Inside[0])
	}

	dx, dy, dz := s.VoxelSize()
	got := Real(stats.Inside[0]) * dx * dy * dz
	want := sh.Fn.(volumer).Volume()
	if rel := math.Abs(got-want) / want; rel > 0.05 {
		t.Fatalf("voxel volume %.4f vs analytic %.4f (rel. error %.3f)", got, want, rel)
	}
}

func TestRasterizeOverlapAddsColors(t *testing.T) {
	s := NewScene(Point4{}, 4, 4, 4, 8, 8, 8)
	a := mustSphereShape(t, "red", []Real{0, 0, 0}, 1, RGB{1, 0, 0})
	b := mustSphereShape(t, "blue", []Real{0, 0, 0}, 1, RGB{0, 0, 1})
	Rasterize(s, []*Shape{a, b})
	if got := voxelAt(s, 4, 4, 4); got != (RGB{1, 0, 1}) {
		t.Fatalf("overlapping voxel should carry both colors, got %+v", got)
	}
}

func TestRasterizeCrossSection(t *testing.T) {
	// 4D ellipsoid with the unique axis along W, centered on the scene
	// hyperplane: its cross-section is a 3D ball of the symmetric radius.
	s4 := NewScene(Point4{}, 6, 6, 6, 24, 24, 24)
	hyper := mustEllipsoidShape(t, "hyper", []Real{0, 0, 0, 0}, []Real{0, 0, 0, 1}, 2.5, 1.5, RGB{1, 1, 1})
	st4 := Rasterize(s4, []*Shape{hyper})

	s3 := NewScene(Point4{}, 6, 6, 6, 24, 24, 24)
	ball := mustSphereShape(t, "ball", []Real{0, 0, 0}, 1.5, RGB{1, 1, 1})
	st3 := Rasterize(s3, []*Shape{ball})

	if st4.Inside[0] == 0 || st4.Inside[0] != st3.Inside[0] {
		t.Fatalf("cross-section has %d voxels, 3D ball %d", st4.Inside[0], st3.Inside[0])
	}

	// moving the hyperplane past the unique axis tip leaves nothing
	s4far := NewScene(Point4{W: 3}, 6, 6, 6, 24, 24, 24)
	if st := Rasterize(s4far, []*Shape{hyper}); st.Inside[0] != 0 || st.Evaluated != 0 {
		t.Fatalf("hyperplane W=3 misses the shape, got %+v", st)
	}
}

func TestRasterizeUnboundedAndEmpty(t *testing.T) {
	s := NewScene(Point4{}, 10, 10, 10, 10, 10, 10)
	half, err := NewShape("half", 3, RGB{1, 1, 1}, halfSpace{})
	if err != nil {
		t.Fatal(err)
	}
	st := Rasterize(s, []*Shape{half})
	if st.Inside[0] != 500 || st.Evaluated != 1000 {
		t.Fatalf("half space: %+v", st)
	}

	if st := Rasterize(s, nil); len(st.Inside) != 0 || st.Evaluated != 0 {
		t.Fatalf("no shapes should do nothing: %+v", st)
	}
}
