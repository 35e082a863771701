package maskgen

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/lukaszgryglicki/symellipsoid/spatial"
)

// RasterStats summarizes one Rasterize call.
type RasterStats struct {
	Inside    []int // inside voxels per shape, same order as the shapes
	Evaluated int64 // predicate evaluations performed
}

// Rasterize evaluates every shape at every voxel center of its bounding range
// and adds the shape color to voxels that are inside. Z slices are split
// between NumCPU workers; each worker owns its slices, so no locks are needed.
// Shapes must be fully configured before the call and must not change during it.
func Rasterize(scene *Scene, shapes []*Shape) RasterStats {
	stats := RasterStats{Inside: make([]int, len(shapes))}
	if len(shapes) == 0 {
		return stats
	}
	boxes := make([]voxelBox, len(shapes))
	for n, sh := range shapes {
		boxes[n] = scene.shapeBox(sh)
		DebugLog("Shape %q voxel range: %+v", sh.Name, boxes[n])
	}

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > scene.Nz {
		workers = scene.Nz
	}
	per, rem := scene.Nz/workers, scene.Nz%workers

	var (
		wg        sync.WaitGroup
		slices    int64
		evaluated int64
	)
	countsCh := make(chan []int, workers)
	step := imax(1, scene.Nz/100)

	k0 := 0
	for w := 0; w < workers; w++ {
		n := per
		if w < rem {
			n++
		}
		wg.Add(1)
		go func(kFrom, kTo int) {
			defer wg.Done()
			local := make([]int, len(shapes))
			buf := make(spatial.Vector[Real], 0, 4)
			var evals int64
			for k := kFrom; k < kTo; k++ {
				for n, sh := range shapes {
					b := boxes[n]
					if b.empty() || k < b.K0 || k > b.K1 {
						continue
					}
					for i := b.I0; i <= b.I1; i++ {
						for j := b.J0; j <= b.J1; j++ {
							evals++
							if sh.Evaluate(scene.VoxelCenter(i, j, k), buf) != spatial.Inside {
								continue
							}
							local[n]++
							base := scene.idx(i, j, k, ChR)
							scene.Buf[base+ChR] += sh.Color.R
							scene.Buf[base+ChG] += sh.Color.G
							scene.Buf[base+ChB] += sh.Color.B
						}
					}
				}
				if done := atomic.AddInt64(&slices, 1); int(done)%step == 0 {
					progress("MASK", int(done), scene.Nz)
				}
			}
			atomic.AddInt64(&evaluated, evals)
			countsCh <- local
		}(k0, k0+n)
		k0 += n
	}
	wg.Wait()
	close(countsCh)

	for local := range countsCh {
		for n, c := range local {
			stats.Inside[n] += c
		}
	}
	stats.Evaluated = evaluated
	return stats
}
