package maskgen

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/lukaszgryglicki/symellipsoid/spatial"
)

// estimateVolume returns a Monte-Carlo estimate of the shape's inside volume
// in its own dimension: uniform samples over the bounding box, scaled by the
// box volume. The shape predicate must implement spatial.Bounded.
func estimateVolume(sh *Shape, trials int) (Real, error) {
	min, max, ok := sh.bounds()
	if !ok {
		return 0, fmt.Errorf("shape %q has no bounding box", sh.Name)
	}
	if trials <= 0 {
		return 0, nil
	}
	boxVol := 1.0
	for i := range min {
		boxVol *= max[i] - min[i]
	}

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > trials {
		workers = trials
	}

	per, rem := trials/workers, trials%workers
	var wg sync.WaitGroup
	hitsCh := make(chan int, workers)

	for w := 0; w < workers; w++ {
		n := per
		if w < rem {
			n++
		}
		if n == 0 {
			continue
		}
		wg.Add(1)
		go func(wid, n int) {
			defer wg.Done()
			// independent RNG per worker
			seed := time.Now().UnixNano() ^ int64(uint64(wid)*0x9e3779b97f4a7c15)
			rng := rand.New(rand.NewSource(seed))

			p := make(spatial.Vector[Real], len(min))
			localHits := 0
			for i := 0; i < n; i++ {
				for d := range p {
					p[d] = min[d] + rng.Float64()*(max[d]-min[d])
				}
				if sh.Fn.Evaluate(p) == spatial.Inside {
					localHits++
				}
			}
			hitsCh <- localHits
		}(w, n)
	}

	wg.Wait()
	close(hitsCh)

	totalHits := 0
	for h := range hitsCh {
		totalHits += h
	}
	return boxVol * Real(totalHits) / Real(trials), nil
}

// checkVolume compares the Monte-Carlo estimate with the closed form and
// returns the relative error. Shapes without a closed form are skipped.
func checkVolume(sh *Shape, trials int) (est, exact, relErr Real, ok bool, err error) {
	v, isVol := sh.Fn.(volumer)
	if !isVol {
		return 0, 0, 0, false, nil
	}
	exact = v.Volume()
	est, err = estimateVolume(sh, trials)
	if err != nil || exact == 0 {
		return est, exact, 0, false, err
	}
	relErr = (est - exact) / exact
	if relErr < 0 {
		relErr = -relErr
	}
	return est, exact, relErr, true, nil
}
