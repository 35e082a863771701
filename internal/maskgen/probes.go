package maskgen

import (
	"fmt"
	"io"

	"github.com/lukaszgryglicki/symellipsoid/spatial"
)

// ProbeResult is the classification of one probe point against one shape.
// InScene reports whether the point's XYZ falls inside the scene volume, and
// Voxel is then the voxel holding it.
type ProbeResult struct {
	Point   []Real
	Shape   string
	Output  spatial.Output
	InScene bool
	Voxel   [3]int
}

// evaluateProbes classifies every probe against every shape of the same
// dimension; shapes of another dimension are skipped for that probe.
func evaluateProbes(scene *Scene, shapes []*Shape, probes [][]Real) []ProbeResult {
	results := make([]ProbeResult, 0, len(shapes)*len(probes))
	for _, p := range probes {
		var (
			inScene bool
			voxel   [3]int
		)
		if len(p) >= 3 {
			inScene, voxel[0], voxel[1], voxel[2], _, _, _ = scene.VoxelIndexOf(Point4{X: p[0], Y: p[1], Z: p[2]})
		}
		for _, sh := range shapes {
			if sh.Dim != len(p) {
				continue
			}
			results = append(results, ProbeResult{
				Point:   p,
				Shape:   sh.Name,
				Output:  sh.Fn.Evaluate(p),
				InScene: inScene,
				Voxel:   voxel,
			})
		}
	}
	return results
}

func printProbes(w io.Writer, results []ProbeResult) {
	for _, r := range results {
		if r.InScene {
			fmt.Fprintf(w, "probe %v: %s %s (voxel %d,%d,%d)\n", r.Point, r.Output, r.Shape, r.Voxel[0], r.Voxel[1], r.Voxel[2])
			continue
		}
		fmt.Fprintf(w, "probe %v: %s %s (outside scene)\n", r.Point, r.Output, r.Shape)
	}
}
