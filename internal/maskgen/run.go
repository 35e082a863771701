package maskgen

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Run loads the config, rasterizes every shape into the voxel volume and
// writes the result as a GIF, a PNG sequence (PNG) or a raw dump (RAW).
// A path ending in .raw is a dump from an earlier run; it is only re-encoded.
func Run(path string) error {
	if strings.EqualFold(filepath.Ext(path), ".raw") {
		return rerender(path)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	shapes, err := cfg.Shapes()
	if err != nil {
		return err
	}

	if Debug {
		for _, sh := range shapes {
			est, exact, relErr, ok, err := checkVolume(sh, cfg.ProbeRays)
			if err != nil || !ok {
				continue
			}
			DebugLog("Shape %q volume: analytic=%.6g estimated=%.6g (rel. error %.3g)", sh.Name, exact, est, relErr)
			if relErr > VolumeTolerance {
				DebugLog("Shape %q volume estimate is off by more than %.0f%%", sh.Name, VolumeTolerance*100)
			}
		}
	}

	scene := NewScene(cfg.Scene.Center, cfg.Scene.Width, cfg.Scene.Height, cfg.Scene.Depth, cfg.ResX, cfg.ResY, cfg.ResZ)
	if len(cfg.Probes) > 0 {
		printProbes(os.Stdout, evaluateProbes(scene, shapes, cfg.Probes))
	}

	start := time.Now()
	stats := Rasterize(scene, shapes)
	DebugLog("Rasterized %d shapes: %d evaluations, time: %s", len(shapes), stats.Evaluated, time.Since(start))
	dx, dy, dz := scene.VoxelSize()
	for n, sh := range shapes {
		DebugLog("Shape %q: %d inside voxels, %.6g units³ in the scene volume", sh.Name, stats.Inside[n], Real(stats.Inside[n])*dx*dy*dz)
	}

	base := strings.TrimSuffix(cfg.GIFOut, ".gif")
	if RAW {
		path := base + ".raw"
		if err := scene.SaveRawRGB64(path); err != nil {
			return err
		}
		DebugLog("Saved RAW mask: %s", path)
	}
	return writeImages(scene, base, cfg.GIFDelay, cfg.GIFScale, cfg.Gamma)
}

// rerender loads a raw dump and writes it next to itself as <base>.gif, or as
// a PNG sequence under pngs/ when PNG is set. Defaults from const.go apply.
func rerender(rawPath string) error {
	scene, err := LoadRawRGB64(rawPath)
	if err != nil {
		return err
	}
	DebugLog("Loaded RAW mask %s: resolution=(%d, %d, %d)", rawPath, scene.Nx, scene.Ny, scene.Nz)
	return writeImages(scene, rawPath[:len(rawPath)-len(filepath.Ext(rawPath))], GIFDelay, GIFScale, Gamma)
}

// writeImages writes base.gif, or base's PNG sequence (gifs/ -> pngs/) when PNG is set.
func writeImages(scene *Scene, base string, delay, scale int, gamma Real) error {
	if PNG {
		prefix := strings.Replace(base, "gifs/", "pngs/", 1)
		if err := SavePNGSequence16(scene, prefix, gamma); err != nil {
			return err
		}
		DebugLog("Saved PNG sequence with prefix: %s", prefix)
		return nil
	}
	path := base + ".gif"
	if err := SaveAnimatedGIF(scene, path, delay, scale, gamma); err != nil {
		return err
	}
	DebugLog("Saved animated GIF: %s", path)
	return nil
}
