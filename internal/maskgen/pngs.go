package maskgen

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

// toU16 maps a mask channel (clamped to [0,1]) to 0..65535 with gamma.
func toU16(v, gamma Real) uint16 {
	n := clamp01(v)
	if n > 0 && gamma != 1 {
		n = math.Pow(n, 1.0/gamma)
	}
	return uint16(math.Round(n * 65535.0))
}

// SavePNGSequence16 writes one 16-bit PNG per Z slice (k = 0..Nz-1) named
// prefix_<k>.png, zero-padded to the width of the last index.
func SavePNGSequence16(scene *Scene, prefix string, gamma Real) error {
	Nx, Ny, Nz := scene.Nx, scene.Ny, scene.Nz

	width := 1
	if Nz > 1 {
		width = int(math.Log10(Real(Nz-1))) + 1
	}
	if dir := filepath.Dir(prefix); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	step := imax(1, Nz/100)
	enc := png.Encoder{CompressionLevel: png.BestCompression}

	for k := 0; k < Nz; k++ {
		if k%step == 0 {
			progress("PNG", k+1, Nz)
		}

		img := image.NewNRGBA64(image.Rect(0, 0, Nx, Ny))
		for j := 0; j < Ny; j++ {
			y := Ny - 1 - j // flip Y so up is up
			for i := 0; i < Nx; i++ {
				base := scene.idx(i, j, k, ChR)
				img.SetNRGBA64(i, y, color.NRGBA64{
					R: toU16(scene.Buf[base+ChR], gamma),
					G: toU16(scene.Buf[base+ChG], gamma),
					B: toU16(scene.Buf[base+ChB], gamma),
					A: 0xFFFF,
				})
			}
		}

		full := fmt.Sprintf("%s_%0*d.png", prefix, width, k)
		f, err := os.Create(full)
		if err != nil {
			return err
		}
		if err := enc.Encode(f, img); err != nil {
			f.Close()
			return fmt.Errorf("encode png %s: %w", full, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
