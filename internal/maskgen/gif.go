package maskgen

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// toByte maps a mask channel (clamped to [0,1]) to 0..255 with gamma.
func toByte(v, gamma Real) uint8 {
	n := clamp01(v)
	if n > 0 && gamma != 1 {
		n = math.Pow(n, 1.0/gamma)
	}
	return uint8(math.Round(n * 255))
}

// SaveAnimatedGIF writes a GIF with one frame per Z slice (k = 0..Nz-1).
// delay is in 100ths of a second (e.g., 5 => 20 fps). Each voxel becomes a
// scale x scale block of pixels (scale < 1 is treated as 1).
// Mask colors are absolute: overlapping shapes saturate at 1, no per-slice normalization.
func SaveAnimatedGIF(scene *Scene, path string, delay, scale int, gamma Real) error {
	Nx, Ny, Nz := scene.Nx, scene.Ny, scene.Nz
	scale = imax(scale, 1)

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, Nz),
		Delay:     make([]int, 0, Nz),
		LoopCount: 0,
	}
	rgba := image.NewNRGBA(image.Rect(0, 0, Nx, Ny))
	step := imax(1, Nz/100)

	for k := 0; k < Nz; k++ {
		if k%step == 0 {
			progress("GIF", k+1, Nz)
		}
		// fill RGBA (flip Y so up is up)
		for j := 0; j < Ny; j++ {
			rowOff := (Ny - 1 - j) * rgba.Stride
			for i := 0; i < Nx; i++ {
				base := scene.idx(i, j, k, ChR)
				p := rowOff + i*4
				rgba.Pix[p+0] = toByte(scene.Buf[base+ChR], gamma)
				rgba.Pix[p+1] = toByte(scene.Buf[base+ChG], gamma)
				rgba.Pix[p+2] = toByte(scene.Buf[base+ChB], gamma)
				rgba.Pix[p+3] = 255
			}
		}

		var frame image.Image = rgba
		if scale > 1 {
			big := image.NewNRGBA(image.Rect(0, 0, Nx*scale, Ny*scale))
			xdraw.NearestNeighbor.Scale(big, big.Bounds(), rgba, rgba.Bounds(), xdraw.Src, nil)
			frame = big
		}

		// nearest palette color, no dithering: masks keep hard edges
		pimg := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.Draw(pimg, pimg.Bounds(), frame, image.Point{}, draw.Src)

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return fmt.Errorf("encode gif %s: %w", path, err)
	}
	return f.Close()
}
