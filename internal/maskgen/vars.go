package maskgen

import (
	"os"

	"github.com/lukaszgryglicki/symellipsoid/spatial"
	"golang.org/x/term"
)

var (
	Debug    = false                                // set to true for verbose debug output
	PNG      = false                                // set to true to save PNG sequence of the mask (16-bit per channel, lossless PNGs)
	RAW      = false                                // set to true to save RAW mask buffer
	Progress = term.IsTerminal(int(os.Stdout.Fd())) // print [MASK]/[GIF]/[PNG] progress lines
	// Compile time checks that the shapes we rasterize implement the spatial interfaces
	_ spatial.Function[Real] = (*spatial.SymmetricEllipsoid[Real])(nil)
	_ spatial.Function[Real] = (*spatial.Sphere[Real])(nil)
	_ volumer                = (*spatial.SymmetricEllipsoid[Real])(nil)
	_ volumer                = (*spatial.Sphere[Real])(nil)
)
