package maskgen

import (
	"fmt"

	"github.com/lukaszgryglicki/symellipsoid/spatial"
)

// Shape is a named, colored predicate rasterized into a Scene.
type Shape struct {
	Name  string
	Color RGB
	Dim   int // 3 or 4
	Fn    spatial.Function[Real]
}

// volumer is implemented by predicates with a closed-form volume.
type volumer interface {
	Volume() Real
}

// NewShape checks the dimension and wraps fn.
func NewShape(name string, dim int, color RGB, fn spatial.Function[Real]) (*Shape, error) {
	if dim != 3 && dim != 4 {
		return nil, fmt.Errorf("shape %q: dimension must be 3 or 4, got %d", name, dim)
	}
	if fn == nil {
		return nil, fmt.Errorf("shape %q: nil predicate", name)
	}
	sh := &Shape{Name: name, Color: color.clamp01(), Dim: dim, Fn: fn}
	if sh.Color.isBlack() {
		DebugLog("Shape %q is black and will not show in the mask", name)
	}
	DebugLog("Created shape %q: dim=%d, color=%+v, predicate=%T", name, dim, sh.Color, fn)
	return sh, nil
}

// Evaluate classifies a scene point, using its W coordinate only for 4D shapes.
// buf is scratch space of capacity >= 4.
func (sh *Shape) Evaluate(p Point4, buf spatial.Vector[Real]) spatial.Output {
	return sh.Fn.Evaluate(p.Coords(buf, sh.Dim))
}

// bounds returns the shape's bounding box when the predicate knows it.
func (sh *Shape) bounds() (min, max spatial.Vector[Real], ok bool) {
	b, ok := sh.Fn.(spatial.Bounded[Real])
	if !ok {
		return nil, nil, false
	}
	min, max = b.Bounds()
	return min, max, true
}
