package maskgen

import (
	"testing"

	"github.com/lukaszgryglicki/symellipsoid/spatial"
)

func TestNewShapeValidation(t *testing.T) {
	if _, err := NewShape("flat", 2, RGB{1, 1, 1}, halfSpace{}); err == nil {
		t.Fatal("dimension 2 should be rejected")
	}
	if _, err := NewShape("nil", 3, RGB{1, 1, 1}, nil); err == nil {
		t.Fatal("nil predicate should be rejected")
	}
	sh, err := NewShape("bright", 3, RGB{2, -1, 0.5}, halfSpace{})
	if err != nil {
		t.Fatal(err)
	}
	if sh.Color != (RGB{1, 0, 0.5}) {
		t.Fatalf("color should be clamped, got %+v", sh.Color)
	}
}

func TestShapeEvaluateUsesW(t *testing.T) {
	buf := make(spatial.Vector[Real], 0, 4)
	// 4D ball of radius 1 at the origin
	ball := mustSphereShape(t, "ball4", []Real{0, 0, 0, 0}, 1, RGB{1, 1, 1})

	if ball.Evaluate(Point4{0, 0, 0, 0.5}, buf) != spatial.Inside {
		t.Fatal("point at W=0.5 should be inside the 4D ball")
	}
	if ball.Evaluate(Point4{0, 0, 0, 1.5}, buf) != spatial.Outside {
		t.Fatal("point at W=1.5 should be outside the 4D ball")
	}

	// 3D shapes ignore W
	c := cigar(t)
	if c.Evaluate(Point4{0, 0, 3, 100}, buf) != spatial.Inside {
		t.Fatal("3D shape must ignore W")
	}
}
