package maskgen

import (
	"testing"

	"github.com/lukaszgryglicki/symellipsoid/spatial"
)

func TestPointCoordsReusesBuffer(t *testing.T) {
	buf := make(spatial.Vector[Real], 0, 4)
	p := Point4{1, 2, 3, 4}

	c3 := p.Coords(buf, 3)
	if len(c3) != 3 || c3[0] != 1 || c3[2] != 3 {
		t.Fatalf("3D coords wrong: %v", c3)
	}
	c4 := p.Coords(buf, 4)
	if len(c4) != 4 || c4[3] != 4 {
		t.Fatalf("4D coords wrong: %v", c4)
	}
	if &c3[0] != &c4[0] {
		t.Fatal("Coords should reuse the buffer")
	}
}
