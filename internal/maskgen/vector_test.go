package maskgen

import (
	"testing"

	"github.com/lukaszgryglicki/symellipsoid/spatial"
)

func TestVectorTruncate(t *testing.T) {
	v := Vector4{1, 2, 3, 4}
	if got := v.Truncate(3); len(got) != 3 || got[2] != 3 {
		t.Fatalf("Truncate(3) wrong: %v", got)
	}
	got := v.Truncate(4)
	want := spatial.Vector[Real]{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Truncate(4) wrong: %v", got)
		}
	}
}
