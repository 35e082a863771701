package maskgen

import "testing"

func TestIMaxClamp(t *testing.T) {
	if imax(3, 5) != 5 || imax(5, 3) != 5 {
		t.Fatal("imax failed")
	}
	if clampInt(-1, 0, 9) != 0 || clampInt(10, 0, 9) != 9 || clampInt(4, 0, 9) != 4 {
		t.Fatal("clampInt failed")
	}
}

func TestColorClamp(t *testing.T) {
	c := RGB{-1, 0.5, 2}.clamp01()
	if c != (RGB{0, 0.5, 1}) {
		t.Fatalf("clamp01 failed: %+v", c)
	}
	if !(RGB{}).isBlack() || (RGB{0, 0, 0.1}).isBlack() {
		t.Fatal("isBlack failed")
	}
}
