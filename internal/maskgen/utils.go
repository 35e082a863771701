package maskgen

import "fmt"

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// progress prints a "[TAG] x%" line when Progress is on.
func progress(tag string, done, total int) {
	if !Progress || total <= 0 {
		return
	}
	fmt.Printf("[%s] %.2f%%\n", tag, Real(done)*100/Real(total))
}
