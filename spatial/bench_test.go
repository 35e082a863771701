package spatial

import "testing"

func BenchmarkSymmetricEllipsoidEvaluate(b *testing.B) {
	e := NewSymmetricEllipsoid[float64](4)
	if err := e.SetOrientation(vec{0, 0.6, 0, 0.8}, 4, 2); err != nil {
		b.Fatal(err)
	}
	p := vec{0.5, 1, -1, 2}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Evaluate(p)
	}
}

func BenchmarkSphereEvaluate(b *testing.B) {
	s, err := NewSphere(vec{0, 0, 0, 0}, 2)
	if err != nil {
		b.Fatal(err)
	}
	p := vec{0.5, 1, -1, 2}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Evaluate(p)
	}
}
