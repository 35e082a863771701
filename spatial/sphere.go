package spatial

import (
	"fmt"
	"math"
)

// Sphere is the closed n-ball |p - center| <= radius.
type Sphere[T Scalar] struct {
	center  Vector[T]
	radius  T
	radius2 T
}

// NewSphere validates radius and center and returns the ball predicate.
func NewSphere[T Scalar](center Vector[T], radius T) (*Sphere[T], error) {
	if len(center) == 0 {
		return nil, fmt.Errorf("sphere center is empty: %w", ErrDimensionMismatch)
	}
	if !center.IsFinite() || !isFinite(radius) {
		return nil, fmt.Errorf("sphere center %v, radius %v: %w", center, radius, ErrNonFinite)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius %v: %w", radius, ErrNonPositiveAxis)
	}
	return &Sphere[T]{center: center.Clone(), radius: radius, radius2: radius * radius}, nil
}

func (s *Sphere[T]) Dim() int          { return len(s.center) }
func (s *Sphere[T]) Center() Vector[T] { return s.center.Clone() }
func (s *Sphere[T]) Radius() T         { return s.radius }

// Evaluate returns Inside when |p - center|² <= radius².
// It panics if len(p) differs from Dim.
func (s *Sphere[T]) Evaluate(p Vector[T]) Output {
	if len(p) != len(s.center) {
		panic(fmt.Sprintf("spatial: evaluate %d-dimensional point on %d-dimensional sphere", len(p), len(s.center)))
	}
	var dd T
	for i, c := range s.center {
		d := p[i] - c
		dd += d * d
	}
	if dd <= s.radius2 {
		return Inside
	}
	return Outside
}

func (s *Sphere[T]) Bounds() (min, max Vector[T]) {
	min, max = s.center.Clone(), s.center.Clone()
	for i := range min {
		min[i] -= s.radius
		max[i] += s.radius
	}
	return min, max
}

// Volume returns radius^N times the volume of the unit N-ball.
func (s *Sphere[T]) Volume() T {
	n := len(s.center)
	return T(unitBallVolume(n) * math.Pow(float64(s.radius), float64(n)))
}
