package spatial

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the coordinate type a predicate is instantiated with.
type Scalar interface {
	constraints.Float
}

// Vector is a point or direction in N-dimensional space, N = len(v).
// A point is the vector from the origin to it.
type Vector[T Scalar] []T

// Zero returns the origin of an n-dimensional space.
func Zero[T Scalar](n int) Vector[T] { return make(Vector[T], n) }

// Dim returns the number of coordinates.
func (v Vector[T]) Dim() int { return len(v) }

// Clone returns a copy that does not share storage with v.
func (v Vector[T]) Clone() Vector[T] {
	if v == nil {
		return nil
	}
	out := make(Vector[T], len(v))
	copy(out, v)
	return out
}

// Vector functions. Both operands must have the same dimension.
func (a Vector[T]) Add(b Vector[T]) Vector[T] {
	out := make(Vector[T], len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

func (a Vector[T]) Sub(b Vector[T]) Vector[T] {
	out := make(Vector[T], len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func (v Vector[T]) Mul(s T) Vector[T] {
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = v[i] * s
	}
	return out
}

// Dot returns the dot product between two vectors.
func (a Vector[T]) Dot(b Vector[T]) T {
	var s T
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// Len2 returns the squared Euclidean length.
func (v Vector[T]) Len2() T { return v.Dot(v) }

// Len returns the Euclidean length of the vector.
func (v Vector[T]) Len() T { return T(math.Sqrt(float64(v.Len2()))) }

// Norm returns a unit-length version of the vector.
// A zero vector is returned unchanged.
func (v Vector[T]) Norm() Vector[T] {
	l := v.Len()
	if l == 0 {
		return v.Clone()
	}
	return v.Mul(1 / l)
}

// IsFinite reports whether every coordinate is neither NaN nor ±Inf.
func (v Vector[T]) IsFinite() bool {
	for _, x := range v {
		if !isFinite(x) {
			return false
		}
	}
	return true
}

// IsUnit reports whether |v·v - 1| <= tol.
func (v Vector[T]) IsUnit(tol T) bool {
	d := v.Len2() - 1
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func isFinite[T Scalar](x T) bool {
	f := float64(x)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
