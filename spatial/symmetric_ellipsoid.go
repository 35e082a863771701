package spatial

import (
	"fmt"
	"math"
)

// UnitTolerance bounds |o·o - 1| for an orientation to count as unit length.
const UnitTolerance = 1e-6

// SymmetricEllipsoid classifies points against an n-dimensional ellipsoid with
// one unique axis of half-length UniqueAxisLength along Orientation and N-1
// symmetric axes of half-length SymmetricAxesLength.
//
// A new predicate is centered at the origin and unconfigured; it classifies
// every point as Outside until SetOrientation succeeds. There is no way back
// to the unconfigured state.
type SymmetricEllipsoid[T Scalar] struct {
	dim         int
	center      Vector[T]
	orientation Vector[T]
	uniqueAxis  T
	symAxes     T

	// cached by SetOrientation
	axisRatio  T // symAxes / uniqueAxis
	symAxes2   T
	configured bool
}

// NewSymmetricEllipsoid returns an unconfigured predicate of the given
// dimension centered at the origin. It panics if dim < 1.
func NewSymmetricEllipsoid[T Scalar](dim int) *SymmetricEllipsoid[T] {
	if dim < 1 {
		panic("spatial: dimension must be positive")
	}
	return &SymmetricEllipsoid[T]{
		dim:    dim,
		center: Zero[T](dim),
	}
}

// Dim returns the dimension of the space the predicate lives in.
func (e *SymmetricEllipsoid[T]) Dim() int { return e.dim }

// Center returns a copy of the ellipsoid center.
func (e *SymmetricEllipsoid[T]) Center() Vector[T] { return e.center.Clone() }

// SetCenter replaces the center. The predicate keeps its own copy.
func (e *SymmetricEllipsoid[T]) SetCenter(c Vector[T]) error {
	if len(c) != e.dim {
		return fmt.Errorf("center has %d coordinates, want %d: %w", len(c), e.dim, ErrDimensionMismatch)
	}
	if !c.IsFinite() {
		return fmt.Errorf("center %v: %w", c, ErrNonFinite)
	}
	e.center = c.Clone()
	return nil
}

// SetOrientation sets the unique axis direction and both half-lengths in one
// call and refreshes the cached axis ratio. The orientation must already be a
// unit vector; it is stored as given and never renormalized. On error the
// predicate is left unchanged.
func (e *SymmetricEllipsoid[T]) SetOrientation(orientation Vector[T], uniqueAxis, symmetricAxes T) error {
	if len(orientation) != e.dim {
		return fmt.Errorf("orientation has %d coordinates, want %d: %w", len(orientation), e.dim, ErrDimensionMismatch)
	}
	if !orientation.IsFinite() || !isFinite(uniqueAxis) || !isFinite(symmetricAxes) {
		return fmt.Errorf("orientation %v, axes (%v, %v): %w", orientation, uniqueAxis, symmetricAxes, ErrNonFinite)
	}
	if uniqueAxis <= 0 || symmetricAxes <= 0 {
		return fmt.Errorf("axes (%v, %v): %w", uniqueAxis, symmetricAxes, ErrNonPositiveAxis)
	}
	if !orientation.IsUnit(UnitTolerance) {
		return fmt.Errorf("orientation %v has length %v: %w", orientation, orientation.Len(), ErrNonUnitOrientation)
	}

	e.orientation = orientation.Clone()
	e.uniqueAxis = uniqueAxis
	e.symAxes = symmetricAxes
	e.axisRatio = symmetricAxes / uniqueAxis
	e.symAxes2 = symmetricAxes * symmetricAxes
	e.configured = true
	return nil
}

// Configured reports whether SetOrientation has succeeded at least once.
func (e *SymmetricEllipsoid[T]) Configured() bool { return e.configured }

// Orientation returns a copy of the unique axis direction (nil until configured).
func (e *SymmetricEllipsoid[T]) Orientation() Vector[T] { return e.orientation.Clone() }

func (e *SymmetricEllipsoid[T]) UniqueAxisLength() T    { return e.uniqueAxis }
func (e *SymmetricEllipsoid[T]) SymmetricAxesLength() T { return e.symAxes }

// AxisRatio returns SymmetricAxesLength / UniqueAxisLength.
func (e *SymmetricEllipsoid[T]) AxisRatio() T { return e.axisRatio }

// Evaluate returns Inside when p lies inside or on the ellipsoid surface.
//
// With d = p - center, the component along the unique axis is scaled by the
// axis ratio, which maps the ellipsoid onto a sphere of radius
// SymmetricAxesLength:
//
//	(d·o · b/a)² + (|d|² - (d·o)²) <= b²
//
// which is (d·o/a)² + |d⊥|²/b² <= 1 without a division per call.
// It panics if len(p) differs from Dim, configured or not.
func (e *SymmetricEllipsoid[T]) Evaluate(p Vector[T]) Output {
	if len(p) != e.dim {
		panic(fmt.Sprintf("spatial: evaluate %d-dimensional point on %d-dimensional ellipsoid", len(p), e.dim))
	}
	if !e.configured {
		return Outside
	}
	var dd, par T
	for i, c := range e.center {
		d := p[i] - c
		dd += d * d
		par += d * e.orientation[i]
	}
	orth2 := dd - par*par
	// rounding can push the residual slightly below zero
	if orth2 < 0 {
		orth2 = 0
	}
	s := par * e.axisRatio
	if s*s+orth2 <= e.symAxes2 {
		return Inside
	}
	return Outside
}

// Contains is Evaluate(p).Bool().
func (e *SymmetricEllipsoid[T]) Contains(p Vector[T]) bool { return e.Evaluate(p) == Inside }

// Bounds returns the tight axis-aligned box around the ellipsoid. Along axis
// i the half extent is sqrt(b² + (a²-b²)·o_i²). An unconfigured predicate
// returns the center as both corners.
func (e *SymmetricEllipsoid[T]) Bounds() (min, max Vector[T]) {
	min, max = e.center.Clone(), e.center.Clone()
	if !e.configured {
		return min, max
	}
	a2 := float64(e.uniqueAxis) * float64(e.uniqueAxis)
	b2 := float64(e.symAxes2)
	for i, oi := range e.orientation {
		o2 := float64(oi) * float64(oi)
		h := T(math.Sqrt(math.Max(0, b2+(a2-b2)*o2)))
		min[i] -= h
		max[i] += h
	}
	return min, max
}

// Volume returns the n-dimensional volume a·b^(N-1)·V_N, with V_N the volume
// of the unit N-ball. It is 0 before configuration.
func (e *SymmetricEllipsoid[T]) Volume() T {
	if !e.configured {
		return 0
	}
	v := unitBallVolume(e.dim) * float64(e.uniqueAxis) * math.Pow(float64(e.symAxes), float64(e.dim-1))
	return T(v)
}

// unitBallVolume returns π^(n/2) / Γ(n/2 + 1).
func unitBallVolume(n int) float64 {
	h := float64(n) / 2
	return math.Pow(math.Pi, h) / math.Gamma(h+1)
}
