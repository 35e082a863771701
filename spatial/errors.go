package spatial

import "errors"

// Sentinel errors returned by configuration calls. Callers match them with
// errors.Is; returned errors may wrap them with extra context.
var (
	// ErrDimensionMismatch is returned when a vector's length differs from
	// the predicate's dimension.
	ErrDimensionMismatch = errors.New("spatial: dimension mismatch")

	// ErrNonFinite is returned when a coordinate or length is NaN or ±Inf.
	ErrNonFinite = errors.New("spatial: non-finite value")

	// ErrNonPositiveAxis is returned for an axis length or radius <= 0.
	ErrNonPositiveAxis = errors.New("spatial: axis length must be > 0")

	// ErrNonUnitOrientation is returned when the orientation is not a unit
	// vector within UnitTolerance. Orientations are never renormalized.
	ErrNonUnitOrientation = errors.New("spatial: orientation must be a unit vector")
)
