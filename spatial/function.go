package spatial

// Output is the classification produced by a Function.
type Output uint8

const (
	Outside Output = 0
	Inside  Output = 1 // inside or exactly on the boundary
)

// Bool reports whether o is Inside.
func (o Output) Bool() bool { return o == Inside }

func (o Output) String() string {
	if o == Inside {
		return "inside"
	}
	return "outside"
}

// Function maps a point to an interior/exterior classification.
type Function[T Scalar] interface {
	Evaluate(p Vector[T]) Output
}

// Bounded is implemented by functions whose inside set fits in a known
// axis-aligned box.
type Bounded[T Scalar] interface {
	Bounds() (min, max Vector[T])
}

// Compile time checks that shapes implement the required interfaces
var (
	_ Function[float64] = (*SymmetricEllipsoid[float64])(nil)
	_ Function[float32] = (*SymmetricEllipsoid[float32])(nil)
	_ Function[float64] = (*Sphere[float64])(nil)
	_ Bounded[float64]  = (*SymmetricEllipsoid[float64])(nil)
	_ Bounded[float64]  = (*Sphere[float64])(nil)
)
