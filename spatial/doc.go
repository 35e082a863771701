// Package spatial provides closed-set interior/exterior predicates over
// n-dimensional points.
//
// The central type is SymmetricEllipsoid: an ellipsoid with one unique axis,
// oriented along an arbitrary unit vector, and N-1 remaining axes that share
// a common length. A point is classified Inside when it lies in the ellipsoid
// or exactly on its surface, and Outside otherwise.
//
// Every predicate implements Function, so code that samples or rasterizes
// shapes can be written once against that interface:
//
//	e := spatial.NewSymmetricEllipsoid[float64](3)
//	if err := e.SetOrientation(spatial.Vector[float64]{0, 0, 1}, 4, 2); err != nil {
//		return err
//	}
//	e.Evaluate(spatial.Vector[float64]{0, 0, 4}) // Inside (on the tip)
//
// Configuration is validated and returns sentinel errors (see errors.go).
// Evaluation never fails. Predicates carry no locks: configure fully, then
// share them between goroutines for read-only evaluation.
package spatial
