// Package geom provides 2D points and vectors built on the tuple
// contract of package tuple.
//
// It is patterned after image.Point, but distinguishes between
// positions, represented by [Point], and displacements, represented by
// [Vec]. A point can be viewed as a vector either by copying it with
// [Point.AsVec] or by aliasing it with [Point.VecRef].
package geom

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Float | constraints.Integer
}

func hypot[T Scalar](x, y T) float64 {
	return math.Hypot(float64(x), float64(y))
}

func format[T Scalar](x, y T) string {
	return fmt.Sprintf("(%v,%v)", x, y)
}
