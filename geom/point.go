package geom

import (
	"deedles.dev/xtuple/tuple"
)

// Point is a position in 2D space.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// PtFrom returns a point with the components of src. It returns an
// error wrapping [tuple.ErrLengthMismatch] if src does not have
// exactly two components.
func PtFrom[T Scalar](src tuple.Reader[T]) (Point[T], error) {
	return tuple.NewFrom[T, Point[T]](Point[T]{}, src)
}

func (p Point[T]) String() string {
	return format(p.X, p.Y)
}

func (Point[T]) Dims() int { return 2 }

func (p Point[T]) Component(i int) T {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	}
	panic(&tuple.IndexError{Index: i, Dims: 2})
}

func (p *Point[T]) SetComponent(i int, v T) {
	switch i {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	default:
		panic(&tuple.IndexError{Index: i, Dims: 2})
	}
}

func (Point[T]) Make(c ...T) Point[T] {
	return Point[T]{X: c[0], Y: c[1]}
}

// Add returns p translated by v.
func (p Point[T]) Add(v Vec[T]) Point[T] {
	return Point[T]{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns p translated by -v.
func (p Point[T]) Sub(v Vec[T]) Point[T] {
	return Point[T]{X: p.X - v.X, Y: p.Y - v.Y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point[T]) Dist(q Point[T]) float64 {
	return p.VecTo(q).Len()
}

// AsVec returns a vector with the same components as p. The returned
// vector is independent of p.
func (p Point[T]) AsVec() Vec[T] {
	return Vec[T](p)
}

// VecRef returns a view of p as a vector. Changes made through the
// view are made to p, and vice versa. Views of the same point are
// equal.
func (p *Point[T]) VecRef() VecRef[T] {
	return VecRef[T]{p: p}
}

// VecTo returns the vector from p to q, q-p.
func (p Point[T]) VecTo(q Point[T]) Vec[T] {
	return Vec[T]{X: q.X - p.X, Y: q.Y - p.Y}
}

// VecFrom returns the vector from q to p, p-q.
func (p Point[T]) VecFrom(q Point[T]) Vec[T] {
	return Vec[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// VecToInto is like [Point.VecTo] but stores the result in dst and
// returns it.
func (p Point[T]) VecToInto(q Point[T], dst *Vec[T]) *Vec[T] {
	*dst = p.VecTo(q)
	return dst
}

// VecFromInto is like [Point.VecFrom] but stores the result in dst and
// returns it.
func (p Point[T]) VecFromInto(q Point[T], dst *Vec[T]) *Vec[T] {
	*dst = p.VecFrom(q)
	return dst
}

// IsZero reports whether p is the origin.
func (p Point[T]) IsZero() bool {
	return tuple.IsZero[T](p)
}

// IsZeroWithin reports whether both components of p are within margin
// of zero, inclusive.
func (p Point[T]) IsZeroWithin(margin T) bool {
	return tuple.IsZeroWithin[T](p, margin)
}

// IsFinite reports whether neither component of p is NaN or infinite.
func (p Point[T]) IsFinite() bool {
	return tuple.IsFinite[T](p)
}
