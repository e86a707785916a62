package geom

import (
	"deedles.dev/xtuple/tuple"
)

// Vec is a displacement in 2D space.
type Vec[T Scalar] struct {
	X, Y T
}

// V is shorthand for Vec[T]{X: x, Y: y}.
func V[T Scalar](x, y T) Vec[T] {
	return Vec[T]{X: x, Y: y}
}

// VFrom returns a vector with the components of src. It returns an
// error wrapping [tuple.ErrLengthMismatch] if src does not have
// exactly two components.
func VFrom[T Scalar](src tuple.Reader[T]) (Vec[T], error) {
	return tuple.NewFrom[T, Vec[T]](Vec[T]{}, src)
}

func (v Vec[T]) String() string {
	return format(v.X, v.Y)
}

func (Vec[T]) Dims() int { return 2 }

func (v Vec[T]) Component(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(&tuple.IndexError{Index: i, Dims: 2})
}

func (v *Vec[T]) SetComponent(i int, c T) {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	default:
		panic(&tuple.IndexError{Index: i, Dims: 2})
	}
}

func (Vec[T]) Make(c ...T) Vec[T] {
	return Vec[T]{X: c[0], Y: c[1]}
}

// Point returns the point that v translates the origin to.
func (v Vec[T]) Point() Point[T] {
	return Point[T](v)
}

// Add returns the sum of v and w.
func (v Vec[T]) Add(w Vec[T]) Vec[T] {
	return Vec[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of v and w.
func (v Vec[T]) Sub(w Vec[T]) Vec[T] {
	return Vec[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns v scaled by s.
func (v Vec[T]) Mul(s T) Vec[T] {
	return Vec[T]{X: v.X * s, Y: v.Y * s}
}

// Div returns v scaled by 1/s.
func (v Vec[T]) Div(s T) Vec[T] {
	return Vec[T]{X: v.X / s, Y: v.Y / s}
}

// Neg returns v pointing in the opposite direction.
func (v Vec[T]) Neg() Vec[T] {
	return Vec[T]{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and w.
func (v Vec[T]) Dot(w Vec[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// Len returns the Euclidean length of v.
func (v Vec[T]) Len() float64 {
	return hypot(v.X, v.Y)
}

// Normalize returns a vector in the direction of v with a length of
// one. For integer types, the components are truncated. The zero
// vector is returned unchanged.
func (v Vec[T]) Normalize() Vec[T] {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec[T]{X: T(float64(v.X) / l), Y: T(float64(v.Y) / l)}
}

// IsZero reports whether v is the zero vector.
func (v Vec[T]) IsZero() bool {
	return tuple.IsZero[T](v)
}

// IsZeroWithin reports whether both components of v are within margin
// of zero, inclusive.
func (v Vec[T]) IsZeroWithin(margin T) bool {
	return tuple.IsZeroWithin[T](v, margin)
}

// IsFinite reports whether neither component of v is NaN or infinite.
func (v Vec[T]) IsFinite() bool {
	return tuple.IsFinite[T](v)
}

// VecRef is a vector view of a [Point]. It has no storage of its own.
// Reads and writes go to the fields of the point that it was created
// from, so it must not be used after that point is no longer
// reachable by its owner.
//
// The zero VecRef is not usable.
type VecRef[T Scalar] struct {
	p *Point[T]
}

func (r VecRef[T]) X() T { return r.p.X }

func (r VecRef[T]) Y() T { return r.p.Y }

// SetX sets the X component of the underlying point and returns r.
func (r VecRef[T]) SetX(x T) VecRef[T] {
	r.p.X = x
	return r
}

// SetY sets the Y component of the underlying point and returns r.
func (r VecRef[T]) SetY(y T) VecRef[T] {
	r.p.Y = y
	return r
}

// Vec returns a copy of the current value of the view.
func (r VecRef[T]) Vec() Vec[T] {
	return r.p.AsVec()
}

// Point returns the point underlying r.
func (r VecRef[T]) Point() *Point[T] {
	return r.p
}

func (r VecRef[T]) String() string {
	return format(r.p.X, r.p.Y)
}

func (r VecRef[T]) Dims() int { return 2 }

func (r VecRef[T]) Component(i int) T {
	return r.p.Component(i)
}

func (r VecRef[T]) SetComponent(i int, c T) {
	r.p.SetComponent(i, c)
}

// Make returns a new, independent Vec. It does not create a new view.
func (r VecRef[T]) Make(c ...T) Vec[T] {
	return Vec[T]{}.Make(c...)
}
