package tuple

import "math"

// The predicates in this file read components in index order and stop
// at the first one that fails.

// IsZero reports whether every component of r is the zero value of T.
func IsZero[T comparable](r Reader[T]) bool {
	var zero T
	for i := range r.Dims() {
		if r.Component(i) != zero {
			return false
		}
	}
	return true
}

// IsZeroBig is like [IsZero] but for arbitrary-precision component
// types, such as *big.Int, *big.Float, and *big.Rat, that report
// their sign. Components must not be nil.
func IsZeroBig[T interface{ Sign() int }](r Reader[T]) bool {
	for i := range r.Dims() {
		if r.Component(i).Sign() != 0 {
			return false
		}
	}
	return true
}

// IsZeroWithin reports whether the absolute value of every component
// of r is less than or equal to margin. NaN components, and the
// minimum value of a signed integer type, are never within the margin.
func IsZeroWithin[T Number](r Reader[T], margin T) bool {
	for i := range r.Dims() {
		if !within(r.Component(i), margin) {
			return false
		}
	}
	return true
}

// IsFinite reports whether no component of r is NaN or infinite.
// Integer tuples are always finite.
func IsFinite[T Number](r Reader[T]) bool {
	for i := range r.Dims() {
		c := float64(r.Component(i))
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// IsValid reports whether no component of r is nil.
func IsValid[E any](r Reader[*E]) bool {
	for i := range r.Dims() {
		if r.Component(i) == nil {
			return false
		}
	}
	return true
}

func within[T Number](v, margin T) bool {
	if v < 0 {
		v = -v
		// -v overflowed, so |v| is larger than any margin.
		if v < 0 {
			return false
		}
	}
	return v <= margin
}
