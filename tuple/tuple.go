// Package tuple provides a generic contract for fixed-arity,
// homogeneous tuples along with helpers that operate on any type that
// implements it.
//
// Types implement a small set of unchecked primitives, [Reader],
// [Writer], and [Maker], and everything else, such as bounds-checked
// access, bulk copying, and the zero and finiteness predicates, is
// provided by functions in this package that accept those interfaces.
// Fixed-arity implementations are provided by [Tup2], [Tup3], and
// [Tup4], and [View] adapts a slice of any length.
package tuple

import (
	"golang.org/x/exp/constraints"
)

// Number is a constraint for component types that can be compared
// against a margin.
type Number interface {
	constraints.Integer | constraints.Float
}

// Reader is implemented by tuples whose components can be read.
type Reader[T any] interface {
	// Dims returns the number of components in the tuple. It must
	// return the same value for the lifetime of the tuple.
	Dims() int

	// Component returns the component at index i. Callers must ensure
	// that 0 <= i < Dims(). Implementations may panic otherwise. Use
	// [Get] for a checked version.
	Component(i int) T
}

// Writer is implemented by tuples whose components can be written.
type Writer[T any] interface {
	// Dims returns the number of components in the tuple.
	Dims() int

	// SetComponent sets the component at index i to v. Callers must
	// ensure that 0 <= i < Dims(). Use [Set] for a checked version.
	SetComponent(i int, v T)
}

// ReadWriter is a tuple that can be both read and written.
type ReadWriter[T any] interface {
	Reader[T]
	Writer[T]
}

// Maker constructs new tuples of type S. It allows generic code to
// build a sibling of a tuple without knowing its concrete type.
type Maker[T, S any] interface {
	// Dims returns the number of components that Make expects.
	Dims() int

	// Make returns a new tuple with the components c. The length of c
	// is always Dims() when called via [New], [NewFrom], or
	// [NewBroadcast].
	Make(c ...T) S
}
