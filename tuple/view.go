package tuple

import "slices"

// View adapts a slice to the tuple interfaces. Its dimensions are the
// length of the slice, and writes go directly to the underlying array,
// so
//
//	var arr [3]float64
//	v := tuple.View[float64](arr[:])
//
// produces a tuple that aliases arr.
type View[T any] []T

func (v View[T]) Dims() int { return len(v) }

func (v View[T]) Component(i int) T {
	if err := checkIndex(len(v), i); err != nil {
		panic(err)
	}
	return v[i]
}

func (v View[T]) SetComponent(i int, c T) {
	if err := checkIndex(len(v), i); err != nil {
		panic(err)
	}
	v[i] = c
}

// Make returns a new View holding a copy of c. When used via [New],
// the length of c must match the length of v.
func (v View[T]) Make(c ...T) View[T] {
	return View[T](slices.Clone(c))
}
