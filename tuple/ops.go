package tuple

import (
	"iter"

	"deedles.dev/xiter"
)

// Get returns the component of r at index i. If i is out of range, it
// returns an [*IndexError] without reading any components.
func Get[T any](r Reader[T], i int) (T, error) {
	if err := checkIndex(r.Dims(), i); err != nil {
		var zero T
		return zero, err
	}
	return r.Component(i), nil
}

// Set sets the component of w at index i to v. If i is out of range,
// it returns an [*IndexError] and w is left untouched.
func Set[T any](w Writer[T], i int, v T) error {
	if err := checkIndex(w.Dims(), i); err != nil {
		return err
	}
	w.SetComponent(i, v)
	return nil
}

// ToSlice returns a new slice containing the components of r in index
// order.
func ToSlice[T any](r Reader[T]) []T {
	s := make([]T, r.Dims())
	for i := range s {
		s[i] = r.Component(i)
	}
	return s
}

// Fill copies the components of r into buf and returns buf. The
// length of buf must be exactly r.Dims(). Otherwise, a [*LengthError]
// is returned and buf is not modified.
func Fill[T any](r Reader[T], buf []T) ([]T, error) {
	if err := checkLen(r.Dims(), len(buf)); err != nil {
		return buf, err
	}
	for i := range buf {
		buf[i] = r.Component(i)
	}
	return buf, nil
}

// SetSlice sets the components of w to the elements of vals in order.
// The length of vals must be exactly w.Dims().
func SetSlice[T any](w Writer[T], vals []T) error {
	if err := checkLen(w.Dims(), len(vals)); err != nil {
		return err
	}
	for i, v := range vals {
		w.SetComponent(i, v)
	}
	return nil
}

// Copy sets the components of dst to those of src. All components of
// src are read in index order before any are written, so dst and src
// may share storage. The two must have the same dimensions.
func Copy[T any](dst Writer[T], src Reader[T]) error {
	if err := checkLen(dst.Dims(), src.Dims()); err != nil {
		return err
	}
	return SetSlice(dst, ToSlice(src))
}

// Broadcast sets every component of w to v.
func Broadcast[T any](w Writer[T], v T) {
	for i := range w.Dims() {
		w.SetComponent(i, v)
	}
}

// Apply replaces every component of rw with the result of calling f
// with its index and current value.
func Apply[T any](rw ReadWriter[T], f func(int, T) T) {
	for i := range rw.Dims() {
		rw.SetComponent(i, f(i, rw.Component(i)))
	}
}

// Components returns an iterator over the components of r in index
// order.
func Components[T any](r Reader[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range r.Dims() {
			if !yield(r.Component(i)) {
				return
			}
		}
	}
}

// All returns an iterator over the indices and components of r.
func All[T any](r Reader[T]) iter.Seq2[int, T] {
	return xiter.Enumerate(Components(r))
}

// Equal reports whether a and b have the same dimensions and equal
// components.
func Equal[T comparable](a, b Reader[T]) bool {
	n := a.Dims()
	if n != b.Dims() {
		return false
	}
	for i := range n {
		if a.Component(i) != b.Component(i) {
			return false
		}
	}
	return true
}
