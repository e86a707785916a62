package tuple

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates a component index outside of
	// [0, Dims()).
	ErrIndexOutOfRange = errors.New("tuple: index out of range")

	// ErrLengthMismatch indicates a slice or tuple whose length does not
	// match the dimensions of the tuple it was used with.
	ErrLengthMismatch = errors.New("tuple: length mismatch")
)

// IndexError is returned by checked accessors, and panicked by the
// unchecked ones of the types in this package, when an index is out
// of range. It matches [ErrIndexOutOfRange] via errors.Is.
type IndexError struct {
	Index int
	Dims  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("tuple: index %d out of range [0, %d)", e.Index, e.Dims)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// LengthError is returned by bulk operations when the length of a
// slice or source tuple differs from the dimensions of the target. It
// matches [ErrLengthMismatch] via errors.Is.
type LengthError struct {
	Len  int
	Dims int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("tuple: length %d does not match dimensions %d", e.Len, e.Dims)
}

func (e *LengthError) Unwrap() error { return ErrLengthMismatch }

func checkIndex(dims, i int) error {
	if i < 0 || i >= dims {
		return &IndexError{Index: i, Dims: dims}
	}
	return nil
}

func checkLen(dims, n int) error {
	if n != dims {
		return &LengthError{Len: n, Dims: dims}
	}
	return nil
}
