package tuple

// New returns a new tuple built by m from the components c. The length
// of c must be exactly m.Dims().
func New[T, S any](m Maker[T, S], c ...T) (S, error) {
	if err := checkLen(m.Dims(), len(c)); err != nil {
		var zero S
		return zero, err
	}
	return m.Make(c...), nil
}

// NewFrom returns a new tuple built by m from the components of src,
// read in index order.
func NewFrom[T, S any](m Maker[T, S], src Reader[T]) (S, error) {
	if err := checkLen(m.Dims(), src.Dims()); err != nil {
		var zero S
		return zero, err
	}
	return m.Make(ToSlice(src)...), nil
}

// NewBroadcast returns a new tuple built by m with every component set
// to v.
func NewBroadcast[T, S any](m Maker[T, S], v T) S {
	c := make([]T, m.Dims())
	for i := range c {
		c[i] = v
	}
	return m.Make(c...)
}
