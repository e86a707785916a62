package tuple

// Tup2 is a tuple with two components.
type Tup2[T any] struct {
	X, Y T
}

// T2 is shorthand for Tup2[T]{X: x, Y: y}.
func T2[T any](x, y T) Tup2[T] {
	return Tup2[T]{X: x, Y: y}
}

func (Tup2[T]) Dims() int { return 2 }

func (t Tup2[T]) Component(i int) T {
	switch i {
	case 0:
		return t.X
	case 1:
		return t.Y
	}
	panic(&IndexError{Index: i, Dims: 2})
}

func (t *Tup2[T]) SetComponent(i int, v T) {
	switch i {
	case 0:
		t.X = v
	case 1:
		t.Y = v
	default:
		panic(&IndexError{Index: i, Dims: 2})
	}
}

func (Tup2[T]) Make(c ...T) Tup2[T] {
	return Tup2[T]{X: c[0], Y: c[1]}
}

// Tup3 is a tuple with three components.
type Tup3[T any] struct {
	X, Y, Z T
}

// T3 is shorthand for Tup3[T]{X: x, Y: y, Z: z}.
func T3[T any](x, y, z T) Tup3[T] {
	return Tup3[T]{X: x, Y: y, Z: z}
}

func (Tup3[T]) Dims() int { return 3 }

func (t Tup3[T]) Component(i int) T {
	switch i {
	case 0:
		return t.X
	case 1:
		return t.Y
	case 2:
		return t.Z
	}
	panic(&IndexError{Index: i, Dims: 3})
}

func (t *Tup3[T]) SetComponent(i int, v T) {
	switch i {
	case 0:
		t.X = v
	case 1:
		t.Y = v
	case 2:
		t.Z = v
	default:
		panic(&IndexError{Index: i, Dims: 3})
	}
}

func (Tup3[T]) Make(c ...T) Tup3[T] {
	return Tup3[T]{X: c[0], Y: c[1], Z: c[2]}
}

// Tup4 is a tuple with four components.
type Tup4[T any] struct {
	X, Y, Z, W T
}

// T4 is shorthand for Tup4[T]{X: x, Y: y, Z: z, W: w}.
func T4[T any](x, y, z, w T) Tup4[T] {
	return Tup4[T]{X: x, Y: y, Z: z, W: w}
}

func (Tup4[T]) Dims() int { return 4 }

func (t Tup4[T]) Component(i int) T {
	switch i {
	case 0:
		return t.X
	case 1:
		return t.Y
	case 2:
		return t.Z
	case 3:
		return t.W
	}
	panic(&IndexError{Index: i, Dims: 4})
}

func (t *Tup4[T]) SetComponent(i int, v T) {
	switch i {
	case 0:
		t.X = v
	case 1:
		t.Y = v
	case 2:
		t.Z = v
	case 3:
		t.W = v
	default:
		panic(&IndexError{Index: i, Dims: 4})
	}
}

func (Tup4[T]) Make(c ...T) Tup4[T] {
	return Tup4[T]{X: c[0], Y: c[1], Z: c[2], W: c[3]}
}
