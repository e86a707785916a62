package geom_test

import (
	"math"
	"testing"

	"deedles.dev/xtuple/geom"
	"deedles.dev/xtuple/tuple"
	"github.com/stretchr/testify/require"
)

func TestVecArithmetic(t *testing.T) {
	v := geom.V(3.0, 4.0)
	w := geom.V(1.0, -2.0)

	require.Equal(t, geom.V(4.0, 2.0), v.Add(w))
	require.Equal(t, geom.V(2.0, 6.0), v.Sub(w))
	require.Equal(t, geom.V(6.0, 8.0), v.Mul(2))
	require.Equal(t, geom.V(1.5, 2.0), v.Div(2))
	require.Equal(t, geom.V(-3.0, -4.0), v.Neg())
	require.Equal(t, -5.0, v.Dot(w))
	require.Equal(t, 5.0, v.Len())
	require.Equal(t, geom.V(0.6, 0.8), v.Normalize())
	require.Equal(t, geom.Vec[float64]{}, geom.Vec[float64]{}.Normalize())
	require.Equal(t, geom.Pt(3.0, 4.0), v.Point())
}

func TestVecTuple(t *testing.T) {
	v, err := geom.VFrom[float32](tuple.View[float32]{1, 2})
	require.Nil(t, err)
	require.Equal(t, geom.V[float32](1, 2), v)

	_, err = geom.VFrom[float32](tuple.View[float32]{1})
	require.ErrorIs(t, err, tuple.ErrLengthMismatch)

	require.Nil(t, tuple.Set[float32](&v, 0, 5))
	require.Equal(t, geom.V[float32](5, 2), v)
	require.ErrorIs(t, tuple.Set[float32](&v, 2, 5), tuple.ErrIndexOutOfRange)

	require.True(t, tuple.Equal[float32](v, tuple.T2[float32](5, 2)))
}

func TestVecPredicates(t *testing.T) {
	require.True(t, geom.V(0, 0).IsZero())
	require.True(t, geom.V(-1, 1).IsZeroWithin(1))
	require.False(t, geom.V(-2, 1).IsZeroWithin(1))
	require.False(t, geom.V[int8](-128, 0).IsZeroWithin(127))
	require.False(t, geom.V[float32](float32(math.NaN()), 0).IsFinite())
	require.False(t, geom.V(math.Inf(-1), 0).IsFinite())
	require.True(t, geom.V(1e300, -1e300).IsFinite())
}
