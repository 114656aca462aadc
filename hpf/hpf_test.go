package hpf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	t.Run("FromFloat64", func(t *testing.T) {
		x := FromFloat64(3.5)
		require.Equal(t, 3.5, x.Float64())
	})

	t.Run("FromFloat64NaN", func(t *testing.T) {
		var nan float64
		nan = nan / nan
		x := FromFloat64(nan)
		require.True(t, x.IsNaN())
	})

	t.Run("Parse", func(t *testing.T) {
		x, err := Parse("123.5")
		require.NoError(t, err)
		require.Equal(t, 123.5, x.Float64())
	})

	t.Run("ParseInvalid", func(t *testing.T) {
		_, err := Parse("not-a-number")
		require.Error(t, err)
	})
}

func TestPredicates(t *testing.T) {
	require.True(t, Zero.IsZero())
	require.True(t, PositiveInfinity.IsInf())
	require.True(t, PositiveInfinity.IsPositive())
	require.True(t, NegativeInfinity.IsNegative())
	require.True(t, NaN().IsNaN())
	require.False(t, One.IsNaN())
}

func TestArithmetic(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		c, ok := FromInt64(2).Add(FromInt64(3)).Cmp(FromInt64(5))
		require.True(t, ok)
		require.Equal(t, 0, c)
	})

	t.Run("AddInfinityMismatch", func(t *testing.T) {
		require.True(t, PositiveInfinity.Add(NegativeInfinity).IsNaN())
	})

	t.Run("MulZeroInfinity", func(t *testing.T) {
		require.True(t, Zero.Mul(PositiveInfinity).IsNaN())
	})

	t.Run("QuoByZero", func(t *testing.T) {
		q := One.Quo(Zero)
		require.True(t, q.IsInf())
		require.True(t, q.IsPositive())
	})

	t.Run("QuoZeroByZero", func(t *testing.T) {
		require.True(t, Zero.Quo(Zero).IsNaN())
	})

	t.Run("Neg", func(t *testing.T) {
		require.True(t, One.Neg().IsNegative())
	})
}

func TestFloorRound(t *testing.T) {
	t.Run("FloorPositive", func(t *testing.T) {
		c, ok := FromFloat64(3.7).Floor().Cmp(FromInt64(3))
		require.True(t, ok)
		require.Equal(t, 0, c)
	})

	t.Run("FloorNegative", func(t *testing.T) {
		c, ok := FromFloat64(-3.2).Floor().Cmp(FromInt64(-4))
		require.True(t, ok)
		require.Equal(t, 0, c)
	})

	t.Run("RoundTiesAwayFromZero", func(t *testing.T) {
		c, ok := FromFloat64(2.5).Round().Cmp(FromInt64(3))
		require.True(t, ok)
		require.Equal(t, 0, c)

		c, ok = FromFloat64(-2.5).Round().Cmp(FromInt64(-3))
		require.True(t, ok)
		require.Equal(t, 0, c)
	})
}

func TestScaleBAndFrexp(t *testing.T) {
	x := FromInt64(3)
	scaled := x.ScaleB(4) // 3 * 16 = 48
	c, ok := scaled.Cmp(FromInt64(48))
	require.True(t, ok)
	require.Equal(t, 0, c)

	m, e := FromInt64(8).Frexp() // 8 = 0.5 * 2^4
	c, ok = m.Cmp(FromFloat64(0.5))
	require.True(t, ok)
	require.Equal(t, 0, c)
	require.Equal(t, 4, e)
}

func TestString(t *testing.T) {
	require.Equal(t, "NaN", NaN().String())
	require.Equal(t, "2", Two.String())
}
