package bn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	I, F := EncodeOperand(DecodeOperand(3, nil))
	require.Equal(t, byte(3), I)
	require.Equal(t, 0, F.Sign())

	w := pack(true, false, 4, 5, F)
	n, r, L, gotI, gotF := unpack(w)
	require.True(t, n)
	require.False(t, r)
	require.Equal(t, byte(4), L)
	require.Equal(t, byte(5), gotI)
	require.Equal(t, 0, gotF.Sign())
}

func TestSpecialConstructors(t *testing.T) {
	require.True(t, IsNaN(NaN))
	require.True(t, IsPositiveInfinity(PositiveInfinity))
	require.True(t, IsNegativeInfinity(NegativeInfinity))
	require.True(t, IsZero(Zero))
	require.True(t, IsZero(negativeZero))
}

func TestNamedConstants(t *testing.T) {
	c, ok := Compare(One, Two)
	require.True(t, ok)
	require.True(t, c < 0)

	c, ok = Compare(Ten, Hundred)
	require.True(t, ok)
	require.True(t, c < 0)

	require.True(t, Equals(Abs(MinValue), MaxValue))
	require.True(t, Equals(Reciprocal(MaxValue), Epsilon))
}
