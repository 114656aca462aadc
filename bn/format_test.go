package bn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringSpecials(t *testing.T) {
	require.Equal(t, "NaN", NaN.String())
	require.Equal(t, "Infinity", PositiveInfinity.String())
	require.Equal(t, "-Infinity", NegativeInfinity.String())
	require.Equal(t, "0", Zero.String())
	require.Equal(t, "-0", negativeZero.String())
}

func TestStringOrdinaryRange(t *testing.T) {
	require.Equal(t, "10", Ten.String())
	require.Equal(t, "-1", NegativeOne.String())
}

func TestStringLargeRegimes(t *testing.T) {
	// Letters 1..5 all reproduce the decoded decimal magnitude, per
	// spec.md §4.11 — letter 5 is no exception.
	require.Equal(t, "100", Hundred.String())
	require.True(t, MaxValue.String()[0] == 'G')
}

func TestStringLetterSixScientific(t *testing.T) {
	b, err := Parse("1e100")
	require.NoError(t, err)
	require.Equal(t, byte(6), b.letter())

	s := b.String()
	require.Equal(t, "1e+100", s)

	// spec.md §8 scenario 6: Parse("1e100") round-trips through String to
	// a string whose scientific form recovers exponent 100 (sig ~= 1).
	b2, err := Parse(s)
	require.NoError(t, err)
	closeEnoughBN(t, b2, b, 1e-9)
}

func TestStringLetterSixScientificReciprocal(t *testing.T) {
	b, err := Parse("1e-100")
	require.NoError(t, err)
	require.Equal(t, byte(6), b.letter())
	require.True(t, b.reciprocalFlag())
	require.Equal(t, "1e-100", b.String())
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "-0", "10", "-10", "NaN", "Infinity", "-Infinity"} {
		b, err := Parse(s)
		require.NoError(t, err, s)
		require.Equal(t, s, b.String(), s)
	}
}

func TestParseNamedLiterals(t *testing.T) {
	b, err := Parse("+Infinity")
	require.NoError(t, err)
	require.True(t, IsPositiveInfinity(b))

	b, err = Parse("nan")
	require.NoError(t, err)
	require.True(t, IsNaN(b))
}

func TestParseRegimeTag(t *testing.T) {
	b, err := Parse("e2")
	require.NoError(t, err)
	closeEnoughBN(t, b, Hundred, 1e-12)
}

func TestParseReciprocal(t *testing.T) {
	b, err := Parse("1/10")
	require.NoError(t, err)
	closeEnoughBN(t, b, FromFloat64(0.1), 1e-12)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("not-a-bn")
	require.Error(t, err)

	_, err = Parse("e1") // operand out of [2,10)
	require.Error(t, err)
}

func TestTryParse(t *testing.T) {
	_, ok := TryParse("garbage!!")
	require.False(t, ok)

	b, ok := TryParse("42")
	require.True(t, ok)
	closeEnoughBN(t, b, FromInt64(42), 1e-12)
}
