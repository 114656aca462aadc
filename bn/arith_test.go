package bn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func closeEnoughBN(t *testing.T, got, want BN, relTol float64) {
	t.Helper()
	if IsZero(want) {
		require.True(t, IsZero(got), "got=%s want=%s", got.String(), want.String())
		return
	}
	diff := Abs(Sub(got, want))
	rel := ToHPF(Quo(diff, Abs(want)))
	require.False(t, rel.IsNaN(), "got=%s want=%s", got.String(), want.String())
	require.LessOrEqual(t, rel.Float64(), relTol, "got=%s want=%s", got.String(), want.String())
}

func TestNeg(t *testing.T) {
	require.True(t, Equals(Neg(One), NegativeOne))
	require.True(t, IsNaN(Neg(NaN)))
}

func TestReciprocal(t *testing.T) {
	t.Run("OrdinaryValue", func(t *testing.T) {
		closeEnoughBN(t, Reciprocal(Ten), FromFloat64(0.1), 1e-12)
	})
	t.Run("Zero", func(t *testing.T) {
		require.True(t, Equals(Reciprocal(Zero), PositiveInfinity))
		require.True(t, Equals(Reciprocal(negativeZero), NegativeInfinity))
	})
	t.Run("Infinity", func(t *testing.T) {
		require.True(t, Equals(Reciprocal(PositiveInfinity), Zero))
	})
	t.Run("DoubleReciprocalIsIdentity", func(t *testing.T) {
		x := FromFloat64(42.5)
		closeEnoughBN(t, Reciprocal(Reciprocal(x)), x, 1e-12)
	})
}

func TestAbs(t *testing.T) {
	require.True(t, Equals(Abs(NegativeOne), One))
	require.True(t, Equals(Abs(One), One))
	require.True(t, IsNaN(Abs(NaN)))
}

func TestFloor(t *testing.T) {
	closeEnoughBN(t, Floor(FromFloat64(3.7)), FromInt64(3), 1e-12)
	closeEnoughBN(t, Floor(FromFloat64(-3.2)), FromInt64(-4), 1e-12)
	require.True(t, Equals(Floor(PositiveInfinity), PositiveInfinity))
}

func TestIncDec(t *testing.T) {
	closeEnoughBN(t, Inc(One), Two, 1e-12)
	closeEnoughBN(t, Dec(Two), One, 1e-12)
}

func TestLog10Exp10RoundTrip(t *testing.T) {
	for _, f := range []float64{1, 2, 50, 99.5} {
		x := FromFloat64(f)
		closeEnoughBN(t, Exp10(Log10(x)), x, 1e-9)
	}
}

func TestLog10Specials(t *testing.T) {
	require.True(t, IsNaN(Log10(NaN)))
	require.True(t, IsNaN(Log10(Zero)))
	require.True(t, IsNaN(Log10(NegativeOne)))
	require.True(t, Equals(Log10(PositiveInfinity), PositiveInfinity))
	require.True(t, Equals(Log10(NegativeInfinity), Zero))
}

func TestLog10LargeMagnitudes(t *testing.T) {
	t.Run("Letter5", func(t *testing.T) {
		x := Hundred // letter 5, operand=2, 10^2
		closeEnoughBN(t, Log10(x), Two, 1e-9)
	})

	t.Run("Letter6StaysRepresentable", func(t *testing.T) {
		// A letter-6 value's log10 is itself astronomically large, but
		// spec.md's tower arithmetic keeps it representable.
		huge := Exp10(Exp10(Hundred))
		require.Equal(t, byte(6), huge.letter())
		l := Log10(huge)
		require.False(t, IsNaN(l))
		require.True(t, IsFinite(l))
	})
}

func TestExp10Specials(t *testing.T) {
	require.True(t, IsNaN(Exp10(NaN)))
	require.True(t, Equals(Exp10(Zero), One))
	require.True(t, Equals(Exp10(PositiveInfinity), PositiveInfinity))
	require.True(t, Equals(Exp10(NegativeInfinity), Zero))
}

func TestLog2Exp2(t *testing.T) {
	closeEnoughBN(t, Log2(FromInt64(8)), FromInt64(3), 1e-9)
	closeEnoughBN(t, Exp2(FromInt64(10)), FromInt64(1024), 1e-9)
}

func TestLogExp(t *testing.T) {
	closeEnoughBN(t, Log(E), One, 1e-9)
	closeEnoughBN(t, Exp(One), E, 1e-9)
}

func TestPow(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		closeEnoughBN(t, Pow(Two, Ten), FromInt64(1024), 1e-9)
	})
	t.Run("ZeroExponent", func(t *testing.T) {
		require.True(t, Equals(Pow(FromInt64(5), Zero), One))
		require.True(t, Equals(Pow(Zero, Zero), One))
	})
	t.Run("ZeroBase", func(t *testing.T) {
		require.True(t, Equals(Pow(Zero, One), Zero))
		require.True(t, Equals(Pow(Zero, NegativeOne), PositiveInfinity))
	})
	t.Run("NegativeBaseIntegerExponent", func(t *testing.T) {
		closeEnoughBN(t, Pow(FromInt64(-2), FromInt64(3)), FromInt64(-8), 1e-9)
		closeEnoughBN(t, Pow(FromInt64(-2), FromInt64(4)), FromInt64(16), 1e-9)
	})
	t.Run("NegativeBaseNonIntegerExponent", func(t *testing.T) {
		require.True(t, IsNaN(Pow(FromInt64(-2), FromFloat64(0.5))))
	})
}

func TestAdd(t *testing.T) {
	t.Run("Ordinary", func(t *testing.T) {
		closeEnoughBN(t, Add(FromInt64(2), FromInt64(3)), FromInt64(5), 1e-12)
	})
	t.Run("NaNPropagates", func(t *testing.T) {
		require.True(t, IsNaN(Add(NaN, One)))
	})
	t.Run("InfinityPlusFinite", func(t *testing.T) {
		require.True(t, Equals(Add(PositiveInfinity, One), PositiveInfinity))
	})
	t.Run("OppositeInfinities", func(t *testing.T) {
		require.True(t, IsNaN(Add(PositiveInfinity, NegativeInfinity)))
	})
	t.Run("SameInfinities", func(t *testing.T) {
		require.True(t, Equals(Add(PositiveInfinity, PositiveInfinity), PositiveInfinity))
	})
	t.Run("ZeroIdentities", func(t *testing.T) {
		require.True(t, Equals(Add(Zero, Zero), Zero))
		require.True(t, Equals(Add(negativeZero, negativeZero), negativeZero))
		require.True(t, Equals(Add(One, Zero), One))
	})
	t.Run("CancellationGivesZero", func(t *testing.T) {
		require.True(t, Equals(Add(One, NegativeOne), Zero))
	})
	t.Run("DisparateMagnitudesDominatedByLarger", func(t *testing.T) {
		huge := FromFloat64(1e50)
		small := One
		closeEnoughBN(t, Add(huge, small), huge, 1e-9)
	})
}

func TestSub(t *testing.T) {
	closeEnoughBN(t, Sub(FromInt64(5), FromInt64(3)), FromInt64(2), 1e-12)
	require.True(t, Equals(Sub(One, One), Zero))
}

func TestMul(t *testing.T) {
	t.Run("Ordinary", func(t *testing.T) {
		closeEnoughBN(t, Mul(FromInt64(6), FromInt64(7)), FromInt64(42), 1e-9)
	})
	t.Run("ZeroTimesInfinityIsNaN", func(t *testing.T) {
		require.True(t, IsNaN(Mul(Zero, PositiveInfinity)))
	})
	t.Run("ZeroTimesFinite", func(t *testing.T) {
		require.True(t, Equals(Mul(Zero, FromInt64(5)), Zero))
		require.True(t, Equals(Mul(Zero, FromInt64(-5)), negativeZero))
	})
	t.Run("SignRules", func(t *testing.T) {
		closeEnoughBN(t, Mul(FromInt64(-3), FromInt64(4)), FromInt64(-12), 1e-9)
		closeEnoughBN(t, Mul(FromInt64(-3), FromInt64(-4)), FromInt64(12), 1e-9)
	})
}

func TestQuo(t *testing.T) {
	t.Run("Ordinary", func(t *testing.T) {
		closeEnoughBN(t, Quo(FromInt64(10), FromInt64(4)), FromFloat64(2.5), 1e-9)
	})
	t.Run("ByZero", func(t *testing.T) {
		require.True(t, Equals(Quo(One, Zero), PositiveInfinity))
		require.True(t, Equals(Quo(NegativeOne, Zero), NegativeInfinity))
	})
	t.Run("ZeroByZero", func(t *testing.T) {
		require.True(t, IsNaN(Quo(Zero, Zero)))
	})
	t.Run("InfinityByInfinity", func(t *testing.T) {
		require.True(t, IsNaN(Quo(PositiveInfinity, PositiveInfinity)))
	})
	t.Run("SelfDivisionIsOneAcrossRegimes", func(t *testing.T) {
		huge := FromFloat64(1e200)
		closeEnoughBN(t, Quo(huge, huge), One, 1e-9)
	})
}

func TestMod(t *testing.T) {
	t.Run("Ordinary", func(t *testing.T) {
		closeEnoughBN(t, Mod(FromInt64(10), FromInt64(3)), One, 1e-9)
	})
	t.Run("DivisionByZeroPanics", func(t *testing.T) {
		require.Panics(t, func() { Mod(One, Zero) })
	})
	t.Run("NaNPropagates", func(t *testing.T) {
		require.True(t, IsNaN(Mod(NaN, One)))
	})
}
