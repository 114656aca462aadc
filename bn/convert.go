package bn

import (
	"fmt"
	"math"

	"github.com/arbor-bn/bignum/hpf"
	"golang.org/x/exp/constraints"
)

// FromHPF constructs a BN from a high-precision float, per spec.md §4.4.
func FromHPF(x hpf.HPF) BN {
	switch {
	case x.IsNaN():
		return NaN
	case x.IsInf():
		if x.IsPositive() {
			return PositiveInfinity
		}
		return NegativeInfinity
	case x.IsZero():
		if x.Signbit() {
			return negativeZero
		}
		return Zero
	}

	n := x.IsNegative()
	ax := x.Abs()

	r := false
	if c, ok := ax.Cmp(hpf.One); ok && c < 0 {
		r = true
		ax = hpf.One.Quo(ax)
	}

	L := letterForMagnitude(ax)
	operand := operandForMagnitude(L, ax)
	// An operand within snapTolerance below 10 would snap to 10, which no
	// (I, F) pair encodes; it belongs at the bottom of the next letter.
	if c, ok := operand.Cmp(hpf.Ten.Sub(snapTolerance)); ok && c > 0 && L < 6 {
		L++
		operand = operandForMagnitude(L, ax)
	}
	I, F := EncodeOperand(operand)
	return pack(n, r, L, I, F)
}

// ToHPF decodes a BN to its nearest HPF representation. Letter-6/7 values
// whose true magnitude exceeds HPF's finite range decode to a signed
// infinity (math/big.Float's own overflow behavior), which is the expected,
// lossy result of projecting BN's extended range down onto HPF.
func ToHPF(b BN) hpf.HPF {
	switch {
	case IsNaN(b):
		return hpf.NaN()
	case IsPositiveInfinity(b):
		return hpf.PositiveInfinity
	case IsNegativeInfinity(b):
		return hpf.NegativeInfinity
	case IsZero(b):
		return hpf.Zero
	}
	m := decodeMagnitude(b.letter(), b.reciprocalFlag(), b.operand())
	if b.sign() {
		m = m.Neg()
	}
	return m
}

// FromFloat64, FromInt64, FromUint64 construct a BN from a machine numeric
// type, per spec.md §6's conversion surface (BN -> HPF -> target, or the
// reverse).
func FromFloat64(x float64) BN { return FromHPF(hpf.FromFloat64(x)) }
func FromInt64(x int64) BN     { return FromHPF(hpf.FromInt64(x)) }
func FromUint64(x uint64) BN   { return FromHPF(hpf.FromUint64(x)) }
func FromInt32(x int32) BN     { return FromInt64(int64(x)) }
func FromUint32(x uint32) BN   { return FromUint64(uint64(x)) }

// ToFloat64 converts b to the nearest float64.
func (b BN) ToFloat64() float64 { return ToHPF(b).Float64() }

// Numeric is the type set accepted by the generic conversion helpers:
// every machine integer and float type. hpf.HPF is not part of it; see
// TryConvertFromHPF/TryConvertToHPF.
type Numeric interface {
	constraints.Integer | constraints.Float
}

func toFloat64[T Numeric](v T) float64 { return float64(v) }

// TryConvertFromChecked constructs a BN from any numeric T. BN's range is
// much larger than any T's, so it always succeeds. The value passes
// through float64, so integers beyond 2^53 are rounded to float64
// precision.
func TryConvertFromChecked[T Numeric](v T) (BN, error) {
	return FromFloat64(toFloat64(v)), nil
}

// TryConvertFromSaturating is identical to TryConvertFromChecked: BN has no
// saturation boundary a machine numeric input could hit.
func TryConvertFromSaturating[T Numeric](v T) BN {
	return FromFloat64(toFloat64(v))
}

// TryConvertFromTruncating is identical to TryConvertFromChecked: there is
// no fractional truncation when widening into BN.
func TryConvertFromTruncating[T Numeric](v T) BN {
	return FromFloat64(toFloat64(v))
}

func numericBounds[T Numeric]() (min, max float64, integer bool) {
	var z T
	switch any(z).(type) {
	case int8:
		return math.MinInt8, math.MaxInt8, true
	case int16:
		return math.MinInt16, math.MaxInt16, true
	case int32:
		return math.MinInt32, math.MaxInt32, true
	case int64, int:
		return math.MinInt64, math.MaxInt64, true
	case uint8:
		return 0, math.MaxUint8, true
	case uint16:
		return 0, math.MaxUint16, true
	case uint32:
		return 0, math.MaxUint32, true
	case uint64, uint, uintptr:
		return 0, math.MaxUint64, true
	case float32:
		return -math.MaxFloat32, math.MaxFloat32, false
	default: // float64
		return -math.MaxFloat64, math.MaxFloat64, false
	}
}

// TryConvertToChecked converts b to T, failing if b is NaN, infinite, or
// its magnitude exceeds T's representable range.
func TryConvertToChecked[T Numeric](b BN) (T, error) {
	if IsNaN(b) {
		return T(0), fmt.Errorf("bn: TryConvertToChecked: value is NaN")
	}
	if IsInfinity(b) {
		return T(0), fmt.Errorf("bn: TryConvertToChecked: value is infinite")
	}
	f := b.ToFloat64()
	min, max, integer := numericBounds[T]()
	if f < min || f > max {
		return T(0), fmt.Errorf("bn: TryConvertToChecked: %v out of range for target type", f)
	}
	if integer {
		return T(math.Trunc(f)), nil
	}
	return T(f), nil
}

// TryConvertToSaturating converts b to T, clamping to T's representable
// range instead of failing.
func TryConvertToSaturating[T Numeric](b BN) T {
	min, max, integer := numericBounds[T]()
	if IsNaN(b) {
		return T(0)
	}
	f := b.ToFloat64()
	switch {
	case f < min:
		f = min
	case f > max:
		f = max
	}
	if integer {
		return T(math.Trunc(f))
	}
	return T(f)
}

// MustFrom constructs a BN from any numeric T, panicking on failure. The
// conversion can never actually fail (widening into BN's much larger range
// cannot overflow), but this mirrors the teacher's NewInt/NewFloat
// panic-on-bad-input convention for call sites that know in advance a
// conversion cannot fail and don't want to thread an error.
func MustFrom[T Numeric](v T) BN {
	b, err := TryConvertFromChecked(v)
	if err != nil {
		panic(fmt.Sprintf("bn: MustFrom: %v", err))
	}
	return b
}

// MustTo converts b to T, panicking if b is NaN, infinite, or out of T's
// representable range.
func MustTo[T Numeric](b BN) T {
	v, err := TryConvertToChecked[T](b)
	if err != nil {
		panic(fmt.Sprintf("bn: MustTo: %v", err))
	}
	return v
}

// TryConvertFromHPF and TryConvertToHPF cover the HPF leg of §6's
// conversion surface; HPF is not itself a Numeric (it is not an ordinary
// machine numeric kind), so it is handled outside the generic family.
func TryConvertFromHPF(x hpf.HPF) (BN, error) { return FromHPF(x), nil }
func TryConvertToHPF(b BN) (hpf.HPF, error)   { return ToHPF(b), nil }

// TryConvertToTruncating converts b to T through float64 with no range
// check, truncating toward zero for integer targets, like an unchecked Go
// conversion. Out-of-range values get Go's float-to-integer result, which
// is implementation-specific rather than a wraparound.
func TryConvertToTruncating[T Numeric](b BN) T {
	if IsNaN(b) {
		return T(0)
	}
	f := b.ToFloat64()
	_, _, integer := numericBounds[T]()
	if integer {
		f = math.Trunc(f)
	}
	return T(f)
}
