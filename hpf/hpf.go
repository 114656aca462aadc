// Package hpf implements the high-precision float substrate that the BN
// value type is built on: a 113-bit-mantissa (binary128-equivalent) float
// with explicit NaN tracking layered over math/big.Float, since big.Float
// itself has no NaN value and panics with ErrNaN on indeterminate forms.
package hpf

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// Prec is the mantissa width, chosen to match an IEEE-754 binary128 float.
const Prec = 113

// HPF is an immutable high-precision float. The zero value is not valid;
// use Zero or one of the constructors.
type HPF struct {
	v   *big.Float
	nan bool
}

func wrap(v *big.Float) HPF {
	v.SetPrec(Prec)
	return HPF{v: v}
}

// NaN returns the canonical not-a-number value.
func NaN() HPF {
	return HPF{v: new(big.Float).SetPrec(Prec), nan: true}
}

// FromFloat64 constructs an HPF from a float64.
func FromFloat64(x float64) HPF {
	if x != x { // x is NaN
		return NaN()
	}
	return wrap(new(big.Float).SetFloat64(x))
}

// FromInt64 constructs an HPF from an int64.
func FromInt64(x int64) HPF {
	return wrap(new(big.Float).SetInt64(x))
}

// FromUint64 constructs an HPF from a uint64.
func FromUint64(x uint64) HPF {
	return wrap(new(big.Float).SetUint64(x))
}

// FromBig wraps an existing *big.Float. The argument is copied.
func FromBig(v *big.Float) HPF {
	return wrap(new(big.Float).Set(v))
}

// Parse parses a decimal string (as accepted by big.Float.Parse, base 10).
func Parse(s string) (HPF, error) {
	v, _, err := big.ParseFloat(s, 10, Prec, big.ToNearestEven)
	if err != nil {
		return HPF{}, fmt.Errorf("hpf: parse %q: %w", s, err)
	}
	return wrap(v), nil
}

func mustParse(s string) HPF {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse40 parses a decimal literal known at compile time to be valid,
// panicking on malformed input. Intended for package-level precomputed
// constants (e.g. ln2, log2_10); the result is rounded to Prec bits
// (about 34 decimal digits) whatever the literal's length.
func Parse40(s string) HPF {
	return mustParse(s)
}

// Named constants, analogous to spec.md §6's required HPF constants.
var (
	Zero = FromInt64(0)
	One  = FromInt64(1)
	Two  = FromInt64(2)
	Ten  = FromInt64(10)

	E   = mustParse("2.71828182845904523536028747135266249775724709369995957496696762772407663035354759457138217852516642743")
	Pi  = mustParse("3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798")
	Tau = Pi.ScaleB(1)

	PositiveInfinity = wrap(new(big.Float).SetInf(false))
	NegativeInfinity = wrap(new(big.Float).SetInf(true))
)

func toPrec(v *big.Float, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).Set(v)
}

// Big returns a defensive copy of the underlying math/big.Float. Panics if
// the receiver is NaN; callers must check IsNaN first.
func (x HPF) Big() *big.Float {
	if x.nan {
		panic(fmt.Errorf("hpf: Big() called on NaN"))
	}
	return new(big.Float).Set(x.v)
}

func (x HPF) IsNaN() bool      { return x.nan }
func (x HPF) IsInf() bool      { return !x.nan && x.v.IsInf() }
func (x HPF) IsInfinity() bool { return x.IsInf() }
func (x HPF) IsZero() bool     { return !x.nan && x.v.Sign() == 0 }
func (x HPF) IsPositive() bool { return !x.nan && x.v.Sign() > 0 }
func (x HPF) IsNegative() bool { return !x.nan && x.v.Sign() < 0 }

// Sign returns -1, 0 or 1. NaN reports 0.
func (x HPF) Sign() int {
	if x.nan {
		return 0
	}
	return x.v.Sign()
}

func (x HPF) signbit() bool {
	return x.v.Signbit()
}

// Signbit reports the sign bit of x, including for signed zero — unlike
// Sign/IsNegative, which both treat +0 and -0 as equal.
func (x HPF) Signbit() bool {
	return !x.nan && x.v.Signbit()
}

// Cmp compares x and y. ok is false if either operand is NaN, in which case
// c is meaningless (mirrors IEEE "unordered" comparisons).
func (x HPF) Cmp(y HPF) (c int, ok bool) {
	if x.nan || y.nan {
		return 0, false
	}
	return x.v.Cmp(y.v), true
}

func (x HPF) Neg() HPF {
	if x.nan {
		return NaN()
	}
	return wrap(new(big.Float).Neg(x.v))
}

func (x HPF) Abs() HPF {
	if x.nan {
		return NaN()
	}
	return wrap(new(big.Float).Abs(x.v))
}

// Add returns x+y. Inf + (-Inf) is NaN.
func (x HPF) Add(y HPF) HPF {
	if x.nan || y.nan {
		return NaN()
	}
	if x.IsInf() && y.IsInf() && x.signbit() != y.signbit() {
		return NaN()
	}
	return wrap(new(big.Float).Add(x.v, y.v))
}

func (x HPF) Sub(y HPF) HPF {
	return x.Add(y.Neg())
}

// Mul returns x*y. 0*Inf is NaN.
func (x HPF) Mul(y HPF) HPF {
	if x.nan || y.nan {
		return NaN()
	}
	if (x.IsZero() && y.IsInf()) || (x.IsInf() && y.IsZero()) {
		return NaN()
	}
	return wrap(new(big.Float).Mul(x.v, y.v))
}

// Quo returns x/y. 0/0 and Inf/Inf are NaN; finite/0 is a signed infinity.
func (x HPF) Quo(y HPF) HPF {
	if x.nan || y.nan {
		return NaN()
	}
	if (x.IsZero() && y.IsZero()) || (x.IsInf() && y.IsInf()) {
		return NaN()
	}
	return wrap(new(big.Float).Quo(x.v, y.v))
}

// FusedMultiplyAdd computes x*y+z with a single final rounding, approximated
// by evaluating the product and sum at double precision and rounding once.
func (x HPF) FusedMultiplyAdd(y, z HPF) HPF {
	if x.nan || y.nan || z.nan {
		return NaN()
	}
	wide := new(big.Float).SetPrec(Prec * 2)
	wide.Mul(toPrec(x.v, Prec*2), toPrec(y.v, Prec*2))
	wide.Add(wide, toPrec(z.v, Prec*2))
	return wrap(new(big.Float).Set(wide))
}

// Sqrt returns the square root of x, via github.com/ALTree/bigfloat's
// arbitrary-precision Sqrt. Negative x yields NaN; Sqrt never panics.
func (x HPF) Sqrt() HPF {
	if x.nan || x.IsNegative() {
		return NaN()
	}
	if x.IsZero() || x.IsInf() {
		return x
	}
	return wrap(bigfloat.Sqrt(x.v))
}

// Floor returns the greatest integer HPF value <= x.
func (x HPF) Floor() HPF {
	if x.nan || x.IsInf() {
		return x
	}
	i := new(big.Int)
	x.v.Int(i) // truncates toward zero
	f := new(big.Float).SetPrec(Prec).SetInt(i)
	if x.v.Sign() < 0 {
		if c, _ := wrap(f).Cmp(x); c != 0 {
			f.Sub(f, One.v)
		}
	}
	return wrap(f)
}

// Round rounds to the nearest integer, ties away from zero.
func (x HPF) Round() HPF {
	if x.nan || x.IsInf() {
		return x
	}
	if x.IsNegative() {
		return x.Neg().Round().Neg()
	}
	half := FromFloat64(0.5)
	return x.Add(half).Floor()
}

// ILogB returns the base-2 exponent e such that x/2^e lies in [1,2).
func (x HPF) ILogB() int {
	if x.nan || x.IsZero() || x.IsInf() {
		return 0
	}
	e := x.v.MantExp(nil)
	return e - 1
}

// ScaleB returns x * 2^n, computed exactly (no rounding of the mantissa).
func (x HPF) ScaleB(n int) HPF {
	if x.nan {
		return NaN()
	}
	if x.IsInf() || x.IsZero() {
		return x
	}
	m := new(big.Float).SetPrec(Prec)
	e := x.v.MantExp(m)
	r := new(big.Float).SetPrec(Prec).SetMantExp(m, e+n)
	return wrap(r)
}

// Frexp decomposes x as m * 2^e with m in [0.5, 1). x must be finite and
// nonzero; callers check IsZero/IsInf/IsNaN first.
func (x HPF) Frexp() (m HPF, e int) {
	if x.nan || x.IsZero() || x.IsInf() {
		return x, 0
	}
	mant := new(big.Float).SetPrec(Prec)
	e = x.v.MantExp(mant)
	return wrap(mant), e
}

// FromBigInt constructs an HPF from a *big.Int.
func FromBigInt(i *big.Int) HPF {
	return wrap(new(big.Float).SetInt(i))
}

// Int truncates x toward zero and returns the result as a *big.Int.
func (x HPF) Int() *big.Int {
	i := new(big.Int)
	if x.nan || x.IsInf() {
		return i
	}
	x.v.Int(i)
	return i
}

// Int64 truncates x toward zero and returns the result as an int64.
func (x HPF) Int64() int64 {
	if x.nan || x.IsInf() {
		return 0
	}
	i, _ := x.v.Int64()
	return i
}

// Float64 converts to the nearest machine float64.
func (x HPF) Float64() float64 {
	if x.nan {
		var nan float64
		return nan / nan
	}
	f, _ := x.v.Float64()
	return f
}

// String formats x using big.Float's 'g' verb at full mantissa precision.
func (x HPF) String() string {
	if x.nan {
		return "NaN"
	}
	return x.v.Text('g', -1)
}
