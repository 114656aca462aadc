package bn

import (
	"fmt"

	"github.com/arbor-bn/bignum/hpf"
	"github.com/arbor-bn/bignum/htl"
	"github.com/arbor-bn/bignum/stl"
)

// Neg flips the sign bit. NaN is unaffected (remains NaN).
func Neg(b BN) BN {
	if IsNaN(b) {
		return NaN
	}
	n, r, L, I, F := unpack(b)
	return pack(!n, r, L, I, F)
}

// Reciprocal flips the reciprocal bit: spec.md §3's magnitude table defines
// the r=1 branch as 1/M(r=0), so flipping r computes 1/x for every letter
// in a single O(1) operation.
func Reciprocal(b BN) BN {
	switch {
	case IsNaN(b):
		return NaN
	case IsZero(b):
		if b.sign() {
			return NegativeInfinity
		}
		return PositiveInfinity
	case IsInfinity(b):
		if b.sign() {
			return negativeZero
		}
		return Zero
	}
	n, r, L, I, F := unpack(b)
	return pack(n, !r, L, I, F)
}

// Abs clears the sign bit.
func Abs(b BN) BN {
	if IsNaN(b) {
		return NaN
	}
	if IsZero(b) {
		return Zero
	}
	_, r, L, I, F := unpack(b)
	return pack(false, r, L, I, F)
}

// Floor returns the greatest BN integer value <= b.
func Floor(b BN) BN {
	if !IsFinite(b) {
		return b
	}
	if IsZero(b) {
		return b
	}
	m := ToHPF(b)
	if m.IsInf() {
		// A magnitude this large has no meaningful fractional part at
		// HPF's precision; flooring is a no-op.
		return b
	}
	return FromHPF(m.Floor())
}

func Inc(b BN) BN { return Add(b, One) }
func Dec(b BN) BN { return Sub(b, One) }

// AbsoluteValue is an alias for Abs, per spec.md §6's named surface.
func AbsoluteValue(b BN) BN { return Abs(b) }

// Negated is an alias for Neg, per spec.md §6's named surface.
func Negated(b BN) BN { return Neg(b) }

// Log10 implements spec.md §4.5.
func Log10(b BN) BN {
	switch {
	case IsNaN(b):
		return NaN
	case IsNegativeInfinity(b):
		// spec.md §9 open question: kept as the spec's stated (non-IEEE)
		// behavior rather than NaN; see DESIGN.md.
		return Zero
	case IsPositiveInfinity(b):
		return PositiveInfinity
	case IsZero(b), IsNegative(b):
		return NaN
	}
	if b.reciprocalFlag() {
		return Neg(Log10(Reciprocal(b)))
	}
	switch b.letter() {
	case 1, 2, 3, 4:
		return FromHPF(stl.SafeLog10(ToHPF(b)))
	case 5:
		return FromHPF(b.operand())
	case 6:
		o := b.operand()
		val := stl.SafeExp10(stl.SafeExp10(o.Sub(hpf.Two)))
		return FromHPF(val)
	case 7:
		o := b.operand()
		g := htl.LetterJToLetterG(o)
		g2 := g.Sub(hpf.One)
		if c, ok := g2.Cmp(hpf.Two); ok && c < 0 {
			return FromHPF(htl.LetterG(g2))
		}
		newO := htl.LetterGToLetterJ(g2)
		I, F := EncodeOperand(newO)
		return pack(false, false, 7, I, F)
	default:
		return NaN
	}
}

// Exp10 implements spec.md §4.6.
func Exp10(b BN) BN {
	switch {
	case IsNaN(b):
		return NaN
	case IsPositiveInfinity(b):
		return PositiveInfinity
	case IsNegativeInfinity(b):
		return Zero
	case IsZero(b):
		return One
	}
	if IsNegative(b) {
		return Reciprocal(Exp10(Neg(b)))
	}
	if b.reciprocalFlag() || b.letter() < 5 {
		return FromHPF(stl.SafeExp10(ToHPF(b)))
	}
	switch b.letter() {
	case 5:
		o := b.operand()
		newO := hpf.Two.Add(stl.SafeLog10(o))
		I, F := EncodeOperand(newO)
		return pack(false, false, 6, I, F)
	case 6:
		o := b.operand()
		if c, ok := o.Cmp(hpf.FromInt64(9)); ok && c < 0 {
			I, F := EncodeOperand(o.Add(hpf.One))
			return pack(false, false, 6, I, F)
		}
		inner := htl.SuperLog10(o.Add(hpf.One))
		g := hpf.Two.Add(stl.SafeLog10(inner))
		newO := htl.LetterGToLetterJ(g)
		I, F := EncodeOperand(newO)
		return pack(false, false, 7, I, F)
	case 7:
		o := b.operand()
		g := htl.LetterJToLetterG(o)
		g2 := g.Add(hpf.One)
		newO := htl.LetterGToLetterJ(g2)
		if c, ok := newO.Cmp(hpf.Ten); ok && c >= 0 {
			// Would require an unimplemented letter 8; saturate, per
			// spec.md §3's "arithmetic never yields an unencodable
			// value" invariant.
			return PositiveInfinity
		}
		I, F := EncodeOperand(newO)
		return pack(false, false, 7, I, F)
	default:
		return PositiveInfinity
	}
}

func Log2(b BN) BN {
	if IsNaN(b) {
		return NaN
	}
	return Mul(Log10(b), Log2_10)
}

func Exp2(b BN) BN {
	if IsNaN(b) {
		return NaN
	}
	return Exp10(Quo(b, Log2_10))
}

func Log(b BN) BN {
	if IsNaN(b) {
		return NaN
	}
	return Mul(Log10(b), Ln10)
}

func Exp(b BN) BN {
	if IsNaN(b) {
		return NaN
	}
	return Exp10(Quo(b, Ln10))
}

// Pow returns x^y.
func Pow(x, y BN) BN {
	if IsNaN(x) || IsNaN(y) {
		return NaN
	}
	if IsZero(y) {
		return One
	}
	if IsZero(x) {
		if IsNegative(y) {
			return PositiveInfinity
		}
		return Zero
	}
	if IsNegative(x) {
		if !IsInteger(y) {
			return NaN
		}
		result := Exp10(Mul(y, Log10(Abs(x))))
		if IsOddInteger(y) {
			return Neg(result)
		}
		return result
	}
	return Exp10(Mul(y, Log10(x)))
}

// Add implements spec.md §4.7.
func Add(a, b BN) BN {
	if IsNaN(a) || IsNaN(b) {
		return NaN
	}
	if IsInfinity(a) && IsInfinity(b) {
		if IsPositiveInfinity(a) == IsPositiveInfinity(b) {
			return a
		}
		return NaN
	}
	if IsInfinity(a) {
		return a
	}
	if IsInfinity(b) {
		return b
	}
	if IsZero(a) && IsZero(b) {
		if IsNegative(a) && IsNegative(b) {
			return negativeZero
		}
		return Zero
	}
	if IsZero(a) {
		return b
	}
	if IsZero(b) {
		return a
	}

	c, _ := Compare(Abs(a), Abs(b))
	left, right := a, b
	if c < 0 {
		left, right = b, a
	}

	if IsNegative(left) != IsNegative(right) {
		return addDifferentSigns(left, right)
	}
	return addSameSigns(left, right)
}

// Sub implements spec.md §4.9: a - b = a + (-b).
func Sub(a, b BN) BN { return Add(a, Neg(b)) }

// addSameSigns adds two same-signed operands with |left| >= |right| > 0.
// Direct HPF addition is tried first; the log-space form of spec.md §4.7 is
// used only once direct addition overflows HPF's range.
func addSameSigns(left, right BN) BN {
	ml, mr := ToHPF(Abs(left)), ToHPF(Abs(right))
	if !ml.IsInf() && !mr.IsInf() {
		sum := ml.Add(mr)
		if !sum.IsInf() {
			result := FromHPF(sum)
			if IsNegative(left) {
				result = Neg(result)
			}
			return result
		}
	}

	la := Log10(Abs(left))
	lb := Log10(Abs(right))
	ratio := ToHPF(Exp10(Sub(lb, la)))
	if ratio.IsNaN() || ratio.IsInf() {
		return left
	}
	inner := hpf.One.Add(ratio)
	logInner := FromHPF(stl.SafeLog10(inner))
	newLog := Add(la, logInner)
	if IsNaN(newLog) || IsInfinity(newLog) {
		return left
	}
	result := Exp10(newLog)
	if IsNegative(left) {
		result = Neg(result)
	}
	return result
}

// addDifferentSigns subtracts |right| from |left| (|left| >= |right|,
// opposite signs), per spec.md §4.7's subtraction branch.
func addDifferentSigns(left, right BN) BN {
	if Equals(Abs(left), Abs(right)) {
		return Zero
	}

	ml, mr := ToHPF(Abs(left)), ToHPF(Abs(right))
	if !ml.IsInf() && !mr.IsInf() {
		result := FromHPF(ml.Sub(mr))
		if IsNegative(left) {
			result = Neg(result)
		}
		return result
	}

	la := Log10(Abs(left))
	lb := Log10(Abs(right))
	ratio := ToHPF(Exp10(Sub(lb, la)))
	if ratio.IsNaN() || ratio.IsInf() {
		return left
	}
	inner := hpf.One.Sub(ratio)
	if inner.IsZero() || inner.IsNegative() {
		return left
	}
	logInner := FromHPF(stl.SafeLog10(inner))
	newLog := Add(la, logInner)
	if IsNaN(newLog) || IsInfinity(newLog) {
		return left
	}
	result := Exp10(newLog)
	if IsNegative(left) {
		result = Neg(result)
	}
	return result
}

// Mul implements spec.md §4.8.
func Mul(a, b BN) BN {
	if IsNaN(a) || IsNaN(b) {
		return NaN
	}
	aZero, bZero := IsZero(a), IsZero(b)
	aInf, bInf := IsInfinity(a), IsInfinity(b)
	if (aZero && bInf) || (aInf && bZero) {
		return NaN
	}
	resultNeg := IsNegative(a) != IsNegative(b)
	if aZero || bZero {
		if resultNeg {
			return negativeZero
		}
		return Zero
	}
	if aInf || bInf {
		if resultNeg {
			return NegativeInfinity
		}
		return PositiveInfinity
	}
	result := Exp10(Add(Log10(Abs(a)), Log10(Abs(b))))
	if resultNeg {
		result = Neg(result)
	}
	return result
}

// Quo implements spec.md §4.8.
func Quo(a, b BN) BN {
	if IsNaN(a) || IsNaN(b) {
		return NaN
	}
	aInf, bInf := IsInfinity(a), IsInfinity(b)
	if aInf && bInf {
		return NaN
	}
	resultNeg := IsNegative(a) != IsNegative(b)
	if IsZero(b) {
		if IsZero(a) {
			return NaN
		}
		if resultNeg {
			return NegativeInfinity
		}
		return PositiveInfinity
	}
	if IsZero(a) {
		if resultNeg {
			return negativeZero
		}
		return Zero
	}
	if bInf {
		if resultNeg {
			return negativeZero
		}
		return Zero
	}
	if aInf {
		if resultNeg {
			return NegativeInfinity
		}
		return PositiveInfinity
	}
	result := Exp10(Sub(Log10(Abs(a)), Log10(Abs(b))))
	if resultNeg {
		result = Neg(result)
	}
	return result
}

// Mod implements spec.md §4.9: a % b = a - b*floor(a/b). Division by zero
// is a fatal, raised error.
func Mod(a, b BN) BN {
	if IsNaN(a) || IsNaN(b) {
		return NaN
	}
	if IsZero(b) {
		panic(fmt.Errorf("bn: Mod: division by zero"))
	}
	q := Floor(Quo(a, b))
	return Sub(a, Mul(b, q))
}
