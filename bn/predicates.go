package bn

// Predicate surface of spec.md §6/§4.10.

func isReserved(b BN) bool { return b.letter() == letterReserved }

// isReservedOperandTwo reports whether a reserved-letter word's decoded
// operand is exactly 2 (I=0, F=0) — the branch point between ±∞, ±0, NaN.
func isReservedOperandTwo(b BN) bool {
	I, F := b.operandFields()
	return I == 0 && F.Sign() == 0
}

// IsNaN reports whether b is not-a-number.
func IsNaN(b BN) bool {
	return isReserved(b) && !isReservedOperandTwo(b)
}

// IsQNaN reports whether b is a quiet NaN (the r bit set), per spec.md §3's
// reserved-letter table.
func IsQNaN(b BN) bool {
	return IsNaN(b) && b.reciprocalFlag()
}

func IsPositiveInfinity(b BN) bool {
	return isReserved(b) && isReservedOperandTwo(b) && !b.reciprocalFlag() && !b.sign()
}

func IsNegativeInfinity(b BN) bool {
	return isReserved(b) && isReservedOperandTwo(b) && !b.reciprocalFlag() && b.sign()
}

func IsInfinity(b BN) bool {
	return IsPositiveInfinity(b) || IsNegativeInfinity(b)
}

// IsZero reports whether b is positive or negative zero.
func IsZero(b BN) bool {
	return isReserved(b) && isReservedOperandTwo(b) && b.reciprocalFlag()
}

func IsFinite(b BN) bool {
	return !IsNaN(b) && !IsInfinity(b)
}

// IsNegative follows IEEE convention: the sign bit is reported directly for
// signed zero, false for NaN.
func IsNegative(b BN) bool {
	if IsNaN(b) {
		return false
	}
	return b.sign()
}

func IsPositive(b BN) bool {
	if IsNaN(b) {
		return false
	}
	return !b.sign()
}

// IsInteger reports whether b's decoded value is an exact integer. Always
// false for NaN, infinities, and letter-6/7 magnitudes too large for HPF.
func IsInteger(b BN) bool {
	if !IsFinite(b) {
		return false
	}
	m := ToHPF(b)
	if m.IsInf() {
		return false
	}
	c, ok := m.Cmp(m.Floor())
	return ok && c == 0
}

func IsEvenInteger(b BN) bool {
	if !IsInteger(b) {
		return false
	}
	return ToHPF(b).Int().Bit(0) == 0
}

func IsOddInteger(b BN) bool {
	if !IsInteger(b) {
		return false
	}
	return ToHPF(b).Int().Bit(0) == 1
}

// IsNormal reports whether b is finite and nonzero.
func IsNormal(b BN) bool {
	return IsFinite(b) && !IsZero(b)
}

// IsSubnormal is always false: BN has no subnormal encoding (spec.md §1).
func IsSubnormal(b BN) bool { return false }

// IsRealNumber is true for every non-NaN value, including ±∞.
func IsRealNumber(b BN) bool { return !IsNaN(b) }

// IsComplexNumber and IsImaginaryNumber are always false: BN has no
// complex/imaginary representation (spec.md §1's explicit non-goal).
func IsComplexNumber(b BN) bool   { return false }
func IsImaginaryNumber(b BN) bool { return false }

// IsCanonical reports whether b is already in normalized bit form.
func IsCanonical(b BN) bool { return Normalized(b) == b }
