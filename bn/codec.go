package bn

import (
	"math/big"

	"github.com/arbor-bn/bignum/hpf"
	"github.com/arbor-bn/bignum/htl"
	"github.com/arbor-bn/bignum/stl"
)

// snapTolerance is the integer-snap tolerance of spec.md §4.1/§9: a value
// within this distance of an integer is treated as exactly that integer,
// bridging HPF transcendental precision and the 85-bit fraction field.
var snapTolerance = hpf.One.ScaleB(-40)

var twoP85 = hpf.One.ScaleB(85)

// EncodeOperand implements spec.md §4.1: x is the full operand in [2,10);
// it returns the packed integer part (I = floor(x)-2) and the 85-bit
// unsigned fraction (F = (x - floor(x)) * 2^85, floored).
func EncodeOperand(x hpf.HPF) (I byte, F *big.Int) {
	y := x.Sub(hpf.Two) // now in [0,8)

	rounded := y.Round()
	if d, ok := y.Sub(rounded).Abs().Cmp(snapTolerance); ok && d < 0 {
		y = rounded
	}

	floorVal := y.Floor()
	frac := y.Sub(floorVal)

	if c, ok := frac.Cmp(hpf.One); ok && c >= 0 {
		frac = hpf.Zero
		floorVal = floorVal.Add(hpf.One)
	}

	scaled := frac.Mul(twoP85).Floor()
	if c, ok := scaled.Cmp(twoP85); ok && c >= 0 {
		scaled = hpf.Zero
		floorVal = floorVal.Add(hpf.One)
	}

	i := floorVal.Int64()
	if i < 0 {
		i = 0
	}
	if i > 7 {
		i = 7
	}
	return byte(i), scaled.Int()
}

// DecodeOperand is the inverse of EncodeOperand: reconstructs the full
// operand in [2,10) from the packed integer and fraction fields.
func DecodeOperand(I byte, F *big.Int) hpf.HPF {
	floorVal := hpf.FromInt64(int64(I) + 2)
	if F == nil {
		return floorVal
	}
	frac := hpf.FromBigInt(F).Quo(twoP85)
	return floorVal.Add(frac)
}

// Magnitude thresholds for letterForMagnitude, per spec.md §3/§4.4.
var (
	mFour    = hpf.FromInt64(4)
	mTwenty  = hpf.FromInt64(20)
	mHundred = hpf.FromInt64(100)
	mTenP10  = stl.SafeExp10(hpf.Ten)
)

// letterForMagnitude chooses the smallest-range letter (1..6) containing
// the reduced magnitude x (x >= 1, finite), per spec.md §4.4 step 4.
func letterForMagnitude(x hpf.HPF) byte {
	lt := func(a, b hpf.HPF) bool { c, ok := a.Cmp(b); return ok && c < 0 }
	switch {
	case lt(x, hpf.Two):
		return 1
	case lt(x, mFour):
		return 2
	case lt(x, mTwenty):
		return 3
	case lt(x, mHundred):
		return 4
	case lt(x, mTenP10):
		return 5
	default:
		return 6
	}
}

// operandForMagnitude is the inverse of decodeMagnitude for letters 1..6,
// used when constructing a BN from an HPF magnitude (spec.md §4.4 step 5).
func operandForMagnitude(L byte, x hpf.HPF) hpf.HPF {
	switch L {
	case 1:
		return hpf.Two.Add(x.Sub(hpf.One).Mul(hpf.FromInt64(8)))
	case 2:
		return hpf.Two.Add(x.Sub(hpf.Two).Mul(hpf.FromInt64(4)))
	case 3:
		return x.Quo(hpf.Two)
	case 4:
		return x.Quo(hpf.Ten)
	case 5:
		return stl.SafeLog10(x)
	case 6:
		return htl.SuperLog10(x)
	default:
		panic("bn: operandForMagnitude: unsupported letter")
	}
}

// decodeMagnitude reconstructs the positive magnitude for a (letter,
// reciprocal, operand) triple, per spec.md §3's table. Letter-6 and
// letter-7 magnitudes routinely exceed HPF's finite range: math/big.Float
// saturates to +Inf on exponent overflow, which is the intended,
// documented behavior for decoding such extreme values to HPF.
func decodeMagnitude(L byte, r bool, o hpf.HPF) hpf.HPF {
	var m hpf.HPF
	switch L {
	case 1:
		m = hpf.One.Add(o.Sub(hpf.Two).Quo(hpf.FromInt64(8)))
	case 2:
		m = hpf.Two.Add(o.Sub(hpf.Two).Quo(hpf.FromInt64(4)))
	case 3:
		m = o.Mul(hpf.Two)
	case 4:
		m = o.Mul(hpf.Ten)
	case 5:
		// Integer-snap the decoded power of ten, so that an integer
		// operand decodes to the exact integer magnitude (10^3 == 1000).
		m = stl.SafeExp10(o)
		rounded := m.Round()
		if d, ok := m.Sub(rounded).Abs().Cmp(snapTolerance); ok && d < 0 {
			m = rounded
		}
	case 6:
		m = stl.SafeExp10(stl.SafeExp10(stl.SafeExp10(o.Sub(hpf.Two))))
	case 7:
		// The J->G reparameterization composed with LetterG, mirroring
		// L6's use of LetterF one level further up the growth hierarchy.
		// See DESIGN.md's Open Questions for this choice's rationale.
		m = htl.LetterG(htl.LetterJToLetterG(o))
	default:
		m = hpf.PositiveInfinity
	}
	if r {
		m = hpf.One.Quo(m)
	}
	return m
}
