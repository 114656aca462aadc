// Package bn implements the Big Number (BN) value type: an immutable
// 96-bit encoding of real numbers spanning roughly seven magnitude regimes,
// from values smaller than the reciprocal of Rayo's number up to towers of
// tenth powers, built on the hpf/stl/htl layers.
package bn

import (
	"math/big"

	"github.com/arbor-bn/bignum/hpf"
)

// BN is an immutable 96-bit value, stored as three 32-bit lanes. BN values
// are copyable by value; there are no mutating methods.
type BN struct {
	hi, mid, lo uint32
}

// letterReserved (0x3F) selects the reserved encoding for ±∞, ±0 and NaN.
const letterReserved = 0x3F

// maxLetter is the highest regime this implementation gives concrete
// arithmetic semantics to. Letters 8..62 are reserved by spec.md §3 for a
// "tower" of higher growth regimes it does not give a formula for;
// operations that would need to step past letter 7 saturate to infinity
// instead (see DESIGN.md's Open Questions).
const maxLetter = 7

var maskF85 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 85), big.NewInt(1))

func pack(n, r bool, L byte, I byte, F *big.Int) BN {
	word := new(big.Int)
	if n {
		word.SetBit(word, 95, 1)
	}
	if r {
		word.SetBit(word, 94, 1)
	}
	lBits := new(big.Int).Lsh(big.NewInt(int64(L&0x3F)), 88)
	word.Or(word, lBits)
	iBits := new(big.Int).Lsh(big.NewInt(int64(I&0x7)), 85)
	word.Or(word, iBits)
	if F != nil {
		fBits := new(big.Int).And(F, maskF85)
		word.Or(word, fBits)
	}
	return wordToBN(word)
}

func wordToBN(word *big.Int) BN {
	mask32 := big.NewInt(0xFFFFFFFF)
	lo := new(big.Int).And(word, mask32).Uint64()
	mid := new(big.Int).Rsh(word, 32)
	mid.And(mid, mask32)
	hi := new(big.Int).Rsh(word, 64)
	hi.And(hi, mask32)
	return BN{hi: uint32(hi.Uint64()), mid: uint32(mid.Uint64()), lo: uint32(lo)}
}

func (b BN) toWord() *big.Int {
	word := new(big.Int).SetUint64(uint64(b.hi))
	word.Lsh(word, 32)
	word.Or(word, new(big.Int).SetUint64(uint64(b.mid)))
	word.Lsh(word, 32)
	word.Or(word, new(big.Int).SetUint64(uint64(b.lo)))
	return word
}

func unpack(b BN) (n, r bool, L byte, I byte, F *big.Int) {
	word := b.toWord()
	n = word.Bit(95) == 1
	r = word.Bit(94) == 1
	lw := new(big.Int).Rsh(word, 88)
	lw.And(lw, big.NewInt(0x3F))
	L = byte(lw.Uint64())
	iw := new(big.Int).Rsh(word, 85)
	iw.And(iw, big.NewInt(0x7))
	I = byte(iw.Uint64())
	F = new(big.Int).And(word, maskF85)
	return
}

// sign reports the sign bit.
func (b BN) sign() bool { n, _, _, _, _ := unpack(b); return n }

// reciprocalFlag reports the reciprocal bit.
func (b BN) reciprocalFlag() bool { _, r, _, _, _ := unpack(b); return r }

// letter reports the regime selector.
func (b BN) letter() byte { _, _, L, _, _ := unpack(b); return L }

func (b BN) operandFields() (I byte, F *big.Int) { _, _, _, I, F = unpack(b); return }

// operand reconstructs the decoded [2,10) operand as an HPF.
func (b BN) operand() hpf.HPF {
	I, F := b.operandFields()
	return DecodeOperand(I, F)
}

// Special-value constructors, per spec.md §3's reserved-letter table.
func makeInf(negative bool) BN  { return pack(negative, false, letterReserved, 0, nil) }
func makeZero(negative bool) BN { return pack(negative, true, letterReserved, 0, nil) }

// makeNaN returns a quiet NaN word: L=reserved, r=1, o != 2 (I=1 so o=3).
func makeNaN() BN { return pack(false, true, letterReserved, 1, nil) }

// Special and named constants, per spec.md §6.
var (
	NaN              = makeNaN()
	PositiveInfinity = makeInf(false)
	NegativeInfinity = makeInf(true)
	Zero             = makeZero(false)
	negativeZero     = makeZero(true)

	One         = pack(false, false, 1, 0, big.NewInt(0))
	NegativeOne = pack(true, false, 1, 0, big.NewInt(0))
	Two         = pack(false, false, 2, 0, big.NewInt(0))

	// Ten = 10: letter 3 (range [4,20), M = o*2), o = 5.
	Ten = pack(false, false, 3, 3, big.NewInt(0))

	// Hundred = 100: letter 5 (range [100,1e10), M = 10^o), o = 2.
	Hundred = pack(false, false, 5, 0, big.NewInt(0))

	// MaxValue is the largest finite value this implementation encodes:
	// letter 7 (the highest concretely-specified regime) with the
	// maximal operand. MinValue is its negation, Epsilon its reciprocal.
	MaxValue = pack(false, false, maxLetter, 7, new(big.Int).Set(maskF85))
	MinValue = pack(true, false, maxLetter, 7, new(big.Int).Set(maskF85))
	Epsilon  = pack(false, true, maxLetter, 7, new(big.Int).Set(maskF85))
)

// E, Pi, Tau, Ln10 and Log2_10 are exposed as BN constants built from the
// corresponding HPF values, per spec.md §6.
var (
	E       = FromHPF(hpf.E)
	Pi      = FromHPF(hpf.Pi)
	Tau     = FromHPF(hpf.Tau)
	Ln10    = FromHPF(hpf.Parse40("2.30258509299404568401799145468436420760110948514722242710699417416678715153542936684141877987418662790"))
	Log2_10 = FromHPF(hpf.Parse40("3.32192809488736234787031942948939017586483139302458061205475639581593477660862521585013974335937015379"))
)
