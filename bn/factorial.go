package bn

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
	"github.com/arbor-bn/bignum/hpf"
)

// lanczosG and lanczosCoefficients are the classic g=7, 9-term Lanczos
// approximation coefficients (Numerical Recipes' table), used by Factorial
// once its argument leaves the exact small-integer fast path.
var lanczosG = big.NewFloat(7)

var lanczosCoefficients = []*big.Float{
	big.NewFloat(0.99999999999980993),
	big.NewFloat(676.5203681218851),
	big.NewFloat(-1259.1392167224028),
	big.NewFloat(771.32342877765313),
	big.NewFloat(-176.61502916214059),
	big.NewFloat(12.507343278686905),
	big.NewFloat(-0.13857109526572012),
	big.NewFloat(9.9843695780195716e-6),
	big.NewFloat(1.5056327351493116e-7),
}

func intFactorial(n uint64) uint64 {
	r := uint64(1)
	for i := uint64(2); i <= n; i++ {
		r *= i
	}
	return r
}

// gammaLanczos computes n! = Gamma(n+1) via the Lanczos approximation, for
// n >= 0. External collaborator github.com/ALTree/bigfloat supplies the
// arbitrary-precision Exp/Pow/Sqrt over *big.Float that the series needs.
func gammaLanczos(n *big.Float) *big.Float {
	prec := n.Prec()
	if prec < hpf.Prec {
		prec = hpf.Prec
	}

	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)

	x := new(big.Float).SetPrec(prec).Set(lanczosCoefficients[0])
	for i := 1; i < len(lanczosCoefficients); i++ {
		denom := new(big.Float).SetPrec(prec).SetInt64(int64(i))
		denom.Add(denom, n)
		term := new(big.Float).SetPrec(prec).Quo(lanczosCoefficients[i], denom)
		x.Add(x, term)
	}

	t := new(big.Float).SetPrec(prec).Add(n, lanczosG)
	t.Add(t, half)

	exponent := new(big.Float).SetPrec(prec).Add(n, half)
	tPow := bigfloat.Pow(t, exponent)
	expNegT := bigfloat.Exp(new(big.Float).SetPrec(prec).Neg(t))

	sqrtTwoPi := hpf.Tau.Sqrt().Big()

	result := new(big.Float).SetPrec(prec).Mul(sqrtTwoPi, tPow)
	result.Mul(result, expNegT)
	result.Mul(result, x)
	return result
}

// Factorial implements spec.md §4.12: n! for integers 0..20 via direct
// multiplication, Gamma(n+1) via Lanczos for everything else. Negative
// arguments are a domain error (spec.md does not define a reflection
// formula for BN's factorial, unlike the general Gamma function).
func Factorial(b BN) BN {
	if IsNaN(b) {
		return NaN
	}
	if IsNegative(b) {
		panic(fmt.Errorf("bn: Factorial: domain error: negative argument %s", b.String()))
	}
	if IsInfinity(b) {
		return PositiveInfinity
	}

	m := ToHPF(b)
	if m.IsInf() {
		return PositiveInfinity
	}

	if IsInteger(b) {
		if n := m.Int64(); n >= 0 && n <= 20 {
			return FromUint64(intFactorial(uint64(n)))
		}
	}

	g := gammaLanczos(m.Big())
	return FromHPF(hpf.FromBig(g))
}
