// Package stl implements the safe transcendentals layer: base-2/10/e
// log/exp and a generic pow, all over hpf.HPF, with explicit domain checks
// and Newton-iteration / series evaluation tuned to HPF's precision.
package stl

import (
	"fmt"

	"github.com/arbor-bn/bignum/hpf"
)

// DomainError is raised (via panic) for inputs outside a function's domain,
// e.g. the logarithm of a non-positive number.
type DomainError struct {
	Func string
	Arg  string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("stl: %s: argument out of domain (%s)", e.Func, e.Arg)
}

func domainPanic(fn, arg string) {
	panic(&DomainError{Func: fn, Arg: arg})
}

// Precomputed from ~100-digit literals, rounded to HPF's 113-bit precision.
var (
	ln2     = hpf.Parse40("0.69314718055994530941723212145817656807550013436025525412068000949339362196969471560586332699641868754")
	log2_10 = hpf.Parse40("3.32192809488736234787031942948939017586483139302458061205475639581593477660862521585013974335937015379")
	log2_e  = hpf.Parse40("1.44269504088896340735992468100189213742664595415298593413544940693110921918118507988251880151705144652")

	epsilon   = hpf.One.ScaleB(-113)
	epsilon40 = hpf.One.ScaleB(-120)
	maxIter   = 10
	maxTerms  = 120
)

// SafeLog2 returns log base 2 of x. Panics with *DomainError if x <= 0.
func SafeLog2(x hpf.HPF) hpf.HPF {
	if x.IsNaN() {
		return hpf.NaN()
	}
	if x.IsNegative() || x.IsZero() {
		domainPanic("SafeLog2", "x <= 0")
	}
	if x.IsInf() {
		return hpf.PositiveInfinity
	}

	m, e := x.Frexp() // x = m * 2^e, m in [0.5, 1)
	eps := m.Sub(hpf.One)

	sum := hpf.Zero
	negEps := eps.Neg()
	pow := hpf.One // (-eps)^(k-1), k=1 term starts at (-eps)^0 = 1
	for k := 1; k <= maxTerms; k++ {
		t := pow.Mul(eps).Quo(hpf.FromInt64(int64(k)))
		sum = sum.Add(t)
		if c, ok := t.Abs().Cmp(epsilon40); ok && c < 0 {
			break
		}
		pow = pow.Mul(negEps)
	}

	log2m := sum.Quo(ln2)
	return hpf.FromInt64(int64(e)).Add(log2m)
}

// SafeLog10 returns log base 10 of x.
func SafeLog10(x hpf.HPF) hpf.HPF {
	if x.IsNaN() {
		return hpf.NaN()
	}
	return SafeLog2(x).Quo(log2_10)
}

// SafeLog returns the natural log of x.
func SafeLog(x hpf.HPF) hpf.HPF {
	if x.IsNaN() {
		return hpf.NaN()
	}
	return SafeLog2(x).Quo(log2_e)
}

// SafeExp2 returns 2^y.
func SafeExp2(y hpf.HPF) hpf.HPF {
	if y.IsNaN() {
		return hpf.NaN()
	}
	if y.IsInf() {
		if y.IsPositive() {
			return hpf.PositiveInfinity
		}
		return hpf.Zero
	}

	n := int(y.Floor().Int64())
	x := hpf.One.ScaleB(n)

	for i := 0; i < maxIter; i++ {
		logx := SafeLog2(x)
		delta := y.Sub(logx)
		prod := x.Mul(ln2)
		next := prod.FusedMultiplyAdd(delta, x)
		diff := next.Sub(x).Abs()
		x = next
		if c, ok := diff.Cmp(epsilon); ok && c < 0 {
			break
		}
	}
	return x
}

// SafeExp10 returns 10^y.
func SafeExp10(y hpf.HPF) hpf.HPF {
	if y.IsNaN() {
		return hpf.NaN()
	}
	return SafeExp2(y.Mul(log2_10))
}

// SafeExp returns e^y.
func SafeExp(y hpf.HPF) hpf.HPF {
	if y.IsNaN() {
		return hpf.NaN()
	}
	return SafeExp2(y.Mul(log2_e))
}

// SafePow returns x^y.
func SafePow(x, y hpf.HPF) hpf.HPF {
	if x.IsNaN() || y.IsNaN() {
		return hpf.NaN()
	}
	return SafeExp2(y.Mul(SafeLog2(x)))
}
