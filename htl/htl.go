// Package htl implements the hyper-transcendentals layer: the base-10
// super-logarithm and the LetterF/LetterG/LetterJ family of auxiliary
// growth functions that define BN's letter-6 and letter-7 regimes.
package htl

import (
	"github.com/arbor-bn/bignum/hpf"
	"github.com/arbor-bn/bignum/stl"
)

func lt(a, b hpf.HPF) bool {
	c, ok := a.Cmp(b)
	return ok && c < 0
}

var (
	tenP10 = stl.SafeExp10(hpf.FromInt64(10))
	log2_5 = stl.SafeLog2(hpf.FromInt64(5))
)

// SuperLog10 is the piecewise base-10 super-logarithm of spec.md §4.3.
func SuperLog10(v hpf.HPF) hpf.HPF {
	if v.IsNaN() {
		return hpf.NaN()
	}
	switch {
	case lt(v, hpf.Zero):
		return stl.SafeExp10(v).Sub(hpf.Two)
	case lt(v, hpf.One):
		return v.Sub(hpf.One)
	case lt(v, hpf.Ten):
		return stl.SafeLog10(v)
	case lt(v, tenP10):
		return hpf.One.Add(stl.SafeLog10(stl.SafeLog10(v)))
	default:
		return hpf.Two.Add(stl.SafeLog10(stl.SafeLog10(stl.SafeLog10(v))))
	}
}

// LetterF is the auxiliary growth function of spec.md §4.3.
func LetterF(v hpf.HPF) hpf.HPF {
	if v.IsNaN() {
		return hpf.NaN()
	}
	negOne := hpf.One.Neg()
	two := hpf.Two
	switch {
	case lt(v, negOne):
		return stl.SafeLog10(v.Add(two))
	case lt(v, hpf.Zero):
		return v.Add(hpf.One)
	case lt(v, hpf.One):
		return stl.SafeExp10(v)
	case lt(v, two):
		return stl.SafeExp10(stl.SafeExp10(v.Sub(hpf.One)))
	default:
		return stl.SafeExp10(stl.SafeExp10(stl.SafeExp10(v.Sub(two))))
	}
}

// LetterG is the auxiliary growth function of spec.md §4.3, built from
// LetterF and SuperLog10.
func LetterG(v hpf.HPF) hpf.HPF {
	if v.IsNaN() {
		return hpf.NaN()
	}
	negOne := hpf.One.Neg()
	two := hpf.Two
	switch {
	case lt(v, negOne):
		return SuperLog10(v.Add(two))
	case lt(v, hpf.Zero):
		return v.Add(hpf.One)
	case lt(v, hpf.One):
		return LetterF(v)
	case lt(v, two):
		return LetterF(LetterF(v.Sub(hpf.One)))
	default:
		return LetterF(LetterF(LetterF(v.Sub(two))))
	}
}

// LetterJToLetterG renormalizes a letter-J operand into a letter-G-scale
// value. Approximate (not an exact inverse) for v >= 3, per spec.md §9.
func LetterJToLetterG(v hpf.HPF) hpf.HPF {
	if v.IsNaN() {
		return hpf.NaN()
	}
	three := hpf.FromInt64(3)
	switch {
	case lt(v, hpf.Two):
		return v
	case lt(v, three):
		// 2 * 5^(v-2) == 2 * SafeExp2((v-2) * log2(5))
		exponent := v.Sub(hpf.Two)
		return hpf.Two.Mul(stl.SafeExp2(exponent.Mul(log2_5)))
	default:
		return LetterG(stl.SafeExp10(stl.SafeExp10(v.Sub(three))))
	}
}

// LetterGToLetterJ is the approximate inverse of LetterJToLetterG.
func LetterGToLetterJ(v hpf.HPF) hpf.HPF {
	if v.IsNaN() {
		return hpf.NaN()
	}
	switch {
	case lt(v, hpf.Two):
		return v
	case lt(v, hpf.Ten):
		// 2 + log2(v/2) / log2(5)
		half := v.Quo(hpf.Two)
		return hpf.Two.Add(stl.SafeLog2(half).Quo(log2_5))
	default:
		return hpf.FromInt64(3).Add(stl.SafeLog10(stl.SafeLog10(v)))
	}
}
