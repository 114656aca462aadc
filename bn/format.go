package bn

import (
	"fmt"
	"strings"

	"github.com/arbor-bn/bignum/hpf"
	"github.com/arbor-bn/bignum/stl"
)

// letterTag returns the debug-form regime tag String emits for letter 7 (the
// only letter spec.md §9/DESIGN.md's Open Question 3 sanctions a non-decimal
// rendering for) and Parse accepts on input for letters 5..7. Tags for 6 and
// 7 echo the htl function names (LetterF, LetterG) that compute their
// magnitudes.
func letterTag(L byte) byte {
	switch L {
	case 5:
		return 'e'
	case 6:
		return 'F'
	case 7:
		return 'G'
	default:
		return 0
	}
}

func tagLetter(c byte) byte {
	switch c {
	case 'e', 'E':
		return 5
	case 'F', 'f':
		return 6
	case 'G', 'g':
		return 7
	default:
		return 0
	}
}

// String implements spec.md §4.11: NaN/infinity/zero print their named
// literal; letters 1..5 reproduce the decoded magnitude in canonical
// decimal (all finite in HPF, per spec.md §4.11); letter 6 prints base-10
// scientific notation "<sig>e+<exp>"/"<sig>e-<exp>", computed from log10 of
// the magnitude rather than the magnitude itself, since the magnitude
// routinely overflows HPF's range while its own log10 does not (see
// DESIGN.md); letter 7 is the only regime printed as the raw "1/"? + tag +
// operand debug form, per DESIGN.md's Open Question 3.
func (b BN) String() string {
	switch {
	case IsNaN(b):
		return "NaN"
	case IsPositiveInfinity(b):
		return "Infinity"
	case IsNegativeInfinity(b):
		return "-Infinity"
	case IsZero(b):
		if b.sign() {
			return "-0"
		}
		return "0"
	}

	var sb strings.Builder
	if b.sign() {
		sb.WriteByte('-')
	}

	L := b.letter()
	switch {
	case L <= 5:
		sb.WriteString(decimalString(ToHPF(Abs(b))))
		return sb.String()
	case L == 6:
		sb.WriteString(letterSixScientific(b))
		return sb.String()
	}

	if b.reciprocalFlag() {
		sb.WriteString("1/")
	}
	sb.WriteByte(letterTag(L))
	sb.WriteString(b.operand().String())
	return sb.String()
}

// decimalString renders a decoded magnitude as plain decimal, snapping to
// the nearest integer within snapTolerance first: letters 1..4 decode from
// an operand whose fraction was truncated to 85 bits, which can leave a
// round value like 42 a hair below exact, and the snap keeps String's
// output clean the way codec.go's EncodeOperand does for the operand
// fraction field.
func decimalString(m hpf.HPF) string {
	if m.IsInf() || m.IsZero() {
		return m.String()
	}
	rounded := m.Round()
	if d, ok := m.Sub(rounded).Abs().Cmp(snapTolerance); ok && d < 0 {
		m = rounded
	}
	return m.String()
}

// letterSixScientific renders a letter-6 BN's unsigned magnitude in
// scientific notation. log10(magnitude) = SafeExp10(SafeExp10(o-2)) is
// always representable in HPF even when the magnitude itself is not (see
// DESIGN.md's letter-6 Log10 derivation), so the exponent and significand
// are derived from that log rather than from the magnitude directly.
func letterSixScientific(b BN) string {
	o := b.operand()
	logM := stl.SafeExp10(stl.SafeExp10(o.Sub(hpf.Two)))
	if b.reciprocalFlag() {
		logM = logM.Neg()
	}

	// Snap a log this close to an integer to that integer, the same
	// integer-snap idiom codec.go's EncodeOperand uses, so that round
	// numbers like 1e100 print as "1e+100" rather than
	// "9.999999999999998e+99".
	rounded := logM.Round()
	if d, ok := logM.Sub(rounded).Abs().Cmp(snapTolerance); ok && d < 0 {
		logM = rounded
	}

	exp := logM.Floor()
	frac := logM.Sub(exp)
	sig := stl.SafeExp10(frac)

	var sb strings.Builder
	sb.WriteString(sig.String())
	sb.WriteByte('e')
	expInt := exp.Int()
	if expInt.Sign() >= 0 {
		sb.WriteByte('+')
	}
	sb.WriteString(expInt.String())
	return sb.String()
}

// Format dispatches the fmt verbs %v and %s to String; every other verb is
// reported as an error marker, matching fmt's convention for unsupported
// verbs on a custom Stringer.
func (b BN) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprint(f, b.String())
	default:
		fmt.Fprintf(f, "%%!%c(bn.BN=%s)", verb, b.String())
	}
}

// Parse implements spec.md §4.11's inverse: it accepts the named literals
// "NaN", "Infinity"/"+Infinity", "-Infinity" (spec.md §9's open question,
// resolved in favor of accepting the named forms on input even though
// String never emits "+Infinity"), ordinary decimal literals, and the
// "1/"? tag operand form for letters 5..7.
func Parse(s string) (BN, error) {
	t := strings.TrimSpace(s)
	switch t {
	case "NaN", "nan", "NAN":
		return NaN, nil
	case "Infinity", "+Infinity", "Inf", "+Inf":
		return PositiveInfinity, nil
	case "-Infinity", "-Inf":
		return NegativeInfinity, nil
	}

	rest := t
	neg := false
	switch {
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	case strings.HasPrefix(rest, "-"):
		neg = true
		rest = rest[1:]
	}

	reciprocal := false
	if strings.HasPrefix(rest, "1/") {
		reciprocal = true
		rest = rest[2:]
	}

	if len(rest) > 0 {
		if L := tagLetter(rest[0]); L != 0 {
			o, err := hpf.Parse(rest[1:])
			if err != nil {
				return NaN, fmt.Errorf("bn: Parse: %w", err)
			}
			if c, ok := o.Cmp(hpf.Two); !ok || c < 0 {
				return NaN, fmt.Errorf("bn: Parse: operand %s out of range [2,10)", rest[1:])
			}
			if c, ok := o.Cmp(hpf.Ten); !ok || c >= 0 {
				return NaN, fmt.Errorf("bn: Parse: operand %s out of range [2,10)", rest[1:])
			}
			I, F := EncodeOperand(o)
			return pack(neg, reciprocal, L, I, F), nil
		}
	}

	m, err := hpf.Parse(rest)
	if err != nil {
		return NaN, fmt.Errorf("bn: Parse: %w", err)
	}
	if reciprocal {
		if m.IsZero() {
			return NaN, fmt.Errorf("bn: Parse: division by zero in reciprocal literal %q", s)
		}
		m = hpf.One.Quo(m)
	}
	if neg {
		m = m.Neg()
	}
	return FromHPF(m), nil
}

// TryParse mirrors Parse with the idiomatic Go (value, ok) shape instead of
// an error, for callers that want to treat malformed input as "absent"
// rather than handle an error value.
func TryParse(s string) (BN, bool) {
	b, err := Parse(s)
	if err != nil {
		return BN{}, false
	}
	return b, true
}
