package sf

import (
	"strconv"
	"strings"
)

// MaxDecimalIntegerPart bounds the integer portion of an sf-decimal per
// RFC 8941 §3.3.2: at most 12 decimal digits.
const MaxDecimalIntegerPart = 999_999_999_999

// Decimal is a finite signed sf-decimal bare value. It stores its
// fractional digits as an exact ASCII string rather than a float64 so that
// banker's rounding to 3 fractional digits (performed only at Encode time,
// per RFC 8941 §3.3.2) never suffers binary floating-point drift.
type Decimal struct {
	neg     bool
	intPart uint64
	frac    string // pure digit string, any length >= 0; "" means ".0"
}

// NewDecimal constructs a Decimal from its sign, integer magnitude, and
// fractional digit string (e.g. intPart=1, frac="5" for 1.5, or
// frac="0005" to exercise rounding down to the 3rd digit). frac must
// contain only ASCII digits.
func NewDecimal(negative bool, intPart uint64, frac string) (Decimal, error) {
	if intPart > MaxDecimalIntegerPart {
		return Decimal{}, newSyntaxError(0, "decimal integer part out of range: "+strconv.FormatUint(intPart, 10))
	}
	for i := 0; i < len(frac); i++ {
		if frac[i] < '0' || frac[i] > '9' {
			return Decimal{}, newSyntaxError(0, "decimal fractional part is not all digits: "+frac)
		}
	}
	return Decimal{neg: negative, intPart: intPart, frac: frac}, nil
}

// NewDecimalFromFloat64 constructs a Decimal from a float64 using Go's
// shortest round-trip decimal representation (strconv.FormatFloat with
// precision -1), so writing NewDecimalFromFloat64(1.0005) carries the
// digits a reader would expect rather than float64's binary noise.
func NewDecimalFromFloat64(f float64) (Decimal, error) {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	intStr, fracStr, _ := strings.Cut(s, ".")
	intPart, err := strconv.ParseUint(intStr, 10, 64)
	if err != nil {
		return Decimal{}, newSyntaxError(0, "decimal out of range: "+s)
	}
	return NewDecimal(neg, intPart, fracStr)
}

// Encode serializes the decimal, rounding to 3 fractional digits using
// round-half-to-even, then trimming trailing zeros down to a single
// fractional digit (at least one is always emitted).
func (d Decimal) Encode() string {
	rounded, carry := roundFracDigits(d.frac, 3)
	intPart := d.intPart + uint64(carry)
	trimmed := trimTrailingZeros(rounded)

	var sb strings.Builder
	if d.neg && (intPart != 0 || hasNonZero(trimmed)) {
		sb.WriteByte('-')
	}
	sb.WriteString(strconv.FormatUint(intPart, 10))
	sb.WriteByte('.')
	sb.WriteString(trimmed)
	return sb.String()
}

func (Decimal) isBareItem() {}

// roundFracDigits rounds a fractional digit string to n digits using
// round-half-to-even, returning the n-digit result and a carry (0 or 1)
// into the integer part when rounding rolls over (e.g. "999" -> "000", carry 1).
func roundFracDigits(frac string, n int) (string, int) {
	if len(frac) <= n {
		return frac + strings.Repeat("0", n-len(frac)), 0
	}
	keep := frac[:n]
	rest := frac[n:]
	half := "5" + strings.Repeat("0", len(rest)-1)

	roundUp := false
	switch strings.Compare(rest, half) {
	case 1:
		roundUp = true
	case 0:
		roundUp = (keep[n-1]-'0')%2 != 0
	}
	if !roundUp {
		return keep, 0
	}
	return incrementDigitString(keep)
}

func incrementDigitString(s string) (string, int) {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != '9' {
			b[i]++
			return string(b), 0
		}
		b[i] = '0'
	}
	return string(b), 1
}

func trimTrailingZeros(digits string) string {
	end := len(digits)
	for end > 1 && digits[end-1] == '0' {
		end--
	}
	return digits[:end]
}

func hasNonZero(digits string) bool {
	for i := 0; i < len(digits); i++ {
		if digits[i] != '0' {
			return true
		}
	}
	return false
}
