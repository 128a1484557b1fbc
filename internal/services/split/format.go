package split

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ratHundred = big.NewRat(100, 1)
	ratHalf    = big.NewRat(1, 2)
)

// FormatFixed renders v with exactly two fraction digits. The exact binary
// value of v is rounded half away from zero, so 0.125 gives "0.13" and 1.005
// (stored just below 1.005) gives "1.00". Non-finite values render as marker,
// or as NaN, Infinity and -Infinity when marker is empty.
func FormatFixed(v float64, marker string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		if marker != "" {
			return marker
		}
		return nativeString(v)
	}

	r := new(big.Rat).SetFloat64(math.Abs(v))
	r.Mul(r, ratHundred)
	r.Add(r, ratHalf)
	cents := new(big.Int).Quo(r.Num(), r.Denom())

	s := decimal.NewFromBigInt(cents, -2).StringFixed(2)
	if v < 0 {
		s = "-" + s
	}
	return s
}

// IsIndeterminate reports whether v renders as the indeterminate marker.
func IsIndeterminate(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

func nativeString(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return "NaN"
}

// decimalAmount matches the decimal literals the amount field accepts.
var decimalAmount = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseAmount reads the amount field the way a browser coerces text to a
// number. Surrounding space is ignored and empty text is zero. Decimal
// literals with optional exponent, unsigned 0x/0o/0b integers and the exact
// words Infinity, +Infinity and -Infinity are numbers; anything else
// (including "inf", "NaN", "1_000" and hex floats) is NaN.
func ParseAmount(text string) float64 {
	s := strings.TrimSpace(text)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if v, ok := parsePrefixedInt(s); ok {
		return v
	}
	if !decimalAmount.MatchString(s) {
		return math.NaN()
	}
	// Overflow yields ±Inf and underflow ±0, both wanted.
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

// parsePrefixedInt handles 0x, 0o and 0b integers. ok is false when s has no
// such prefix; a prefixed s with bad digits is NaN.
func parsePrefixedInt(s string) (float64, bool) {
	if len(s) < 2 || s[0] != '0' {
		return 0, false
	}
	var base int
	switch s[1] {
	case 'x', 'X':
		base = 16
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	default:
		return 0, false
	}
	digits := s[2:]
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return math.NaN(), true
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN(), true
	}
	v, _ := new(big.Float).SetInt(n).Float64()
	return v, true
}
