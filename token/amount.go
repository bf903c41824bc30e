package token

import (
	"strconv"
	"strings"

	"github.com/juju/errors"
)

const zeros = "0000000000000000000"

// MaxDecimals is the largest supported decimal point position of a fungible
// token amount
const MaxDecimals = len(zeros)

// ErrInvalidAmount is returned when a decimal amount string cannot be parsed
var ErrInvalidAmount = errors.New("invalid amount")

// FormatOptions control the rendering of a fungible token amount
type FormatOptions struct {
	// MinFractionalDigits keeps at least this many fractional digits instead
	// of trimming all trailing zeros
	MinFractionalDigits int
	// Diff prefixes the amount with '+' for difference displays
	Diff bool
	// Width left pads the number with spaces to this width
	Width int
	// AppendRawUnits appends the undivided integer amount in parentheses
	AppendRawUnits bool
}

// FormatAmount renders a raw integer amount as a decimal string with the
// decimal point shifted left by decimals digits. String arithmetic only, no
// floating point is involved
func FormatAmount(amount uint64, decimals int, opts *FormatOptions) string {
	if opts == nil {
		opts = &FormatOptions{}
	}
	if decimals < 0 {
		decimals = 0
	}
	if decimals > MaxDecimals {
		decimals = MaxDecimals
	}

	raw := strconv.FormatUint(amount, 10)
	n := raw
	if len(n) <= decimals {
		n = zeros[:decimals-len(n)+1] + n
	}
	i := len(n) - decimals
	frac := strings.TrimRight(n[i:], "0")
	for len(frac) < opts.MinFractionalDigits && len(frac) < decimals {
		frac += "0"
	}
	s := n[:i]
	if len(frac) > 0 {
		s += "." + frac
	}
	if opts.Diff {
		s = "+" + s
	}
	for len(s) < opts.Width {
		s = " " + s
	}
	if opts.AppendRawUnits {
		s += " (" + raw + ")"
	}
	return s
}

// ParseAmount reconstructs the raw integer amount from a decimal string
// rendered at the given decimal precision. Fractional digits beyond decimals
// are truncated, missing ones are zero padded, so ParseAmount is an exact
// inverse of FormatAmount for every representable amount
func ParseAmount(s string, decimals int) (uint64, error) {
	if decimals < 0 {
		decimals = 0
	}
	if decimals > MaxDecimals {
		decimals = MaxDecimals
	}

	s = strings.TrimSpace(s)
	// drop a raw units annotation
	if i := strings.IndexByte(s, '('); i >= 0 && strings.HasSuffix(s, ")") {
		s = strings.TrimSpace(s[:i])
	}
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return 0, errors.Annotate(ErrInvalidAmount, "empty string")
	}
	if s[0] == '-' {
		return 0, errors.Annotate(ErrInvalidAmount, "negative amount")
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i+1:]
		if strings.IndexByte(fracPart, '.') >= 0 {
			return 0, errors.Annotate(ErrInvalidAmount, "multiple decimal points")
		}
	}
	if intPart == "" && fracPart == "" {
		return 0, errors.Annotate(ErrInvalidAmount, "no digits")
	}
	for _, part := range []string{intPart, fracPart} {
		for _, c := range part {
			if c < '0' || c > '9' {
				return 0, errors.Annotatef(ErrInvalidAmount, "character %q", c)
			}
		}
	}

	if len(fracPart) > decimals {
		fracPart = fracPart[:decimals]
	}
	fracPart += zeros[:decimals-len(fracPart)]

	digits := strings.TrimLeft(intPart+fracPart, "0")
	if digits == "" {
		return 0, nil
	}
	amount, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, errors.Annotate(ErrInvalidAmount, "out of range")
	}
	if amount > MaxAmount {
		return 0, errors.Annotatef(ErrInvalidAmount, "%d exceeds maximum token amount", amount)
	}
	return amount, nil
}
