// Package normalize converts loosely-typed client input into canonical,
// store-safe values. Clients submit prices as numbers or strings in a
// handful of locale formats, and list fields as arrays, JSON strings or
// comma-separated text; everything here degrades gracefully instead of
// crashing the write path.
package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidPrice is returned when a price cannot be parsed as a number
// after cleaning.
var ErrInvalidPrice = errors.New("invalid price")

// Price is the result of normalizing a raw price value. Present is false
// when the client omitted the field entirely (nil, or a string that is
// empty after trimming), which callers treat as "no update" rather than
// an error.
type Price struct {
	Amount  float64
	Present bool
}

// ParsePrice cleans and parses a client-submitted price. Accepted inputs
// include plain numbers and strings like "$1,234.50", "100,00" or "  42 ".
//
// When both '.' and ',' occur, the rightmost separator is the decimal
// point and every other separator is grouping noise. A lone ',' is a
// decimal point; repeated commas are grouping. Repeated dots keep only
// the first. The result is rounded to two fractional digits; negative
// amounts pass through and are rejected later by the store-level gate.
func ParsePrice(raw any) (Price, error) {
	s, ok := rawAmountString(raw)
	if !ok {
		return Price{}, nil
	}

	cleaned := cleanAmount(s)
	if _, err := strconv.ParseFloat(cleaned, 64); err != nil {
		return Price{}, ErrInvalidPrice
	}

	return Price{Amount: roundCents(cleaned), Present: true}, nil
}

// rawAmountString renders the raw value as a trimmed string, reporting
// false for absent input. Numbers use shortest round-trip formatting so
// that 19.995 the float cleans and rounds exactly like "19.995" the
// string.
func rawAmountString(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		s := strings.TrimSpace(v)
		return s, s != ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case json.Number:
		return v.String(), true
	default:
		s := strings.TrimSpace(fmt.Sprint(v))
		return s, s != ""
	}
}

// cleanAmount strips currency symbols and resolves the decimal-vs-grouping
// separator ambiguity, returning a plain decimal string.
func cleanAmount(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-':
			b.WriteRune(r)
		}
	}
	c := b.String()

	lastDot := strings.LastIndexByte(c, '.')
	lastComma := strings.LastIndexByte(c, ',')

	switch {
	case lastDot >= 0 && lastComma >= 0:
		// Rightmost separator of either kind wins as the decimal point.
		return withDecimalAt(c, max(lastDot, lastComma))
	case lastComma >= 0:
		if strings.Count(c, ",") == 1 {
			return strings.Replace(c, ",", ".", 1)
		}
		return strings.ReplaceAll(c, ",", "")
	case lastDot >= 0:
		// Keep the first dot, treat the rest as grouping noise.
		first := strings.IndexByte(c, '.')
		return c[:first+1] + strings.ReplaceAll(c[first+1:], ".", "")
	default:
		return c
	}
}

// withDecimalAt rebuilds c keeping digits and signs, dropping every
// separator except the one at index idx, which becomes a dot.
func withDecimalAt(c string, idx int) string {
	var b strings.Builder
	for i, r := range c {
		switch {
		case i == idx:
			b.WriteByte('.')
		case r == '.' || r == ',':
			// grouping separator
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// roundCents rounds a plain decimal string to two fractional digits,
// half away from zero. Rounding happens on the decimal digits rather
// than on a float so that "19.995" lands on 20.00; the float closest to
// 19.995 is slightly below it and multiply-then-round would give 19.99.
// s has already been validated by strconv.ParseFloat.
func roundCents(s string) float64 {
	neg := strings.HasPrefix(s, "-")
	mag := strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(mag, ".")
	for len(fracPart) < 3 {
		fracPart += "0"
	}

	cents, err := strconv.ParseInt(intPart+fracPart[:2], 10, 64)
	if err != nil {
		// Out of int64 range; fall back to float rounding.
		v, _ := strconv.ParseFloat(s, 64)
		return math.Round(v*100) / 100
	}
	if fracPart[2] >= '5' {
		cents++
	}

	amount := float64(cents) / 100
	if neg {
		amount = -amount
	}
	return amount
}
