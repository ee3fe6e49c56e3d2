// Package decimal reads the plain decimal numbers used for coordinates,
// distances and angles. It accepts what strconv.ParseFloat accepts for base
// 10 (sign, digits, point, exponent) and rejects hexadecimal notation and
// non-finite values.
package decimal

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrSyntax indicates text that is not a decimal number.
	ErrSyntax = errors.New("decimal: invalid syntax")

	// ErrNotFinite indicates NaN or an infinity.
	ErrNotFinite = errors.New("decimal: value is not finite")
)

// Parse converts s into a finite float64. s must not carry surrounding
// whitespace; callers trim or strip it as their grammar requires.
func Parse(s string) (float64, error) {
	if s == "" || strings.ContainsAny(s, "xX") {
		return 0, ErrSyntax
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrSyntax
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

// ParseOptional is Parse with blank text (after trimming) read as 0.
func ParseOptional(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return Parse(s)
}
