// Package cplx supplies the comparison and parsing support complex-shaped
// values need: complex numbers have no total order, so relational operators
// are answered through a signed-magnitude surrogate instead.
package cplx

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

// ArgumentError reports null or blank textual input.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string { return "argument error: " + e.Message }

// FormatError reports malformed complex literal text.
type FormatError struct {
	Input   string
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format error: %s: %q", e.Message, e.Input)
}

// SignedMagnitude is the surrogate ordering key: the value's magnitude,
// negated when the real part is negative.
func SignedMagnitude(c complex128) float64 {
	m := cmplx.Abs(c)
	if real(c) < 0 {
		return -m
	}
	return m
}

// Compare orders two complex values by their signed magnitudes.
// Returns -1, 0 or 1. Equality of signed magnitudes does not imply
// structural equality; use == for that.
func Compare(a, b complex128) int {
	sa, sb := SignedMagnitude(a), SignedMagnitude(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

// IsWhole reports whether c has a zero imaginary part and a real part with
// no fractional remainder.
func IsWhole(c complex128) bool {
	return imag(c) == 0 && real(c) == math.Trunc(real(c))
}

// Parse reads the literal form "(real, imaginary)" or a bare real number,
// in which case the imaginary part defaults to 0.
func Parse(s string) (complex128, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, &ArgumentError{Message: "complex literal is empty"}
	}
	if strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")") {
		trimmed = trimmed[1 : len(trimmed)-1]
	}
	parts := strings.Split(trimmed, ",")
	if len(parts) > 2 {
		return 0, &FormatError{Input: s, Message: "complex literal has more than two components"}
	}
	re, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, &FormatError{Input: s, Message: "real component is not numeric"}
	}
	im := 0.0
	if len(parts) == 2 {
		im, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return 0, &FormatError{Input: s, Message: "imaginary component is not numeric"}
		}
	}
	return complex(re, im), nil
}

// Format renders c in the canonical "(re, im)" literal form.
func Format(c complex128) string {
	re := strconv.FormatFloat(real(c), 'g', -1, 64)
	im := strconv.FormatFloat(imag(c), 'g', -1, 64)
	return "(" + re + ", " + im + ")"
}
