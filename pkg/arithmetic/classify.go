package arithmetic

import (
	"github.com/AdamWhiteHat/GenericArithmetic/pkg/cplx"
	"github.com/AdamWhiteHat/GenericArithmetic/pkg/resolve"
)

// IsWholeNumber reports whether v carries no fractional part.
//
// Integer kinds and the big-integer shape are whole unconditionally.
// Floating and rational values check that v mod 1 is zero. The concrete
// complex kinds are whole when the imaginary part is exactly zero and the
// real part has no fractional remainder. Every other custom shape answers
// false; generalizing beyond these shapes is deliberately unsupported.
func IsWholeNumber[T any](v T) bool {
	switch c := any(v).(type) {
	case complex128:
		return cplx.IsWhole(c)
	case complex64:
		return cplx.IsWhole(complex128(c))
	}
	o := resolve.For[T]()
	switch {
	case o.IsIntegerKind(), o.IsBigIntegerShaped():
		return true
	case o.IsFloatKind(), o.IsBigRationalShaped():
		return Equal(Modulo(v, One[T]()), Zero[T]())
	default:
		return false
	}
}

// IsFractionalValue reports whether v is a primitive arithmetic value with
// a nonzero fractional part.
func IsFractionalValue[T any](v T) bool {
	return resolve.For[T]().IsPrimitive() && !IsWholeNumber(v)
}

// IsIntegerType reports whether T behaves like an integer type. Primitive
// kinds classify directly; custom types answer through their
// IsIntegerShaped marker method, falling back to display-name hints.
func IsIntegerType[T any]() bool {
	return resolve.For[T]().IsIntegerShaped()
}

// IsFloatingPointType reports whether T is a built-in floating-point kind.
func IsFloatingPointType[T any]() bool {
	return resolve.For[T]().IsFloatKind()
}
