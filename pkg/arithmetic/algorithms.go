package arithmetic

import (
	"errors"

	"github.com/AdamWhiteHat/GenericArithmetic/pkg/resolve"
)

// ErrEmptySequence is the panic value of GCDAll on an empty input.
var ErrEmptySequence = errors.New("gcd of an empty sequence")

// GCD returns the greatest common divisor of a and b.
//
// Complex- and decimal-shaped types use the subtractive Euclidean
// algorithm, since a meaningful remainder is not assumed to exist for
// them; everything else uses the absolute-value Euclidean algorithm.
func GCD[T any](a, b T) T {
	o := resolve.For[T]()
	if o.IsComplexShaped() || o.IsDecimalShaped() {
		return gcdSubtractive(a, b)
	}
	zero := Zero[T]()
	x, y := Abs(a), Abs(b)
	for NotEqual(x, zero) && NotEqual(y, zero) {
		if GreaterThan(x, y) {
			x = Modulo(x, y)
		} else {
			y = Modulo(y, x)
		}
	}
	return Max(x, y)
}

// gcdSubtractive repeatedly subtracts the smaller value from the larger
// until one reaches zero.
func gcdSubtractive[T any](a, b T) T {
	zero := Zero[T]()
	x, y := Abs(a), Abs(b)
	for NotEqual(x, zero) && NotEqual(y, zero) {
		if GreaterThan(x, y) {
			x = Subtract(x, y)
		} else {
			y = Subtract(y, x)
		}
	}
	return Max(x, y)
}

// GCDAll folds GCD over values pairwise, left to right. Panics with
// ErrEmptySequence when values is empty.
func GCDAll[T any](values ...T) T {
	if len(values) == 0 {
		panic(ErrEmptySequence)
	}
	result := values[0]
	for _, v := range values[1:] {
		result = GCD(result, v)
	}
	return result
}

// SquareRoot returns the square root of x: the platform square root for
// primitives (widening through float64 and narrowing back, with the
// expected precision loss), the native method for types that declare one,
// and the bisection fallback otherwise.
func SquareRoot[T any](x T) T { return must(resolve.For[T]().Sqrt())(x) }

// SquareRootBisection runs the integer-biased bisection search directly,
// regardless of whether T has a native square root. Zero maps to zero;
// perfect squares return their exact root; for continuous types the result
// is within one unit below the true root.
func SquareRootBisection[T any](x T) T { return must(resolve.For[T]().SqrtBisect(x)) }

// ModPow returns value^exponent mod modulus, through the native modular
// power when T declares one and the naive power-then-reduce fallback
// otherwise.
func ModPow[T any](value, exponent, modulus T) T {
	return must(resolve.For[T]().ModPow())(value, exponent, modulus)
}

// PowerInt returns v raised to a native integer exponent.
func PowerInt[T any](v T, exponent int) T {
	return must(resolve.For[T]().PowerInt())(v, exponent)
}

// Log returns the logarithm of v in the given base.
func Log[T any](v T, base float64) T {
	return must(resolve.For[T]().Log())(v, base)
}
