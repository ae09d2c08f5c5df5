// Package arithmetic is the generic arithmetic facade: stateless algorithms
// over any numeric type T, built purely on the bindings the resolve engine
// discovers. Nothing here performs discovery or caches independently; every
// call resolves through the engine, which is the single source of truth for
// a type's capabilities.
//
// Resolution failures are fatal for a type (retrying cannot change the
// outcome), so facade functions panic with the engine's typed error —
// *resolve.UnsupportedOperationError or *resolve.NotImplementedError —
// when T lacks a required capability. Use the engine's resolve methods
// directly to pre-flight a type without panicking.
package arithmetic

import (
	"github.com/AdamWhiteHat/GenericArithmetic/pkg/resolve"
)

func must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}

func binary[T any](tag string) resolve.BinaryOp[T] {
	return must(resolve.For[T]().Binary(tag))
}

func compare[T any](tag string) resolve.CompareOp[T] {
	return must(resolve.For[T]().Compare(tag))
}

// Add returns a + b.
func Add[T any](a, b T) T { return binary[T](resolve.TagAdd)(a, b) }

// Subtract returns a - b.
func Subtract[T any](a, b T) T { return binary[T](resolve.TagSub)(a, b) }

// Multiply returns a * b.
func Multiply[T any](a, b T) T { return binary[T](resolve.TagMul)(a, b) }

// Divide returns a / b.
func Divide[T any](a, b T) T { return binary[T](resolve.TagDiv)(a, b) }

// Modulo returns the remainder of a / b.
func Modulo[T any](a, b T) T { return binary[T](resolve.TagMod)(a, b) }

// Power returns a raised to b.
func Power[T any](a, b T) T { return binary[T](resolve.TagPow)(a, b) }

// Negate returns -v.
func Negate[T any](v T) T { return must(resolve.For[T]().Negate())(v) }

// Increment returns v + 1.
func Increment[T any](v T) T { return Add(v, One[T]()) }

// Decrement returns v - 1.
func Decrement[T any](v T) T { return Subtract(v, One[T]()) }

// Abs returns the absolute value of v.
func Abs[T any](v T) T { return must(resolve.For[T]().Abs())(v) }

// Truncate drops the fractional part of v. Custom types without a Truncate
// method return v unchanged; see resolve.Ops.Truncate.
func Truncate[T any](v T) T { return must(resolve.For[T]().Truncate())(v) }

// Ordering comparisons for complex-shaped T are answered by the surrogate
// signed-magnitude comparator, since complex values have no total order.

// GreaterThan reports a > b.
func GreaterThan[T any](a, b T) bool { return compare[T](resolve.TagGT)(a, b) }

// LessThan reports a < b.
func LessThan[T any](a, b T) bool { return compare[T](resolve.TagLT)(a, b) }

// GreaterThanOrEqual reports a >= b.
func GreaterThanOrEqual[T any](a, b T) bool { return compare[T](resolve.TagGE)(a, b) }

// LessThanOrEqual reports a <= b.
func LessThanOrEqual[T any](a, b T) bool { return compare[T](resolve.TagLE)(a, b) }

// Equal reports a == b. Equality is structural even for complex-shaped T.
func Equal[T any](a, b T) bool { return compare[T](resolve.TagEQ)(a, b) }

// NotEqual reports a != b.
func NotEqual[T any](a, b T) bool { return compare[T](resolve.TagNE)(a, b) }

// Max returns l if l >= r, else r.
func Max[T any](l, r T) T {
	if GreaterThanOrEqual(l, r) {
		return l
	}
	return r
}

// Min returns l if l <= r, else r.
func Min[T any](l, r T) T {
	if LessThanOrEqual(l, r) {
		return l
	}
	return r
}

// Sign returns 1 when v > 0, -1 when v < 0 and 0 otherwise. Defined purely
// by comparison against Zero, so it works for types where the engine's
// native sign resolution is not implemented.
func Sign[T any](v T) int {
	zero := Zero[T]()
	switch {
	case GreaterThan(v, zero):
		return 1
	case LessThan(v, zero):
		return -1
	default:
		return 0
	}
}

// DivRem returns the quotient and remainder of dividend / divisor. The two
// results come from two independent operations; no combined primitive is
// assumed to exist.
func DivRem[T any](dividend, divisor T) (quotient, remainder T) {
	remainder = Modulo(dividend, divisor)
	quotient = Divide(dividend, divisor)
	return quotient, remainder
}

// Parse reads v from its decimal (or complex literal) text form.
func Parse[T any](s string) (T, error) {
	parse, err := resolve.For[T]().Parse()
	if err != nil {
		var zero T
		return zero, err
	}
	return parse(s)
}

// MinusOne returns the constant -1 for T.
func MinusOne[T any]() T { return must(resolve.For[T]().MinusOne()) }

// Zero returns the constant 0 for T.
func Zero[T any]() T { return must(resolve.For[T]().Zero()) }

// One returns the constant 1 for T.
func One[T any]() T { return must(resolve.For[T]().One()) }

// Two returns the constant 2 for T.
func Two[T any]() T { return must(resolve.For[T]().Two()) }
