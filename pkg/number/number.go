// Package number wraps arithmetic values in a small fluent type so call
// sites can chain operations without repeating the type parameter.
package number

import (
	"github.com/AdamWhiteHat/GenericArithmetic/pkg/arithmetic"
)

// Number is an immutable arithmetic value of any supported numeric type.
type Number[T any] struct {
	value T
}

// New wraps v.
func New[T any](v T) Number[T] {
	return Number[T]{value: v}
}

// FromString parses text into a Number.
func FromString[T any](s string) (Number[T], error) {
	v, err := arithmetic.Parse[T](s)
	if err != nil {
		return Number[T]{}, err
	}
	return Number[T]{value: v}, nil
}

// Zero is the additive identity of T.
func Zero[T any]() Number[T] { return New(arithmetic.Zero[T]()) }

// One is the multiplicative identity of T.
func One[T any]() Number[T] { return New(arithmetic.One[T]()) }

// Value unwraps the underlying value.
func (n Number[T]) Value() T { return n.value }

func (n Number[T]) Add(o Number[T]) Number[T] {
	return New(arithmetic.Add(n.value, o.value))
}

func (n Number[T]) Subtract(o Number[T]) Number[T] {
	return New(arithmetic.Subtract(n.value, o.value))
}

func (n Number[T]) Multiply(o Number[T]) Number[T] {
	return New(arithmetic.Multiply(n.value, o.value))
}

func (n Number[T]) Divide(o Number[T]) Number[T] {
	return New(arithmetic.Divide(n.value, o.value))
}

func (n Number[T]) Modulo(o Number[T]) Number[T] {
	return New(arithmetic.Modulo(n.value, o.value))
}

func (n Number[T]) Power(o Number[T]) Number[T] {
	return New(arithmetic.Power(n.value, o.value))
}

func (n Number[T]) Negate() Number[T] {
	return New(arithmetic.Negate(n.value))
}

func (n Number[T]) Abs() Number[T] {
	return New(arithmetic.Abs(n.value))
}

func (n Number[T]) SquareRoot() Number[T] {
	return New(arithmetic.SquareRoot(n.value))
}

func (n Number[T]) Increment() Number[T] {
	return New(arithmetic.Increment(n.value))
}

func (n Number[T]) Decrement() Number[T] {
	return New(arithmetic.Decrement(n.value))
}

func (n Number[T]) Equal(o Number[T]) bool {
	return arithmetic.Equal(n.value, o.value)
}

func (n Number[T]) LessThan(o Number[T]) bool {
	return arithmetic.LessThan(n.value, o.value)
}

func (n Number[T]) GreaterThan(o Number[T]) bool {
	return arithmetic.GreaterThan(n.value, o.value)
}

// Compare three-way compares n against o.
func (n Number[T]) Compare(o Number[T]) int {
	switch {
	case arithmetic.LessThan(n.value, o.value):
		return -1
	case arithmetic.GreaterThan(n.value, o.value):
		return 1
	default:
		return 0
	}
}

// Sign reports -1, 0 or 1 by the sign of the value.
func (n Number[T]) Sign() int {
	return arithmetic.Sign(n.value)
}

// String renders the value for the default locale.
func (n Number[T]) String() string {
	return arithmetic.ToString(n.value)
}
