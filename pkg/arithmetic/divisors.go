package arithmetic

import (
	"reflect"

	"github.com/AdamWhiteHat/GenericArithmetic/pkg/resolve"
)

// GetAllDivisors enumerates the divisors of v in two passes: ascending
// small divisors found by trial division below the square root, then the
// descending complementary divisors from the square root down to 1. The
// insertion order of those passes is the result order; it is not fully
// numerically sorted, and callers depend on it.
//
// A negative v contributes a leading -1 and is enumerated by absolute
// value. Floating-point v is narrowed to a native integer, enumerated with
// integer arithmetic and converted back; range and precision loss is
// accepted by design.
func GetAllDivisors[T any](v T) []T {
	o := resolve.For[T]()
	if o.IsFloatKind() {
		t := reflect.TypeOf((*T)(nil)).Elem()
		narrowed := int64(reflect.ValueOf(v).Float())
		out := make([]T, 0)
		for _, d := range GetAllDivisors(narrowed) {
			out = append(out, reflect.ValueOf(d).Convert(t).Interface().(T))
		}
		return out
	}

	zero, one := Zero[T](), One[T]()
	if Equal(Abs(v), one) {
		return []T{v}
	}
	var result []T
	n := v
	if LessThan(v, zero) {
		result = append(result, MinusOne[T]())
		n = Abs(v)
	}
	for i := one; LessThan(Multiply(i, i), n); i = Increment(i) {
		if Equal(Modulo(n, i), zero) {
			result = append(result, i)
		}
	}
	for i := SquareRootBisection(n); GreaterThanOrEqual(i, one); i = Decrement(i) {
		if Equal(Modulo(n, i), zero) {
			result = append(result, Divide(n, i))
		}
	}
	return result
}
