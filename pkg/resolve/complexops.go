package resolve

import (
	"math/cmplx"
	"reflect"

	"github.com/AdamWhiteHat/GenericArithmetic/internal/numkind"
	"github.com/AdamWhiteHat/GenericArithmetic/pkg/cplx"
)

// Bindings for the built-in complex kinds, and surrogate ordering for
// custom complex-shaped types. Values round-trip through complex128; for
// complex64 that is the usual widening conversion.

func complexBinary[T any](info numkind.Info, tag string) (BinaryOp[T], error) {
	t := info.Type
	var f func(x, y complex128) complex128
	switch tag {
	case TagAdd:
		f = func(x, y complex128) complex128 { return x + y }
	case TagSub:
		f = func(x, y complex128) complex128 { return x - y }
	case TagMul:
		f = func(x, y complex128) complex128 { return x * y }
	case TagDiv:
		f = func(x, y complex128) complex128 { return x / y }
	case TagPow:
		f = cmplx.Pow
	default:
		// No remainder exists for complex values.
		return nil, unsupported(info.Name, tag)
	}
	return func(a, b T) T {
		return toT[T](t, reflect.ValueOf(f(reflect.ValueOf(a).Complex(), reflect.ValueOf(b).Complex())))
	}, nil
}

// complexCompare binds surrogate ordering for the relational tags and
// structural equality for the equality tags.
func complexCompare[T any](info numkind.Info, tag string) (CompareOp[T], error) {
	switch tag {
	case TagEQ:
		return func(a, b T) bool {
			return reflect.ValueOf(a).Complex() == reflect.ValueOf(b).Complex()
		}, nil
	case TagNE:
		return func(a, b T) bool {
			return reflect.ValueOf(a).Complex() != reflect.ValueOf(b).Complex()
		}, nil
	}
	pred, err := comparePredicate(info, tag)
	if err != nil {
		return nil, err
	}
	return func(a, b T) bool {
		return pred(cplx.Compare(reflect.ValueOf(a).Complex(), reflect.ValueOf(b).Complex()))
	}, nil
}

// customComplexCompare handles custom types exposing Real/Imag accessors:
// ordering goes through the surrogate comparator on the accessor values,
// equality stays structural.
func customComplexCompare[T any](info numkind.Info, tag string) (CompareOp[T], error) {
	switch tag {
	case TagEQ:
		return func(a, b T) bool { return reflect.DeepEqual(a, b) }, nil
	case TagNE:
		return func(a, b T) bool { return !reflect.DeepEqual(a, b) }, nil
	}
	pred, err := comparePredicate(info, tag)
	if err != nil {
		return nil, err
	}
	toComplex, err := complexAccessor[T](info)
	if err != nil {
		return nil, err
	}
	return func(a, b T) bool {
		return pred(cplx.Compare(toComplex(a), toComplex(b)))
	}, nil
}

// complexAccessor builds the Real/Imag extraction for a custom
// complex-shaped type.
func complexAccessor[T any](info numkind.Info) (func(T) complex128, error) {
	realFn, err := findMethod(info, "Real")
	if err != nil {
		return nil, err
	}
	imagFn, err := findMethod(info, "Imag")
	if err != nil {
		return nil, err
	}
	return func(v T) complex128 {
		rv := reflect.ValueOf(v)
		re := realFn.call(rv, nil)[0].Float()
		im := imagFn.call(rv, nil)[0].Float()
		return complex(re, im)
	}, nil
}

func complexNegate[T any](info numkind.Info) UnaryOp[T] {
	t := info.Type
	return func(v T) T {
		return toT[T](t, reflect.ValueOf(-reflect.ValueOf(v).Complex()))
	}
}

// complexParse accepts "(re, im)" or a bare real number.
func complexParse[T any](info numkind.Info) ParseOp[T] {
	t := info.Type
	return func(s string) (T, error) {
		var zero T
		c, err := cplx.Parse(s)
		if err != nil {
			return zero, err
		}
		return toT[T](t, reflect.ValueOf(c)), nil
	}
}

func complexSqrt[T any](info numkind.Info) UnaryOp[T] {
	t := info.Type
	return func(v T) T {
		return toT[T](t, reflect.ValueOf(cmplx.Sqrt(reflect.ValueOf(v).Complex())))
	}
}

// complexAbs returns the magnitude as a complex value with zero imaginary
// part, keeping the unary signature closed over T.
func complexAbs[T any](info numkind.Info) UnaryOp[T] {
	t := info.Type
	return func(v T) T {
		return toT[T](t, reflect.ValueOf(complex(cmplx.Abs(reflect.ValueOf(v).Complex()), 0)))
	}
}

func complexPowInt[T any](info numkind.Info) PowIntOp[T] {
	t := info.Type
	return func(v T, n int) T {
		c := cmplx.Pow(reflect.ValueOf(v).Complex(), complex(float64(n), 0))
		return toT[T](t, reflect.ValueOf(c))
	}
}
