package resolve

import (
	"encoding/binary"
	"math"
	"reflect"
	"strconv"

	"github.com/AdamWhiteHat/GenericArithmetic/internal/numkind"
)

// Primitive bindings operate through the reflect accessors for the type's
// kind (Int/Uint/Float) and convert the result back to T, so named types
// with a primitive underlying kind resolve the same way as the predeclared
// ones.

func toT[T any](t reflect.Type, v reflect.Value) T {
	return v.Convert(t).Interface().(T)
}

func intPow(n, m int64) int64 {
	if m < 0 {
		return 0
	}
	var result int64 = 1
	for i := int64(0); i < m; i++ {
		result *= n
	}
	return result
}

func uintPow(n, m uint64) uint64 {
	var result uint64 = 1
	for i := uint64(0); i < m; i++ {
		result *= n
	}
	return result
}

func primitiveBinary[T any](info numkind.Info, tag string) (BinaryOp[T], error) {
	t := info.Type
	switch {
	case info.IsSignedKind():
		var f func(x, y int64) int64
		switch tag {
		case TagAdd:
			f = func(x, y int64) int64 { return x + y }
		case TagSub:
			f = func(x, y int64) int64 { return x - y }
		case TagMul:
			f = func(x, y int64) int64 { return x * y }
		case TagDiv:
			f = func(x, y int64) int64 { return x / y }
		case TagMod:
			f = func(x, y int64) int64 { return x % y }
		case TagPow:
			f = intPow
		default:
			return nil, unsupported(info.Name, tag)
		}
		return func(a, b T) T {
			return toT[T](t, reflect.ValueOf(f(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())))
		}, nil
	case info.IsUnsignedKind():
		var f func(x, y uint64) uint64
		switch tag {
		case TagAdd:
			f = func(x, y uint64) uint64 { return x + y }
		case TagSub:
			f = func(x, y uint64) uint64 { return x - y }
		case TagMul:
			f = func(x, y uint64) uint64 { return x * y }
		case TagDiv:
			f = func(x, y uint64) uint64 { return x / y }
		case TagMod:
			f = func(x, y uint64) uint64 { return x % y }
		case TagPow:
			f = uintPow
		default:
			return nil, unsupported(info.Name, tag)
		}
		return func(a, b T) T {
			return toT[T](t, reflect.ValueOf(f(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())))
		}, nil
	case info.IsFloatKind():
		var f func(x, y float64) float64
		switch tag {
		case TagAdd:
			f = func(x, y float64) float64 { return x + y }
		case TagSub:
			f = func(x, y float64) float64 { return x - y }
		case TagMul:
			f = func(x, y float64) float64 { return x * y }
		case TagDiv:
			f = func(x, y float64) float64 { return x / y }
		case TagMod:
			f = math.Mod
		case TagPow:
			f = math.Pow
		default:
			return nil, unsupported(info.Name, tag)
		}
		return func(a, b T) T {
			return toT[T](t, reflect.ValueOf(f(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())))
		}, nil
	}
	return nil, unsupported(info.Name, tag)
}

func primitiveCompare[T any](info numkind.Info, tag string) (CompareOp[T], error) {
	var cmp func(a, b reflect.Value) int
	switch {
	case info.IsSignedKind():
		cmp = func(a, b reflect.Value) int {
			x, y := a.Int(), b.Int()
			return compareOrdered(x, y)
		}
	case info.IsUnsignedKind():
		cmp = func(a, b reflect.Value) int {
			x, y := a.Uint(), b.Uint()
			return compareOrdered(x, y)
		}
	case info.IsFloatKind():
		cmp = func(a, b reflect.Value) int {
			x, y := a.Float(), b.Float()
			return compareOrdered(x, y)
		}
	default:
		return nil, unsupported(info.Name, tag)
	}
	pred, err := comparePredicate(info, tag)
	if err != nil {
		return nil, err
	}
	return func(a, b T) bool {
		return pred(cmp(reflect.ValueOf(a), reflect.ValueOf(b)))
	}, nil
}

func compareOrdered[V int64 | uint64 | float64](x, y V) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// comparePredicate maps a comparison tag onto the sign of a three-way
// comparison.
func comparePredicate(info numkind.Info, tag string) (func(int) bool, error) {
	switch tag {
	case TagLT:
		return func(c int) bool { return c < 0 }, nil
	case TagGT:
		return func(c int) bool { return c > 0 }, nil
	case TagLE:
		return func(c int) bool { return c <= 0 }, nil
	case TagGE:
		return func(c int) bool { return c >= 0 }, nil
	case TagEQ:
		return func(c int) bool { return c == 0 }, nil
	case TagNE:
		return func(c int) bool { return c != 0 }, nil
	default:
		return nil, unsupported(info.Name, tag)
	}
}

func primitiveNegate[T any](info numkind.Info) UnaryOp[T] {
	t := info.Type
	switch {
	case info.IsSignedKind():
		return func(v T) T { return toT[T](t, reflect.ValueOf(-reflect.ValueOf(v).Int())) }
	case info.IsUnsignedKind():
		return func(v T) T { return toT[T](t, reflect.ValueOf(-reflect.ValueOf(v).Uint())) }
	case info.IsComplexKind():
		return func(v T) T { return toT[T](t, reflect.ValueOf(-reflect.ValueOf(v).Complex())) }
	default:
		return func(v T) T { return toT[T](t, reflect.ValueOf(-reflect.ValueOf(v).Float())) }
	}
}

func primitiveParse[T any](info numkind.Info) ParseOp[T] {
	t := info.Type
	bits := t.Bits()
	switch {
	case info.IsSignedKind():
		return func(s string) (T, error) {
			var zero T
			n, err := strconv.ParseInt(s, 10, bits)
			if err != nil {
				return zero, err
			}
			return toT[T](t, reflect.ValueOf(n)), nil
		}
	case info.IsUnsignedKind():
		return func(s string) (T, error) {
			var zero T
			n, err := strconv.ParseUint(s, 10, bits)
			if err != nil {
				return zero, err
			}
			return toT[T](t, reflect.ValueOf(n)), nil
		}
	default:
		return func(s string) (T, error) {
			var zero T
			f, err := strconv.ParseFloat(s, bits)
			if err != nil {
				return zero, err
			}
			return toT[T](t, reflect.ValueOf(f)), nil
		}
	}
}

// primitiveSqrt widens through float64, takes the platform square root and
// narrows back to T. Exactness is only guaranteed where the round trip is.
func primitiveSqrt[T any](info numkind.Info) UnaryOp[T] {
	t := info.Type
	switch {
	case info.IsSignedKind():
		return func(v T) T {
			return toT[T](t, reflect.ValueOf(math.Sqrt(float64(reflect.ValueOf(v).Int()))))
		}
	case info.IsUnsignedKind():
		return func(v T) T {
			return toT[T](t, reflect.ValueOf(math.Sqrt(float64(reflect.ValueOf(v).Uint()))))
		}
	default:
		return func(v T) T {
			return toT[T](t, reflect.ValueOf(math.Sqrt(reflect.ValueOf(v).Float())))
		}
	}
}

func primitiveAbs[T any](info numkind.Info) UnaryOp[T] {
	t := info.Type
	switch {
	case info.IsSignedKind():
		return func(v T) T {
			x := reflect.ValueOf(v).Int()
			if x < 0 {
				x = -x
			}
			return toT[T](t, reflect.ValueOf(x))
		}
	case info.IsUnsignedKind():
		return identityOp[T]()
	default:
		return func(v T) T {
			return toT[T](t, reflect.ValueOf(math.Abs(reflect.ValueOf(v).Float())))
		}
	}
}

func primitiveTruncate[T any](info numkind.Info) UnaryOp[T] {
	t := info.Type
	return func(v T) T {
		return toT[T](t, reflect.ValueOf(math.Trunc(reflect.ValueOf(v).Float())))
	}
}

func primitiveSign[T any](info numkind.Info) SignOp[T] {
	switch {
	case info.IsSignedKind():
		return func(v T) int {
			x := reflect.ValueOf(v).Int()
			switch {
			case x > 0:
				return 1
			case x < 0:
				return -1
			default:
				return 0
			}
		}
	case info.IsUnsignedKind():
		return func(v T) int {
			if reflect.ValueOf(v).Uint() > 0 {
				return 1
			}
			return 0
		}
	default:
		return func(v T) int {
			x := reflect.ValueOf(v).Float()
			switch {
			case x > 0:
				return 1
			case x < 0:
				return -1
			default:
				return 0
			}
		}
	}
}

// primitivePowInt widens the exponent to float64 and narrows the result
// back to T, matching the T-exponent power binding.
func primitivePowInt[T any](info numkind.Info) PowIntOp[T] {
	t := info.Type
	switch {
	case info.IsSignedKind():
		return func(v T, n int) T {
			return toT[T](t, reflect.ValueOf(intPow(reflect.ValueOf(v).Int(), int64(n))))
		}
	case info.IsUnsignedKind():
		return func(v T, n int) T {
			return toT[T](t, reflect.ValueOf(uintPow(reflect.ValueOf(v).Uint(), uint64(n))))
		}
	default:
		return func(v T, n int) T {
			return toT[T](t, reflect.ValueOf(math.Pow(reflect.ValueOf(v).Float(), float64(n))))
		}
	}
}

func primitiveLog[T any](info numkind.Info) LogOp[T] {
	t := info.Type
	value := func(v T) float64 {
		rv := reflect.ValueOf(v)
		switch {
		case info.IsSignedKind():
			return float64(rv.Int())
		case info.IsUnsignedKind():
			return float64(rv.Uint())
		default:
			return rv.Float()
		}
	}
	return func(v T, base float64) T {
		return toT[T](t, reflect.ValueOf(math.Log(value(v))/math.Log(base)))
	}
}

// primitiveBytes encodes the value at its exact fixed width, big-endian.
func primitiveBytes[T any](info numkind.Info) BytesOp[T] {
	size := info.Type.Bits() / 8
	return func(v T) []byte {
		rv := reflect.ValueOf(v)
		switch {
		case info.IsSignedKind():
			return fixedWidthBytes(uint64(rv.Int()), size)
		case info.IsUnsignedKind():
			return fixedWidthBytes(rv.Uint(), size)
		case info.IsFloatKind():
			if size == 4 {
				return fixedWidthBytes(uint64(math.Float32bits(float32(rv.Float()))), 4)
			}
			return fixedWidthBytes(math.Float64bits(rv.Float()), 8)
		default:
			c := rv.Complex()
			half := size / 2
			re := floatBits(real(c), half)
			im := floatBits(imag(c), half)
			return append(re, im...)
		}
	}
}

func floatBits(f float64, width int) []byte {
	if width == 4 {
		return fixedWidthBytes(uint64(math.Float32bits(float32(f))), 4)
	}
	return fixedWidthBytes(math.Float64bits(f), 8)
}

func fixedWidthBytes(u uint64, size int) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], u)
	return append([]byte(nil), buf[8-size:]...)
}
