package resolve

import (
	"fmt"
	"math/big"

	"github.com/AdamWhiteHat/GenericArithmetic/internal/numkind"
)

// math/big bindings. T is statically *big.Int or *big.Rat here; the
// detector guarantees it, so the any-casts cannot fail.

func asBigInt[T any](v T) *big.Int { return any(v).(*big.Int) }
func asBigRat[T any](v T) *big.Rat { return any(v).(*big.Rat) }

func fromBigInt[T any](v *big.Int) T { return any(v).(T) }
func fromBigRat[T any](v *big.Rat) T { return any(v).(T) }

func bigIntBinary[T any](info numkind.Info, tag string) (BinaryOp[T], error) {
	var f func(x, y *big.Int) *big.Int
	switch tag {
	case TagAdd:
		f = func(x, y *big.Int) *big.Int { return new(big.Int).Add(x, y) }
	case TagSub:
		f = func(x, y *big.Int) *big.Int { return new(big.Int).Sub(x, y) }
	case TagMul:
		f = func(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) }
	case TagDiv:
		f = func(x, y *big.Int) *big.Int { return new(big.Int).Quo(x, y) }
	case TagMod:
		f = func(x, y *big.Int) *big.Int { return new(big.Int).Rem(x, y) }
	case TagPow:
		// Exponent narrowed through the safe int64 conversion; larger
		// exponents would not terminate in any useful time.
		f = func(x, y *big.Int) *big.Int {
			return new(big.Int).Exp(x, big.NewInt(safeInt64(y)), nil)
		}
	default:
		return nil, unsupported(info.Name, tag)
	}
	return func(a, b T) T { return fromBigInt[T](f(asBigInt(a), asBigInt(b))) }, nil
}

// safeInt64 narrows a big integer exponent to int64, panicking rather than
// silently wrapping when it does not fit.
func safeInt64(v *big.Int) int64 {
	if !v.IsInt64() {
		panic(fmt.Sprintf("exponent %s does not fit in int64", v.String()))
	}
	return v.Int64()
}

func bigIntCompare[T any](info numkind.Info, tag string) (CompareOp[T], error) {
	pred, err := comparePredicate(info, tag)
	if err != nil {
		return nil, err
	}
	return func(a, b T) bool { return pred(asBigInt(a).Cmp(asBigInt(b))) }, nil
}

func bigIntNegate[T any]() UnaryOp[T] {
	return func(v T) T { return fromBigInt[T](new(big.Int).Neg(asBigInt(v))) }
}

func bigIntParse[T any](info numkind.Info) ParseOp[T] {
	return func(s string) (T, error) {
		var zero T
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return zero, fmt.Errorf("cannot parse %q as %s", s, info.Name)
		}
		return fromBigInt[T](n), nil
	}
}

func bigIntSqrt[T any]() UnaryOp[T] {
	return func(v T) T { return fromBigInt[T](new(big.Int).Sqrt(asBigInt(v))) }
}

func bigIntAbs[T any]() UnaryOp[T] {
	return func(v T) T { return fromBigInt[T](new(big.Int).Abs(asBigInt(v))) }
}

func bigIntPowInt[T any]() PowIntOp[T] {
	return func(v T, n int) T {
		return fromBigInt[T](new(big.Int).Exp(asBigInt(v), big.NewInt(int64(n)), nil))
	}
}

func bigIntModPow[T any]() ModPowOp[T] {
	return func(v, e, m T) T {
		return fromBigInt[T](new(big.Int).Exp(asBigInt(v), asBigInt(e), asBigInt(m)))
	}
}

func bigIntBytes[T any]() BytesOp[T] {
	return func(v T) []byte { return asBigInt(v).Bytes() }
}

func bigRatBinary[T any](info numkind.Info, tag string) (BinaryOp[T], error) {
	var f func(x, y *big.Rat) *big.Rat
	switch tag {
	case TagAdd:
		f = func(x, y *big.Rat) *big.Rat { return new(big.Rat).Add(x, y) }
	case TagSub:
		f = func(x, y *big.Rat) *big.Rat { return new(big.Rat).Sub(x, y) }
	case TagMul:
		f = func(x, y *big.Rat) *big.Rat { return new(big.Rat).Mul(x, y) }
	case TagDiv:
		f = func(x, y *big.Rat) *big.Rat { return new(big.Rat).Quo(x, y) }
	case TagMod:
		f = ratMod
	case TagPow:
		f = func(x, y *big.Rat) *big.Rat {
			if !y.IsInt() {
				panic(fmt.Sprintf("rational exponent %s is not integral", y.RatString()))
			}
			return ratPowInt(x, int(safeInt64(y.Num())))
		}
	default:
		return nil, unsupported(info.Name, tag)
	}
	return func(a, b T) T { return fromBigRat[T](f(asBigRat(a), asBigRat(b))) }, nil
}

// ratMod computes a - b*floor(a/b).
func ratMod(a, b *big.Rat) *big.Rat {
	quotient := new(big.Rat).Quo(a, b)
	num := quotient.Num()
	den := quotient.Denom()
	floorVal := new(big.Int).Div(num, den)
	if quotient.Sign() < 0 && new(big.Int).Mod(num, den).Sign() != 0 {
		floorVal.Sub(floorVal, big.NewInt(1))
	}
	floorRat := new(big.Rat).SetInt(floorVal)
	return new(big.Rat).Sub(a, new(big.Rat).Mul(b, floorRat))
}

func ratPowInt(x *big.Rat, n int) *big.Rat {
	negative := n < 0
	if negative {
		n = -n
	}
	result := new(big.Rat).SetInt64(1)
	for i := 0; i < n; i++ {
		result.Mul(result, x)
	}
	if negative {
		result.Inv(result)
	}
	return result
}

func bigRatCompare[T any](info numkind.Info, tag string) (CompareOp[T], error) {
	pred, err := comparePredicate(info, tag)
	if err != nil {
		return nil, err
	}
	return func(a, b T) bool { return pred(asBigRat(a).Cmp(asBigRat(b))) }, nil
}

func bigRatNegate[T any]() UnaryOp[T] {
	return func(v T) T { return fromBigRat[T](new(big.Rat).Neg(asBigRat(v))) }
}

func bigRatParse[T any](info numkind.Info) ParseOp[T] {
	return func(s string) (T, error) {
		var zero T
		r, ok := new(big.Rat).SetString(s)
		if !ok {
			return zero, fmt.Errorf("cannot parse %q as %s", s, info.Name)
		}
		return fromBigRat[T](r), nil
	}
}

func bigRatAbs[T any]() UnaryOp[T] {
	return func(v T) T { return fromBigRat[T](new(big.Rat).Abs(asBigRat(v))) }
}

func bigRatTruncate[T any]() UnaryOp[T] {
	return func(v T) T {
		r := asBigRat(v)
		return fromBigRat[T](new(big.Rat).SetInt(new(big.Int).Quo(r.Num(), r.Denom())))
	}
}

func bigRatPowInt[T any]() PowIntOp[T] {
	return func(v T, n int) T { return fromBigRat[T](ratPowInt(asBigRat(v), n)) }
}
