// Package resolve is the capability resolution engine: given a candidate
// numeric type T, it discovers which arithmetic operations T actually
// supports, binds each one into a directly callable function, and caches the
// binding for the lifetime of the process.
//
// Built-in primitives bind native operators, *big.Int and *big.Rat bind
// math/big directly, complex-shaped types substitute surrogate ordering, and
// opaque custom types are searched by reflection for operator-like methods
// (Add, Sub, Cmp, Parse, Sqrt, ...). Resolution cost is paid once per
// (type, operation); repeat lookups return the memoized binding.
package resolve

import (
	"reflect"
	"sync"

	"github.com/AdamWhiteHat/GenericArithmetic/internal/config"
	"github.com/AdamWhiteHat/GenericArithmetic/internal/numkind"
)

// Operation tags accepted by Binary and Compare, matching the operator
// spelling used in error messages.
const (
	TagAdd = "+"
	TagSub = "-"
	TagMul = "*"
	TagDiv = "/"
	TagMod = "%"
	TagPow = "**"

	TagLT = "<"
	TagGT = ">"
	TagLE = "<="
	TagGE = ">="
	TagEQ = "=="
	TagNE = "!="
)

// Bound operation shapes. A binding never performs discovery; failures at
// call time (division by zero, overflow reported by the underlying method)
// surface as panics exactly as the underlying operation produces them.
type (
	UnaryOp[T any]   func(T) T
	BinaryOp[T any]  func(T, T) T
	CompareOp[T any] func(T, T) bool
	ParseOp[T any]   func(string) (T, error)
	SignOp[T any]    func(T) int
	PowIntOp[T any]  func(T, int) T
	ModPowOp[T any]  func(T, T, T) T
	LogOp[T any]     func(T, float64) T
	BytesOp[T any]   func(T) []byte
)

// slot is a lazily resolved binding. Each slot is guarded by its own Once so
// concurrent resolvers of the same (type, operation) observe at most one
// discovery, and distinct operations never contend on a shared lock.
type slot[F any] struct {
	once sync.Once
	fn   F
	err  error
}

func resolveSlot[F any](s *slot[F], resolve func() (F, error)) (F, error) {
	s.once.Do(func() { s.fn, s.err = resolve() })
	return s.fn, s.err
}

// Ops is the per-type binding table. Exactly one Ops exists per type for the
// lifetime of the process; bindings are immutable once resolved and are
// never invalidated.
type Ops[T any] struct {
	info numkind.Info

	add, sub, mul, div, mod, pow slot[BinaryOp[T]]
	lt, gt, le, ge, eq, ne       slot[CompareOp[T]]
	neg, sqrt, abs, trunc        slot[UnaryOp[T]]
	parse                        slot[ParseOp[T]]
	sign                         slot[SignOp[T]]
	powInt                       slot[PowIntOp[T]]
	modPow                       slot[ModPowOp[T]]
	log                          slot[LogOp[T]]
	bytes                        slot[BytesOp[T]]

	consts [4]slot[T]
}

// registry maps reflect.Type to its *Ops. Populated on first use, alive for
// the process lifetime, no eviction.
var registry sync.Map

// For returns the binding table for T, creating it on first use.
func For[T any]() *Ops[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := registry.Load(t); ok {
		return v.(*Ops[T])
	}
	v, _ := registry.LoadOrStore(t, &Ops[T]{info: numkind.Of(t)})
	return v.(*Ops[T])
}

// TypeName is the display name used in diagnostics.
func (o *Ops[T]) TypeName() string { return o.info.Name }

// IsPrimitive reports whether T is a built-in arithmetic primitive.
func (o *Ops[T]) IsPrimitive() bool { return o.info.IsPrimitive() }

// IsComplexShaped reports whether T requires surrogate ordering.
func (o *Ops[T]) IsComplexShaped() bool { return o.info.IsComplexShaped() }

// IsBigIntegerShaped reports the arbitrary-precision integer shape.
func (o *Ops[T]) IsBigIntegerShaped() bool { return o.info.IsBigIntegerShaped() }

// IsDecimalShaped reports fractional types without a trustworthy remainder.
func (o *Ops[T]) IsDecimalShaped() bool { return o.info.IsDecimalShaped() }

// IsBigRationalShaped reports the arbitrary-precision rational shape.
func (o *Ops[T]) IsBigRationalShaped() bool { return o.info.Kind == numkind.BigRat }

// IsIntegerShaped reports whether T behaves like an integer type.
func (o *Ops[T]) IsIntegerShaped() bool { return o.info.IntegerShaped() }

// IsFloatKind reports a built-in floating-point T.
func (o *Ops[T]) IsFloatKind() bool { return o.info.IsFloatKind() }

// IsIntegerKind reports a built-in integer T.
func (o *Ops[T]) IsIntegerKind() bool { return o.info.IsIntegerKind() }

// Binary resolves one of the six binary arithmetic operators.
func (o *Ops[T]) Binary(tag string) (BinaryOp[T], error) {
	var s *slot[BinaryOp[T]]
	switch tag {
	case TagAdd:
		s = &o.add
	case TagSub:
		s = &o.sub
	case TagMul:
		s = &o.mul
	case TagDiv:
		s = &o.div
	case TagMod:
		s = &o.mod
	case TagPow:
		s = &o.pow
	default:
		return nil, unsupported(o.info.Name, tag)
	}
	return resolveSlot(s, func() (BinaryOp[T], error) { return o.resolveBinary(tag) })
}

// Compare resolves one of the six relational/equality operators. Ordering
// comparisons for complex-shaped T bind the surrogate comparator.
func (o *Ops[T]) Compare(tag string) (CompareOp[T], error) {
	var s *slot[CompareOp[T]]
	switch tag {
	case TagLT:
		s = &o.lt
	case TagGT:
		s = &o.gt
	case TagLE:
		s = &o.le
	case TagGE:
		s = &o.ge
	case TagEQ:
		s = &o.eq
	case TagNE:
		s = &o.ne
	default:
		return nil, unsupported(o.info.Name, tag)
	}
	return resolveSlot(s, func() (CompareOp[T], error) { return o.resolveCompare(tag) })
}

// Unary resolves a named unary operation. Negation is the only operation
// bound here directly; sqrt, abs and truncate delegate to their dedicated
// resolvers.
func (o *Ops[T]) Unary(name string) (UnaryOp[T], error) {
	switch name {
	case "-", "negate":
		return o.Negate()
	case "sqrt":
		return o.Sqrt()
	case "abs":
		return o.Abs()
	case "truncate":
		return o.Truncate()
	default:
		return nil, unsupported(o.info.Name, name)
	}
}

// Negate resolves unary negation.
func (o *Ops[T]) Negate() (UnaryOp[T], error) {
	return resolveSlot(&o.neg, o.resolveNegate)
}

// Parse resolves parsing from text.
func (o *Ops[T]) Parse() (ParseOp[T], error) {
	return resolveSlot(&o.parse, o.resolveParse)
}

// Sqrt resolves the square root. Custom types without a Sqrt method fall
// back to the integer-biased bisection algorithm.
func (o *Ops[T]) Sqrt() (UnaryOp[T], error) {
	return resolveSlot(&o.sqrt, o.resolveSqrt)
}

// Abs resolves the absolute value.
func (o *Ops[T]) Abs() (UnaryOp[T], error) {
	return resolveSlot(&o.abs, o.resolveAbs)
}

// Truncate resolves truncation toward zero. A custom type without a
// Truncate method binds the identity function rather than failing; callers
// relying on truncation semantics must account for that.
func (o *Ops[T]) Truncate() (UnaryOp[T], error) {
	return resolveSlot(&o.trunc, o.resolveTruncate)
}

// Sign resolves the native sign function. Only primitive non-complex types
// are supported; everything else is NotImplementedError. The facade offers
// a comparison-based sign that works for any ordered type.
func (o *Ops[T]) Sign() (SignOp[T], error) {
	return resolveSlot(&o.sign, o.resolveSign)
}

// Power resolves the T-exponent power operator. Equivalent to Binary(TagPow).
func (o *Ops[T]) Power() (BinaryOp[T], error) { return o.Binary(TagPow) }

// PowerInt resolves power with a native integer exponent. Cached as a
// process-lifetime singleton per T.
func (o *Ops[T]) PowerInt() (PowIntOp[T], error) {
	return resolveSlot(&o.powInt, o.resolvePowerInt)
}

// ModPow resolves modular exponentiation. Types without a native ModPow
// bind the naive fallback: power, then reduce modulo. Cached as a
// process-lifetime singleton per T.
func (o *Ops[T]) ModPow() (ModPowOp[T], error) {
	return resolveSlot(&o.modPow, o.resolveModPow)
}

// Log resolves the two-argument logarithm (value, base).
func (o *Ops[T]) Log() (LogOp[T], error) {
	return resolveSlot(&o.log, o.resolveLog)
}

// Bytes resolves conversion to a byte sequence: fixed-width big-endian
// encoding for primitives, a Bytes/ToByteArray method for custom types.
func (o *Ops[T]) Bytes() (BytesOp[T], error) {
	return resolveSlot(&o.bytes, o.resolveBytes)
}

func (o *Ops[T]) resolveBinary(tag string) (BinaryOp[T], error) {
	switch {
	case o.info.Kind == numkind.BigInt:
		return bigIntBinary[T](o.info, tag)
	case o.info.Kind == numkind.BigRat:
		return bigRatBinary[T](o.info, tag)
	case o.info.IsComplexKind():
		return complexBinary[T](o.info, tag)
	case o.info.IsPrimitive():
		return primitiveBinary[T](o.info, tag)
	default:
		return customBinary[T](o.info, tag)
	}
}

func (o *Ops[T]) resolveCompare(tag string) (CompareOp[T], error) {
	switch {
	case o.info.Kind == numkind.BigInt:
		return bigIntCompare[T](o.info, tag)
	case o.info.Kind == numkind.BigRat:
		return bigRatCompare[T](o.info, tag)
	case o.info.IsComplexKind():
		return complexCompare[T](o.info, tag)
	case o.info.IsComplexShaped():
		return customComplexCompare[T](o.info, tag)
	case o.info.IsPrimitive():
		return primitiveCompare[T](o.info, tag)
	default:
		return customCompare[T](o.info, tag)
	}
}

func (o *Ops[T]) resolveNegate() (UnaryOp[T], error) {
	switch {
	case o.info.Kind == numkind.BigInt:
		return bigIntNegate[T](), nil
	case o.info.Kind == numkind.BigRat:
		return bigRatNegate[T](), nil
	case o.info.IsComplexKind():
		return complexNegate[T](o.info), nil
	case o.info.IsPrimitive():
		return primitiveNegate[T](o.info), nil
	default:
		return customUnary[T](o.info, "negate", config.NegMethodNames)
	}
}

func (o *Ops[T]) resolveParse() (ParseOp[T], error) {
	switch {
	case o.info.Kind == numkind.BigInt:
		return bigIntParse[T](o.info), nil
	case o.info.Kind == numkind.BigRat:
		return bigRatParse[T](o.info), nil
	case o.info.IsComplexKind():
		return complexParse[T](o.info), nil
	case o.info.IsPrimitive():
		return primitiveParse[T](o.info), nil
	default:
		return customParse[T](o.info)
	}
}

func (o *Ops[T]) resolveSqrt() (UnaryOp[T], error) {
	switch {
	case o.info.Kind == numkind.BigInt:
		return bigIntSqrt[T](), nil
	case o.info.Kind == numkind.BigRat:
		// No closed-form rational square root; bisect.
		return o.bisectionSqrtOp()
	case o.info.IsComplexKind():
		return complexSqrt[T](o.info), nil
	case o.info.IsPrimitive():
		return primitiveSqrt[T](o.info), nil
	default:
		if op, err := customUnary[T](o.info, "sqrt", config.SqrtMethodNames); err == nil {
			return op, nil
		}
		return o.bisectionSqrtOp()
	}
}

func (o *Ops[T]) resolveAbs() (UnaryOp[T], error) {
	switch {
	case o.info.Kind == numkind.BigInt:
		return bigIntAbs[T](), nil
	case o.info.Kind == numkind.BigRat:
		return bigRatAbs[T](), nil
	case o.info.IsComplexKind():
		return complexAbs[T](o.info), nil
	case o.info.IsPrimitive():
		return primitiveAbs[T](o.info), nil
	default:
		return customUnary[T](o.info, "abs", config.AbsMethodNames)
	}
}

func (o *Ops[T]) resolveTruncate() (UnaryOp[T], error) {
	switch {
	case o.info.Kind == numkind.BigInt:
		return identityOp[T](), nil
	case o.info.Kind == numkind.BigRat:
		return bigRatTruncate[T](), nil
	case o.info.IsFloatKind():
		return primitiveTruncate[T](o.info), nil
	case o.info.IsPrimitive():
		return identityOp[T](), nil
	default:
		if op, err := customUnary[T](o.info, "truncate", config.TruncateMethodNames); err == nil {
			return op, nil
		}
		// Deliberate silent no-op fallback, not an error.
		return identityOp[T](), nil
	}
}

func (o *Ops[T]) resolveSign() (SignOp[T], error) {
	if o.info.IsPrimitive() && !o.info.IsComplexKind() {
		return primitiveSign[T](o.info), nil
	}
	return nil, notImplemented(o.info.Name, "sign")
}

func (o *Ops[T]) resolvePowerInt() (PowIntOp[T], error) {
	switch {
	case o.info.Kind == numkind.BigInt:
		return bigIntPowInt[T](), nil
	case o.info.Kind == numkind.BigRat:
		return bigRatPowInt[T](), nil
	case o.info.IsComplexKind():
		return complexPowInt[T](o.info), nil
	case o.info.IsPrimitive():
		return primitivePowInt[T](o.info), nil
	default:
		return customPowInt[T](o.info)
	}
}

func (o *Ops[T]) resolveModPow() (ModPowOp[T], error) {
	if o.info.Kind == numkind.BigInt {
		return bigIntModPow[T](), nil
	}
	if o.info.Kind == numkind.Custom && !o.info.IsComplexShaped() {
		if op, err := customModPow[T](o.info); err == nil {
			return op, nil
		}
	}
	return o.naiveModPow()
}

// naiveModPow composes power-then-modulo from the type's own bindings. No
// repeated-squaring optimization; intermediate values grow with the
// exponent.
func (o *Ops[T]) naiveModPow() (ModPowOp[T], error) {
	pow, err := o.Binary(TagPow)
	if err != nil {
		return nil, err
	}
	mod, err := o.Binary(TagMod)
	if err != nil {
		return nil, err
	}
	return func(value, exponent, modulus T) T {
		return mod(pow(value, exponent), modulus)
	}, nil
}

func (o *Ops[T]) resolveLog() (LogOp[T], error) {
	switch {
	case o.info.IsFloatKind(), o.info.IsSignedKind(), o.info.IsUnsignedKind():
		return primitiveLog[T](o.info), nil
	case o.info.Kind == numkind.Custom:
		return customLog[T](o.info)
	default:
		return nil, unsupported(o.info.Name, "log")
	}
}

func (o *Ops[T]) resolveBytes() (BytesOp[T], error) {
	switch {
	case o.info.Kind == numkind.BigInt:
		return bigIntBytes[T](), nil
	case o.info.IsPrimitive():
		return primitiveBytes[T](o.info), nil
	default:
		return customBytes[T](o.info)
	}
}

func identityOp[T any]() UnaryOp[T] {
	return func(v T) T { return v }
}
