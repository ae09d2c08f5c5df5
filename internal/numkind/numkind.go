// Package numkind classifies candidate numeric types into the shapes the
// resolver distinguishes: built-in arithmetic primitives, the math/big
// shapes, complex-shaped types, and opaque custom types.
//
// Classification of a given type is pure and referentially stable: it
// depends only on the reflect.Type, which cannot change within a process,
// so resolved bindings may be cached against it indefinitely.
package numkind

import (
	"math/big"
	"reflect"
	"strings"

	"github.com/AdamWhiteHat/GenericArithmetic/internal/config"
)

// Kind is the numeric shape of a type.
type Kind int

const (
	Invalid Kind = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Complex64
	Complex128
	BigInt  // *big.Int
	BigRat  // *big.Rat
	Custom
)

var kindNames = map[Kind]string{
	Invalid: "invalid", Int: "int", Int8: "int8", Int16: "int16",
	Int32: "int32", Int64: "int64", Uint: "uint", Uint8: "uint8",
	Uint16: "uint16", Uint32: "uint32", Uint64: "uint64",
	Float32: "float32", Float64: "float64",
	Complex64: "complex64", Complex128: "complex128",
	BigInt: "big.Int", BigRat: "big.Rat", Custom: "custom",
}

func (k Kind) String() string { return kindNames[k] }

var reflectKinds = map[reflect.Kind]Kind{
	reflect.Int: Int, reflect.Int8: Int8, reflect.Int16: Int16,
	reflect.Int32: Int32, reflect.Int64: Int64,
	reflect.Uint: Uint, reflect.Uint8: Uint8, reflect.Uint16: Uint16,
	reflect.Uint32: Uint32, reflect.Uint64: Uint64,
	reflect.Float32: Float32, reflect.Float64: Float64,
	reflect.Complex64: Complex64, reflect.Complex128: Complex128,
}

var (
	bigIntType  = reflect.TypeOf((*big.Int)(nil))
	bigRatType  = reflect.TypeOf((*big.Rat)(nil))
	float64Type = reflect.TypeOf(float64(0))
)

// Info is the derived type descriptor for one candidate type.
type Info struct {
	Type reflect.Type
	Kind Kind
	Name string

	complexShaped bool
}

// Of classifies t. The result is stable for the lifetime of the process.
func Of(t reflect.Type) Info {
	info := Info{Type: t, Name: t.String(), Kind: Custom}
	switch t {
	case bigIntType:
		info.Kind = BigInt
		return info
	case bigRatType:
		info.Kind = BigRat
		return info
	}
	if k, ok := reflectKinds[t.Kind()]; ok {
		info.Kind = k
		info.complexShaped = k == Complex64 || k == Complex128
		return info
	}
	info.complexShaped = hasFloatAccessor(t, "Real") && hasFloatAccessor(t, "Imag")
	return info
}

// TypeFor classifies the type parameter T.
func TypeFor[T any]() Info {
	return Of(reflect.TypeOf((*T)(nil)).Elem())
}

// hasFloatAccessor reports whether t (or *t) has a niladic method returning
// a single float64.
func hasFloatAccessor(t reflect.Type, name string) bool {
	m, ok := t.MethodByName(name)
	if !ok && t.Kind() != reflect.Pointer {
		m, ok = reflect.PointerTo(t).MethodByName(name)
	}
	if !ok {
		return false
	}
	mt := m.Type
	return mt.NumIn() == 1 && mt.NumOut() == 1 && mt.Out(0) == float64Type
}

// IsPrimitive reports whether the type is a built-in arithmetic primitive.
func (in Info) IsPrimitive() bool {
	return in.Kind >= Int && in.Kind <= Complex128
}

// IsSignedKind reports a signed built-in integer kind.
func (in Info) IsSignedKind() bool { return in.Kind >= Int && in.Kind <= Int64 }

// IsUnsignedKind reports an unsigned built-in integer kind.
func (in Info) IsUnsignedKind() bool { return in.Kind >= Uint && in.Kind <= Uint64 }

// IsIntegerKind reports any built-in integer kind.
func (in Info) IsIntegerKind() bool { return in.IsSignedKind() || in.IsUnsignedKind() }

// IsFloatKind reports a built-in floating-point kind.
func (in Info) IsFloatKind() bool { return in.Kind == Float32 || in.Kind == Float64 }

// IsComplexKind reports a built-in complex kind.
func (in Info) IsComplexKind() bool { return in.Kind == Complex64 || in.Kind == Complex128 }

// IsBigIntegerShaped reports the arbitrary-precision integer shape.
func (in Info) IsBigIntegerShaped() bool { return in.Kind == BigInt }

// IsComplexShaped reports whether the type is a built-in complex kind or a
// custom type exposing Real/Imag accessors. Complex-shaped types have no
// total order and take the surrogate comparison path.
func (in Info) IsComplexShaped() bool { return in.complexShaped }

// IsDecimalShaped reports whether the type carries fractional values without
// a trustworthy remainder operation, which routes GCD to the subtractive
// algorithm. Covers big.Rat and any custom type not classified as integer.
func (in Info) IsDecimalShaped() bool {
	if in.Kind == BigRat {
		return true
	}
	return in.Kind == Custom && !in.complexShaped && !in.IntegerShaped()
}

// nonIntegerHints rule a type out before integerHints are consulted.
var (
	nonIntegerHints = []string{"Rational", "Decimal", "Fraction", "Float"}
	integerHints    = []string{"Integer"}
)

// IntegerShaped reports whether the type behaves like an integer type.
//
// Primitive and math/big shapes classify directly. A custom type is asked
// through its IsIntegerShaped() bool marker method when it declares one;
// otherwise the display name is matched against substring hints, an
// approximate classification kept for types that predate the marker.
func (in Info) IntegerShaped() bool {
	switch {
	case in.IsIntegerKind(), in.Kind == BigInt:
		return true
	case in.IsFloatKind(), in.IsComplexKind(), in.Kind == BigRat:
		return false
	}
	if declared, ok := in.markerValue(); ok {
		return declared
	}
	for _, hint := range nonIntegerHints {
		if strings.Contains(in.Name, hint) {
			return false
		}
	}
	for _, hint := range integerHints {
		if strings.Contains(in.Name, hint) {
			return true
		}
	}
	return false
}

// markerValue invokes the IsIntegerShaped marker on a zero value, if the
// type declares it with the exact niladic bool signature.
func (in Info) markerValue() (value, ok bool) {
	t := in.Type
	var recv reflect.Value
	m, found := t.MethodByName(config.IntegerShapedMethodName)
	switch {
	case found && t.Kind() == reflect.Pointer:
		recv = reflect.New(t.Elem())
	case found:
		recv = reflect.New(t).Elem()
	case t.Kind() != reflect.Pointer:
		m, found = reflect.PointerTo(t).MethodByName(config.IntegerShapedMethodName)
		recv = reflect.New(t)
	}
	if !found {
		return false, false
	}
	mt := m.Type
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Bool {
		return false, false
	}
	out := m.Func.Call([]reflect.Value{recv})
	return out[0].Bool(), true
}
