// Package decnum adapts github.com/govalues/decimal to the capability
// surface the resolve engine discovers: value-receiver operator methods,
// a Parse method taking one string, and a three-way Cmp. It is the
// decimal-shaped reference type of this module; GCD over it runs the
// subtractive Euclidean algorithm since no remainder method is exposed.
//
// Bytes, ModPow and Truncate are deliberately not declared: converting a
// decimal to bytes is unsupported, modular power goes through the naive
// fallback, and truncation resolves to the engine's identity fallback.
package decnum

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// Decimal is an immutable decimal floating-point number.
type Decimal struct {
	val decimal.Decimal
}

// Parse reads d from decimal text. The receiver carries no information;
// the method exists on the value so the resolver can discover it.
func (Decimal) Parse(s string) (Decimal, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{val: d}, nil
}

// MustParse is Parse, panicking on malformed text.
func MustParse(s string) Decimal {
	d, err := Decimal{}.Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromFloat64 converts a float64.
func FromFloat64(f float64) (Decimal, error) {
	d, err := decimal.NewFromFloat64(f)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{val: d}, nil
}

// Float64 converts to the nearest float64.
func (d Decimal) Float64() (float64, error) {
	f, ok := d.val.Float64()
	if !ok {
		return 0, fmt.Errorf("decimal %s does not fit in float64", d.val)
	}
	return f, nil
}

func (d Decimal) String() string { return d.val.String() }

// IsIntegerShaped marks the type as non-integer for shape classification.
func (Decimal) IsIntegerShaped() bool { return false }

// Add returns d + o.
func (d Decimal) Add(o Decimal) (Decimal, error) {
	r, err := d.val.Add(o.val)
	return Decimal{val: r}, err
}

// Sub returns d - o.
func (d Decimal) Sub(o Decimal) (Decimal, error) {
	r, err := d.val.Sub(o.val)
	return Decimal{val: r}, err
}

// Mul returns d * o.
func (d Decimal) Mul(o Decimal) (Decimal, error) {
	r, err := d.val.Mul(o.val)
	return Decimal{val: r}, err
}

// Div returns d / o.
func (d Decimal) Div(o Decimal) (Decimal, error) {
	r, err := d.val.Quo(o.val)
	return Decimal{val: r}, err
}

// Neg returns -d.
func (d Decimal) Neg() Decimal { return Decimal{val: d.val.Neg()} }

// Abs returns the absolute value of d.
func (d Decimal) Abs() Decimal { return Decimal{val: d.val.Abs()} }

// Cmp three-way compares by numeric value.
func (d Decimal) Cmp(o Decimal) int { return d.val.Cmp(o.val) }

// Equal reports numeric equality, ignoring representation scale.
func (d Decimal) Equal(o Decimal) bool { return d.val.Cmp(o.val) == 0 }

// Sqrt returns the square root, computed through float64.
func (d Decimal) Sqrt() (Decimal, error) {
	f, err := d.Float64()
	if err != nil {
		return Decimal{}, err
	}
	if f < 0 {
		return Decimal{}, fmt.Errorf("square root of negative decimal %s", d)
	}
	return FromFloat64(math.Sqrt(f))
}

// Pow returns d raised to o, computed through float64.
func (d Decimal) Pow(o Decimal) (Decimal, error) {
	base, err := d.Float64()
	if err != nil {
		return Decimal{}, err
	}
	exp, err := o.Float64()
	if err != nil {
		return Decimal{}, err
	}
	return FromFloat64(math.Pow(base, exp))
}

// PowInt returns d raised to a native integer exponent.
func (d Decimal) PowInt(n int) (Decimal, error) {
	base, err := d.Float64()
	if err != nil {
		return Decimal{}, err
	}
	return FromFloat64(math.Pow(base, float64(n)))
}

// Log returns the logarithm of d in the given base, computed through
// float64.
func (d Decimal) Log(base float64) (Decimal, error) {
	f, err := d.Float64()
	if err != nil {
		return Decimal{}, err
	}
	return FromFloat64(math.Log(f) / math.Log(base))
}
