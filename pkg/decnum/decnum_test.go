package decnum

import (
	"errors"
	"testing"

	"github.com/AdamWhiteHat/GenericArithmetic/pkg/arithmetic"
	"github.com/AdamWhiteHat/GenericArithmetic/pkg/resolve"
)

func TestParse(t *testing.T) {
	d, err := Decimal{}.Parse("3.14")
	if err != nil {
		t.Fatalf("Parse(3.14) error: %v", err)
	}
	if d.String() != "3.14" {
		t.Errorf("String() = %q", d.String())
	}

	if _, err := (Decimal{}).Parse("not a number"); err == nil {
		t.Error("Parse(not a number) succeeded, want error")
	}
}

func TestArithmetic(t *testing.T) {
	a, b := MustParse("1.10"), MustParse("2.20")

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if !sum.Equal(MustParse("3.30")) {
		t.Errorf("1.10 + 2.20 = %s", sum)
	}

	q, err := MustParse("1").Div(MustParse("3"))
	if err != nil {
		t.Fatalf("Div error: %v", err)
	}
	if q.Cmp(MustParse("0.333")) <= 0 || q.Cmp(MustParse("0.334")) >= 0 {
		t.Errorf("1/3 = %s, outside (0.333, 0.334)", q)
	}
}

func TestEqualIgnoresScale(t *testing.T) {
	if !MustParse("1.5").Equal(MustParse("1.50")) {
		t.Error("1.5 != 1.50 by value")
	}
}

func TestNegAbsCmp(t *testing.T) {
	d := MustParse("2.5")
	if !d.Neg().Equal(MustParse("-2.5")) {
		t.Errorf("Neg(2.5) = %s", d.Neg())
	}
	if !d.Neg().Abs().Equal(d) {
		t.Errorf("Abs(-2.5) = %s", d.Neg().Abs())
	}
	if d.Cmp(MustParse("2.4")) != 1 {
		t.Error("2.5 Cmp 2.4 != 1")
	}
}

func TestSqrt(t *testing.T) {
	r, err := MustParse("2.25").Sqrt()
	if err != nil {
		t.Fatalf("Sqrt error: %v", err)
	}
	if !r.Equal(MustParse("1.5")) {
		t.Errorf("sqrt(2.25) = %s, want 1.5", r)
	}

	if _, err := MustParse("-1").Sqrt(); err == nil {
		t.Error("sqrt(-1) succeeded, want error")
	}
}

// The tests below drive Decimal through the resolution engine, covering
// the discovery path a caller actually takes.

func TestEngineDiscovery(t *testing.T) {
	sum := arithmetic.Add(MustParse("1.1"), MustParse("2.2"))
	if !sum.Equal(MustParse("3.3")) {
		t.Errorf("engine add = %s", sum)
	}

	if !arithmetic.GreaterThan(MustParse("2.5"), MustParse("2.4")) {
		t.Error("engine 2.5 > 2.4 = false")
	}

	got, err := arithmetic.Parse[Decimal]("42.5")
	if err != nil {
		t.Fatalf("engine parse error: %v", err)
	}
	if !got.Equal(MustParse("42.5")) {
		t.Errorf("engine parse = %s", got)
	}
}

func TestEngineShape(t *testing.T) {
	o := resolve.For[Decimal]()
	if o.IsIntegerShaped() {
		t.Error("Decimal reported integer-shaped, marker says otherwise")
	}
	if !o.IsDecimalShaped() {
		t.Error("Decimal not reported decimal-shaped")
	}
}

func TestEngineTruncateIdentity(t *testing.T) {
	// No Truncate method is declared, so the engine binds the identity.
	d := MustParse("3.9")
	if got := arithmetic.Truncate(d); !got.Equal(d) {
		t.Errorf("Truncate(3.9) = %s, want input unchanged", got)
	}
}

func TestEngineBytesUnsupported(t *testing.T) {
	_, err := resolve.For[Decimal]().Bytes()
	var uoErr *resolve.UnsupportedOperationError
	if !errors.As(err, &uoErr) {
		t.Fatalf("Bytes() error = %T, want *UnsupportedOperationError", err)
	}
}

func TestEngineGCDSubtractive(t *testing.T) {
	got := arithmetic.GCD(MustParse("12"), MustParse("8"))
	if !got.Equal(MustParse("4")) {
		t.Errorf("GCD(12, 8) = %s, want 4", got)
	}
}
