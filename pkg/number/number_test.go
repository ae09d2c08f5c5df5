package number

import (
	"math/big"
	"testing"
)

func TestChainedArithmetic(t *testing.T) {
	// (3 + 4) * 2 - 5 = 9
	got := New[int64](3).Add(New[int64](4)).Multiply(New[int64](2)).Subtract(New[int64](5))
	if got.Value() != 9 {
		t.Errorf("(3+4)*2-5 = %d, want 9", got.Value())
	}
}

func TestFromString(t *testing.T) {
	n, err := FromString[*big.Rat]("22/7")
	if err != nil {
		t.Fatalf("FromString(22/7) error: %v", err)
	}
	if n.Value().Cmp(big.NewRat(22, 7)) != 0 {
		t.Errorf("FromString(22/7) = %s", n.Value().RatString())
	}

	if _, err := FromString[int64]("x"); err == nil {
		t.Error("FromString(x) succeeded, want error")
	}
}

func TestComparisons(t *testing.T) {
	a, b := New[int64](3), New[int64](7)
	if !a.LessThan(b) || a.GreaterThan(b) {
		t.Error("ordering misreported")
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("Compare misreported")
	}
	if !a.Equal(New[int64](3)) {
		t.Error("Equal(3, 3) = false")
	}
}

func TestUnary(t *testing.T) {
	if got := New[int64](-5).Abs().Value(); got != 5 {
		t.Errorf("Abs(-5) = %d", got)
	}
	if got := New[int64](5).Negate().Value(); got != -5 {
		t.Errorf("Negate(5) = %d", got)
	}
	if got := New(2.25).SquareRoot().Value(); got != 1.5 {
		t.Errorf("SquareRoot(2.25) = %v", got)
	}
	if got := New[int64](41).Increment().Value(); got != 42 {
		t.Errorf("Increment(41) = %d", got)
	}
}

func TestSignAndString(t *testing.T) {
	if New[int64](-3).Sign() != -1 || New[int64](3).Sign() != 1 || Zero[int64]().Sign() != 0 {
		t.Error("Sign misreported")
	}
	if got := New(big.NewRat(157, 50)).String(); got != "3.14" {
		t.Errorf("String() = %q, want %q", got, "3.14")
	}
}

func TestIdentities(t *testing.T) {
	if Zero[int64]().Value() != 0 || One[int64]().Value() != 1 {
		t.Error("identity constants wrong")
	}
	v := New[int64](42)
	if !v.Add(Zero[int64]()).Equal(v) {
		t.Error("v + 0 != v")
	}
	if !v.Multiply(One[int64]()).Equal(v) {
		t.Error("v * 1 != v")
	}
}
