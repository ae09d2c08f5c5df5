package arithmetic

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
	"testing"

	"github.com/AdamWhiteHat/GenericArithmetic/pkg/resolve"
)

// ratio is a decimal-shaped custom type carrying exact rationals. It has
// no Mod method, so GCD over it must take the subtractive path.
type ratio struct {
	num, den int64
}

func ratioGCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func newRatio(n, d int64) ratio {
	if d < 0 {
		n, d = -n, -d
	}
	if n == 0 {
		return ratio{0, 1}
	}
	g := ratioGCD(n, d)
	return ratio{n / g, d / g}
}

func (r ratio) Add(o ratio) ratio { return newRatio(r.num*o.den+o.num*r.den, r.den*o.den) }
func (r ratio) Sub(o ratio) ratio { return newRatio(r.num*o.den-o.num*r.den, r.den*o.den) }
func (r ratio) Mul(o ratio) ratio { return newRatio(r.num*o.num, r.den*o.den) }
func (r ratio) Div(o ratio) ratio { return newRatio(r.num*o.den, r.den*o.num) }

func (r ratio) Abs() ratio {
	if r.num < 0 {
		return ratio{-r.num, r.den}
	}
	return r
}

func (r ratio) Cmp(o ratio) int {
	l, rr := r.num*o.den, o.num*r.den
	switch {
	case l < rr:
		return -1
	case l > rr:
		return 1
	default:
		return 0
	}
}

func (ratio) Parse(s string) (ratio, error) {
	num, den := s, "1"
	if i := strings.IndexByte(s, '/'); i >= 0 {
		num, den = s[:i], s[i+1:]
	}
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return ratio{}, err
	}
	d, err := strconv.ParseInt(den, 10, 64)
	if err != nil || d == 0 {
		return ratio{}, errors.New("cannot parse " + strconv.Quote(s) + " as ratio")
	}
	return newRatio(n, d), nil
}

func (ratio) IsIntegerShaped() bool { return false }

func TestBasicOperations(t *testing.T) {
	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{"add", Add[int64](7, 3), 10},
		{"subtract", Subtract[int64](7, 3), 4},
		{"multiply", Multiply[int64](7, 3), 21},
		{"divide", Divide[int64](7, 3), 2},
		{"modulo", Modulo[int64](7, 3), 1},
		{"power", Power[int64](2, 10), 1024},
		{"negate", Negate[int64](5), -5},
		{"abs", Abs[int64](-5), 5},
		{"increment", Increment[int64](41), 42},
		{"decrement", Decrement[int64](43), 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestAddCommutative(t *testing.T) {
	pairs := [][2]int64{{1, 2}, {-7, 13}, {0, 42}, {1 << 40, 3}}
	for _, p := range pairs {
		if Add(p[0], p[1]) != Add(p[1], p[0]) {
			t.Errorf("Add(%d, %d) is not commutative", p[0], p[1])
		}
	}
	fpairs := [][2]float64{{1.5, 2.25}, {-0.1, 0.7}}
	for _, p := range fpairs {
		if Add(p[0], p[1]) != Add(p[1], p[0]) {
			t.Errorf("Add(%v, %v) is not commutative", p[0], p[1])
		}
	}
}

func TestComparisons(t *testing.T) {
	if !GreaterThan[int64](3, 2) || GreaterThan[int64](2, 3) {
		t.Error("GreaterThan misordered")
	}
	if !LessThanOrEqual[int64](3, 3) {
		t.Error("LessThanOrEqual(3, 3) = false")
	}
	if !Equal[int64](3, 3) || Equal[int64](3, 4) {
		t.Error("Equal misreported")
	}
	if !NotEqual[int64](3, 4) {
		t.Error("NotEqual(3, 4) = false")
	}
}

func TestMaxMin(t *testing.T) {
	if got := Max[int64](3, 7); got != 7 {
		t.Errorf("Max(3, 7) = %d", got)
	}
	if got := Min[int64](3, 7); got != 3 {
		t.Errorf("Min(3, 7) = %d", got)
	}
	a, b := big.NewRat(1, 2), big.NewRat(1, 3)
	if got := Max(a, b); got.Cmp(a) != 0 {
		t.Errorf("Max(1/2, 1/3) = %s", got.RatString())
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		input int64
		want  int
	}{
		{5, 1}, {-5, -1}, {0, 0},
	}
	for _, tt := range tests {
		if got := Sign(tt.input); got != tt.want {
			t.Errorf("Sign(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}

	// Comparison-based, so it also covers types with no native sign.
	if got := Sign(big.NewInt(-7)); got != -1 {
		t.Errorf("Sign(-7) = %d, want -1", got)
	}
	if got := Sign(big.NewRat(1, 3)); got != 1 {
		t.Errorf("Sign(1/3) = %d, want 1", got)
	}
}

func TestDivRem(t *testing.T) {
	q, r := DivRem[int64](7, 3)
	if q != 2 || r != 1 {
		t.Errorf("DivRem(7, 3) = %d, %d, want 2, 1", q, r)
	}
	q, r = DivRem[int64](-7, 3)
	if q != -2 || r != -1 {
		t.Errorf("DivRem(-7, 3) = %d, %d, want -2, -1", q, r)
	}
}

func TestParse(t *testing.T) {
	got, err := Parse[int64]("-42")
	if err != nil {
		t.Fatalf("Parse(-42) error: %v", err)
	}
	if got != -42 {
		t.Errorf("Parse(-42) = %d", got)
	}

	if _, err := Parse[int64]("x"); err == nil {
		t.Error("Parse(x) succeeded, want error")
	}

	r, err := Parse[*big.Rat]("22/7")
	if err != nil {
		t.Fatalf("Parse(22/7) error: %v", err)
	}
	if r.Cmp(big.NewRat(22, 7)) != 0 {
		t.Errorf("Parse(22/7) = %s", r.RatString())
	}
}

func TestConstants(t *testing.T) {
	if MinusOne[int64]() != -1 || Zero[int64]() != 0 || One[int64]() != 1 || Two[int64]() != 2 {
		t.Error("int64 constants wrong")
	}
	if Two[*big.Rat]().Cmp(big.NewRat(2, 1)) != 0 {
		t.Error("Two[*big.Rat] wrong")
	}
	if One[ratio]() != (ratio{1, 1}) {
		t.Error("One[ratio] wrong")
	}
}

func TestUnsupportedOperationPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Modulo over complex128 did not panic")
		}
		var uoErr *resolve.UnsupportedOperationError
		if !errors.As(r.(error), &uoErr) {
			t.Errorf("panic value = %T, want *resolve.UnsupportedOperationError", r)
		}
	}()
	Modulo[complex128](complex(1, 0), complex(2, 0))
}

func TestComplexSurrogateOrdering(t *testing.T) {
	if !GreaterThan(complex(1, 0), complex(-3, 4)) {
		t.Error("1 > (-3+4i) = false, want true by signed magnitude")
	}
	if Equal(complex(3, 4), complex(4, 3)) {
		t.Error("equal magnitudes reported as equal values")
	}
	if !GreaterThanOrEqual(complex(3, 4), complex(4, 3)) {
		t.Error("(3+4i) >= (4+3i) = false, want true (equal magnitudes)")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate(3.9); got != 3 {
		t.Errorf("Truncate(3.9) = %v", got)
	}
	if got := Truncate[int64](42); got != 42 {
		t.Errorf("Truncate(42) = %v", got)
	}
	// Custom types without a Truncate method pass through unchanged.
	in := ratio{7, 2}
	if got := Truncate(in); got != in {
		t.Errorf("Truncate(7/2) = %v, want input unchanged", got)
	}
}
