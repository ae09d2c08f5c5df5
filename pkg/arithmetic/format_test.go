package arithmetic

import (
	"math/big"
	"testing"

	"golang.org/x/text/language"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"int64", ToString[int64](42), "42"},
		{"negative int64", ToString[int64](-7), "-7"},
		{"float with fraction", ToString(3.14), "3.14"},
		{"whole float", ToString(3.0), "3"},
		{"rational trims padding", ToString(big.NewRat(157, 50)), "3.14"},
		{"whole rational trims to integer", ToString(big.NewRat(3, 1)), "3"},
		{"half", ToString(big.NewRat(1, 2)), "0.5"},
		{"complex literal", ToString(complex(3.5, 0)), "(3.5, 0)"},
		{"big.Int", ToString(big.NewInt(1000)), "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestFormatNumberLocale(t *testing.T) {
	de := language.MustParse("de-DE")
	if got := FormatNumber(big.NewRat(157, 50), de); got != "3,14" {
		t.Errorf("FormatNumber(157/50, de-DE) = %q, want %q", got, "3,14")
	}
	if got := FormatNumber[int64](42, de); got != "42" {
		t.Errorf("FormatNumber(42, de-DE) = %q, want %q", got, "42")
	}

	us := language.MustParse("en-US")
	if got := FormatNumber(big.NewRat(1, 4), us); got != "0.25" {
		t.Errorf("FormatNumber(1/4, en-US) = %q, want %q", got, "0.25")
	}
}

func TestFormatNumberKeepsExponentForm(t *testing.T) {
	us := language.MustParse("en-US")
	// Exponent renderings are passed through untouched; trimming zeros
	// there would change the value.
	if got := FormatNumber(1e21, us); got != "1e+21" {
		t.Errorf("FormatNumber(1e21) = %q, want %q", got, "1e+21")
	}
}

func TestFormatNumberCustomStringer(t *testing.T) {
	us := language.MustParse("en-US")
	// ratio has no String method, so it renders through fmt.
	if got := FormatNumber(ratio{1, 2}, us); got == "" {
		t.Error("FormatNumber(ratio) = empty string")
	}
}
