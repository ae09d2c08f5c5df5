package cplx

import (
	"errors"
	"math/cmplx"
	"testing"
)

func TestSignedMagnitude(t *testing.T) {
	tests := []struct {
		name  string
		input complex128
		want  float64
	}{
		{"zero", 0, 0},
		{"positive real", complex(3, 0), 3},
		{"negative real", complex(-3, 0), -3},
		{"3+4i", complex(3, 4), 5},
		{"-3+4i", complex(-3, 4), -5},
		{"pure imaginary", complex(0, 2), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignedMagnitude(tt.input); got != tt.want {
				t.Errorf("SignedMagnitude(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b complex128
		want int
	}{
		{"equal magnitudes", complex(3, 4), complex(4, 3), 0},
		{"smaller", complex(1, 1), complex(3, 4), -1},
		{"larger", complex(3, 4), complex(1, 1), 1},
		{"negative real sorts below", complex(-3, 4), complex(1, 0), -1},
		{"both negative", complex(-3, 4), complex(-1, 0), -1},
		{"equal values", complex(2, 2), complex(2, 2), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsWhole(t *testing.T) {
	tests := []struct {
		name  string
		input complex128
		want  bool
	}{
		{"integer real", complex(4, 0), true},
		{"zero", 0, true},
		{"negative integer", complex(-7, 0), true},
		{"fractional real", complex(4.5, 0), false},
		{"nonzero imaginary", complex(4, 1), false},
		{"tiny imaginary", complex(4, 0.0001), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWhole(tt.input); got != tt.want {
				t.Errorf("IsWhole(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    complex128
		wantErr bool
	}{
		{"(3, 4)", complex(3, 4), false},
		{"(3,4)", complex(3, 4), false},
		{"( -1.5 , 2 )", complex(-1.5, 2), false},
		{"3.25", complex(3.25, 0), false},
		{"-7", complex(-7, 0), false},
		{"(42)", complex(42, 0), false},
		{"", 0, true},
		{"   ", 0, true},
		{"(1, 2, 3)", 0, true},
		{"(a, 2)", 0, true},
		{"(1, b)", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrorTypes(t *testing.T) {
	_, err := Parse("   ")
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Errorf("Parse(blank) error = %T, want *ArgumentError", err)
	}

	_, err = Parse("(1, 2, 3)")
	var fmtErr *FormatError
	if !errors.As(err, &fmtErr) {
		t.Fatalf("Parse(three components) error = %T, want *FormatError", err)
	}
	if fmtErr.Input != "(1, 2, 3)" {
		t.Errorf("FormatError.Input = %q, want %q", fmtErr.Input, "(1, 2, 3)")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		input complex128
		want  string
	}{
		{complex(3, 4), "(3, 4)"},
		{complex(-1.5, 0), "(-1.5, 0)"},
		{0, "(0, 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Format(tt.input); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	values := []complex128{
		0,
		complex(3, 4),
		complex(-2.25, 17),
		complex(1e-8, -1e8),
	}
	for _, v := range values {
		got, err := Parse(Format(v))
		if err != nil {
			t.Fatalf("Parse(Format(%v)) error: %v", v, err)
		}
		if got != v {
			t.Errorf("Parse(Format(%v)) = %v", v, got)
		}
	}
}

func FuzzParse(f *testing.F) {
	f.Add("(3, 4)")
	f.Add("-1.5")
	f.Add("(1, 2, 3)")
	f.Add("")
	f.Add("(NaN, Inf)")
	f.Fuzz(func(t *testing.T, s string) {
		c, err := Parse(s)
		if err != nil {
			return
		}
		if cmplx.IsNaN(c) {
			return
		}
		back, err := Parse(Format(c))
		if err != nil {
			t.Fatalf("Parse(Format(%v)) error: %v", c, err)
		}
		if back != c {
			t.Errorf("round trip of %q: got %v, want %v", s, back, c)
		}
	})
}
