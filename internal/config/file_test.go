package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFileDefaults(t *testing.T) {
	f, err := ParseFile([]byte(""), "test.yaml")
	if err != nil {
		t.Fatalf("ParseFile(empty) error: %v", err)
	}
	if f.Type != DefaultNumericType {
		t.Errorf("Type = %q, want %q", f.Type, DefaultNumericType)
	}
	if f.Locale != DefaultLocale {
		t.Errorf("Locale = %q, want %q", f.Locale, DefaultLocale)
	}
	if f.Color != "auto" {
		t.Errorf("Color = %q, want auto", f.Color)
	}
}

func TestParseFileValues(t *testing.T) {
	data := []byte("type: bigint\nlocale: de-DE\ncolor: never\n")
	f, err := ParseFile(data, "test.yaml")
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if f.Type != "bigint" || f.Locale != "de-DE" || f.Color != "never" {
		t.Errorf("parsed = %+v", f)
	}
}

func TestParseFileInvalid(t *testing.T) {
	if _, err := ParseFile([]byte("color: sometimes\n"), "test.yaml"); err == nil {
		t.Error("invalid color accepted")
	}
	if _, err := ParseFile([]byte("{not yaml"), "test.yaml"); err == nil {
		t.Error("malformed yaml accepted")
	}
}

func TestFindFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(root, ConfigFileName)
	if err := os.WriteFile(cfgPath, []byte("type: float64\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := FindFile(nested)
	if err != nil {
		t.Fatalf("FindFile error: %v", err)
	}
	if found != cfgPath {
		t.Errorf("FindFile = %q, want %q", found, cfgPath)
	}
}

func TestFindFileAbsent(t *testing.T) {
	found, err := FindFile(t.TempDir())
	if err != nil {
		t.Fatalf("FindFile error: %v", err)
	}
	if found != "" {
		t.Errorf("FindFile = %q, want empty", found)
	}
}
