package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File represents the optional .genarith.yaml configuration used by the
// command-line tool.
type File struct {
	// Type selects the numeric type operations run over.
	// One of: int64, uint32, float64, bigint, rational, decimal, complex.
	Type string `yaml:"type,omitempty"`

	// Locale is a BCP 47 tag used when formatting results (e.g. "de-DE").
	Locale string `yaml:"locale,omitempty"`

	// Color controls ANSI output: auto, always or never.
	Color string `yaml:"color,omitempty"`
}

// DefaultFile is the configuration used when no .genarith.yaml exists.
func DefaultFile() *File {
	f := &File{}
	f.setDefaults()
	return f
}

// LoadFile reads and parses a .genarith.yaml file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseFile(data, path)
}

// ParseFile parses .genarith.yaml content from bytes.
// The path argument is used only for error messages.
func ParseFile(data []byte, path string) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := f.validate(path); err != nil {
		return nil, err
	}
	f.setDefaults()
	return &f, nil
}

// FindFile searches for .genarith.yaml starting from dir and walking up
// to parent directories. Returns the path and nil if found, or empty
// string and nil if no config exists on the way to the filesystem root.
func FindFile(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (f *File) validate(path string) error {
	switch f.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("%s: invalid color %q (want auto, always or never)", path, f.Color)
	}
	return nil
}

func (f *File) setDefaults() {
	if f.Type == "" {
		f.Type = DefaultNumericType
	}
	if f.Locale == "" {
		f.Locale = DefaultLocale
	}
	if f.Color == "" {
		f.Color = "auto"
	}
}
