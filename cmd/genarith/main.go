package main

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"

	"github.com/AdamWhiteHat/GenericArithmetic/internal/config"
	"github.com/AdamWhiteHat/GenericArithmetic/pkg/arithmetic"
	"github.com/AdamWhiteHat/GenericArithmetic/pkg/decnum"
)

// Version can be set at build time using:
// -ldflags "-X main.Version=v1.2.3"
var Version = "dev"

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [options] <command> [args...]

Commands:
  gcd <a> <b> [c...]     greatest common divisor of two or more values
  divisors <n>           all divisors of n, in discovery order
  sqrt <n>               square root of n
  modpow <b> <e> <m>     b raised to e, modulo m
  classify <n>           shape and wholeness report for n
  fmt <n>                locale-formatted minimal text for n
  version                print the version

Options:
  -type <name>           numeric type to operate on: int64, uint32,
                         float64, bigint, rational, decimal, complex
  -locale <tag>          BCP 47 locale for output formatting
  -color <mode>          auto, always or never
  -config <path>         explicit config file (default: nearest %s)
`, os.Args[0], config.ConfigFileName)
}

// options are the effective settings after merging the config file and
// command-line flags. Flags win.
type options struct {
	typeName string
	locale   string
	color    string
}

func loadOptions(configPath string) (*options, error) {
	var file *config.File
	if configPath != "" {
		f, err := config.LoadFile(configPath)
		if err != nil {
			return nil, err
		}
		file = f
	} else {
		found, err := config.FindFile(".")
		if err != nil {
			return nil, err
		}
		if found != "" {
			f, err := config.LoadFile(found)
			if err != nil {
				return nil, err
			}
			file = f
		}
	}
	if file == nil {
		file = config.DefaultFile()
	}
	return &options{typeName: file.Type, locale: file.Locale, color: file.Color}, nil
}

// colorEnabled resolves the color mode against the environment.
// Auto mode follows the NO_COLOR convention and requires a terminal.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

func colorize(s string, enabled bool) string {
	if !enabled {
		return s
	}
	return "\x1b[32m" + s + "\x1b[0m"
}

// runner binds the generic operations to one concrete numeric type.
type runner struct {
	gcd      func(args []string) (string, error)
	divisors func(arg string) (string, error)
	sqrt     func(arg string) (string, error)
	modpow   func(b, e, m string) (string, error)
	classify func(arg string) (string, error)
	format   func(arg string) (string, error)
}

// capture converts a panicking operation into an error return. The
// arithmetic facade panics with typed errors for unsupported operations.
func capture(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = e
			return
		}
		*err = fmt.Errorf("%v", r)
	}
}

func newRunner[T any](tag language.Tag) runner {
	parse := func(s string) (T, error) {
		return arithmetic.Parse[T](s)
	}
	format := func(v T) string {
		return arithmetic.FormatNumber(v, tag)
	}

	return runner{
		gcd: func(args []string) (out string, err error) {
			defer capture(&err)
			vals := make([]T, 0, len(args))
			for _, a := range args {
				v, perr := parse(a)
				if perr != nil {
					return "", perr
				}
				vals = append(vals, v)
			}
			return format(arithmetic.GCDAll(vals...)), nil
		},
		divisors: func(arg string) (out string, err error) {
			defer capture(&err)
			v, perr := parse(arg)
			if perr != nil {
				return "", perr
			}
			parts := []string{}
			for _, d := range arithmetic.GetAllDivisors(v) {
				parts = append(parts, format(d))
			}
			return strings.Join(parts, " "), nil
		},
		sqrt: func(arg string) (out string, err error) {
			defer capture(&err)
			v, perr := parse(arg)
			if perr != nil {
				return "", perr
			}
			return format(arithmetic.SquareRoot(v)), nil
		},
		modpow: func(b, e, m string) (out string, err error) {
			defer capture(&err)
			bv, perr := parse(b)
			if perr != nil {
				return "", perr
			}
			ev, perr := parse(e)
			if perr != nil {
				return "", perr
			}
			mv, perr := parse(m)
			if perr != nil {
				return "", perr
			}
			return format(arithmetic.ModPow(bv, ev, mv)), nil
		},
		classify: func(arg string) (out string, err error) {
			defer capture(&err)
			v, perr := parse(arg)
			if perr != nil {
				return "", perr
			}
			lines := []string{
				fmt.Sprintf("whole:          %v", arithmetic.IsWholeNumber(v)),
				fmt.Sprintf("fractional:     %v", arithmetic.IsFractionalValue(v)),
				fmt.Sprintf("integer type:   %v", arithmetic.IsIntegerType[T]()),
				fmt.Sprintf("floating type:  %v", arithmetic.IsFloatingPointType[T]()),
			}
			return strings.Join(lines, "\n"), nil
		},
		format: func(arg string) (out string, err error) {
			defer capture(&err)
			v, perr := parse(arg)
			if perr != nil {
				return "", perr
			}
			return format(v), nil
		},
	}
}

var runners = map[string]func(language.Tag) runner{
	"int64":    newRunner[int64],
	"uint32":   newRunner[uint32],
	"float64":  newRunner[float64],
	"bigint":   newRunner[*big.Int],
	"rational": newRunner[*big.Rat],
	"decimal":  newRunner[decnum.Decimal],
	"complex":  newRunner[complex128],
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	var configPath string
	flagOverrides := map[string]string{}
	var rest []string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-type", "--type", "-locale", "--locale", "-color", "--color", "-config", "--config":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "Error: %s requires a value\n", arg)
				os.Exit(1)
			}
			i++
			name := strings.TrimLeft(arg, "-")
			if name == "config" {
				configPath = args[i]
			} else {
				flagOverrides[name] = args[i]
			}
		case "-h", "--help", "help":
			usage()
			return
		default:
			rest = append(rest, arg)
		}
	}

	if len(rest) == 0 {
		usage()
		os.Exit(1)
	}

	if rest[0] == "version" {
		fmt.Println(Version)
		return
	}

	opts, err := loadOptions(configPath)
	if err != nil {
		fail(err)
	}
	if v, ok := flagOverrides["type"]; ok {
		opts.typeName = v
	}
	if v, ok := flagOverrides["locale"]; ok {
		opts.locale = v
	}
	if v, ok := flagOverrides["color"]; ok {
		opts.color = v
	}

	tag, err := language.Parse(opts.locale)
	if err != nil {
		fail(fmt.Errorf("invalid locale %q: %w", opts.locale, err))
	}

	makeRunner, ok := runners[opts.typeName]
	if !ok {
		fail(fmt.Errorf("unknown type %q (want one of: int64, uint32, float64, bigint, rational, decimal, complex)", opts.typeName))
	}
	r := makeRunner(tag)

	command, cmdArgs := rest[0], rest[1:]
	need := func(n int) {
		if len(cmdArgs) != n {
			fmt.Fprintf(os.Stderr, "Error: %s takes exactly %d argument(s)\n", command, n)
			os.Exit(1)
		}
	}

	var out string
	switch command {
	case "gcd":
		if len(cmdArgs) < 2 {
			fmt.Fprintf(os.Stderr, "Error: gcd takes at least 2 arguments\n")
			os.Exit(1)
		}
		out, err = r.gcd(cmdArgs)
	case "divisors":
		need(1)
		out, err = r.divisors(cmdArgs[0])
	case "sqrt":
		need(1)
		out, err = r.sqrt(cmdArgs[0])
	case "modpow":
		need(3)
		out, err = r.modpow(cmdArgs[0], cmdArgs[1], cmdArgs[2])
	case "classify":
		need(1)
		out, err = r.classify(cmdArgs[0])
	case "fmt":
		need(1)
		out, err = r.format(cmdArgs[0])
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", command)
		usage()
		os.Exit(1)
	}
	if err != nil {
		fail(err)
	}
	fmt.Println(colorize(out, colorEnabled(opts.color)))
}
