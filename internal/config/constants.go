package config

// Canonical decimal text for the per-type constants. Each numeric type parses
// these once through its resolved parse binding; the texts contain no decimal
// separator so they are locale-invariant.
const (
	MinusOneText = "-1"
	ZeroText     = "0"
	OneText      = "1"
	TwoText      = "2"
)

// DefaultLocale is the BCP 47 tag used for number formatting when the caller
// does not configure one.
const DefaultLocale = "en-US"

// Method names searched on custom types, in preference order per operation.
var (
	AddMethodNames      = []string{"Add"}
	SubMethodNames      = []string{"Sub", "Subtract"}
	MulMethodNames      = []string{"Mul", "Multiply"}
	DivMethodNames      = []string{"Div", "Quo", "Divide"}
	ModMethodNames      = []string{"Mod", "Rem"}
	PowMethodNames      = []string{"Pow"}
	PowIntMethodNames   = []string{"PowInt", "Pow"}
	NegMethodNames      = []string{"Neg", "Negate"}
	AbsMethodNames      = []string{"Abs"}
	SqrtMethodNames     = []string{"Sqrt"}
	TruncateMethodNames = []string{"Truncate", "Trunc"}
	ModPowMethodNames   = []string{"ModPow"}
	LogMethodNames      = []string{"Log"}
	BytesMethodNames    = []string{"Bytes", "ToByteArray"}
	CmpMethodName       = "Cmp"
	EqualMethodName     = "Equal"
	ParseMethodName     = "Parse"
	SetStringMethodName = "SetString"
)

// IntegerShapedMethodName is the explicit marker a custom type can declare to
// opt out of the name-based integer/decimal heuristic.
const IntegerShapedMethodName = "IsIntegerShaped"

// CLI defaults.
const (
	ConfigFileName     = ".genarith.yaml"
	DefaultNumericType = "int64"
)
