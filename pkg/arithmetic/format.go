package arithmetic

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/AdamWhiteHat/GenericArithmetic/internal/config"
	"github.com/AdamWhiteHat/GenericArithmetic/pkg/cplx"
	"github.com/AdamWhiteHat/GenericArithmetic/pkg/resolve"
)

var separatorCache sync.Map // language.Tag -> rune

// decimalSeparator discovers the decimal separator of a locale by rendering
// a known fractional value through the locale's number formatter and
// picking out the non-digit rune.
func decimalSeparator(tag language.Tag) rune {
	if v, ok := separatorCache.Load(tag); ok {
		return v.(rune)
	}
	sep := '.'
	rendered := message.NewPrinter(tag).Sprint(number.Decimal(1.5))
	for _, r := range rendered {
		if r < '0' || r > '9' {
			sep = r
			break
		}
	}
	separatorCache.Store(tag, sep)
	return sep
}

// naturalText is T's own text representation, before locale adjustment.
func naturalText[T any](v T) string {
	switch x := any(v).(type) {
	case *big.Rat:
		return x.FloatString(10)
	case complex128:
		return cplx.Format(x)
	case complex64:
		return cplx.Format(complex128(x))
	case fmt.Stringer:
		return x.String()
	}
	o := resolve.For[T]()
	if o.IsComplexShaped() && o.IsPrimitive() {
		return cplx.Format(reflect.ValueOf(v).Complex())
	}
	return fmt.Sprint(v)
}

// FormatNumber renders v as minimal decimal text for a locale: the text is
// rewritten to the locale's decimal separator, trailing zero digits after
// the separator are trimmed, and a then-trailing separator is trimmed too
// ("3.1400" becomes "3.14", "3.000" becomes "3").
func FormatNumber[T any](v T, tag language.Tag) string {
	text := naturalText(v)
	sep := decimalSeparator(tag)
	if sep != '.' {
		text = strings.Replace(text, ".", string(sep), 1)
	}
	if !strings.ContainsRune(text, sep) || strings.ContainsAny(text, "eE") {
		return text
	}
	text = strings.TrimRight(text, "0")
	text = strings.TrimSuffix(text, string(sep))
	return text
}

// ToString renders v for the default locale.
func ToString[T any](v T) string {
	return FormatNumber(v, language.MustParse(config.DefaultLocale))
}
