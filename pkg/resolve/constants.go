package resolve

import (
	"github.com/AdamWhiteHat/GenericArithmetic/internal/config"
)

// Per-type constants, derived once from their canonical decimal text
// through the resolved parse binding. Each constant resolves lazily and
// independently, so an unsigned type can still obtain Zero even though
// parsing "-1" fails for it.

const (
	constMinusOne = iota
	constZero
	constOne
	constTwo
)

var constTexts = [4]string{
	constMinusOne: config.MinusOneText,
	constZero:     config.ZeroText,
	constOne:      config.OneText,
	constTwo:      config.TwoText,
}

func (o *Ops[T]) constant(i int) (T, error) {
	return resolveSlot(&o.consts[i], func() (T, error) {
		var zero T
		parse, err := o.Parse()
		if err != nil {
			return zero, err
		}
		return parse(constTexts[i])
	})
}

// MinusOne returns the constant -1 for T.
func (o *Ops[T]) MinusOne() (T, error) { return o.constant(constMinusOne) }

// Zero returns the constant 0 for T.
func (o *Ops[T]) Zero() (T, error) { return o.constant(constZero) }

// One returns the constant 1 for T.
func (o *Ops[T]) One() (T, error) { return o.constant(constOne) }

// Two returns the constant 2 for T.
func (o *Ops[T]) Two() (T, error) { return o.constant(constTwo) }
