package resolve

// Integer-biased bisection square root, used as the fallback binding when a
// type has no native square root. Exact only where squared midpoints can
// equal x exactly; for continuous types it converges to within one unit of
// T's representable granularity.

// bisectionSqrtOp assembles the fallback into a unary binding. Resolution
// fails if the type lacks the arithmetic and comparison operations the
// search needs.
func (o *Ops[T]) bisectionSqrtOp() (UnaryOp[T], error) {
	fn, err := o.bisection()
	if err != nil {
		return nil, err
	}
	return fn, nil
}

// SqrtBisect searches [0, abs(x)+1) for the value whose square is closest
// to x without exceeding it. Zero maps to zero; for a perfect square the
// exact root is returned.
func (o *Ops[T]) SqrtBisect(x T) (T, error) {
	fn, err := o.bisection()
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(x), nil
}

func (o *Ops[T]) bisection() (func(T) T, error) {
	add, err := o.Binary(TagAdd)
	if err != nil {
		return nil, err
	}
	mul, err := o.Binary(TagMul)
	if err != nil {
		return nil, err
	}
	div, err := o.Binary(TagDiv)
	if err != nil {
		return nil, err
	}
	gt, err := o.Compare(TagGT)
	if err != nil {
		return nil, err
	}
	lt, err := o.Compare(TagLT)
	if err != nil {
		return nil, err
	}
	eq, err := o.Compare(TagEQ)
	if err != nil {
		return nil, err
	}
	abs, err := o.Abs()
	if err != nil {
		return nil, err
	}
	zero, err := o.Zero()
	if err != nil {
		return nil, err
	}
	one, err := o.One()
	if err != nil {
		return nil, err
	}
	two, err := o.Two()
	if err != nil {
		return nil, err
	}
	return func(x T) T {
		if eq(x, zero) {
			return zero
		}
		low := zero
		high := add(abs(x), one)
		for gt(high, add(low, one)) {
			mid := div(add(low, high), two)
			sq := mul(mid, mid)
			switch {
			case gt(sq, x):
				high = mid
			case lt(sq, x):
				low = mid
			default:
				return mid
			}
		}
		return low
	}, nil
}
