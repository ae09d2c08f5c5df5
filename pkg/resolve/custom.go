package resolve

import (
	"fmt"
	"reflect"

	"github.com/AdamWhiteHat/GenericArithmetic/internal/config"
	"github.com/AdamWhiteHat/GenericArithmetic/internal/numkind"
)

// Custom-type discovery. The resolver searches the method sets of T and *T
// for operator-like methods (Add, Sub, Cmp, Parse, ...), checking arity and
// parameter shape, and adapts what it finds: parameters are converted from
// T where the declared type differs, results are converted back to T, and a
// trailing error result panics through the binding when non-nil (resolution
// itself never returns a partially bound operation).

var (
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
	stringType    = reflect.TypeOf("")
	byteSliceType = reflect.TypeOf([]byte(nil))
)

// boundMethod is a discovered method plus the receiver adjustment needed to
// call it.
type boundMethod struct {
	method    reflect.Method
	onPointer bool // method lives on *T while T is a value type
}

func (m boundMethod) call(recv reflect.Value, args []reflect.Value) []reflect.Value {
	if m.onPointer {
		p := reflect.New(recv.Type())
		p.Elem().Set(recv)
		recv = p
	}
	return m.method.Func.Call(append([]reflect.Value{recv}, args...))
}

// argType is the declared type of argument i (0-based, receiver excluded).
func (m boundMethod) argType(i int) reflect.Type { return m.method.Type.In(i + 1) }

// findMethod locates a method by name on T or *T.
func findMethod(info numkind.Info, name string) (boundMethod, error) {
	t := info.Type
	if m, ok := t.MethodByName(name); ok {
		return boundMethod{method: m}, nil
	}
	if t.Kind() != reflect.Pointer {
		if m, ok := reflect.PointerTo(t).MethodByName(name); ok {
			return boundMethod{method: m, onPointer: true}, nil
		}
	}
	return boundMethod{}, unsupported(info.Name, name)
}

// methodWithShape searches names in order for a method taking nargs
// arguments whose types satisfy argOK, returning either T (or a type
// convertible to T) alone or with a trailing error.
func methodWithShape(info numkind.Info, op string, names []string, nargs int, argOK func(boundMethod) bool) (boundMethod, error) {
	t := info.Type
	for _, name := range names {
		m, err := findMethod(info, name)
		if err != nil {
			continue
		}
		mt := m.method.Type
		if mt.NumIn() != nargs+1 {
			continue
		}
		switch mt.NumOut() {
		case 1:
			if !mt.Out(0).ConvertibleTo(t) {
				continue
			}
		case 2:
			if !mt.Out(0).ConvertibleTo(t) || !mt.Out(1).Implements(errorType) {
				continue
			}
		default:
			continue
		}
		if argOK != nil && !argOK(m) {
			continue
		}
		return m, nil
	}
	return boundMethod{}, unsupported(info.Name, op)
}

// valueArgs reports whether every non-receiver argument accepts a T.
func valueArgs(t reflect.Type) func(boundMethod) bool {
	return func(m boundMethod) bool {
		for i := 1; i < m.method.Type.NumIn(); i++ {
			if !t.ConvertibleTo(m.method.Type.In(i)) {
				return false
			}
		}
		return true
	}
}

// adaptResult converts a method's results into a plain T, panicking on a
// non-nil trailing error.
func adaptResult[T any](t reflect.Type, outs []reflect.Value) T {
	if len(outs) == 2 && !outs[1].IsNil() {
		panic(outs[1].Interface().(error))
	}
	return toT[T](t, outs[0])
}

func convertArg(v reflect.Value, want reflect.Type) reflect.Value {
	if v.Type() == want {
		return v
	}
	return v.Convert(want)
}

func methodNamesForTag(tag string) []string {
	switch tag {
	case TagAdd:
		return config.AddMethodNames
	case TagSub:
		return config.SubMethodNames
	case TagMul:
		return config.MulMethodNames
	case TagDiv:
		return config.DivMethodNames
	case TagMod:
		return config.ModMethodNames
	case TagPow:
		return config.PowMethodNames
	default:
		return nil
	}
}

func customBinary[T any](info numkind.Info, tag string) (BinaryOp[T], error) {
	t := info.Type
	m, err := methodWithShape(info, tag, methodNamesForTag(tag), 1, valueArgs(t))
	if err != nil {
		return nil, err
	}
	return func(a, b T) T {
		rb := convertArg(reflect.ValueOf(b), m.argType(0))
		return adaptResult[T](t, m.call(reflect.ValueOf(a), []reflect.Value{rb}))
	}, nil
}

func customUnary[T any](info numkind.Info, op string, names []string) (UnaryOp[T], error) {
	t := info.Type
	m, err := methodWithShape(info, op, names, 0, nil)
	if err != nil {
		return nil, err
	}
	return func(v T) T {
		return adaptResult[T](t, m.call(reflect.ValueOf(v), nil))
	}, nil
}

// customCompare derives all six comparison tags from a three-way Cmp
// method; equality prefers an Equal method when the type declares one.
func customCompare[T any](info numkind.Info, tag string) (CompareOp[T], error) {
	t := info.Type
	if tag == TagEQ || tag == TagNE {
		if m, err := findMethod(info, config.EqualMethodName); err == nil {
			mt := m.method.Type
			if mt.NumIn() == 2 && t.ConvertibleTo(mt.In(1)) &&
				mt.NumOut() == 1 && mt.Out(0).Kind() == reflect.Bool {
				negate := tag == TagNE
				return func(a, b T) bool {
					rb := convertArg(reflect.ValueOf(b), mt.In(1))
					eq := m.call(reflect.ValueOf(a), []reflect.Value{rb})[0].Bool()
					return eq != negate
				}, nil
			}
		}
	}
	m, err := findMethod(info, config.CmpMethodName)
	if err != nil {
		return nil, unsupported(info.Name, tag)
	}
	mt := m.method.Type
	if mt.NumIn() != 2 || !t.ConvertibleTo(mt.In(1)) ||
		mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Int {
		return nil, unsupported(info.Name, tag)
	}
	pred, err := comparePredicate(info, tag)
	if err != nil {
		return nil, err
	}
	return func(a, b T) bool {
		rb := convertArg(reflect.ValueOf(b), mt.In(1))
		return pred(int(m.call(reflect.ValueOf(a), []reflect.Value{rb})[0].Int()))
	}, nil
}

// customParse requires a Parse method taking exactly one string argument
// (the receiver is a zero value and carries no information), or a big-style
// SetString on the pointer receiver.
func customParse[T any](info numkind.Info) (ParseOp[T], error) {
	t := info.Type
	if m, err := findMethod(info, config.ParseMethodName); err == nil {
		mt := m.method.Type
		if mt.NumIn() == 2 && mt.In(1) == stringType &&
			mt.NumOut() == 2 && mt.Out(0).ConvertibleTo(t) && mt.Out(1).Implements(errorType) {
			return func(s string) (T, error) {
				var zero T
				outs := m.call(reflect.ValueOf(zero), []reflect.Value{reflect.ValueOf(s)})
				if !outs[1].IsNil() {
					return zero, outs[1].Interface().(error)
				}
				return toT[T](t, outs[0]), nil
			}, nil
		}
	}
	if m, err := findMethod(info, config.SetStringMethodName); err == nil {
		mt := m.method.Type
		if mt.NumIn() == 2 && mt.In(1) == stringType && mt.NumOut() >= 1 {
			return func(s string) (T, error) {
				var zero T
				recv := reflect.New(t).Elem()
				if t.Kind() == reflect.Pointer {
					recv = reflect.New(t.Elem())
				}
				outs := m.call(recv, []reflect.Value{reflect.ValueOf(s)})
				last := outs[len(outs)-1]
				if last.Kind() == reflect.Bool && !last.Bool() {
					return zero, fmt.Errorf("cannot parse %q as %s", s, info.Name)
				}
				if last.Type().Implements(errorType) && !last.IsNil() {
					return zero, last.Interface().(error)
				}
				if outs[0].Type() == reflect.PointerTo(t) {
					return toT[T](t, outs[0].Elem()), nil
				}
				if outs[0].Type().ConvertibleTo(t) {
					return toT[T](t, outs[0]), nil
				}
				return zero, unsupported(info.Name, "parse")
			}, nil
		}
	}
	return nil, unsupported(info.Name, "parse")
}

// customPowInt requires an integer-typed exponent parameter.
func customPowInt[T any](info numkind.Info) (PowIntOp[T], error) {
	t := info.Type
	m, err := methodWithShape(info, "power(int)", config.PowIntMethodNames, 1, func(m boundMethod) bool {
		return m.argType(0).Kind() == reflect.Int
	})
	if err != nil {
		return nil, err
	}
	return func(v T, n int) T {
		rn := convertArg(reflect.ValueOf(n), m.argType(0))
		return adaptResult[T](t, m.call(reflect.ValueOf(v), []reflect.Value{rn}))
	}, nil
}

// customModPow requires the exact three-argument shape ModPow(T, T) T.
func customModPow[T any](info numkind.Info) (ModPowOp[T], error) {
	t := info.Type
	m, err := methodWithShape(info, "modpow", config.ModPowMethodNames, 2, valueArgs(t))
	if err != nil {
		return nil, err
	}
	return func(v, e, mod T) T {
		args := []reflect.Value{
			convertArg(reflect.ValueOf(e), m.argType(0)),
			convertArg(reflect.ValueOf(mod), m.argType(1)),
		}
		return adaptResult[T](t, m.call(reflect.ValueOf(v), args))
	}, nil
}

// customLog requires a two-argument Log(value, base) shape; the base is a
// float64.
func customLog[T any](info numkind.Info) (LogOp[T], error) {
	t := info.Type
	m, err := methodWithShape(info, "log", config.LogMethodNames, 1, func(m boundMethod) bool {
		return m.argType(0).Kind() == reflect.Float64
	})
	if err != nil {
		return nil, err
	}
	return func(v T, base float64) T {
		rb := convertArg(reflect.ValueOf(base), m.argType(0))
		return adaptResult[T](t, m.call(reflect.ValueOf(v), []reflect.Value{rb}))
	}, nil
}

// customBytes binds an instance Bytes/ToByteArray method.
func customBytes[T any](info numkind.Info) (BytesOp[T], error) {
	for _, name := range config.BytesMethodNames {
		m, err := findMethod(info, name)
		if err != nil {
			continue
		}
		mt := m.method.Type
		if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0) != byteSliceType {
			continue
		}
		return func(v T) []byte {
			return m.call(reflect.ValueOf(v), nil)[0].Bytes()
		}, nil
	}
	return nil, unsupported(info.Name, "bytes")
}
