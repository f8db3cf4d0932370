package blocklib

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/seqsim/seqsim"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Func wraps an ordinary Go function into a block driving a single output
// wire, using reflection to bridge argument types. fn must take exactly
// len(inputs) non-variadic arguments and return one value, optionally
// followed by an error.
//
//	gcd := func(a, b int) int { ... }
//	b, err := blocklib.Func("gcd", gcd, []string{"a", "b"}, "out")
//
// At run time, absent input values become the zero value of the parameter
// type; other values must be assignable or convertible to it, or the block
// fails.
//
func Func(name string, fn interface{}, inputs []string, out string) (seqsim.Block, error) {
	fv := reflect.ValueOf(fn)
	ft := fv.Type()
	if ft.Kind() != reflect.Func {
		return seqsim.Block{}, errors.Errorf("%s: not a function: %T", name, fn)
	}
	if ft.IsVariadic() {
		return seqsim.Block{}, errors.Errorf("%s: variadic functions are not supported", name)
	}
	if ft.NumIn() != len(inputs) {
		return seqsim.Block{}, errors.Errorf("%s: function takes %d arguments, %d inputs declared",
			name, ft.NumIn(), len(inputs))
	}
	switch ft.NumOut() {
	case 1:
	case 2:
		if !ft.Out(1).Implements(errType) {
			return seqsim.Block{}, errors.Errorf("%s: second return value must be an error", name)
		}
	default:
		return seqsim.Block{}, errors.Errorf("%s: function must return one value and an optional error", name)
	}

	process := func(vs ...seqsim.Value) (seqsim.Value, error) {
		args := make([]reflect.Value, len(vs))
		for i, v := range vs {
			at := ft.In(i)
			if v == nil {
				args[i] = reflect.Zero(at)
				continue
			}
			rv := reflect.ValueOf(v)
			switch {
			case rv.Type().AssignableTo(at):
			case rv.Type().ConvertibleTo(at):
				rv = rv.Convert(at)
			default:
				return nil, errors.Errorf("argument %d (%s): cannot use %T as %s", i, inputs[i], v, at)
			}
			args[i] = rv
		}
		res := fv.Call(args)
		if len(res) == 2 && !res[1].IsNil() {
			return nil, res[1].Interface().(error)
		}
		return res[0].Interface(), nil
	}

	return seqsim.Block{
		Name:    name,
		Inputs:  append([]string(nil), inputs...),
		Process: process,
		Outputs: seqsim.Out(out),
	}, nil
}
