// Package blocklib provides a library of reusable blocks for seqsim:
// boolean gates, integer arithmetic, constant drivers and function-backed
// boundary probes.
//
// All constructors take the block name and its wire names explicitly, so
// the same block can be instantiated several times over different wires.
//
package blocklib

import (
	"github.com/pkg/errors"

	"github.com/seqsim/seqsim"
)

// a binary boolean gate.
type gate func(a, b bool) bool

func (g gate) process(vs ...seqsim.Value) (seqsim.Value, error) {
	a, err := toBool(vs[0])
	if err != nil {
		return nil, err
	}
	b, err := toBool(vs[1])
	if err != nil {
		return nil, err
	}
	return g(a, b), nil
}

func newGate(name, a, b, out string, g gate) seqsim.Block {
	return seqsim.Block{
		Name:    name,
		Inputs:  []string{a, b},
		Process: g.process,
		Outputs: seqsim.Out(out),
	}
}

func toBool(v seqsim.Value) (bool, error) {
	if v == nil {
		// absent values read as false, like an undriven line.
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.Errorf("not a boolean value: %v (%T)", v, v)
	}
	return b, nil
}

// Not returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
//
func Not(name, in, out string) seqsim.Block {
	return seqsim.Block{
		Name:   name,
		Inputs: []string{in},
		Process: func(vs ...seqsim.Value) (seqsim.Value, error) {
			v, err := toBool(vs[0])
			if err != nil {
				return nil, err
			}
			return !v, nil
		},
		Outputs: seqsim.Out(out),
	}
}

// And returns an AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
//
func And(name, a, b, out string) seqsim.Block {
	return newGate(name, a, b, out, func(a, b bool) bool { return a && b })
}

// Or returns an OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
//
func Or(name, a, b, out string) seqsim.Block {
	return newGate(name, a, b, out, func(a, b bool) bool { return a || b })
}

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a != b
//
func Xor(name, a, b, out string) seqsim.Block {
	return newGate(name, a, b, out, func(a, b bool) bool { return a != b })
}

// Mux returns a 2-way multiplexer over arbitrary values.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: out = a if !sel, b if sel
//
func Mux(name, a, b, sel, out string) seqsim.Block {
	return seqsim.Block{
		Name:   name,
		Inputs: []string{a, b, sel},
		Process: func(vs ...seqsim.Value) (seqsim.Value, error) {
			s, err := toBool(vs[2])
			if err != nil {
				return nil, err
			}
			if s {
				return vs[1], nil
			}
			return vs[0], nil
		},
		Outputs: seqsim.Out(out),
	}
}
