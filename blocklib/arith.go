package blocklib

import (
	"github.com/pkg/errors"

	"github.com/seqsim/seqsim"
)

// a binary integer operator.
type binop func(a, b int) int

func (op binop) process(vs ...seqsim.Value) (seqsim.Value, error) {
	a, err := toInt(vs[0])
	if err != nil {
		return nil, err
	}
	b, err := toInt(vs[1])
	if err != nil {
		return nil, err
	}
	return op(a, b), nil
}

func newBinop(name, a, b, out string, op binop) seqsim.Block {
	return seqsim.Block{
		Name:    name,
		Inputs:  []string{a, b},
		Process: op.process,
		Outputs: seqsim.Out(out),
	}
}

func toInt(v seqsim.Value) (int, error) {
	if v == nil {
		return 0, nil
	}
	n, ok := v.(int)
	if !ok {
		return 0, errors.Errorf("not an integer value: %v (%T)", v, v)
	}
	return n, nil
}

// Add returns an adder.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a + b
//
func Add(name, a, b, out string) seqsim.Block {
	return newBinop(name, a, b, out, func(a, b int) int { return a + b })
}

// Sub returns a subtractor.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a - b
//
func Sub(name, a, b, out string) seqsim.Block {
	return newBinop(name, a, b, out, func(a, b int) int { return a - b })
}

// Mul returns a multiplier.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a * b
//
func Mul(name, a, b, out string) seqsim.Block {
	return newBinop(name, a, b, out, func(a, b int) int { return a * b })
}

// Eq returns an equality comparator producing a boolean.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a == b
//
func Eq(name, a, b, out string) seqsim.Block {
	return seqsim.Block{
		Name:   name,
		Inputs: []string{a, b},
		Process: func(vs ...seqsim.Value) (seqsim.Value, error) {
			a, err := toInt(vs[0])
			if err != nil {
				return nil, err
			}
			b, err := toInt(vs[1])
			if err != nil {
				return nil, err
			}
			return a == b, nil
		},
		Outputs: seqsim.Out(out),
	}
}

// Const returns an input-less block driving out with the fixed value v
// every cycle.
//
func Const(name, out string, v seqsim.Value) seqsim.Block {
	return seqsim.Block{
		Name:    name,
		Process: func(...seqsim.Value) (seqsim.Value, error) { return v, nil },
		Outputs: seqsim.Out(out),
	}
}
