package blocklib

import "github.com/seqsim/seqsim"

// Input returns a function-backed input block: every cycle it drives out
// with the current return value of fn. Useful to feed a pipeline from test
// vectors or external state.
//
//	Outputs: out
//
func Input(name, out string, fn func() seqsim.Value) seqsim.Block {
	return seqsim.Block{
		Name:    name,
		Process: func(...seqsim.Value) (seqsim.Value, error) { return fn(), nil },
		Outputs: seqsim.Out(out),
	}
}

// Output returns a function-backed output block: every cycle it passes the
// value of in to fn. It drives no wires.
//
//	Inputs: in
//
func Output(name, in string, fn func(seqsim.Value)) seqsim.Block {
	return seqsim.Block{
		Name:   name,
		Inputs: []string{in},
		Process: func(vs ...seqsim.Value) (seqsim.Value, error) {
			fn(vs[0])
			return nil, nil
		},
	}
}
