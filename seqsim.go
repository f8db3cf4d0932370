package seqsim

// A Value is the data carried by a wire during one clock cycle. Values are
// opaque to the engine: only the blocks reading and writing a wire give its
// values any meaning. A nil Value stands for an absent value, which is what
// a wire holds before any block has driven it.
//
type Value = interface{}

// A ProcessFn is the combinational body of a block. It receives the values
// of the block's inputs in declaration order and computes the block's
// intermediate value. The engine imposes no contract on it beyond arity: it
// may return any value, and it may fail.
//
type ProcessFn func(in ...Value) (Value, error)

// An OutputFn derives the value of one named output wire from a block's
// intermediate value.
//
type OutputFn func(v Value) (Value, error)

// Outputs maps output wire names to their transform functions. A nil
// transform stands for the identity: the wire receives the intermediate
// value unchanged. An empty (or nil) Outputs is legal and drives no wires.
//
type Outputs map[string]OutputFn

// Out returns an Outputs map that drives the single wire name with the
// unmodified intermediate value. It is the usual choice for blocks with one
// output:
//
//	seqsim.Block{
//		Name:    "up",
//		Inputs:  []string{"n"},
//		Process: triple,
//		Outputs: seqsim.Out("triplus"),
//	}
//
func Out(name string) Outputs {
	return Outputs{name: nil}
}

// Identity returns its argument unchanged. Add substitutes it for nil
// transforms when a block is normalized.
//
func Identity(v Value) (Value, error) {
	return v, nil
}

// A Block is a named combinational unit in a pipeline. Each cycle it reads
// its input wires (in declared order), applies Process to obtain one
// intermediate value, then fans that value out through its output
// transforms.
//
// Input names that match a register read the register's held value instead
// of the wire computed in the same cycle; this is what makes feedback
// through a register legal.
//
// Blocks are immutable once added to a Pipeline.
//
type Block struct {
	// Block name. Unique within a pipeline; adding a block with the name
	// of an existing one replaces it.
	Name string
	// Input wire names. Order is significant: it is the argument order
	// passed to Process.
	Inputs []string
	// Combinational body. Must not be nil.
	Process ProcessFn
	// Output wires driven by this block. Output names must not collide
	// with outputs of other blocks in the same pipeline; this is not
	// checked (see the package documentation on known gaps).
	Outputs Outputs
}

// normalized returns a deep copy of b with nil output transforms replaced
// by Identity, so that the engine never has to special-case them.
//
func (b Block) normalized() Block {
	nb := Block{Name: b.Name, Process: b.Process}
	nb.Inputs = append([]string(nil), b.Inputs...)
	nb.Outputs = make(Outputs, len(b.Outputs))
	for name, fn := range b.Outputs {
		if fn == nil {
			fn = Identity
		}
		nb.Outputs[name] = fn
	}
	return nb
}
