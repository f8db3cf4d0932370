package netlist

import (
	"fmt"

	"github.com/seqsim/seqsim"
)

// A Registry resolves op names used in netlist files to the Go functions
// implementing them. The zero value is not usable; call NewRegistry.
type Registry struct {
	procs      map[string]seqsim.ProcessFn
	transforms map[string]seqsim.OutputFn
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		procs:      make(map[string]seqsim.ProcessFn),
		transforms: make(map[string]seqsim.OutputFn),
	}
}

// RegisterOp registers fn as the process body for blocks declaring op
// name. Registering a name twice or with a nil function is an error.
func (r *Registry) RegisterOp(name string, fn seqsim.ProcessFn) error {
	if name == "" {
		return fmt.Errorf("netlist: op name is required")
	}
	if fn == nil {
		return fmt.Errorf("netlist: op %q: nil function", name)
	}
	if _, dup := r.procs[name]; dup {
		return fmt.Errorf("netlist: op %q already registered", name)
	}
	r.procs[name] = fn
	return nil
}

// RegisterTransform registers fn as an output transform usable in the
// mapping form of the outputs field.
func (r *Registry) RegisterTransform(name string, fn seqsim.OutputFn) error {
	if name == "" {
		return fmt.Errorf("netlist: transform name is required")
	}
	if fn == nil {
		return fmt.Errorf("netlist: transform %q: nil function", name)
	}
	if _, dup := r.transforms[name]; dup {
		return fmt.Errorf("netlist: transform %q already registered", name)
	}
	r.transforms[name] = fn
	return nil
}

func (r *Registry) proc(name string) (seqsim.ProcessFn, bool) {
	fn, ok := r.procs[name]
	return fn, ok
}

func (r *Registry) transform(name string) (seqsim.OutputFn, bool) {
	fn, ok := r.transforms[name]
	return fn, ok
}
