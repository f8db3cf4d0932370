package seqsim

// Execution. One clock cycle is a single fold of computeOne over the
// update order: by the time a block runs, every non-register input it reads
// has been driven in the same cycle. Register advancement between cycles
// is a plain overlay of wire values onto same-named registers.

// computeOne runs one block: gathers its input values (registers shadow
// same-named wires), applies Process, then fans the intermediate value out
// through the output transforms into the wire map. It mutates only
// p.wires and must only be called on a private clone.
//
func (p *Pipeline) computeOne(b Block) error {
	in := make([]Value, len(b.Inputs))
	for i, name := range b.Inputs {
		if v, ok := p.registers[name]; ok {
			in[i] = v
		} else {
			in[i] = p.wires[name]
		}
	}
	v, err := b.Process(in...)
	if err != nil {
		return &ProcessError{Block: b.Name, Err: err}
	}
	for name, fn := range b.Outputs {
		ov, err := fn(v)
		if err != nil {
			return &OutputError{Block: b.Name, Output: name, Err: err}
		}
		p.wires[name] = ov
	}
	return nil
}

// propagate computes one full cycle over the update order and returns the
// resulting snapshot. Block failures abort the cycle and surface as
// *ProcessError or *OutputError; the receiver is left untouched.
//
func (p *Pipeline) propagate() (*Pipeline, error) {
	q := p.clone()
	for _, name := range q.order {
		if err := q.computeOne(q.blocks[name]); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// mergeRegisters overlays updates onto the register map of a private
// clone, without recomputation.
//
func (p *Pipeline) mergeRegisters(updates map[string]Value) *Pipeline {
	q := p.clone()
	for k, v := range updates {
		q.registers[k] = v
	}
	return q
}

// Initialize seeds the registers, computes the update order and runs the
// first propagation, returning an initialized snapshot.
//
// Seeding must cover enough registers to make the graph schedulable: a
// register that exists breaks same-cycle dependencies on its name, one
// that was never seeded does not. A combinational loop fails with a
// *CycleError and leaves p as it was.
//
func (p *Pipeline) Initialize(seed map[string]Value) (*Pipeline, error) {
	q := p.mergeRegisters(seed)
	order, err := q.updateOrder()
	if err != nil {
		return nil, err
	}
	q.order = order
	q, err = q.propagate()
	if err != nil {
		return nil, err
	}
	q.initialized = true
	return q, nil
}

// Reset overlays updates onto the registers and recomputes the current
// cycle's wires from them. It fails with ErrUninitialized before
// Initialize has succeeded.
//
func (p *Pipeline) Reset(updates map[string]Value) (*Pipeline, error) {
	if !p.initialized {
		return nil, ErrUninitialized
	}
	return p.mergeRegisters(updates).propagate()
}

// Step advances the simulation by one clock cycle: every register whose
// name has an entry in the wire map takes that entry's value, then a full
// propagation computes the new cycle's wires. This is the one-cycle delay
// law: the register's value at cycle N+1 is the same-named wire's value at
// cycle N.
//
// A register whose wire is declared but never driven is overwritten with
// the absent value; this mirrors the wire map's content rather than
// guarding it.
//
func (p *Pipeline) Step() (*Pipeline, error) {
	if !p.initialized {
		return nil, ErrUninitialized
	}
	updates := make(map[string]Value, len(p.registers))
	for name := range p.registers {
		if v, ok := p.wires[name]; ok {
			updates[name] = v
		}
	}
	return p.Reset(updates)
}
