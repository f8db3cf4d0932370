package seqsim

// A Pipeline is an immutable snapshot of a simulated circuit: its blocks,
// the current values of its wires and registers, and the derived block
// update order.
//
// A Pipeline starts uninitialized. Blocks are declared with Add (or New),
// then Initialize seeds the registers, computes the update order and runs
// the first propagation. From then on Step and Reset advance the
// simulation. Every operation returns a new Pipeline value and leaves its
// receiver untouched, so earlier snapshots stay valid.
//
type Pipeline struct {
	wires     map[string]Value
	registers map[string]Value
	blocks    map[string]Block

	// block names in insertion order. All scheduling is derived from
	// this slice so that the update order is reproducible for a given
	// sequence of Add calls.
	added []string

	// update order, valid only while initialized.
	order []string

	initialized bool
}

// New returns a pipeline containing the given blocks, in order. It is
// shorthand for folding Add over an empty pipeline.
//
func New(blocks ...Block) *Pipeline {
	p := &Pipeline{
		wires:     make(map[string]Value),
		registers: make(map[string]Value),
		blocks:    make(map[string]Block),
	}
	for _, b := range blocks {
		p = p.Add(b)
	}
	return p
}

// clone returns a deep copy of p. Blocks are immutable and shared; the
// value maps and name slices are copied.
//
func (p *Pipeline) clone() *Pipeline {
	q := &Pipeline{
		wires:       make(map[string]Value, len(p.wires)),
		registers:   make(map[string]Value, len(p.registers)),
		blocks:      make(map[string]Block, len(p.blocks)),
		added:       append([]string(nil), p.added...),
		order:       append([]string(nil), p.order...),
		initialized: p.initialized,
	}
	for k, v := range p.wires {
		q.wires[k] = v
	}
	for k, v := range p.registers {
		q.registers[k] = v
	}
	for k, v := range p.blocks {
		q.blocks[k] = v
	}
	return q
}

// Add returns a copy of p with block b declared. The result is always
// uninitialized, even when p was initialized: a new block can invalidate
// the previously computed update order.
//
// Placeholder (nil valued) wire entries are merged in for every input and
// output name of b, so that later lookups of declared but never driven
// wires resolve to an absent value instead of failing.
//
// Declaring a block under an existing name replaces that block but keeps
// its original position in the scheduling order.
//
func (p *Pipeline) Add(b Block) *Pipeline {
	q := p.clone()
	if _, ok := q.blocks[b.Name]; !ok {
		q.added = append(q.added, b.Name)
	}
	b = b.normalized()
	q.blocks[b.Name] = b
	for _, in := range b.Inputs {
		if _, ok := q.wires[in]; !ok {
			q.wires[in] = nil
		}
	}
	for out := range b.Outputs {
		if _, ok := q.wires[out]; !ok {
			q.wires[out] = nil
		}
	}
	q.order = nil
	q.initialized = false
	return q
}

// Initialized reports whether Initialize has succeeded on this snapshot.
//
func (p *Pipeline) Initialized() bool {
	return p.initialized
}

// Wire returns the value computed for the named wire in the current cycle.
// The value is nil if the wire was declared but never driven, or if the
// name is unknown. Wire fails with ErrUninitialized before Initialize has
// succeeded.
//
func (p *Pipeline) Wire(name string) (Value, error) {
	if !p.initialized {
		return nil, ErrUninitialized
	}
	return p.wires[name], nil
}

// Register returns the value held by the named register, nil if the
// register was never seeded. It fails with ErrUninitialized before
// Initialize has succeeded.
//
func (p *Pipeline) Register(name string) (Value, error) {
	if !p.initialized {
		return nil, ErrUninitialized
	}
	return p.registers[name], nil
}

// Blocks returns the block names in insertion order.
//
func (p *Pipeline) Blocks() []string {
	return append([]string(nil), p.added...)
}
