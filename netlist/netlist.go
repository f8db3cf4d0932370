// Package netlist loads pipeline declarations from YAML.
//
// A netlist names blocks and their wiring; the process and transform
// functions themselves are Go code, registered under op names in a
// Registry and referenced from the file:
//
//	blocks:
//	  - name: decoder
//	    op: parity
//	    inputs: [n]
//	    outputs: parity
//	  - name: done
//	    op: is-one
//	    inputs: [n]
//	    outputs:
//	      halt: ""
//	registers:
//	  n: 27
//
// The outputs field is either a bare wire name (identity transform) or a
// mapping from wire name to transform op name, the empty string standing
// for the identity.
package netlist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seqsim/seqsim"
)

// A File is a parsed netlist document.
type File struct {
	Blocks    []BlockDef              `yaml:"blocks"`
	Registers map[string]seqsim.Value `yaml:"registers"`
}

// A BlockDef declares one block: its name, the op implementing its body,
// and its wiring.
type BlockDef struct {
	Name    string     `yaml:"name"`
	Op      string     `yaml:"op"`
	Inputs  []string   `yaml:"inputs"`
	Outputs OutputsDef `yaml:"outputs"`
}

// An OutputsDef maps output wire names to transform op names. In YAML it
// is written either as a mapping or as a bare wire name, shorthand for the
// identity transform.
type OutputsDef map[string]string

// UnmarshalYAML accepts the scalar shorthand alongside the mapping form.
func (o *OutputsDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}
		if name == "" {
			return fmt.Errorf("netlist: output wire name is empty")
		}
		*o = OutputsDef{name: ""}
		return nil
	case yaml.MappingNode:
		m := make(map[string]string)
		if err := node.Decode(&m); err != nil {
			return err
		}
		*o = m
		return nil
	default:
		return fmt.Errorf("netlist: outputs must be a wire name or a mapping")
	}
}

// Parse decodes a netlist document and resolves its ops against reg,
// returning a pipeline ready to Initialize together with the declared
// register seed.
func Parse(data []byte, reg *Registry) (*seqsim.Pipeline, map[string]seqsim.Value, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("netlist: decode: %w", err)
	}
	if len(f.Blocks) == 0 {
		return nil, nil, fmt.Errorf("netlist: no blocks declared")
	}

	p := seqsim.New()
	seen := make(map[string]bool, len(f.Blocks))
	for _, d := range f.Blocks {
		if seen[d.Name] {
			return nil, nil, fmt.Errorf("netlist: duplicate block %q", d.Name)
		}
		b, err := d.build(reg)
		if err != nil {
			return nil, nil, err
		}
		seen[d.Name] = true
		p = p.Add(b)
	}
	return p, f.Registers, nil
}

// Load reads and parses a netlist file.
func Load(path string, reg *Registry) (*seqsim.Pipeline, map[string]seqsim.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("netlist: read %s: %w", path, err)
	}
	p, seed, err := Parse(data, reg)
	if err != nil {
		return nil, nil, fmt.Errorf("netlist: %s: %w", path, err)
	}
	return p, seed, nil
}

func (d BlockDef) build(reg *Registry) (seqsim.Block, error) {
	if d.Name == "" {
		return seqsim.Block{}, fmt.Errorf("netlist: block name is required")
	}
	if d.Op == "" {
		return seqsim.Block{}, fmt.Errorf("netlist: block %q: op is required", d.Name)
	}
	proc, ok := reg.proc(d.Op)
	if !ok {
		return seqsim.Block{}, fmt.Errorf("netlist: block %q: unknown op %q", d.Name, d.Op)
	}

	outs := make(seqsim.Outputs, len(d.Outputs))
	for w, op := range d.Outputs {
		if op == "" {
			outs[w] = nil
			continue
		}
		fn, ok := reg.transform(op)
		if !ok {
			return seqsim.Block{}, fmt.Errorf("netlist: block %q: output %q: unknown transform %q", d.Name, w, op)
		}
		outs[w] = fn
	}

	return seqsim.Block{
		Name:    d.Name,
		Inputs:  d.Inputs,
		Process: proc,
		Outputs: outs,
	}, nil
}
