package seqsim

import (
	"reflect"
	"testing"
)

// white-box tests for the topology resolver.

func pass(vs ...Value) (Value, error) {
	if len(vs) == 0 {
		return nil, nil
	}
	return vs[0], nil
}

func testPipeline(blocks ...Block) *Pipeline {
	return New(blocks...)
}

func Test_producerIndex(t *testing.T) {
	p := testPipeline(
		Block{Name: "a", Process: pass, Outputs: Out("x")},
		Block{Name: "b", Inputs: []string{"x"}, Process: pass, Outputs: Out("y")},
	)

	idx := p.producerIndex()
	want := map[string]int{"x": 0, "y": 1}
	if !reflect.DeepEqual(idx, want) {
		t.Errorf("producerIndex = %v, want %v", idx, want)
	}

	// a register shadows the same-named wire: no producer.
	q := p.clone()
	q.registers["x"] = nil
	idx = q.producerIndex()
	want = map[string]int{"y": 1}
	if !reflect.DeepEqual(idx, want) {
		t.Errorf("producerIndex with register on x = %v, want %v", idx, want)
	}
}

func Test_updateOrder_dependencies(t *testing.T) {
	// declared deliberately out of dependency order.
	p := testPipeline(
		Block{Name: "last", Inputs: []string{"m"}, Process: pass, Outputs: Out("out")},
		Block{Name: "mid", Inputs: []string{"s"}, Process: pass, Outputs: Out("m")},
		Block{Name: "src", Process: pass, Outputs: Out("s")},
	)

	order, err := p.updateOrder()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"src", "mid", "last"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func Test_updateOrder_insertion_tie_break(t *testing.T) {
	// independent blocks are scheduled in insertion order.
	p := testPipeline(
		Block{Name: "c", Process: pass, Outputs: Out("x")},
		Block{Name: "a", Process: pass, Outputs: Out("y")},
		Block{Name: "b", Process: pass, Outputs: Out("z")},
	)

	for i := 0; i < 5; i++ {
		order, err := p.updateOrder()
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"c", "a", "b"}
		if !reflect.DeepEqual(order, want) {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func Test_updateOrder_dangling_inputs_scheduled(t *testing.T) {
	// a block whose inputs have no producer is still scheduled.
	p := testPipeline(
		Block{Name: "floating", Inputs: []string{"ghost"}, Process: pass, Outputs: Out("x")},
	)
	order, err := p.updateOrder()
	if err != nil {
		t.Fatal(err)
	}
	if len(order) != 1 || order[0] != "floating" {
		t.Errorf("order = %v, want [floating]", order)
	}
}

func Test_updateOrder_register_breaks_cycle(t *testing.T) {
	p := testPipeline(
		Block{Name: "a", Inputs: []string{"y"}, Process: pass, Outputs: Out("x")},
		Block{Name: "b", Inputs: []string{"x"}, Process: pass, Outputs: Out("y")},
	)

	if _, err := p.updateOrder(); err == nil {
		t.Fatal("cycle not detected")
	}

	q := p.clone()
	q.registers["y"] = 0
	order, err := q.updateOrder()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func Test_findCycle_witness(t *testing.T) {
	p := testPipeline(
		Block{Name: "outside", Process: pass, Outputs: Out("w")},
		Block{Name: "a", Inputs: []string{"z"}, Process: pass, Outputs: Out("x")},
		Block{Name: "b", Inputs: []string{"x"}, Process: pass, Outputs: Out("y")},
		Block{Name: "c", Inputs: []string{"y"}, Process: pass, Outputs: Out("z")},
	)

	_, err := p.updateOrder()
	ce, ok := err.(*CycleError)
	if !ok {
		t.Fatalf("got %v, want *CycleError", err)
	}
	// closed path over a, b, c only.
	if ce.Path[0] != ce.Path[len(ce.Path)-1] {
		t.Errorf("witness %v is not closed", ce.Path)
	}
	seen := make(map[string]bool)
	for _, n := range ce.Path {
		if n == "outside" {
			t.Errorf("witness %v includes block outside the loop", ce.Path)
		}
		seen[n] = true
	}
	if len(seen) != 3 {
		t.Errorf("witness %v does not cover the loop", ce.Path)
	}
}
