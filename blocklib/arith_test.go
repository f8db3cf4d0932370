package blocklib_test

import (
	"testing"

	"github.com/seqsim/seqsim"
	"github.com/seqsim/seqsim/blocklib"
)

func Test_binops(t *testing.T) {
	tests := []struct {
		name string
		b    seqsim.Block
		want seqsim.Value
	}{
		{"add", blocklib.Add("op", "a", "b", "out"), 10},
		{"sub", blocklib.Sub("op", "a", "b", "out"), 4},
		{"mul", blocklib.Mul("op", "a", "b", "out"), 21},
		{"eq", blocklib.Eq("op", "a", "b", "out"), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := seqsim.New(
				blocklib.Const("ca", "a", 7),
				blocklib.Const("cb", "b", 3),
				test.b,
			).Initialize(nil)
			if err != nil {
				t.Fatal(err)
			}
			if v, _ := p.Wire("out"); v != test.want {
				t.Errorf("%s(7, 3) = %v, want %v", test.name, v, test.want)
			}
		})
	}
}

// a free-running accumulator: the register on count closes the loop, the
// adder bumps it by one every cycle.
func Test_counter(t *testing.T) {
	p, err := seqsim.New(
		blocklib.Const("one", "step", 1),
		blocklib.Add("acc", "count", "step", "count"),
	).Initialize(map[string]seqsim.Value{"count": 0})
	if err != nil {
		t.Fatal(err)
	}

	for cycle := 0; cycle < 10; cycle++ {
		v, err := p.Register("count")
		if err != nil {
			t.Fatal(err)
		}
		if v != cycle {
			t.Fatalf("cycle %d: register count = %v", cycle, v)
		}
		if p, err = p.Step(); err != nil {
			t.Fatal(err)
		}
	}
}

func Test_absent_input_reads_zero(t *testing.T) {
	p, err := seqsim.New(
		blocklib.Const("c", "a", 5),
		blocklib.Add("op", "a", "nothing", "out"),
	).Initialize(nil)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := p.Wire("out"); v != 5 {
		t.Errorf("Add(5, absent) = %v, want 5", v)
	}
}
