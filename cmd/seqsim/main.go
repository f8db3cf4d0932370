// Command seqsim runs a pipeline simulation until a halt wire goes true or
// a cycle limit is reached, reporting watched wires every cycle.
//
// With -f it loads a YAML netlist resolved against the built-in demo op
// set (select, is-one, parity, halve, triple-plus-one); without it, it
// runs a built-in hailstone pipeline starting from -n.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/seqsim/seqsim"
	"github.com/seqsim/seqsim/blocklib"
	"github.com/seqsim/seqsim/netlist"
)

func main() {
	var (
		file  = flag.String("f", "", "netlist file (YAML)")
		start = flag.Int("n", 27, "seed for the built-in hailstone register n")
		halt  = flag.String("halt", "halt", "wire that ends the run when true")
		max   = flag.Int("max", 10000, "maximum number of cycles")
		watch = flag.String("watch", "n", "comma separated registers to report each cycle")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var (
		p    *seqsim.Pipeline
		seed map[string]seqsim.Value
		err  error
	)
	if *file != "" {
		p, seed, err = netlist.Load(*file, demoRegistry())
	} else {
		p, seed, err = hailstone(*start)
	}
	if err != nil {
		logger.Error("load failed", "err", err)
		os.Exit(1)
	}

	p, err = p.Initialize(seed)
	if err != nil {
		logger.Error("initialize failed", "err", err)
		os.Exit(1)
	}

	watched := strings.Split(*watch, ",")
	for cycle := 0; ; cycle++ {
		args := []any{"cycle", cycle}
		for _, w := range watched {
			v, err := p.Register(strings.TrimSpace(w))
			if err != nil {
				logger.Error("read failed", "register", w, "err", err)
				os.Exit(1)
			}
			args = append(args, w, fmt.Sprint(v))
		}
		logger.Info("state", args...)

		v, err := p.Wire(*halt)
		if err != nil {
			logger.Error("read failed", "wire", *halt, "err", err)
			os.Exit(1)
		}
		if cycle == 0 && v == nil {
			// nothing drives the halt wire: a mistyped -halt would
			// otherwise run silently into the cycle limit.
			logger.Warn("halt wire is not driven", "wire", *halt)
		}
		if v == true {
			logger.Info("halted", "cycle", cycle)
			return
		}
		if cycle == *max {
			logger.Error("cycle limit reached", "max", *max)
			os.Exit(1)
		}
		if p, err = p.Step(); err != nil {
			logger.Error("step failed", "cycle", cycle, "err", err)
			os.Exit(1)
		}
	}
}

// hailstone builds the built-in demo: a Collatz sequence generator with a
// register on n.
func hailstone(n int) (*seqsim.Pipeline, map[string]seqsim.Value, error) {
	decoder, err := blocklib.Func("decoder", func(n int) int { return n % 2 }, []string{"n"}, "parity")
	if err != nil {
		return nil, nil, err
	}
	down, err := blocklib.Func("down", func(n int) int { return n / 2 }, []string{"n"}, "half")
	if err != nil {
		return nil, nil, err
	}
	up, err := blocklib.Func("up", func(n int) int { return 3*n + 1 }, []string{"n"}, "triplus")
	if err != nil {
		return nil, nil, err
	}
	next, err := blocklib.Func("next", func(parity, half, triplus int) int {
		if parity == 0 {
			return half
		}
		return triplus
	}, []string{"parity", "half", "triplus"}, "n")
	if err != nil {
		return nil, nil, err
	}

	p := seqsim.New(
		decoder, down, up, next,
		blocklib.Const("one", "one", 1),
		blocklib.Eq("done", "n", "one", "halt"),
	)
	return p, map[string]seqsim.Value{"n": n}, nil
}

// demoRegistry resolves the op names used by the example netlists shipped
// with the repository.
func demoRegistry() *netlist.Registry {
	reg := netlist.NewRegistry()
	ops := map[string]seqsim.ProcessFn{
		"select": func(vs ...seqsim.Value) (seqsim.Value, error) {
			if vs[0].(int) == 0 {
				return vs[1], nil
			}
			return vs[2], nil
		},
		"is-one": func(vs ...seqsim.Value) (seqsim.Value, error) {
			return vs[0].(int) == 1, nil
		},
		"parity": func(vs ...seqsim.Value) (seqsim.Value, error) {
			return vs[0].(int) % 2, nil
		},
		"halve": func(vs ...seqsim.Value) (seqsim.Value, error) {
			return vs[0].(int) / 2, nil
		},
		"triple-plus-one": func(vs ...seqsim.Value) (seqsim.Value, error) {
			return 3*vs[0].(int) + 1, nil
		},
	}
	for name, fn := range ops {
		if err := reg.RegisterOp(name, fn); err != nil {
			panic(err)
		}
	}
	return reg
}
