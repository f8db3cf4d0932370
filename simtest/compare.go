// Package simtest provides utility functions for testing pipelines.
//
package simtest

import (
	"reflect"
	"testing"

	"github.com/seqsim/seqsim"
)

// Compare steps two initialized pipelines in lockstep for the given number
// of cycles and fails the test at the first cycle where one of the observed
// wires differs between them. Both pipelines must already be initialized;
// cycle 0 compares the state as given.
//
// It is meant to check a block against a reference built from simpler
// blocks, the two pipelines differing only in how the observed wires are
// produced.
//
func Compare(t *testing.T, a, b *seqsim.Pipeline, cycles int, wires ...string) {
	t.Helper()

	for cycle := 0; ; cycle++ {
		for _, w := range wires {
			va, err := a.Wire(w)
			if err != nil {
				t.Fatalf("cycle %d: pipeline a: wire %q: %v", cycle, w, err)
			}
			vb, err := b.Wire(w)
			if err != nil {
				t.Fatalf("cycle %d: pipeline b: wire %q: %v", cycle, w, err)
			}
			if !reflect.DeepEqual(va, vb) {
				t.Fatalf("cycle %d: wire %q: %v != %v", cycle, w, va, vb)
			}
		}
		if cycle == cycles {
			return
		}
		var err error
		if a, err = a.Step(); err != nil {
			t.Fatalf("cycle %d: pipeline a: %v", cycle, err)
		}
		if b, err = b.Step(); err != nil {
			t.Fatalf("cycle %d: pipeline b: %v", cycle, err)
		}
	}
}
