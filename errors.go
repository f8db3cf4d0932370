package seqsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrUninitialized is returned by reads and cycle advances attempted on a
// pipeline before Initialize has succeeded.
var ErrUninitialized = errors.New("pipeline not initialized")

// A CycleError reports a combinational loop: a set of blocks depending on
// each other's outputs within the same cycle, with no register breaking
// the loop. Path holds one witness loop as block names, first and last
// elements equal.
//
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	if len(e.Path) == 0 {
		return "combinational loop detected"
	}
	return "combinational loop: " + strings.Join(e.Path, " -> ")
}

// A ProcessError wraps a failure raised by a block's Process function with
// the name of the offending block. The original failure is preserved as
// the cause.
//
type ProcessError struct {
	Block string
	Err   error
}

func (e *ProcessError) Error() string {
	return "block " + strconv.Quote(e.Block) + ": process: " + e.Err.Error()
}

// Cause returns the original failure (github.com/pkg/errors style).
func (e *ProcessError) Cause() error { return e.Err }

// Unwrap returns the original failure (errors.Is/As style).
func (e *ProcessError) Unwrap() error { return e.Err }

// An OutputError wraps a failure raised by one of a block's output
// transforms with both the block and the output name. The original failure
// is preserved as the cause.
//
type OutputError struct {
	Block  string
	Output string
	Err    error
}

func (e *OutputError) Error() string {
	return "block " + strconv.Quote(e.Block) + ": output " + strconv.Quote(e.Output) + ": " + e.Err.Error()
}

// Cause returns the original failure (github.com/pkg/errors style).
func (e *OutputError) Cause() error { return e.Err }

// Unwrap returns the original failure (errors.Is/As style).
func (e *OutputError) Unwrap() error { return e.Err }
