/*
Package seqsim simulates synchronous sequential circuits built from pure
combinational blocks connected by named wires, with named registers
providing one-cycle-delayed feedback.

A caller declares blocks (name, ordered inputs, a process function and a
set of output transforms), then initializes the pipeline with register
seed values. Initialization derives the block update order from the
wiring alone: a wire is produced by the single block whose outputs carry
its name, unless a register of that name exists, in which case reads are
served by the register and carry no same-cycle dependency. Cycles not
broken by a register are combinational loops and are rejected.

Each clock cycle is one sequential fold over the update order producing a
fully consistent wire snapshot; Step then feeds each wire back into the
same-named register for the next cycle. All operations return new
Pipeline values and never mutate their receiver.

Known gaps, kept deliberately: two blocks claiming the same output wire
are not rejected (last writer in update order wins), and inputs naming
wires that nothing drives resolve to an absent value rather than failing.
*/
package seqsim
