package vm

import (
	"fmt"

	"github.com/retroenv/bfgo/internal/program"
)

// BoundsError reports a head movement outside the valid tape range.
// It carries the instruction that caused the movement.
type BoundsError struct {
	Instruction program.Instruction
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("head falling off the tape at %s", e.Instruction)
}

// IOError reports a failed byte transfer on the input or output channel.
// It carries both the underlying cause and the causing instruction.
type IOError struct {
	Instruction program.Instruction
	Err         error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err, e.Instruction)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// LoopError reports a loop instruction without a resolved partner reaching
// execution. It cannot occur for programs that passed validation.
type LoopError struct {
	Instruction program.Instruction
}

func (e *LoopError) Error() string {
	return fmt.Sprintf("unmatched bracket at %s", e.Instruction)
}
