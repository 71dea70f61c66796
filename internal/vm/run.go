package vm

import (
	"github.com/retroenv/bfgo/internal/program"
	"github.com/retroenv/retrogolib/log"
)

// Run executes the program to completion or first error. The first failing
// instruction aborts the run, everything written before it remains in the
// output channel. The trailing newline bookkeeping runs on every exit path
// before an error propagates.
func (m *Machine) Run() error {
	err := m.run()
	m.finishLine()
	return err
}

func (m *Machine) run() error {
	instructions := m.prog.Instructions()

	for m.cursor < len(instructions) {
		in := instructions[m.cursor]

		var err error
		switch in.Kind {
		case program.MoveRight:
			err = m.moveRight()
		case program.MoveLeft:
			err = m.moveLeft()
		case program.IncrementCell:
			m.tape[m.head].Increment()
		case program.DecrementCell:
			m.tape[m.head].Decrement()
		case program.OutputCell:
			err = m.outputCell()
		case program.InputCell:
			err = m.inputCell()
		case program.LoopStart:
			err = m.loopStart(in)
		case program.LoopEnd:
			err = m.loopEnd(in)
		}
		if err != nil {
			return err
		}

		m.cursor++
	}
	return nil
}

// finishLine terminates the program output with a newline unless the last
// written byte already was one. A failed write is logged and swallowed
// since the logical result of the run is already determined at this point.
func (m *Machine) finishLine() {
	if m.lastOut == '\n' {
		return
	}
	if _, err := m.output.Write([]byte{'\n'}); err != nil {
		m.logger.Error("Writing trailing newline failed", log.Err(err))
	}
}
