// Package vm implements the virtual machine that executes parsed programs
// against a tape of cells.
package vm

import (
	"io"
	"os"

	"github.com/retroenv/bfgo/internal/cell"
	"github.com/retroenv/bfgo/internal/program"
	"github.com/retroenv/retrogolib/log"
)

// DefaultTapeSize is the tape length used when no explicit size is requested.
const DefaultTapeSize = 30000

// Machine executes a validated program against a tape of cells.
// The program is borrowed read only and can be shared across machines,
// tape, head and execution cursor are owned by the machine and created
// fresh per instance.
type Machine struct {
	logger *log.Logger
	prog   *program.Program

	tape   []cell.Cell
	head   int
	cursor int

	size       int
	extensible bool
	newCell    cell.Factory

	input   io.Reader
	output  io.Writer
	lastOut byte
}

// Option configures a machine.
type Option func(*Machine)

// WithTapeSize sets the initial tape length.
// Values of zero or below select DefaultTapeSize.
func WithTapeSize(size int) Option {
	return func(m *Machine) {
		m.size = size
	}
}

// WithExtensibleTape allows the tape to grow at the high end,
// one cell at a time. The tape never shrinks and never grows at the low end.
func WithExtensibleTape() Option {
	return func(m *Machine) {
		m.extensible = true
	}
}

// WithInput sets the byte input channel. The default is os.Stdin.
func WithInput(r io.Reader) Option {
	return func(m *Machine) {
		m.input = r
	}
}

// WithOutput sets the byte output channel. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(m *Machine) {
		m.output = w
	}
}

// WithCellFactory sets the cell implementation used for the tape.
// The default is cell.NewByte, 8 bit cells with wrapping arithmetic.
func WithCellFactory(f cell.Factory) Option {
	return func(m *Machine) {
		m.newCell = f
	}
}

// New creates a machine for the given validated program, with a freshly
// zeroed tape, the head at cell 0 and the execution cursor at the first
// instruction. The machine does not re-validate the program.
func New(logger *log.Logger, prog *program.Program, opts ...Option) *Machine {
	m := &Machine{
		logger:  logger,
		prog:    prog,
		newCell: cell.NewByte,
		input:   os.Stdin,
		output:  os.Stdout,
	}
	for _, opt := range opts {
		opt(m)
	}

	size := m.size
	if size <= 0 {
		size = DefaultTapeSize
	}
	m.tape = make([]cell.Cell, size)
	for i := range m.tape {
		m.tape[i] = m.newCell()
	}
	return m
}

// current returns the instruction the execution cursor points at.
func (m *Machine) current() program.Instruction {
	return m.prog.Instructions()[m.cursor]
}

// moveRight moves the head one cell to the right. At the last cell an
// extensible tape is grown by exactly one zero cell, a fixed tape fails
// with a bounds error.
func (m *Machine) moveRight() error {
	if m.head == len(m.tape)-1 {
		if !m.extensible {
			return &BoundsError{Instruction: m.current()}
		}
		m.tape = append(m.tape, m.newCell())
	}
	m.head++
	return nil
}

// moveLeft moves the head one cell to the left, failing with a bounds error
// at cell 0 regardless of extensibility.
func (m *Machine) moveLeft() error {
	if m.head == 0 {
		return &BoundsError{Instruction: m.current()}
	}
	m.head--
	return nil
}

// outputCell writes the byte at the head to the output channel and
// remembers it for the trailing newline bookkeeping.
func (m *Machine) outputCell() error {
	value := m.tape[m.head].Value()
	if _, err := m.output.Write([]byte{value}); err != nil {
		return &IOError{Instruction: m.current(), Err: err}
	}
	m.lastOut = value
	return nil
}

// inputCell blocks until one byte is available on the input channel and
// stores it into the cell at the head. End of stream is a fatal I/O error
// like any other read failure.
func (m *Machine) inputCell() error {
	m.logger.Debug("Waiting for input", log.Stringer("instruction", m.current()))

	buf := make([]byte, 1)
	if _, err := io.ReadFull(m.input, buf); err != nil {
		return &IOError{Instruction: m.current(), Err: err}
	}
	m.tape[m.head].Set(buf[0])
	return nil
}

// loopStart jumps the cursor to the matching end bracket if the cell at the
// head is zero, otherwise execution falls through into the loop body.
func (m *Machine) loopStart(in program.Instruction) error {
	if m.tape[m.head].Value() != 0 {
		return nil
	}
	if in.Partner == program.NoPartner {
		return &LoopError{Instruction: in}
	}
	m.cursor = in.Partner
	return nil
}

// loopEnd jumps the cursor back to the matching start bracket if the cell
// at the head is not zero, otherwise execution leaves the loop.
func (m *Machine) loopEnd(in program.Instruction) error {
	if m.tape[m.head].Value() == 0 {
		return nil
	}
	if in.Partner == program.NoPartner {
		return &LoopError{Instruction: in}
	}
	m.cursor = in.Partner
	return nil
}
