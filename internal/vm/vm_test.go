package vm

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/retroenv/bfgo/internal/program"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func parseProgram(t *testing.T, source string) *program.Program {
	t.Helper()

	p := program.Parse("test.bf", source)
	assert.NoError(t, p.Validate())
	return p
}

func TestNewDefaults(t *testing.T) {
	m := New(log.NewTestLogger(t), parseProgram(t, "+"))
	assert.Equal(t, DefaultTapeSize, len(m.tape))
	assert.Equal(t, 0, m.head)
	assert.Equal(t, 0, m.cursor)

	m = New(log.NewTestLogger(t), parseProgram(t, "+"), WithTapeSize(0))
	assert.Equal(t, DefaultTapeSize, len(m.tape))
}

func TestMoveHeadBounds(t *testing.T) {
	var out bytes.Buffer
	m := New(log.NewTestLogger(t), parseProgram(t, ">>"),
		WithTapeSize(2), WithOutput(&out))

	err := m.Run()
	var boundsErr *BoundsError
	assert.True(t, errors.As(err, &boundsErr))
	assert.Equal(t, program.Position{Line: 1, Column: 2}, boundsErr.Instruction.Pos)
}

func TestMoveHeadLowBound(t *testing.T) {
	var out bytes.Buffer
	m := New(log.NewTestLogger(t), parseProgram(t, "<"),
		WithTapeSize(2), WithExtensibleTape(), WithOutput(&out))

	err := m.Run()
	var boundsErr *BoundsError
	assert.True(t, errors.As(err, &boundsErr))
	assert.Equal(t, program.Position{Line: 1, Column: 1}, boundsErr.Instruction.Pos)
}

func TestMoveHeadExtendsTape(t *testing.T) {
	var out bytes.Buffer
	m := New(log.NewTestLogger(t), parseProgram(t, ">>>"),
		WithTapeSize(2), WithExtensibleTape(), WithOutput(&out))

	assert.NoError(t, m.Run())
	// two of the three moves extend the tape by one cell each
	assert.Equal(t, 4, len(m.tape))
	assert.Equal(t, 3, m.head)
}

func TestRunHelloWorld(t *testing.T) {
	source := "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++.." +
		"+++.>>.<-.<.+++.------.--------.>>+.>++."

	var out bytes.Buffer
	m := New(log.NewTestLogger(t), parseProgram(t, source),
		WithTapeSize(1000), WithInput(bytes.NewReader(nil)), WithOutput(&out))

	assert.NoError(t, m.Run())
	assert.Equal(t, "Hello World!\n", out.String())
}

func TestRunInputOutput(t *testing.T) {
	var out bytes.Buffer
	m := New(log.NewTestLogger(t), parseProgram(t, ",>,>,>,>,>,.<.<.<.<.<."),
		WithTapeSize(1000), WithInput(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6})),
		WithOutput(&out))

	assert.NoError(t, m.Run())
	assert.Equal(t, []byte{6, 5, 4, 3, 2, 1, 10}, out.Bytes())
}

func TestRunCountdownLoop(t *testing.T) {
	var out bytes.Buffer
	m := New(log.NewTestLogger(t), parseProgram(t, ",[-.]"),
		WithTapeSize(10), WithInput(bytes.NewReader([]byte{6})), WithOutput(&out))

	assert.NoError(t, m.Run())
	assert.Equal(t, []byte{5, 4, 3, 2, 1, 0, 10}, out.Bytes())
}

func TestRunSkipsLoopOnZeroCell(t *testing.T) {
	var out bytes.Buffer
	m := New(log.NewTestLogger(t), parseProgram(t, "[.]"),
		WithTapeSize(10), WithOutput(&out))

	assert.NoError(t, m.Run())
	assert.Equal(t, []byte{10}, out.Bytes())
}

func TestRunInputEndOfStream(t *testing.T) {
	var out bytes.Buffer
	m := New(log.NewTestLogger(t), parseProgram(t, ","),
		WithTapeSize(10), WithInput(bytes.NewReader(nil)), WithOutput(&out))

	err := m.Run()
	var ioErr *IOError
	assert.True(t, errors.As(err, &ioErr))
	assert.True(t, errors.Is(err, io.EOF))
	// the bookkeeping newline is emitted before the error propagates
	assert.Equal(t, []byte{10}, out.Bytes())
}

func TestRunCellWrapping(t *testing.T) {
	var out bytes.Buffer
	m := New(log.NewTestLogger(t), parseProgram(t, "-.+."),
		WithTapeSize(10), WithOutput(&out))

	assert.NoError(t, m.Run())
	assert.Equal(t, []byte{255, 0, 10}, out.Bytes())
}

func TestRunNoTrailingNewlineAfterNewline(t *testing.T) {
	// write the byte 10 as last program output, no extra newline is added
	var out bytes.Buffer
	m := New(log.NewTestLogger(t), parseProgram(t, "++++++++++."),
		WithTapeSize(10), WithOutput(&out))

	assert.NoError(t, m.Run())
	assert.Equal(t, []byte{10}, out.Bytes())
}

func TestRunSharedProgram(t *testing.T) {
	// the program is read only and can be lent to multiple machines
	p := parseProgram(t, "+++.")

	for i := 0; i < 2; i++ {
		var out bytes.Buffer
		m := New(log.NewTestLogger(t), p, WithTapeSize(10), WithOutput(&out))
		assert.NoError(t, m.Run())
		assert.Equal(t, []byte{3, 10}, out.Bytes())
	}
}
