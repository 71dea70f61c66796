package program

import "fmt"

// Kind identifies one of the eight instructions of the language.
type Kind int

// The eight instructions, one per meaningful source character.
const (
	MoveRight     Kind = iota // > move the head to the next cell
	MoveLeft                  // < move the head to the previous cell
	IncrementCell             // + add one to the cell at the head
	DecrementCell             // - subtract one from the cell at the head
	OutputCell                // . write the cell at the head to the output
	InputCell                 // , read one byte of input into the cell at the head
	LoopStart                 // [ jump past the matching ] if the cell is zero
	LoopEnd                   // ] jump back to the matching [ if the cell is not zero
)

// String returns a human readable name of the instruction kind.
func (k Kind) String() string {
	switch k {
	case MoveRight:
		return "move head right"
	case MoveLeft:
		return "move head left"
	case IncrementCell:
		return "increment cell"
	case DecrementCell:
		return "decrement cell"
	case OutputCell:
		return "output cell"
	case InputCell:
		return "input cell"
	case LoopStart:
		return "start loop"
	case LoopEnd:
		return "end loop"
	default:
		return "unknown"
	}
}

// NoPartner marks a loop instruction whose matching bracket is unresolved.
const NoPartner = -1

// Position is the 1-based source location of an instruction,
// immutable once created.
type Position struct {
	Line   int
	Column int
}

// Instruction is a single parsed instruction annotated with its source
// position. For LoopStart and LoopEnd instructions Partner holds the index
// of the matching bracket within the instruction sequence, NoPartner until
// the bracket resolution pass filled it in.
type Instruction struct {
	Kind    Kind
	Pos     Position
	Partner int
}

// String renders the instruction as "<line>:<column> <action>" for
// diagnostics and tracing.
func (in Instruction) String() string {
	return fmt.Sprintf("%d:%d %s", in.Pos.Line, in.Pos.Column, in.Kind)
}

// kindOf maps a meaningful source character to its instruction kind.
// All other characters are treated as comments.
func kindOf(r rune) (Kind, bool) {
	switch r {
	case '>':
		return MoveRight, true
	case '<':
		return MoveLeft, true
	case '+':
		return IncrementCell, true
	case '-':
		return DecrementCell, true
	case '.':
		return OutputCell, true
	case ',':
		return InputCell, true
	case '[':
		return LoopStart, true
	case ']':
		return LoopEnd, true
	default:
		return 0, false
	}
}
