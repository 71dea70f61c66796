// Package program parses source text into an annotated, jump resolved
// instruction stream.
package program

import "fmt"

// Program is the validated form of one source file: an ordered sequence of
// instructions annotated with source positions. The name is opaque to
// execution and only used for diagnostics. A program is built once by Parse
// and immutable afterwards.
type Program struct {
	name         string
	instructions []Instruction
}

// Parse scans the source text and builds the instruction stream for it.
// Meaningful characters become instructions, everything else is skipped but
// still advances the line and column tracking. Matching bracket pairs are
// resolved inline using a stack of open loop starts, unmatched brackets
// keep NoPartner and are surfaced by Validate.
func Parse(name, source string) *Program {
	p := &Program{name: name}
	var open []int

	line, column := 1, 1
	for _, r := range source {
		if r == '\n' {
			line++
			column = 1
			continue
		}

		if kind, ok := kindOf(r); ok {
			index := len(p.instructions)
			p.instructions = append(p.instructions, Instruction{
				Kind:    kind,
				Pos:     Position{Line: line, Column: column},
				Partner: NoPartner,
			})

			switch kind {
			case LoopStart:
				open = append(open, index)

			case LoopEnd:
				if last := len(open) - 1; last >= 0 {
					start := open[last]
					open = open[:last]
					p.instructions[start].Partner = index
					p.instructions[index].Partner = start
				}
			}
		}
		column++
	}
	return p
}

// Name returns the identifying name of the program.
func (p *Program) Name() string {
	return p.name
}

// Instructions returns the instruction sequence of the program.
// The returned slice must not be modified.
func (p *Program) Instructions() []Instruction {
	return p.instructions
}

// Validate checks that every loop instruction found a structural partner.
// It returns an UnmatchedBracketError citing the source position of the
// first loop instruction whose partner is still unresolved. A program must
// pass validation before being handed to the virtual machine.
func (p *Program) Validate() error {
	for _, in := range p.instructions {
		switch in.Kind {
		case LoopStart, LoopEnd:
			if in.Partner == NoPartner {
				return &UnmatchedBracketError{Program: p.name, Instruction: in}
			}
		}
	}
	return nil
}

// UnmatchedBracketError reports a loop instruction without a structural
// partner. The instruction kind tells an unmatched open bracket apart from
// an unmatched close bracket.
type UnmatchedBracketError struct {
	Program     string
	Instruction Instruction
}

func (e *UnmatchedBracketError) Error() string {
	if e.Instruction.Kind == LoopStart {
		return fmt.Sprintf("%s: no matching close bracket for %s", e.Program, e.Instruction)
	}
	return fmt.Sprintf("%s: no matching open bracket for %s", e.Program, e.Instruction)
}
