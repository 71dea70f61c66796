// Package fileprocessor handles program loading and execution.
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/bfgo/internal/options"
	"github.com/retroenv/bfgo/internal/program"
	"github.com/retroenv/bfgo/internal/vm"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete workflow for one program file: read the
// source text, parse and validate it and run the resulting program on a
// fresh virtual machine wired to the given input and output channels.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program,
	input io.Reader, output io.Writer) error {

	source, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading program %s: %w", opts.Input, err)
	}

	prog := program.Parse(opts.Input, string(source))
	if err := prog.Validate(); err != nil {
		return fmt.Errorf("validating program: %w", err)
	}

	logger.Debug("Program loaded",
		log.String("file", opts.Input),
		log.String("instructions", fmt.Sprint(len(prog.Instructions()))),
	)

	if opts.List {
		return listInstructions(output, prog)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("starting run: %w", err)
	}

	machine := newMachine(logger, prog, opts, input, output)
	if err := machine.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// PrintBanner prints the application banner and version.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	fmt.Println("[------------------------------]")
	fmt.Println("[ bfgo - brainfuck interpreter ]")
	fmt.Printf("[------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}

func newMachine(logger *log.Logger, prog *program.Program, opts options.Program,
	input io.Reader, output io.Writer) *vm.Machine {

	machineOpts := []vm.Option{
		vm.WithTapeSize(opts.Cells),
		vm.WithInput(input),
		vm.WithOutput(output),
	}
	if opts.Extensible {
		machineOpts = append(machineOpts, vm.WithExtensibleTape())
	}
	return vm.New(logger, prog, machineOpts...)
}

// listInstructions prints every parsed instruction with its source position.
func listInstructions(w io.Writer, prog *program.Program) error {
	for _, in := range prog.Instructions() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", prog.Name(), in); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}
	return nil
}
