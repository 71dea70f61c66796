// Package cli handles command line interface logic.
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/bfgo/internal/config"
	"github.com/retroenv/bfgo/internal/options"
	"github.com/retroenv/bfgo/internal/vm"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && !opts.Version) {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	if len(args) > 0 {
		opts.Input = args[0]
	}

	if err := applyConfigFile(flags, &opts); err != nil {
		return opts, err
	}

	if opts.Cells <= 0 {
		return opts, &UsageError{
			msg: fmt.Sprintf("cells must be greater than 0, got %d", opts.Cells),
		}
	}

	return opts, nil
}

// UsageError represents an error that should show usage information.
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the error message, if any, followed by the flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: bfgo [options] <program to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order.
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program to run, please pass the program to run as last argument", arg),
			}
		}
	}
	return nil
}

// applyConfigFile merges defaults from a TOML configuration file into the
// options. Flags that were explicitly set on the command line win over the
// file settings.
func applyConfigFile(flags *flag.FlagSet, opts *options.Program) error {
	if opts.Config == "" {
		return nil
	}

	file, err := config.LoadFile(opts.Config)
	if err != nil {
		return err
	}

	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	if !set["cells"] && file.Cells != 0 {
		opts.Cells = file.Cells
	}
	if !set["extensible"] && file.Extensible {
		opts.Extensible = true
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.IntVar(&opts.Cells, "cells", vm.DefaultTapeSize, "number of cells to allocate for the tape, must be greater than 0")
	flags.BoolVar(&opts.Extensible, "extensible", false, "allow the tape to grow at the high end")
	flags.StringVar(&opts.Config, "config", "", "name of a TOML file with default settings")
	flags.BoolVar(&opts.List, "list", false, "print the parsed instruction listing instead of running")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Version, "version", false, "print version and exit")
}
