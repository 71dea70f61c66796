// Package main implements the main entry point for the bfgo brainfuck interpreter
package main

import (
	"errors"
	"os"

	"github.com/retroenv/bfgo/internal/cli"
	"github.com/retroenv/bfgo/internal/config"
	"github.com/retroenv/bfgo/internal/fileprocessor"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	fileprocessor.PrintBanner(logger, opts, version, commit, date)
	if opts.Version {
		return
	}

	if err := fileprocessor.ProcessFile(ctx, logger, opts, os.Stdin, os.Stdout); err != nil {
		logger.Error("Running failed", log.Err(err))
		os.Exit(1)
	}
}
