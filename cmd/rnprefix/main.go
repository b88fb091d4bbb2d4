package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/gennyble/rnprefix/cli"
	"github.com/gennyble/rnprefix/internal/app"
	"github.com/gennyble/rnprefix/internal/fs"
	"github.com/gennyble/rnprefix/internal/logging"
	"github.com/gennyble/rnprefix/internal/ui"
)

const (
	exitOK = iota
	exitUsage
	exitValidation
	exitPrompt
	exitInternal
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := cli.ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintln(os.Stderr, usageErr.Msg)
		}
		// pflag already prints its own parse errors.
		return exitUsage
	}

	if cfg.NoColor {
		ui.DisableColor()
	}
	log := logging.New(os.Stderr, cfg.Debug)

	a := app.New(cfg, app.WithLogger(log))
	summary, err := a.Execute()
	if err != nil {
		ui.Error("%v", err)

		var detailed *app.DetailedError
		switch {
		case errors.As(err, &detailed):
			if cfg.Debug {
				fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", detailed.Stack)
			}
			return exitInternal
		case fs.IsValidationError(err):
			return exitValidation
		case errors.Is(err, app.ErrPrompt):
			return exitPrompt
		default:
			return exitInternal
		}
	}

	switch {
	case cfg.Undo:
		ui.PrintSummary("Undo Summary", summary)
	case cfg.Redo:
		ui.PrintSummary("Redo Summary", summary)
	}
	return exitOK
}
