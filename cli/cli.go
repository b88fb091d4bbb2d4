package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// UsageLine is printed when rnprefix is started without enough files.
const UsageLine = "Usage: rnprefix FILE FILE..."

// UsageError is returned when the arguments cannot be used for a run.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// Config holds all the command-line flag values.
type Config struct {
	Files   []string
	TUI     bool
	Journal bool
	Undo    bool
	Redo    bool
	NoColor bool
	Debug   bool
}

// ParseFlags defines and parses command-line flags using pflag. args should
// not include the program name. Help output goes to w.
func ParseFlags(args []string, w io.Writer) (*Config, error) {
	cfg := &Config{}
	flags := pflag.NewFlagSet("rnprefix", pflag.ContinueOnError)
	flags.SetOutput(w)

	// Define flags
	flags.BoolVarP(&cfg.TUI, "tui", "t", false, "Review candidate prefixes in a full-screen view instead of the line prompt.")
	flags.BoolVarP(&cfg.Journal, "journal", "j", false, "Record the renames in .rnprefix/ so they can be undone.")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	flags.BoolVarP(&cfg.Debug, "debug", "d", false, "Print debug logs to stderr.")

	// Mutually exclusive history group
	flags.BoolVarP(&cfg.Undo, "undo", "u", false, "Undo the last journaled rename.")
	flags.BoolVarP(&cfg.Redo, "redo", "r", false, "Redo the last undone rename.")

	flags.Usage = func() {
		fmt.Fprintln(w, UsageLine)
		fmt.Fprintln(w, "\nStrip the longest common prefix from the names of the given files.")
		fmt.Fprintln(w, "\nExample: rnprefix 'Album - 01.flac' 'Album - 02.flac'")
		fmt.Fprintln(w, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		// pflag already printed the error and the defaults.
		return nil, err
	}
	cfg.Files = flags.Args()

	// Validate mutually exclusive flags
	if cfg.Undo && cfg.Redo {
		return nil, &UsageError{Msg: "error: --undo and --redo are mutually exclusive"}
	}
	if cfg.Undo || cfg.Redo {
		if len(cfg.Files) > 0 {
			return nil, &UsageError{Msg: "error: --undo and --redo take no files"}
		}
		return cfg, nil
	}

	if len(cfg.Files) < 2 {
		return nil, &UsageError{Msg: UsageLine}
	}
	return cfg, nil
}
