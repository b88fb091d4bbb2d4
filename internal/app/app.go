package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/gennyble/rnprefix/cli"
	"github.com/gennyble/rnprefix/internal/fs"
	"github.com/gennyble/rnprefix/internal/prefix"
	"github.com/gennyble/rnprefix/internal/prompt"
	"github.com/gennyble/rnprefix/internal/state"
	"github.com/gennyble/rnprefix/internal/tui"
	"github.com/gennyble/rnprefix/internal/ui"
	"github.com/gennyble/rnprefix/model"
)

const question = "Are these names okay? (y/n) "

// ErrPrompt marks a failure to read the user's answer. It is fatal.
var ErrPrompt = errors.New("failed to read answer")

// Reviewer picks a prefix for a file set without the line prompt.
type Reviewer func(set model.FileSet) (tui.Result, error)

// App orchestrates the entire application logic.
type App struct {
	cfg      *cli.Config
	fsys     afero.Fs
	in       io.Reader
	out      io.Writer
	log      zerolog.Logger
	stateDir string
	review   Reviewer
}

// Option customizes an App.
type Option func(*App)

// WithFs sets the filesystem files are validated and renamed on.
func WithFs(fsys afero.Fs) Option {
	return func(a *App) { a.fsys = fsys }
}

// WithIO sets where answers are read from and where output is written.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.in = in
		a.out = out
	}
}

// WithLogger sets the debug logger.
func WithLogger(log zerolog.Logger) Option {
	return func(a *App) { a.log = log }
}

// WithStateDir sets the directory the journal lives under. The working
// directory is used otherwise.
func WithStateDir(dir string) Option {
	return func(a *App) { a.stateDir = dir }
}

// WithReviewer replaces the full-screen review used with --tui.
func WithReviewer(r Reviewer) Option {
	return func(a *App) { a.review = r }
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

// New creates a new App instance.
func New(cfg *cli.Config, opts ...Option) *App {
	a := &App{
		cfg:  cfg,
		fsys: afero.NewOsFs(),
		in:   os.Stdin,
		out:  os.Stdout,
		log:  zerolog.Nop(),
		review: func(set model.FileSet) (tui.Result, error) {
			return tui.Review(set)
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Execute runs the mode selected by the flags.
func (a *App) Execute() (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	switch {
	case a.cfg.Undo:
		return a.undoLastOperation()
	case a.cfg.Redo:
		return a.redoLastOperation()
	default:
		return a.Run(a.cfg.Files)
	}
}

// Run validates paths, offers candidate prefixes until one is accepted or
// they run out, and renames the files with the accepted prefix stripped.
func (a *App) Run(paths []string) (model.Summary, error) {
	set, err := fs.Validate(a.fsys, paths)
	if err != nil {
		return model.Summary{}, err
	}
	a.log.Debug().Int("files", len(set.Files)).Str("reference", set.Reference()).Msg("validated input")

	var (
		chosen   string
		accepted bool
	)
	if a.cfg.TUI {
		chosen, accepted, err = a.reviewFullScreen(set)
	} else {
		chosen, accepted, err = a.reviewWithPrompt(set)
	}
	if err != nil {
		return model.Summary{}, err
	}
	if !accepted {
		return model.Summary{Message: "no prefix accepted"}, nil
	}

	summary := a.renameFiles(set, chosen)
	a.journal(summary)
	return summary, nil
}

// reviewWithPrompt shows each candidate in turn and asks for a y/n answer.
func (a *App) reviewWithPrompt(set model.FileSet) (string, bool, error) {
	p := prompt.New(a.in, a.out)

	for candidate := range prefix.FromFileSet(set).All() {
		a.log.Debug().Str("prefix", candidate).Msg("offering candidate")

		ui.WriteTable(a.out, set.Files, candidate)
		ui.WritePrefix(a.out, candidate)

		ok, err := p.Confirm(question)
		if err != nil {
			return "", false, fmt.Errorf("%w: %w", ErrPrompt, err)
		}
		fmt.Fprintln(a.out)
		if ok {
			return candidate, true, nil
		}
	}

	fmt.Fprintln(a.out, "Could not find a prefix!")
	return "", false, nil
}

func (a *App) reviewFullScreen(set model.FileSet) (string, bool, error) {
	result, err := a.review(set)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrPrompt, err)
	}
	switch {
	case result.Accepted:
		return result.Prefix, true, nil
	case result.Quit:
		fmt.Fprintln(a.out, "No prefix selected.")
	default:
		fmt.Fprintln(a.out, "Could not find a prefix!")
	}
	return "", false, nil
}

// renameFiles strips chosen from every basename, printing one line per file.
func (a *App) renameFiles(set model.FileSet, chosen string) model.Summary {
	return fs.StripPrefix(a.fsys, set, chosen, func(r model.FileRename) {
		if r.Err != nil {
			a.log.Debug().Err(r.Err).Str("from", r.OldPath).Msg("rename failed")
			ui.Failed(a.out, r)
			return
		}
		ui.Moved(a.out, r)
	})
}

// journal records the successful moves when --journal is set. Failing to
// write the journal does not undo the renames.
func (a *App) journal(summary model.Summary) {
	if !a.cfg.Journal || len(summary.Moved) == 0 {
		return
	}
	manager, err := state.New(a.fsys, a.stateDir)
	if err != nil {
		ui.Warning("Could not open the rename journal: %v", err)
		return
	}
	ops := manager.CreateOperations(summary.Moved)
	if err := manager.Write(summary.Prefix, ops); err != nil {
		ui.Warning("Could not record the renames: %v", err)
		return
	}
	a.log.Debug().Int("operations", len(ops)).Str("dir", manager.StateDir).Msg("journaled renames")
}
