package app

import (
	"fmt"

	"github.com/gennyble/rnprefix/internal/fs"
	"github.com/gennyble/rnprefix/internal/state"
	"github.com/gennyble/rnprefix/model"
)

// undoLastOperation moves the files of the last journaled batch back to
// their original names.
func (a *App) undoLastOperation() (model.Summary, error) {
	manager, err := state.New(a.fsys, a.stateDir)
	if err != nil {
		return model.Summary{}, err
	}
	ops, err := manager.GetOperationsToUndo()
	if err != nil {
		return model.Summary{}, err
	}
	if len(ops) == 0 {
		return model.Summary{Message: "No rename to undo."}, nil
	}

	summary := model.Summary{Message: "Undid last rename."}
	// Walk backwards so the batch unwinds in the reverse of how it was done.
	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		a.move(&summary, op.NewPath, op.Path, op.ContentHash)
	}
	return summary, nil
}

// redoLastOperation repeats the last undone batch.
func (a *App) redoLastOperation() (model.Summary, error) {
	manager, err := state.New(a.fsys, a.stateDir)
	if err != nil {
		return model.Summary{}, err
	}
	ops, err := manager.GetOperationsToRedo()
	if err != nil {
		return model.Summary{}, err
	}
	if len(ops) == 0 {
		return model.Summary{Message: "No rename to redo."}, nil
	}

	summary := model.Summary{Message: "Redid last undone rename."}
	for _, op := range ops {
		a.move(&summary, op.Path, op.NewPath, op.ContentHash)
	}
	return summary, nil
}

// move renames from to to, but only if from still holds the content that was
// journaled and nothing occupies to.
func (a *App) move(summary *model.Summary, from, to, wantHash string) {
	r := model.FileRename{OldPath: from, NewPath: to}

	hash, err := fs.GetFileSHA256(a.fsys, from)
	switch {
	case err != nil:
		r.Err = err
	case hash != wantHash:
		r.Err = fmt.Errorf("%s changed since it was renamed", from)
	case fs.Exists(a.fsys, to):
		r.Err = fmt.Errorf("%s already exists", to)
	default:
		r.Err = fs.Rename(a.fsys, from, to)
	}

	if r.Err != nil {
		a.log.Debug().Err(r.Err).Str("from", from).Str("to", to).Msg("history move skipped")
		summary.Failed = append(summary.Failed, r)
		return
	}
	summary.Moved = append(summary.Moved, r)
}
