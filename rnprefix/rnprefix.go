// Package rnprefix strips a shared prefix from the names of a set of files.
//
// It is the library form of the rnprefix command: callers choose the prefix
// themselves instead of answering a prompt.
package rnprefix

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/spf13/afero"

	"github.com/gennyble/rnprefix/internal/fs"
	"github.com/gennyble/rnprefix/internal/prefix"
	"github.com/gennyble/rnprefix/model"
)

// Prefixes returns the candidate prefixes for names, longest first. Each one
// is shared by every name and shorter than all of them.
func Prefixes(names []string) []string {
	return prefix.Candidates(names)
}

// Renamer holds a validated set of files.
type Renamer struct {
	fsys afero.Fs
	set  model.FileSet
}

// New validates paths on the local filesystem.
func New(paths []string) (*Renamer, error) {
	return NewWithFs(afero.NewOsFs(), paths)
}

// NewWithFs validates paths on fsys.
func NewWithFs(fsys afero.Fs, paths []string) (*Renamer, error) {
	set, err := fs.Validate(fsys, paths)
	if err != nil {
		return nil, err
	}
	return &Renamer{fsys: fsys, set: set}, nil
}

// Files returns the validated files in input order.
func (r *Renamer) Files() []model.FileRecord {
	return r.set.Files
}

// Prefixes iterates the candidate prefixes, longest first. Each call starts
// a fresh sequence.
func (r *Renamer) Prefixes() iter.Seq[string] {
	return prefix.FromFileSet(r.set).All()
}

// Rename strips p from every file. p must be shared by every basename and
// shorter than all of them. Individual failures are listed in the summary.
func (r *Renamer) Rename(p string) (model.Summary, error) {
	if p == "" {
		return model.Summary{}, errors.New("empty prefix")
	}
	for _, f := range r.set.Files {
		if len(p) >= len(f.Name) || !strings.HasPrefix(f.Name, p) {
			return model.Summary{}, fmt.Errorf("prefix '%s' cannot be stripped from '%s'", p, f.Name)
		}
	}
	return fs.StripPrefix(r.fsys, r.set, p, nil), nil
}
