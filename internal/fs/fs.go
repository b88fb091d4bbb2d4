package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/gennyble/rnprefix/model"
)

// Validate stats every path and splits it into a FileRecord. The whole input
// is rejected on the first path that is missing, is not a regular file or has
// a basename that is not valid UTF-8.
func Validate(fsys afero.Fs, paths []string) (model.FileSet, error) {
	if len(paths) == 0 {
		return model.FileSet{}, ErrNoFiles
	}

	files := make([]model.FileRecord, 0, len(paths))
	for _, path := range paths {
		record, err := NewRecord(fsys, path)
		if err != nil {
			return model.FileSet{}, err
		}
		files = append(files, record)
	}
	return model.FileSet{Files: files}, nil
}

// NewRecord checks a single path and builds its FileRecord.
func NewRecord(fsys afero.Fs, path string) (model.FileRecord, error) {
	if err := checkPath(fsys, path); err != nil {
		return model.FileRecord{}, err
	}

	parent, name := splitPath(path)
	if name == "" {
		return model.FileRecord{}, &PathIsNotFileError{Path: path}
	}
	if !utf8.ValidString(name) {
		return model.FileRecord{}, &FileNameNotUTF8Error{Path: path}
	}
	return model.FileRecord{Parent: parent, Name: name}, nil
}

func checkPath(fsys afero.Fs, path string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		return &IoError{Path: path, Err: err}
	}

	switch {
	case info.IsDir():
		return &PathIsDirectoryError{Path: path}
	case !info.Mode().IsRegular():
		return &PathIsNotFileError{Path: path}
	default:
		return nil
	}
}

// splitPath returns the parent as typed, minus its trailing separator, and
// the basename. A parent that is only the root keeps its separator.
func splitPath(path string) (string, string) {
	dir, name := filepath.Split(path)
	if dir == "" {
		return "", name
	}
	trimmed := strings.TrimRight(dir, string(filepath.Separator))
	if trimmed == "" || strings.HasSuffix(trimmed, ":") {
		return dir, name
	}
	return trimmed, name
}

// Rename moves a single file. Both paths share a parent directory, so the
// move never crosses devices.
func Rename(fsys afero.Fs, from, to string) error {
	return fsys.Rename(from, to)
}

// StripPrefix renames every file in set to its basename without prefix.
// A failed move is recorded and the remaining files are still attempted.
// report, if non-nil, is called after each attempt.
func StripPrefix(fsys afero.Fs, set model.FileSet, prefix string, report func(model.FileRename)) model.Summary {
	summary := model.Summary{Prefix: prefix}

	for _, f := range set.Files {
		r := model.FileRename{OldPath: f.Path(), NewPath: f.RenamedPath(prefix)}
		r.Err = Rename(fsys, r.OldPath, r.NewPath)
		if r.Err != nil {
			summary.Failed = append(summary.Failed, r)
		} else {
			summary.Moved = append(summary.Moved, r)
		}
		if report != nil {
			report(r)
		}
	}
	return summary
}

// Exists reports whether anything is present at path.
func Exists(fsys afero.Fs, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// GetFileSHA256 hashes the contents of the file at path.
func GetFileSHA256(fsys afero.Fs, path string) (string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not open %s for hashing: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("could not hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
