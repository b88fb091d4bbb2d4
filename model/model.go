package model

import (
	"os"
	"path/filepath"
	"strings"
)

// FileRecord is one validated input path split into its parent directory
// and basename.
type FileRecord struct {
	// Parent is empty when the original argument had no directory component.
	Parent string
	Name   string
}

// Path joins the record back into the path it was created from.
func (f FileRecord) Path() string {
	return join(f.Parent, f.Name)
}

// StrippedName returns the basename without the leading prefix.
func (f FileRecord) StrippedName(prefix string) string {
	return strings.TrimPrefix(f.Name, prefix)
}

// RenamedPath is the path the file ends up at once prefix is stripped.
// The parent directory never changes.
func (f FileRecord) RenamedPath(prefix string) string {
	return join(f.Parent, f.StrippedName(prefix))
}

// join keeps the parent exactly as typed so "./a" is reported as "./a".
func join(parent, name string) string {
	switch {
	case parent == "":
		return name
	case os.IsPathSeparator(parent[len(parent)-1]):
		return parent + name
	default:
		return parent + string(filepath.Separator) + name
	}
}

// FileSet is the ordered list of records. The first record's basename is the
// reference candidates are sliced from.
type FileSet struct {
	Files []FileRecord
}

// Names returns the basenames in input order.
func (s FileSet) Names() []string {
	names := make([]string, len(s.Files))
	for i, f := range s.Files {
		names[i] = f.Name
	}
	return names
}

// Reference is the basename of the first file.
func (s FileSet) Reference() string {
	if len(s.Files) == 0 {
		return ""
	}
	return s.Files[0].Name
}

// FileRename is one planned or performed move.
type FileRename struct {
	OldPath string
	NewPath string
	Err     error
}

// Summary holds the results of an operation for display.
type Summary struct {
	Prefix  string
	Moved   []FileRename
	Failed  []FileRename
	Message string
}
