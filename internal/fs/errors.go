package fs

import (
	"errors"
	"fmt"
)

// ErrNoFiles is returned when validation is given an empty path list.
var ErrNoFiles = errors.New("No files")

// PathIsNotFileError is returned for paths that exist but are neither a
// directory nor a regular file (device nodes, sockets, pipes).
type PathIsNotFileError struct {
	Path string
}

func (e *PathIsNotFileError) Error() string {
	return fmt.Sprintf("The path '%s' is not a file", e.Path)
}

// PathIsDirectoryError is returned for directory arguments.
type PathIsDirectoryError struct {
	Path string
}

func (e *PathIsDirectoryError) Error() string {
	return fmt.Sprintf("The path '%s' is a directory", e.Path)
}

// FileNameNotUTF8Error is returned when a basename is not valid UTF-8.
type FileNameNotUTF8Error struct {
	Path string
}

func (e *FileNameNotUTF8Error) Error() string {
	return fmt.Sprintf("The file at '%s' does not have a UTF8 name", e.Path)
}

// IoError wraps a failure to read filesystem metadata.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return e.Err.Error()
}

func (e *IoError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err came out of Validate.
func IsValidationError(err error) bool {
	var (
		notFile *PathIsNotFileError
		isDir   *PathIsDirectoryError
		notUTF8 *FileNameNotUTF8Error
		ioErr   *IoError
	)
	return errors.Is(err, ErrNoFiles) ||
		errors.As(err, &notFile) ||
		errors.As(err, &isDir) ||
		errors.As(err, &notUTF8) ||
		errors.As(err, &ioErr)
}
