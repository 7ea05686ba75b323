package txtlog

import (
	"errors"
	"fmt"
)

// ErrNoLogDir is returned by LoadConfig when the log_dir key is empty or missing
var ErrNoLogDir = errors.New("log_dir is not set")

// OpError describes a failed filesystem operation on the path
type OpError struct {
	Op		string
	Path	string
	Err		error
}
func (e *OpError) Error() string {
	return fmt.Sprintf("cannot %s %q: %v", e.Op, e.Path, e.Err)
}
func (e *OpError) Unwrap() error {
	return e.Err
}

// DirectoryCreationError is returned by New when the log directory cannot be created
type DirectoryCreationError struct {
	OpError
}
func newDirectoryCreationError(path string, err error) error {
	return &DirectoryCreationError{OpError{Op: "create log directory", Path: path, Err: err}}
}

// FileOpenError is returned by New when the log file cannot be opened
type FileOpenError struct {
	OpError
}
func newFileOpenError(path string, err error) error {
	return &FileOpenError{OpError{Op: "open log file", Path: path, Err: err}}
}
