package fileutil

import "fmt"

// ErrFileRead reports a failure to read the file at Path. It wraps
// the underlying os error, so errors.Is still matches fs.ErrNotExist,
// fs.ErrPermission, and friends.
type ErrFileRead struct {
	Path  string
	Inner error
}

func (e *ErrFileRead) Error() string {
	return fmt.Sprintf("fileutil: failed to read %s: %v", e.Path, e.Inner)
}

func (e *ErrFileRead) Unwrap() error {
	return e.Inner
}

func NewFileReadError(path string, inner error) *ErrFileRead {
	return &ErrFileRead{Path: path, Inner: inner}
}

// ErrFileWrite reports a failure to create or write the file at Path.
type ErrFileWrite struct {
	Path  string
	Inner error
}

func (e *ErrFileWrite) Error() string {
	return fmt.Sprintf("fileutil: failed to write %s: %v", e.Path, e.Inner)
}

func (e *ErrFileWrite) Unwrap() error {
	return e.Inner
}

func NewFileWriteError(path string, inner error) *ErrFileWrite {
	return &ErrFileWrite{Path: path, Inner: inner}
}
