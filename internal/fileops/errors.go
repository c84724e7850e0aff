package fileops

import (
	"errors"
	"fmt"
)

// Kind classifies filesystem errors by how the UI recovers from them.
type Kind int

const (
	// Unknown is the zero kind.
	Unknown Kind = iota
	// PathAccess means a directory could not be read (missing, permissions).
	PathAccess
	// FilesystemMutation means a delete or rename failed.
	FilesystemMutation
	// InvalidInput means user supplied input was rejected before touching disk.
	InvalidInput
)

func (k Kind) String() string {
	switch k {
	case PathAccess:
		return "path access"
	case FilesystemMutation:
		return "filesystem mutation"
	case InvalidInput:
		return "invalid input"
	default:
		return "unknown"
	}
}

// Error is returned by every fileops operation that touches disk.
type Error struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s", e.Op, e.Path)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the Kind of err, or Unknown when err is not an *Error.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Unknown
}

func newError(op, path string, kind Kind, err error) *Error {
	return &Error{Op: op, Path: path, Kind: kind, Err: err}
}
