// Package errors provides error types for describe metadata operations.
// It wraps underlying filesystem and remote errors with the operation and
// the path (or object name) that failed, so callers can both print useful
// messages and classify failures with errors.Is.
package errors

import (
	"errors"
	"fmt"
)

// Error represents a failed describe operation with context about what failed.
type Error struct {
	// Op is the operation that failed (e.g. "stat", "readdir", "read",
	// "write", "mkdir", "parse", "list", "describe").
	Op string

	// Path is the filesystem path or remote object name involved, if any.
	Path string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("describe.%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("describe.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{Op: op, Err: err}
}

// NewPathError creates a new Error carrying the path that failed.
func NewPathError(op, path string, err error) *Error {
	return &Error{Op: op, Path: path, Err: err}
}

// Sentinel errors for common failures. Use errors.Is (or the Is helper
// below) to check for them through wrapped chains.
var (
	// ErrNotDirectory indicates a path that was expected to be a directory
	// refers to something else.
	ErrNotDirectory = errors.New("describe: not a directory")

	// ErrInvalidName indicates a document name that cannot be used as a
	// filename (empty, dot entries, or containing path separators).
	ErrInvalidName = errors.New("describe: invalid document name")

	// ErrMissingName indicates a document without the required name field.
	ErrMissingName = errors.New("describe: document has no name")

	// ErrMalformedDocument indicates document content that is not valid JSON.
	ErrMalformedDocument = errors.New("describe: malformed document")

	// ErrObjectNotFound indicates the remote instance has no object with the
	// requested name.
	ErrObjectNotFound = errors.New("describe: object not found")
)

// Is reports whether any error in err's chain matches target.
// It is a passthrough to the standard library so callers of this package
// don't need a second errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotDirectory checks if an error indicates a non-directory path where a
// directory was required.
func IsNotDirectory(err error) bool {
	return errors.Is(err, ErrNotDirectory)
}

// IsMalformedDocument checks if an error indicates unparseable document
// content.
func IsMalformedDocument(err error) bool {
	return errors.Is(err, ErrMalformedDocument) || errors.Is(err, ErrMissingName)
}

// IsObjectNotFound checks if an error indicates a missing remote object.
func IsObjectNotFound(err error) bool {
	return errors.Is(err, ErrObjectNotFound)
}
