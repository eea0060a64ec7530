package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrNoChapterFiles indicates the chapters directory contained no files
	ErrNoChapterFiles = errors.New("no chapter files found")

	// ErrNoChapterSource indicates neither a directory nor an explicit list was given
	ErrNoChapterSource = errors.New("no chapter source provided")

	// ErrAmbiguousChapterSource indicates both a directory and an explicit list were given
	ErrAmbiguousChapterSource = errors.New("chapters directory and explicit chapter list are mutually exclusive")

	// ErrWriteFailed indicates writing the output artifact failed
	ErrWriteFailed = errors.New("write failed")
)

// NotFoundError indicates a required source file is missing or not a regular file.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("source file %s not found: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("source file %s is missing or not a regular file", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(path string, err error) *NotFoundError {
	return &NotFoundError{Path: path, Err: err}
}

// CountMismatchError indicates the gathered chapter count differs from the
// required count. The message states the two counts and nothing else.
type CountMismatchError struct {
	Want int
	Got  int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("expected %d chapters but received %d", e.Want, e.Got)
}

// NewCountMismatchError creates a new CountMismatchError
func NewCountMismatchError(want, got int) *CountMismatchError {
	return &CountMismatchError{Want: want, Got: got}
}

// ValidationError indicates a required text section is empty after
// normalization. Section is the user-facing label of the failing section.
type ValidationError struct {
	Section string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("section %q is empty after normalization", e.Section)
}

// NewValidationError creates a new ValidationError
func NewValidationError(section string) *ValidationError {
	return &ValidationError{Section: section}
}

// MissingDependencyError indicates a rendering capability is absent from the
// binary. This is the one fatal, non-recoverable error: page-accurate output
// has no pure-text fallback.
type MissingDependencyError struct {
	Capability string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("capability %q is not available in this build", e.Capability)
}

// NewMissingDependencyError creates a new MissingDependencyError
func NewMissingDependencyError(capability string) *MissingDependencyError {
	return &MissingDependencyError{Capability: capability}
}

// IsFatal reports whether the error is a MissingDependencyError, the only
// error class with no actionable user remedy short of reinstalling.
func IsFatal(err error) bool {
	var missing *MissingDependencyError
	return errors.As(err, &missing)
}
