// Package apperr defines the error taxonomy shared by every request path.
// Errors are terminal for the request that produced them: nothing retries,
// nothing commits partially.
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	MissingIdentity Kind = "missing_identity"
	InvalidIdentity Kind = "invalid_identity"
	AccessDenied    Kind = "access_denied"
	Validation      Kind = "validation"
	Conflict        Kind = "conflict"
	NotFound        Kind = "not_found"
	Persistence     Kind = "persistence"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an error of the given kind with a caller-facing message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error. The underlying
// text stays visible to the caller; for Persistence errors that includes the
// driver's diagnostic verbatim, which is an accepted disclosure for an
// internal tool.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of err, or Persistence when err carries no kind.
// Unclassified errors are store failures by definition: every other failure
// mode is tagged at its origin.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Persistence
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
