package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies client-facing failures.
type Kind string

const (
	KindValidation Kind = "VALIDATION_FAILED"
	KindPermission Kind = "PERMISSION_DENIED"
	KindFetch      Kind = "FETCH_FAILED"
	KindUpdate     Kind = "UPDATE_FAILED"
	KindAuth       Kind = "AUTH_FAILED"
	KindNotFound   Kind = "NOT_FOUND"
	KindInternal   Kind = "INTERNAL_ERROR"
)

// Error standardizes application errors surfaced to the console.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New constructs an Error of the given kind.
func New(kind Kind, message string, details map[string]any) *Error {
	return &Error{Kind: kind, Message: message, Details: details}
}

func NewValidation(message string, details map[string]any) error {
	return New(KindValidation, message, details)
}

func NewPermission(message string) error {
	return New(KindPermission, message, nil)
}

// NewFetch wraps a failed listing operation. Callers keep whatever
// collection they already hold; the message becomes a banner.
func NewFetch(message string, err error) error {
	return &Error{Kind: KindFetch, Message: message, Err: err}
}

// NewUpdate wraps a failed mutating operation. Nothing is rolled back
// because nothing was optimistically applied.
func NewUpdate(message string, err error) error {
	return &Error{Kind: KindUpdate, Message: message, Err: err}
}

func NewAuth(message string, err error) error {
	return &Error{Kind: KindAuth, Message: message, Err: err}
}

func NewNotFound(resource string) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func NewInternal(err error) error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// As converts a generic error into *Error, wrapping unknown errors as internal.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Kind == kind
}
