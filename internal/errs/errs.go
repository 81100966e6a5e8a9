// Package errs defines the closed set of error kinds the API can report
// and the single translation from a kind to an HTTP status.
package errs

import (
	"errors"
	"net/http"
	"strings"
)

// Kind classifies an application error.
type Kind int

const (
	// Internal is any persistence or unexpected failure.
	Internal Kind = iota
	// NotFound means no document has the requested identifier.
	NotFound
	// ValidationFailure means a payload is missing a required field or is malformed.
	ValidationFailure
	// BadRequest means the request lacks something the route requires (e.g. a file).
	BadRequest
	// UploadFailure means the remote media host rejected or failed the upload.
	UploadFailure
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "NotFound"
	case ValidationFailure:
		return "ValidationFailure"
	case BadRequest:
		return "BadRequest"
	case UploadFailure:
		return "UploadFailure"
	default:
		return "Internal"
	}
}

// Status maps a kind onto the HTTP status code returned to clients.
func (k Kind) Status() int {
	switch k {
	case NotFound:
		return http.StatusNotFound
	case ValidationFailure, BadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the machine-friendly code rendered in error bodies,
// e.g. "NOT_FOUND".
func (k Kind) Code() string {
	if k == ValidationFailure {
		return "VALIDATION_FAILED"
	}
	if k == UploadFailure {
		return "UPLOAD_FAILED"
	}
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(k.Status()), " ", "_"))
}

// FieldError is a field-level validation error.
//
//	{ "field": "name", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Error is the error type returned by services. Handlers render it through
// Kind.Status; Err is the underlying cause and is never sent to clients.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind, so callers can
// write errors.Is(err, errs.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons.
var (
	ErrNotFound          = &Error{Kind: NotFound, Message: "not found"}
	ErrValidationFailure = &Error{Kind: ValidationFailure, Message: "validation failed"}
	ErrBadRequest        = &Error{Kind: BadRequest, Message: "bad request"}
	ErrUploadFailure     = &Error{Kind: UploadFailure, Message: "upload failed"}
	ErrInternal          = &Error{Kind: Internal, Message: "internal server error"}
)

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause to a new error of the given kind.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation builds a ValidationFailure carrying per-field errors.
func Validation(message string, fields ...FieldError) *Error {
	return &Error{Kind: ValidationFailure, Message: message, Fields: fields}
}

// KindOf returns the kind of err. Anything that is not an *Error is Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}
