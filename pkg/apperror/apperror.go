package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies an error for HTTP status mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// Error is the application error carried from usecases up to the response
// layer. Operational errors are expected client-facing failures whose message
// is safe to return verbatim; everything else is masked.
type Error struct {
	Kind        Kind
	Message     string
	Details     []string
	Operational bool
	Err         error
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

// Is matches errors by kind so callers can use errors.Is with the exported
// sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrValidation   = &Error{Kind: KindValidation}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrForbidden    = &Error{Kind: KindForbidden}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrInternal     = &Error{Kind: KindInternal}
)

// ErrDatabaseNotConfigured is returned by data-backed operations when the
// process runs without a data store. Operational: the message is safe to
// surface, the status is still 500.
var ErrDatabaseNotConfigured = &Error{
	Kind:        KindInternal,
	Message:     "Database not configured",
	Operational: true,
}

// Validation aggregates field violation messages into a single error. The
// joined message mirrors the per-field messages for clients that only read
// error.message.
func Validation(messages ...string) *Error {
	return &Error{
		Kind:        KindValidation,
		Message:     strings.Join(messages, ", "),
		Details:     messages,
		Operational: true,
	}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message, Operational: true}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message, Operational: true}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, Operational: true}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message, Operational: true}
}

// Internal wraps an unexpected failure. Not operational: the response layer
// logs it and returns a generic message.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// Status maps an error kind to its HTTP status code.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
