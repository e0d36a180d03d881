package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a rejection reason. Codes are stable and part of the API
// contract; clients branch on them.
type Code string

const (
	CodeUnauthenticated  Code = "UNAUTHENTICATED"
	CodeNotesNotEnabled  Code = "NOTES_NOT_ENABLED"
	CodePermissionDenied Code = "PERMISSION_DENIED"
	CodeEmptyContent     Code = "EMPTY_CONTENT"
	CodeContentTooLong   Code = "CONTENT_TOO_LONG"
	CodeNotFound         Code = "NOT_FOUND"
	CodeNotAuthor        Code = "NOT_AUTHOR"
	CodeTransient        Code = "TRANSIENT"
)

type AppError struct {
	Code    Code
	Message string
	Status  int
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Is matches on code so sentinel comparisons via errors.Is work regardless
// of message or cause.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func newErr(code Code, status int, message string) *AppError {
	return &AppError{Code: code, Message: message, Status: status}
}

var (
	ErrUnauthenticated  = newErr(CodeUnauthenticated, http.StatusUnauthorized, "no authenticated actor")
	ErrNotesNotEnabled  = newErr(CodeNotesNotEnabled, http.StatusBadRequest, "notes are not enabled for this entity type")
	ErrPermissionDenied = newErr(CodePermissionDenied, http.StatusForbidden, "actor is not permitted to perform this action")
	ErrEmptyContent     = newErr(CodeEmptyContent, http.StatusBadRequest, "note content is empty")
	ErrContentTooLong   = newErr(CodeContentTooLong, http.StatusBadRequest, "note content exceeds the configured limit")
	ErrNotFound         = newErr(CodeNotFound, http.StatusNotFound, "note not found")
	ErrNotAuthor        = newErr(CodeNotAuthor, http.StatusForbidden, "only the author may modify this note")
)

// Transient wraps an infrastructure failure. Distinguishable from validation
// and permission failures so callers know a retry may succeed.
func Transient(cause error) *AppError {
	return &AppError{
		Code:    CodeTransient,
		Message: "temporary failure, retry may succeed",
		Status:  http.StatusServiceUnavailable,
		cause:   cause,
	}
}

// StatusOf resolves the HTTP status for any error, defaulting to 500.
func StatusOf(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusInternalServerError
}

// CodeOf resolves the stable code for any error, empty for unknown errors.
func CodeOf(err error) Code {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}
