package domain

import "fmt"

// AppError is the base error type for the client core. Every API failure —
// validation, transport, server rejection — collapses into this one channel;
// callers branch on presence of an error, not on its subtype.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

// Standard error constructors.

func ErrValidation(msg string) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: msg}
}

func ErrUnauthorized(msg string) *AppError {
	return &AppError{Code: "UNAUTHORIZED", Message: msg}
}

func ErrNotFound(entity, id string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: fmt.Sprintf("%s %s not found", entity, id)}
}

func ErrConflict(msg string) *AppError {
	return &AppError{Code: "CONFLICT", Message: msg}
}

// ErrRequestFailed wraps a server-rejected request, carrying the server's
// message verbatim when one was parseable.
func ErrRequestFailed(msg string) *AppError {
	return &AppError{Code: "REQUEST_FAILED", Message: msg}
}

// ErrUnavailable wraps a transport-level failure (network unreachable,
// malformed response body).
func ErrUnavailable(msg string, cause error) *AppError {
	return &AppError{Code: "UNAVAILABLE", Message: msg, Cause: cause}
}

func ErrInternal(msg string, cause error) *AppError {
	return &AppError{Code: "INTERNAL_ERROR", Message: msg, Cause: cause}
}
