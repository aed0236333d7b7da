package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCodeExpired        = errors.New("verification code expired")
	ErrCodeAlreadyUsed    = errors.New("verification code already used")
	ErrCodeMismatch       = errors.New("verification code does not match")
	ErrMailSendFailed     = errors.New("failed to send email")
)

// Error codes surfaced to API clients. They follow the callable-endpoint
// error taxonomy: invalid-argument, unauthenticated, not-found,
// permission-denied, already-exists, failed-precondition, internal.
const (
	CodeInvalidArgument    = "invalid-argument"
	CodeUnauthenticated    = "unauthenticated"
	CodeNotFound           = "not-found"
	CodePermissionDenied   = "permission-denied"
	CodeAlreadyExists      = "already-exists"
	CodeFailedPrecondition = "failed-precondition"
	CodeInternal           = "internal"
)

// AppError represents an application error with an HTTP status and a
// stable string code.
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidArgument, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthenticated, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodePermissionDenied, message, ErrForbidden)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeAlreadyExists, message, ErrAlreadyExists)
}

func FailedPrecondition(message string, err error) *AppError {
	return NewAppError(http.StatusConflict, CodeFailedPrecondition, message, err)
}

func MailSendFailed(err error) *AppError {
	if err == nil {
		err = ErrMailSendFailed
	}
	return NewAppError(http.StatusBadGateway, CodeInternal, "failed to send email", err)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternal, "internal server error", err)
}
