package errors

import (
	"net/http"

	"homesec/internal/errors"
)

// Stable error kinds exposed to API callers.
const (
	KindUnauthenticated     = "UNAUTHENTICATED"
	KindForbidden           = "FORBIDDEN"
	KindNotFound            = "NOT_FOUND"
	KindInvalidInput        = "INVALID_INPUT"
	KindConflict            = "CONFLICT"
	KindInvalidCredentials  = "INVALID_CREDENTIALS"
	KindEmailDeliveryFailed = "EMAIL_DELIVERY_FAILED"
	KindInternal            = "INTERNAL_ERROR"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Stable error kind
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError of the same kind, so errors.Is keeps working after WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the stable error kind
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying details
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error kinds
var (
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		KindUnauthenticated,
		"No se pudieron validar las credenciales",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		KindForbidden,
		"No tienes permiso para realizar esta acción",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		KindNotFound,
		"Recurso no encontrado",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		KindInvalidInput,
		"Datos de entrada no válidos",
		"",
	)

	// Duplicate email is reported as 400, not 409.
	ErrConflict = NewBaseError(
		http.StatusBadRequest,
		KindConflict,
		"Ya existe un cliente con ese correo",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		KindInvalidCredentials,
		"Correo o contraseña incorrectos",
		"",
	)

	ErrEmailDeliveryFailed = NewBaseError(
		http.StatusInternalServerError,
		KindEmailDeliveryFailed,
		"Error al enviar el correo",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		KindInternal,
		"Error interno del servidor, inténtalo más tarde",
		"",
	)
)

// DatabaseExecuteError represents a store failure, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a store-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the stable error kind
func (e *DatabaseExecuteError) ErrorCode() string {
	return KindInternal
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return ErrInternal.Message()
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
