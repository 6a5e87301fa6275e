package errors

import (
	"errors"
	"fmt"
)

// ErrorCode error code
type ErrorCode string

const (
	CodeInternal ErrorCode = "INTERNAL_ERROR"
	CodeConfig   ErrorCode = "CONFIG_ERROR"
	CodeStorage  ErrorCode = "STORAGE_ERROR"

	CodeUnknownExample           ErrorCode = "UNKNOWN_EXAMPLE"
	CodeUnsupportedPaymentMethod ErrorCode = "UNSUPPORTED_PAYMENT_METHOD"
	CodeStaplingNotSupported     ErrorCode = "STAPLING_NOT_SUPPORTED"
)

// AppError application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ExitCode process exit status for the error code
func (e *AppError) ExitCode() int {
	switch e.Code {
	case CodeConfig:
		return 2
	case CodeUnknownExample:
		return 3
	case CodeUnsupportedPaymentMethod, CodeStaplingNotSupported:
		return 4
	case CodeStorage:
		return 5
	default:
		return 1
	}
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func Internal(message string) *AppError {
	return New(CodeInternal, message)
}

func Config(err error) *AppError {
	return Wrap(err, CodeConfig, "invalid configuration")
}

func Storage(err error, message string) *AppError {
	return Wrap(err, CodeStorage, message)
}

func UnknownExample(name string) *AppError {
	return New(CodeUnknownExample, "unknown example: "+name)
}

// UnsupportedPaymentMethod wraps sentinel so errors.Is still matches it.
func UnsupportedPaymentMethod(sentinel error, method string) *AppError {
	return Wrap(sentinel, CodeUnsupportedPaymentMethod, fmt.Sprintf("payment method %q", method))
}

func StaplingNotSupported(sentinel error, device string) *AppError {
	return Wrap(sentinel, CodeStaplingNotSupported, device+" cannot staple")
}

// Is reports whether err carries the given code
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// AsAppError converts err to an AppError, wrapping unknown errors as internal
func AsAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeInternal, "internal error")
}
