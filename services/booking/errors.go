package booking

import (
	"errors"
	"fmt"
)

// Error codes classifying caller-facing booking failures. The transport
// layer maps these to HTTP statuses; the service only classifies.
const (
	CodeInvalidFormat = "invalidFormat"
	CodeInvalid       = "invalid"
	CodeNotFound      = "notFound"
	CodeConflict      = "conflict"
)

// BookingError is a recoverable, caller-facing failure.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidFormatError(msg string) error {
	return &BookingError{Code: CodeInvalidFormat, Message: msg}
}

func NewInvalidError(msg string) error {
	return &BookingError{Code: CodeInvalid, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &BookingError{Code: CodeNotFound, Message: msg}
}

func NewConflictError(msg string) error {
	return &BookingError{Code: CodeConflict, Message: msg}
}

// ErrorCode returns the classification code of err, or "" when err is not a
// BookingError.
func ErrorCode(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
