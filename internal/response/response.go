package response

import (
	"errors"
	"fmt"
)

// Error is a business-rule violation carrying a typed code. Every rule
// violation surfaces to the user as a single one-line message.
type Error struct {
	Code    ErrCode
	Message string
}

// Error implements the error interface. Falls back to the code's
// default message when no specific one was set.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return Message(e.Code)
}

// New builds an Error using the code's default message.
func New(code ErrCode) *Error {
	return &Error{Code: code}
}

// Newf builds an Error with a formatted message.
func Newf(code ErrCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the ErrCode from err, or "" if err is not a
// business-rule Error.
func CodeOf(err error) ErrCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
