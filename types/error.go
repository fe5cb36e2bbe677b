package types

import "fmt"

// ErrorCode represents a unified error code across the runtime.
type ErrorCode string

// Compile-time structural fault codes.
const (
	ErrDuplicateChild     ErrorCode = "DUPLICATE_CHILD"
	ErrReservedName       ErrorCode = "RESERVED_NAME"
	ErrInvalidName        ErrorCode = "INVALID_NAME"
	ErrUnknownBlock       ErrorCode = "UNKNOWN_BLOCK"
	ErrUnknownPort        ErrorCode = "UNKNOWN_PORT"
	ErrExternalUndeclared ErrorCode = "EXTERNAL_UNDECLARED"
	ErrExternalUnwired    ErrorCode = "EXTERNAL_UNWIRED"
	ErrRootExternal       ErrorCode = "ROOT_EXTERNAL"
	ErrEmptyNetwork       ErrorCode = "EMPTY_NETWORK"
)

// Runtime fault codes.
const (
	ErrBodyFault   ErrorCode = "BODY_FAULT"
	ErrRouterArity ErrorCode = "ROUTER_ARITY"
	ErrPortUnbound ErrorCode = "PORT_UNBOUND"
)

// Configuration fault codes.
const (
	ErrConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrUnknownKind    ErrorCode = "UNKNOWN_KIND"
	ErrUnknownFactory ErrorCode = "UNKNOWN_FACTORY"
)

// Error represents a structured error with code, message, and cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewErrorf creates a new Error with a formatted message.
func NewErrorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// CodeOf extracts the ErrorCode from err if it is (or wraps) a *Error.
// Returns the empty code otherwise.
func CodeOf(err error) ErrorCode {
	for err != nil {
		if se, ok := err.(*Error); ok {
			return se.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
