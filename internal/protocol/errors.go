package protocol

import (
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Error codes surfaced to clients.
const (
	CodeParseError     = mcp.PARSE_ERROR
	CodeInvalidRequest = mcp.INVALID_REQUEST
	CodeMethodNotFound = mcp.METHOD_NOT_FOUND
	CodeInvalidParams  = mcp.INVALID_PARAMS
	CodeInternalError  = mcp.INTERNAL_ERROR
)

// Error is a typed protocol error. It is what crosses the wire in the
// "error" member of a JSON-RPC response.
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`

	cause error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying error of a wrapped internal error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns a short name for the error code, used in logs.
func (e *Error) Kind() string {
	switch e.Code {
	case CodeMethodNotFound:
		return "method_not_found"
	case CodeInvalidParams:
		return "invalid_params"
	case CodeInternalError:
		return "internal_error"
	case CodeParseError:
		return "parse_error"
	case CodeInvalidRequest:
		return "invalid_request"
	default:
		return fmt.Sprintf("code_%d", e.Code)
	}
}

// MethodNotFound reports a name absent from the relevant registry.
func MethodNotFound(format string, args ...interface{}) *Error {
	return &Error{Code: CodeMethodNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidParams reports input rejected before any side effect.
func InvalidParams(format string, args ...interface{}) *Error {
	return &Error{Code: CodeInvalidParams, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps err as an internal error attributed to the named action.
// The original message is preserved in the wrapper's text.
func Internal(action string, err error) *Error {
	return &Error{
		Code:    CodeInternalError,
		Message: fmt.Sprintf("%s failed: %v", action, err),
		Data:    map[string]string{"action": action},
		cause:   err,
	}
}

// AsError reports whether err is, or wraps, a typed protocol error.
func AsError(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsCode reports whether err is a typed protocol error with the given code.
func IsCode(err error, code int) bool {
	pe, ok := AsError(err)
	return ok && pe.Code == code
}
