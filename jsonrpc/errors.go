package jsonrpc

import "fmt"

// ErrorCode is a JSON-RPC 2.0 error code.
type ErrorCode int

const (
	// ErrorCodeParseError indicates the peer sent bytes that are not valid JSON.
	ErrorCodeParseError ErrorCode = -32700
	// ErrorCodeInvalidRequest indicates the JSON sent is not a valid envelope.
	ErrorCodeInvalidRequest ErrorCode = -32600
	// ErrorCodeMethodNotFound indicates the method does not exist / is not available.
	ErrorCodeMethodNotFound ErrorCode = -32601
	// ErrorCodeInvalidParams indicates the params do not match the method's shape.
	ErrorCodeInvalidParams ErrorCode = -32602
	// ErrorCodeInternalError indicates an internal JSON-RPC error.
	ErrorCodeInternalError ErrorCode = -32603

	// ErrorCodeConnectionClosed is a locally-defined sentinel reporting that
	// the channel closed before any JSON-RPC error arrived. It is never
	// written to the wire; transports surface it so callers can handle
	// transport and protocol failures through one error type.
	ErrorCodeConnectionClosed ErrorCode = -1
)

// Error is a JSON-RPC error object. It doubles as a Go error so protocol
// failures can flow through ordinary error returns.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Data    any       `json:"data,omitempty"`
}

// NewError builds an Error with the given code and message. Data stays nil;
// callers that need to attach opaque diagnostics set it directly.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Error formats a stable diagnostic embedding the code and message. Data is
// opaque and intentionally excluded.
func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// Is reports whether target is an *Error with the same code, letting callers
// match protocol errors with errors.Is against a bare NewError(code, "").
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}
