package jsonrpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Version is the JSON-RPC protocol version every envelope must carry.
const Version = "2.0"

// Message is the raw wire form of a single JSON-RPC message.
type Message []byte

// ErrInvalidEnvelope reports a JSON object that does not match exactly one
// of the four envelope variants. All envelope classification failures wrap
// this sentinel.
var ErrInvalidEnvelope = errors.New("invalid jsonrpc envelope")

// MessageType identifies which envelope variant a decoded message matched.
type MessageType string

const (
	MessageTypeRequest      MessageType = "request"
	MessageTypeNotification MessageType = "notification"
	MessageTypeResponse     MessageType = "response"
)

// envelopeKeys is the closed set of keys permitted at the top level of an
// envelope. Openness lives inside params/result/_meta, never at this level.
var envelopeKeys = map[string]struct{}{
	"jsonrpc": {},
	"id":      {},
	"method":  {},
	"params":  {},
	"result":  {},
	"error":   {},
}

// AnyMessage is a decoded JSON-RPC message of any variant. UnmarshalJSON
// performs envelope validation; a populated AnyMessage is therefore always
// exactly one of request, notification, success response or error response.
type AnyMessage struct {
	JSONRPCVersion string          `json:"jsonrpc"`
	Method         string          `json:"method,omitempty"`
	Params         json.RawMessage `json:"params,omitempty"`
	Result         json.RawMessage `json:"result,omitempty"`
	Error          *Error          `json:"error,omitempty"`
	ID             *RequestID      `json:"id,omitempty"`
}

// Request is a JSON-RPC request, or a notification when ID is nil.
type Request struct {
	JSONRPCVersion string          `json:"jsonrpc"`
	Method         string          `json:"method"`
	Params         json.RawMessage `json:"params,omitempty"`
	ID             *RequestID      `json:"id,omitempty"`
}

// Response is a JSON-RPC response carrying either a result or an error.
type Response struct {
	JSONRPCVersion string          `json:"jsonrpc"`
	Result         json.RawMessage `json:"result,omitempty"`
	Error          *Error          `json:"error,omitempty"`
	ID             *RequestID      `json:"id,omitempty"`
}

// NewRequest builds a request envelope. Params may be nil for methods that
// take none; a nil id produces a notification.
func NewRequest(id *RequestID, method string, params any) (*Request, error) {
	var raw json.RawMessage
	if params != nil {
		b, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("marshal params: %w", err)
		}
		raw = b
	}
	return &Request{
		JSONRPCVersion: Version,
		Method:         method,
		Params:         raw,
		ID:             id,
	}, nil
}

// NewNotification builds a fire-and-forget request envelope with no id.
func NewNotification(method string, params any) (*Request, error) {
	return NewRequest(nil, method, params)
}

// NewResultResponse builds a successful response for the given request id.
func NewResultResponse(id *RequestID, result any) (*Response, error) {
	b, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return &Response{
		JSONRPCVersion: Version,
		Result:         b,
		ID:             id,
	}, nil
}

// NewErrorResponse builds an error response for the given request id.
func NewErrorResponse(id *RequestID, code ErrorCode, message string, data any) *Response {
	return &Response{
		JSONRPCVersion: Version,
		Error: &Error{
			Code:    code,
			Message: message,
			Data:    data,
		},
		ID: id,
	}
}

// UnmarshalJSON classifies data as exactly one envelope variant. The check
// order matters: a malformed object can superficially satisfy more than one
// shape (both result and error set, for instance) and must be rejected
// rather than silently resolved to one branch.
func (m *AnyMessage) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: not a JSON object: %v", ErrInvalidEnvelope, err)
	}

	for key := range raw {
		if _, ok := envelopeKeys[key]; !ok {
			return fmt.Errorf("%w: unexpected top-level key %q", ErrInvalidEnvelope, key)
		}
	}

	var version string
	if v, ok := raw["jsonrpc"]; ok {
		if err := json.Unmarshal(v, &version); err != nil {
			return fmt.Errorf("%w: jsonrpc field must be a string", ErrInvalidEnvelope)
		}
	}
	if version != Version {
		return fmt.Errorf("%w: jsonrpc must be %q, got %q", ErrInvalidEnvelope, Version, version)
	}

	var decoded AnyMessage
	decoded.JSONRPCVersion = version

	if v, ok := raw["id"]; ok {
		id := &RequestID{}
		if err := id.UnmarshalJSON(v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
		}
		decoded.ID = id
	}
	if v, ok := raw["method"]; ok {
		if err := json.Unmarshal(v, &decoded.Method); err != nil || decoded.Method == "" {
			return fmt.Errorf("%w: method must be a non-empty string", ErrInvalidEnvelope)
		}
	}
	decoded.Params = raw["params"]
	decoded.Result = raw["result"]
	if v, ok := raw["error"]; ok {
		var e Error
		if err := json.Unmarshal(v, &e); err != nil {
			return fmt.Errorf("%w: malformed error object: %v", ErrInvalidEnvelope, err)
		}
		decoded.Error = &e
	}

	_, hasMethod := raw["method"]
	_, hasParams := raw["params"]
	_, hasResult := raw["result"]
	_, hasError := raw["error"]

	switch {
	case hasMethod:
		if hasResult || hasError {
			return fmt.Errorf("%w: request cannot carry result or error", ErrInvalidEnvelope)
		}
		if hasParams && !isJSONObject(decoded.Params) {
			return fmt.Errorf("%w: params must be an object", ErrInvalidEnvelope)
		}
	case hasResult && hasError:
		return fmt.Errorf("%w: response cannot carry both result and error", ErrInvalidEnvelope)
	case hasResult || hasError:
		if decoded.ID == nil {
			return fmt.Errorf("%w: response requires an id", ErrInvalidEnvelope)
		}
		if hasParams {
			return fmt.Errorf("%w: response cannot carry params", ErrInvalidEnvelope)
		}
	default:
		return fmt.Errorf("%w: message is neither request, notification, nor response", ErrInvalidEnvelope)
	}

	*m = decoded
	return nil
}

// Type reports which envelope variant the message matched.
func (m *AnyMessage) Type() MessageType {
	if m.Method != "" {
		if m.ID == nil {
			return MessageTypeNotification
		}
		return MessageTypeRequest
	}
	return MessageTypeResponse
}

// AsRequest projects the message as a Request (or notification). It returns
// nil for responses.
func (m *AnyMessage) AsRequest() *Request {
	if m.Method == "" {
		return nil
	}
	return &Request{
		JSONRPCVersion: m.JSONRPCVersion,
		Method:         m.Method,
		Params:         m.Params,
		ID:             m.ID,
	}
}

// AsResponse projects the message as a Response. It returns nil for
// requests and notifications.
func (m *AnyMessage) AsResponse() *Response {
	if m.Method != "" {
		return nil
	}
	return &Response{
		JSONRPCVersion: m.JSONRPCVersion,
		Result:         m.Result,
		Error:          m.Error,
		ID:             m.ID,
	}
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}
