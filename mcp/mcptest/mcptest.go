// Package mcptest provides small fixtures for exercising the message
// contract in tests: envelope builders that produce valid wire bytes and a
// request id generator.
package mcptest

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/contextwire/mcp-wire-go/jsonrpc"
	"github.com/contextwire/mcp-wire-go/mcp"
)

// NewID returns a fresh string request id, unique across the process.
func NewID() *jsonrpc.RequestID {
	return jsonrpc.NewStringID(uuid.NewString())
}

// RequestBytes builds the wire bytes of a request envelope.
func RequestBytes(t testing.TB, id *jsonrpc.RequestID, method mcp.Method, params any) jsonrpc.Message {
	t.Helper()
	req, err := jsonrpc.NewRequest(id, string(method), params)
	if err != nil {
		t.Fatalf("build request %q: %v", method, err)
	}
	return marshal(t, req)
}

// NotificationBytes builds the wire bytes of a notification envelope.
func NotificationBytes(t testing.TB, method mcp.Method, params any) jsonrpc.Message {
	t.Helper()
	return RequestBytes(t, nil, method, params)
}

// ResultBytes builds the wire bytes of a success response envelope.
func ResultBytes(t testing.TB, id *jsonrpc.RequestID, result any) jsonrpc.Message {
	t.Helper()
	res, err := jsonrpc.NewResultResponse(id, result)
	if err != nil {
		t.Fatalf("build result response: %v", err)
	}
	return marshal(t, res)
}

// ErrorBytes builds the wire bytes of an error response envelope.
func ErrorBytes(t testing.TB, id *jsonrpc.RequestID, code jsonrpc.ErrorCode, message string) jsonrpc.Message {
	t.Helper()
	return marshal(t, jsonrpc.NewErrorResponse(id, code, message, nil))
}

// Decode parses wire bytes back into a validated envelope, failing the test
// on any classification error.
func Decode(t testing.TB, raw jsonrpc.Message) *jsonrpc.AnyMessage {
	t.Helper()
	var msg jsonrpc.AnyMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return &msg
}

func marshal(t testing.TB, v any) jsonrpc.Message {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	return b
}
