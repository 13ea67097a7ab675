package jsonrpc

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeParseError, -32700},
		{ErrorCodeInvalidRequest, -32600},
		{ErrorCodeMethodNotFound, -32601},
		{ErrorCodeInvalidParams, -32602},
		{ErrorCodeInternalError, -32603},
		{ErrorCodeConnectionClosed, -1},
	}
	for _, tc := range cases {
		if int(tc.code) != tc.want {
			t.Errorf("code = %d, want %d", tc.code, tc.want)
		}
	}
}

func TestErrorFormatting(t *testing.T) {
	err := NewError(ErrorCodeMethodNotFound, "no such method")
	if got, want := err.Error(), "jsonrpc error -32601: no such method"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// Data must not leak into the diagnostic; it is opaque pass-through.
	err.Data = map[string]any{"secret": true}
	if got := err.Error(); got != "jsonrpc error -32601: no such method" {
		t.Errorf("Error() with data = %q", got)
	}
}

func TestErrorMatchingByCode(t *testing.T) {
	wrapped := fmt.Errorf("dispatch: %w", NewError(ErrorCodeConnectionClosed, "stream reset"))
	if !errors.Is(wrapped, NewError(ErrorCodeConnectionClosed, "")) {
		t.Error("errors.Is should match on code")
	}
	if errors.Is(wrapped, NewError(ErrorCodeInternalError, "")) {
		t.Error("errors.Is must not match a different code")
	}
}
