package jsonrpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func mustDecode(t *testing.T, raw string) *AnyMessage {
	t.Helper()
	var msg AnyMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return &msg
}

func TestClassifyRequest(t *testing.T) {
	msg := mustDecode(t, `{"jsonrpc":"2.0","id":1,"method":"ping"}`)
	if got := msg.Type(); got != MessageTypeRequest {
		t.Fatalf("Type() = %q, want request", got)
	}
	if msg.Method != "ping" {
		t.Errorf("Method = %q, want ping", msg.Method)
	}
	if len(msg.Params) != 0 {
		t.Errorf("Params = %s, want none", msg.Params)
	}
	if msg.ID.String() != "1" {
		t.Errorf("ID = %q, want 1", msg.ID.String())
	}
	if msg.AsRequest() == nil || msg.AsResponse() != nil {
		t.Error("request should project as request only")
	}
}

func TestClassifyNotification(t *testing.T) {
	msg := mustDecode(t, `{"jsonrpc":"2.0","method":"notifications/progress","params":{"progressToken":"abc","progress":5,"total":10}}`)
	if got := msg.Type(); got != MessageTypeNotification {
		t.Fatalf("Type() = %q, want notification", got)
	}
	var params struct {
		Progress float64 `json:"progress"`
		Total    float64 `json:"total"`
	}
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		t.Fatalf("decode params: %v", err)
	}
	if params.Progress != 5 || params.Total != 10 {
		t.Errorf("progress = %v/%v, want 5/10", params.Progress, params.Total)
	}
}

func TestClassifySuccessResponse(t *testing.T) {
	msg := mustDecode(t, `{"jsonrpc":"2.0","id":1,"result":{}}`)
	if got := msg.Type(); got != MessageTypeResponse {
		t.Fatalf("Type() = %q, want response", got)
	}
	res := msg.AsResponse()
	if res == nil || res.Error != nil {
		t.Fatal("expected success response projection")
	}
	if string(res.Result) != "{}" {
		t.Errorf("Result = %s, want {}", res.Result)
	}
}

func TestClassifyErrorResponse(t *testing.T) {
	msg := mustDecode(t, `{"jsonrpc":"2.0","id":2,"error":{"code":-32601,"message":"not found"}}`)
	if got := msg.Type(); got != MessageTypeResponse {
		t.Fatalf("Type() = %q, want response", got)
	}
	if msg.Error == nil || msg.Error.Code != ErrorCodeMethodNotFound {
		t.Fatalf("Error = %+v, want code -32601", msg.Error)
	}
	if msg.AsRequest() != nil {
		t.Error("response must not project as request")
	}
}

func TestRejectInvalidEnvelopes(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"result and error", `{"jsonrpc":"2.0","id":1,"result":{},"error":{"code":1,"message":"x"}}`},
		{"method and result", `{"jsonrpc":"2.0","id":1,"method":"ping","result":{}}`},
		{"method and error", `{"jsonrpc":"2.0","id":1,"method":"ping","error":{"code":1,"message":"x"}}`},
		{"response without id", `{"jsonrpc":"2.0","result":{}}`},
		{"error response without id", `{"jsonrpc":"2.0","error":{"code":1,"message":"x"}}`},
		{"nothing discriminating", `{"jsonrpc":"2.0","id":1}`},
		{"missing jsonrpc", `{"id":1,"method":"ping"}`},
		{"wrong jsonrpc version", `{"jsonrpc":"1.0","id":1,"method":"ping"}`},
		{"unknown top-level key", `{"jsonrpc":"2.0","id":1,"method":"ping","session":"s1"}`},
		{"boolean id", `{"jsonrpc":"2.0","id":true,"method":"ping"}`},
		{"null id", `{"jsonrpc":"2.0","id":null,"method":"ping"}`},
		{"params on response", `{"jsonrpc":"2.0","id":1,"result":{},"params":{}}`},
		{"empty method", `{"jsonrpc":"2.0","id":1,"method":""}`},
		{"array params", `{"jsonrpc":"2.0","id":1,"method":"ping","params":[1]}`},
		{"not an object", `[1,2,3]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var msg AnyMessage
			err := json.Unmarshal([]byte(tc.raw), &msg)
			if err == nil {
				t.Fatalf("decode %s: expected failure", tc.raw)
			}
			if !errors.Is(err, ErrInvalidEnvelope) {
				t.Errorf("error %v does not wrap ErrInvalidEnvelope", err)
			}
		})
	}
}

func TestOpenParamsPreservedThroughValidation(t *testing.T) {
	raw := `{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"echo","arguments":{"foo":"bar"},"vendorKey":{"nested":true}}}`
	msg := mustDecode(t, raw)

	reencoded, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	var params map[string]any
	var round AnyMessage
	if err := json.Unmarshal(reencoded, &round); err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if err := json.Unmarshal(round.Params, &params); err != nil {
		t.Fatalf("decode params: %v", err)
	}
	if _, ok := params["vendorKey"]; !ok {
		t.Error("unknown params key dropped by round trip")
	}
}

func TestRoundTripIsIdempotent(t *testing.T) {
	inputs := []string{
		`{"jsonrpc":"2.0","id":1,"method":"ping"}`,
		`{"jsonrpc":"2.0","id":"a-1","method":"resources/read","params":{"uri":"file:///a.txt","_meta":{"progressToken":9}}}`,
		`{"jsonrpc":"2.0","id":1,"result":{"tools":[]}}`,
		`{"jsonrpc":"2.0","id":2,"error":{"code":-32601,"message":"not found"}}`,
		`{"jsonrpc":"2.0","method":"notifications/progress","params":{"progressToken":"abc","progress":5,"total":10}}`,
	}
	for _, raw := range inputs {
		msg := mustDecode(t, raw)

		first, err := Canonical(msg)
		if err != nil {
			t.Fatalf("canonicalize: %v", err)
		}

		reencoded, err := json.Marshal(msg)
		if err != nil {
			t.Fatalf("re-encode: %v", err)
		}
		again := mustDecode(t, string(reencoded))
		second, err := Canonical(again)
		if err != nil {
			t.Fatalf("canonicalize second pass: %v", err)
		}

		if !bytes.Equal(first, second) {
			t.Errorf("round trip not idempotent for %s:\n first %s\nsecond %s", raw, first, second)
		}
	}
}

func TestResponseConstructors(t *testing.T) {
	id := NewIntID(42)

	res, err := NewResultResponse(id, map[string]any{"ok": true})
	if err != nil {
		t.Fatalf("NewResultResponse: %v", err)
	}
	if res.JSONRPCVersion != Version || res.Error != nil {
		t.Errorf("unexpected success response: %+v", res)
	}

	errRes := NewErrorResponse(id, ErrorCodeInvalidParams, "bad params", nil)
	if errRes.Error == nil || errRes.Error.Code != ErrorCodeInvalidParams {
		t.Errorf("unexpected error response: %+v", errRes)
	}

	b, err := json.Marshal(errRes)
	if err != nil {
		t.Fatalf("marshal error response: %v", err)
	}
	round := mustDecode(t, string(b))
	if round.Type() != MessageTypeResponse || round.Error.Message != "bad params" {
		t.Errorf("error response round trip: %+v", round)
	}
}

func TestNotificationConstructorOmitsID(t *testing.T) {
	n, err := NewNotification("notifications/initialized", nil)
	if err != nil {
		t.Fatalf("NewNotification: %v", err)
	}
	b, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if bytes.Contains(b, []byte(`"id"`)) {
		t.Errorf("notification should carry no id: %s", b)
	}
	if mustDecode(t, string(b)).Type() != MessageTypeNotification {
		t.Errorf("expected notification, got %s", b)
	}
}
