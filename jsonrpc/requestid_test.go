package jsonrpc

import (
	"encoding/json"
	"testing"
)

func TestRequestIDDecode(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`1`, "1"},
		{`"abc"`, "abc"},
		{`1.5`, "1.5"},
		{`0`, "0"},
		{`"1"`, "1"},
	}
	for _, tc := range cases {
		var id RequestID
		if err := json.Unmarshal([]byte(tc.raw), &id); err != nil {
			t.Fatalf("decode %s: %v", tc.raw, err)
		}
		if id.String() != tc.want {
			t.Errorf("decode %s: String() = %q, want %q", tc.raw, id.String(), tc.want)
		}
	}
}

func TestRequestIDRejectsOtherTypes(t *testing.T) {
	for _, raw := range []string{`true`, `null`, `{"a":1}`, `[1]`} {
		var id RequestID
		if err := json.Unmarshal([]byte(raw), &id); err == nil {
			t.Errorf("decode %s: expected failure", raw)
		}
	}
}

func TestRequestIDIntegerRoundTrip(t *testing.T) {
	var id RequestID
	if err := json.Unmarshal([]byte(`7`), &id); err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(&id)
	if err != nil {
		t.Fatal(err)
	}
	// Integral numbers must not grow a fractional part.
	if string(b) != `7` {
		t.Errorf("re-encoded as %s, want 7", b)
	}
}

func TestRequestIDEqual(t *testing.T) {
	if !NewIntID(1).Equal(NewIntID(1)) {
		t.Error("equal int ids compare unequal")
	}
	if NewIntID(1).Equal(NewStringID("1")) {
		t.Error("string and int ids must not compare equal")
	}
	var unset *RequestID
	if !unset.Equal(nil) {
		t.Error("nil ids compare equal")
	}
	if unset.Equal(NewIntID(1)) {
		t.Error("nil id must not equal a set id")
	}
}
