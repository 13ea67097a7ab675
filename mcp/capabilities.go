package mcp

import (
	"encoding/json"
	"fmt"
)

// CapabilitySet is one advertised capability. Presence of the key (a
// non-nil set) signals support; the map carries optional sub-flags such as
// resources' "subscribe". Absence and an explicit false sub-flag are not
// distinguished by the protocol, so Flag treats them identically — callers
// that care can inspect the map directly.
type CapabilitySet map[string]any

// EnabledCapability is an empty but non-nil set, the canonical way to
// advertise a capability with no sub-flags.
func EnabledCapability() CapabilitySet {
	return CapabilitySet{}
}

// Enabled reports whether the capability was advertised at all.
func (s CapabilitySet) Enabled() bool { return s != nil }

// Flag reports whether the named sub-flag is present and true.
func (s CapabilitySet) Flag(name string) bool {
	b, ok := s[name].(bool)
	return ok && b
}

// ClientCapabilities is the feature set a client advertises in initialize.
// Unknown capability keys are preserved in Extra.
type ClientCapabilities struct {
	Experimental CapabilitySet
	Sampling     CapabilitySet

	Extra map[string]json.RawMessage
}

// ServerCapabilities is the feature set a server advertises in the
// initialize result. Unknown capability keys are preserved in Extra.
type ServerCapabilities struct {
	Experimental CapabilitySet
	Logging      CapabilitySet
	Prompts      CapabilitySet
	Resources    CapabilitySet
	Tools        CapabilitySet

	Extra map[string]json.RawMessage
}

// SupportsResourceSubscribe reports whether the server advertised the
// resources.subscribe sub-flag, the gate for resources/subscribe.
func (c ServerCapabilities) SupportsResourceSubscribe() bool {
	return c.Resources.Flag("subscribe")
}

func (c ClientCapabilities) MarshalJSON() ([]byte, error) {
	return marshalCapabilities(map[string]CapabilitySet{
		"experimental": c.Experimental,
		"sampling":     c.Sampling,
	}, c.Extra)
}

func (c *ClientCapabilities) UnmarshalJSON(data []byte) error {
	fields := map[string]*CapabilitySet{
		"experimental": &c.Experimental,
		"sampling":     &c.Sampling,
	}
	extra, err := unmarshalCapabilities(data, fields)
	if err != nil {
		return err
	}
	c.Extra = extra
	return nil
}

func (c ServerCapabilities) MarshalJSON() ([]byte, error) {
	return marshalCapabilities(map[string]CapabilitySet{
		"experimental": c.Experimental,
		"logging":      c.Logging,
		"prompts":      c.Prompts,
		"resources":    c.Resources,
		"tools":        c.Tools,
	}, c.Extra)
}

func (c *ServerCapabilities) UnmarshalJSON(data []byte) error {
	fields := map[string]*CapabilitySet{
		"experimental": &c.Experimental,
		"logging":      &c.Logging,
		"prompts":      &c.Prompts,
		"resources":    &c.Resources,
		"tools":        &c.Tools,
	}
	extra, err := unmarshalCapabilities(data, fields)
	if err != nil {
		return err
	}
	c.Extra = extra
	return nil
}

func marshalCapabilities(known map[string]CapabilitySet, extra map[string]json.RawMessage) ([]byte, error) {
	raw := make(map[string]any, len(known)+len(extra))
	for key, set := range known {
		if set.Enabled() {
			raw[key] = map[string]any(set)
		}
	}
	for key, val := range extra {
		if _, shadowed := raw[key]; !shadowed {
			raw[key] = val
		}
	}
	return json.Marshal(raw)
}

func unmarshalCapabilities(data []byte, known map[string]*CapabilitySet) (map[string]json.RawMessage, error) {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("capabilities must be an object: %w", err)
	}

	var extra map[string]json.RawMessage
	for key, val := range raw {
		target, ok := known[key]
		if !ok {
			if extra == nil {
				extra = make(map[string]json.RawMessage)
			}
			extra[key] = val
			continue
		}
		set := CapabilitySet{}
		if err := json.Unmarshal(val, &set); err != nil {
			return nil, fmt.Errorf("capability %q must be an object: %w", key, err)
		}
		*target = set
	}
	return extra, nil
}
