package mcp

// ProtocolVersion is the protocol revision this contract implements. Both
// sides must advertise exactly this value during initialize; a mismatch is
// an initialization failure, never silently coerced.
const ProtocolVersion = 1

// Role indicates the author of a sampling or prompt message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// IsValidRole reports whether role is one of the protocol-defined roles.
func IsValidRole(role Role) bool {
	return role == RoleUser || role == RoleAssistant
}

// LoggingLevel is the severity of a log message notification.
type LoggingLevel string

const (
	LoggingLevelDebug   LoggingLevel = "debug"
	LoggingLevelInfo    LoggingLevel = "info"
	LoggingLevelWarning LoggingLevel = "warning"
	LoggingLevelError   LoggingLevel = "error"
)

// IsValidLoggingLevel reports whether level is one of the closed set of
// protocol-defined severities.
func IsValidLoggingLevel(level LoggingLevel) bool {
	switch level {
	case LoggingLevelDebug, LoggingLevelInfo, LoggingLevelWarning, LoggingLevelError:
		return true
	default:
		return false
	}
}

// ImplementationInfo names a protocol implementation, exchanged as
// clientInfo/serverInfo during initialize.
type ImplementationInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Resource is a URI-addressable unit of content the server can supply.
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitzero"`
	MimeType    string `json:"mimeType,omitzero"`
}

// ResourceTemplate describes a parameterized family of resource URIs. The
// template is validated as an RFC 6570 URI template at decode time.
type ResourceTemplate struct {
	URITemplate URITemplate `json:"uriTemplate"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitzero"`
	MimeType    string      `json:"mimeType,omitzero"`
}

// Prompt describes a named, parameterizable prompt the server provides.
type Prompt struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitzero"`
	Arguments   []PromptArgument `json:"arguments,omitempty"`
}

// PromptArgument describes a single prompt parameter.
type PromptArgument struct {
	Name        string `json:"name"`
	Description string `json:"description,omitzero"`
	Required    bool   `json:"required,omitzero"`
}

// Tool describes a callable action and the schema of its arguments.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitzero"`
	InputSchema ToolInputSchema `json:"inputSchema"`
}

// ToolInputSchema is a JSON-Schema-like description of tool arguments,
// restricted to object shapes.
type ToolInputSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]SchemaProperty `json:"properties,omitempty"`
	Required   []string                  `json:"required,omitempty"`
}

// SchemaProperty is a simplified schema node used inside ToolInputSchema.
type SchemaProperty struct {
	Type        string                    `json:"type,omitempty"`
	Description string                    `json:"description,omitzero"`
	Items       *SchemaProperty           `json:"items,omitempty"`
	Properties  map[string]SchemaProperty `json:"properties,omitempty"`
	Enum        []any                     `json:"enum,omitempty"`
}
