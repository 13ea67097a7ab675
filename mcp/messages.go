package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Method is an MCP method identifier used in JSON-RPC messages.
type Method string

// MCP method names and notifications.
const (
	// Initialization
	InitializeMethod              Method = "initialize"
	InitializedNotificationMethod Method = "notifications/initialized"

	// Resources
	ResourcesListMethod                    Method = "resources/list"
	ResourcesReadMethod                    Method = "resources/read"
	ResourcesSubscribeMethod               Method = "resources/subscribe"
	ResourcesUnsubscribeMethod             Method = "resources/unsubscribe"
	ResourcesListChangedNotificationMethod Method = "notifications/resources/list_changed"
	ResourcesUpdatedNotificationMethod     Method = "notifications/resources/updated"

	// Prompts
	PromptsListMethod Method = "prompts/list"
	PromptsGetMethod  Method = "prompts/get"

	// Tools
	ToolsListMethod                    Method = "tools/list"
	ToolsCallMethod                    Method = "tools/call"
	ToolsListChangedNotificationMethod Method = "notifications/tools/list_changed"

	// Logging
	LoggingSetLevelMethod            Method = "logging/setLevel"
	LoggingMessageNotificationMethod Method = "notifications/message"

	// Sampling
	SamplingCreateMessageMethod Method = "sampling/createMessage"

	// Completion
	CompletionCompleteMethod Method = "completion/complete"

	// General
	PingMethod                 Method = "ping"
	ProgressNotificationMethod Method = "notifications/progress"
)

// ErrProtocolVersionMismatch reports an initialize exchange whose
// protocolVersion differs from ProtocolVersion.
var ErrProtocolVersionMismatch = errors.New("protocol version mismatch")

// RequestMeta is the reserved _meta key on request params; on requests it
// may carry a progressToken.
type RequestMeta struct {
	Meta *Meta `json:"_meta,omitempty"`
}

// ResultMeta is the reserved _meta key on results. Contents are opaque to
// the protocol.
type ResultMeta struct {
	Meta map[string]any `json:"_meta,omitempty"`
}

// PingRequest is a no-op request either side may use to test liveness.
type PingRequest struct {
	RequestMeta
}

// EmptyResult is returned by operations that carry no data.
type EmptyResult struct {
	ResultMeta
}

// InitializeRequest starts the initialization handshake. It is the only
// request legal before capability negotiation completes.
type InitializeRequest struct {
	ProtocolVersion int                `json:"protocolVersion"`
	Capabilities    ClientCapabilities `json:"capabilities"`
	ClientInfo      ImplementationInfo `json:"clientInfo"`
	RequestMeta
}

// Validate rejects a peer speaking a different protocol revision.
func (r *InitializeRequest) Validate() error {
	if r.ProtocolVersion != ProtocolVersion {
		return fmt.Errorf("%w: want %d, got %d", ErrProtocolVersionMismatch, ProtocolVersion, r.ProtocolVersion)
	}
	return nil
}

// InitializeResult completes the handshake with the server's capabilities.
type InitializeResult struct {
	ProtocolVersion int                `json:"protocolVersion"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	ServerInfo      ImplementationInfo `json:"serverInfo"`
	ResultMeta
}

// Validate rejects a server answering with a different protocol revision.
func (r *InitializeResult) Validate() error {
	if r.ProtocolVersion != ProtocolVersion {
		return fmt.Errorf("%w: want %d, got %d", ErrProtocolVersionMismatch, ProtocolVersion, r.ProtocolVersion)
	}
	return nil
}

// InitializedNotification signals that initialization completed.
type InitializedNotification struct {
	Meta map[string]any `json:"_meta,omitempty"`
}

// ProgressNotification reports progress for the request that supplied the
// token. Receivers must tolerate tokens they do not recognize.
type ProgressNotification struct {
	ProgressToken ProgressToken `json:"progressToken"`
	Progress      float64       `json:"progress"`
	Total         float64       `json:"total,omitzero"`
}

// Resources

// ListResourcesRequest requests the server's resource listing.
type ListResourcesRequest struct {
	RequestMeta
}

// ListResourcesResult returns resources and/or resource templates.
type ListResourcesResult struct {
	Resources         []Resource         `json:"resources,omitempty"`
	ResourceTemplates []ResourceTemplate `json:"resourceTemplates,omitempty"`
	ResultMeta
}

// ReadResourceRequest requests the contents of a resource by URI.
type ReadResourceRequest struct {
	URI string `json:"uri"`
	RequestMeta
}

// ReadResourceResult returns the resource contents.
type ReadResourceResult struct {
	Contents []ResourceContents `json:"contents"`
	ResultMeta
}

// SubscribeRequest subscribes to update notifications for a URI. Gated on
// the server advertising resources.subscribe.
type SubscribeRequest struct {
	URI string `json:"uri"`
	RequestMeta
}

// UnsubscribeRequest ends a subscription for a URI.
type UnsubscribeRequest struct {
	URI string `json:"uri"`
	RequestMeta
}

// ResourceListChangedNotification indicates the set of resources changed.
type ResourceListChangedNotification struct {
	Meta map[string]any `json:"_meta,omitempty"`
}

// ResourceUpdatedNotification indicates a subscribed resource changed.
type ResourceUpdatedNotification struct {
	URI string `json:"uri"`
}

// Prompts

// ListPromptsRequest requests available prompts.
type ListPromptsRequest struct {
	RequestMeta
}

// ListPromptsResult returns available prompts.
type ListPromptsResult struct {
	Prompts []Prompt `json:"prompts"`
	ResultMeta
}

// GetPromptRequest resolves a prompt by name with optional arguments.
type GetPromptRequest struct {
	Name      string            `json:"name"`
	Arguments map[string]string `json:"arguments,omitempty"`
	RequestMeta
}

// GetPromptResult returns the rendered prompt messages.
type GetPromptResult struct {
	Description string            `json:"description,omitzero"`
	Messages    []SamplingMessage `json:"messages"`
	ResultMeta
}

// Tools

// ListToolsRequest requests available tools.
type ListToolsRequest struct {
	RequestMeta
}

// ListToolsResult returns available tools.
type ListToolsResult struct {
	Tools []Tool `json:"tools"`
	ResultMeta
}

// CallToolRequest invokes a tool. Arguments are an open map: keys the tool
// schema does not declare are preserved, not rejected.
type CallToolRequest struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
	RequestMeta
}

// CallToolResult returns a tool invocation result. ToolResult is opaque to
// the protocol.
type CallToolResult struct {
	ToolResult any  `json:"toolResult"`
	IsError    bool `json:"isError,omitzero"`
	ResultMeta
}

// ToolListChangedNotification indicates the set of tools changed.
type ToolListChangedNotification struct {
	Meta map[string]any `json:"_meta,omitempty"`
}

// Logging

// SetLevelRequest adjusts the minimum severity the server reports.
type SetLevelRequest struct {
	Level LoggingLevel `json:"level"`
	RequestMeta
}

// Validate enforces the closed severity enum.
func (r *SetLevelRequest) Validate() error {
	if !IsValidLoggingLevel(r.Level) {
		return fmt.Errorf("invalid logging level %q", r.Level)
	}
	return nil
}

// LoggingMessageNotification conveys a structured log message from the
// server. Data is opaque.
type LoggingMessageNotification struct {
	Level  LoggingLevel `json:"level"`
	Data   any          `json:"data"`
	Logger string       `json:"logger,omitzero"`
}

// Sampling

// CreateMessageRequest asks the client to generate a model completion.
type CreateMessageRequest struct {
	Messages       []SamplingMessage `json:"messages"`
	MaxTokens      int               `json:"maxTokens"`
	SystemPrompt   string            `json:"systemPrompt,omitzero"`
	IncludeContext string            `json:"includeContext,omitzero"`
	Temperature    float64           `json:"temperature,omitzero"`
	StopSequences  []string          `json:"stopSequences,omitempty"`
	Metadata       map[string]any    `json:"metadata,omitempty"`
	RequestMeta
}

// CreateMessageResult returns the generated message.
type CreateMessageResult struct {
	Role       Role    `json:"role"`
	Content    Content `json:"content"`
	Model      string  `json:"model"`
	StopReason string  `json:"stopReason,omitzero"`
	ResultMeta
}

// UnmarshalJSON resolves the content union inside the result.
func (r *CreateMessageResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Role       Role            `json:"role"`
		Content    json.RawMessage `json:"content"`
		Model      string          `json:"model"`
		StopReason string          `json:"stopReason"`
		Meta       map[string]any  `json:"_meta"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !IsValidRole(raw.Role) {
		return fmt.Errorf("invalid sampling role %q", raw.Role)
	}
	content, err := UnmarshalContent(raw.Content)
	if err != nil {
		return err
	}
	r.Role = raw.Role
	r.Content = content
	r.Model = raw.Model
	r.StopReason = raw.StopReason
	r.Meta = raw.Meta
	return nil
}

// Completion

// CompleteReference identifies the completion target: a prompt by name
// ("ref/prompt") or a resource by URI ("ref/resource").
type CompleteReference struct {
	Type string `json:"type"`
	Name string `json:"name,omitzero"`
	URI  string `json:"uri,omitzero"`
}

// Validate checks the reference discriminant and its matching field.
func (ref *CompleteReference) Validate() error {
	switch ref.Type {
	case "ref/prompt":
		if ref.Name == "" {
			return errors.New("prompt reference requires name")
		}
	case "ref/resource":
		if ref.URI == "" {
			return errors.New("resource reference requires uri")
		}
	default:
		return fmt.Errorf("unknown completion reference type %q", ref.Type)
	}
	return nil
}

// CompleteArgument names the argument being completed and its partial value.
type CompleteArgument struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CompleteRequest asks for completion suggestions for one argument of a
// prompt or resource template.
type CompleteRequest struct {
	Ref      CompleteReference `json:"ref"`
	Argument CompleteArgument  `json:"argument"`
	RequestMeta
}

// Validate checks the embedded reference.
func (r *CompleteRequest) Validate() error {
	return r.Ref.Validate()
}

// maxCompletionValues caps completion suggestions per response. Producers
// must truncate before responding; consumers reject longer lists.
const maxCompletionValues = 100

// Completion carries completion suggestions for a reference.
type Completion struct {
	Values  []string `json:"values"`
	Total   int      `json:"total,omitzero"`
	HasMore bool     `json:"hasMore,omitzero"`
}

// CompleteResult wraps the completion suggestions.
type CompleteResult struct {
	Completion Completion `json:"completion"`
	ResultMeta
}

// Validate enforces the hard cap on suggestion count.
func (r *CompleteResult) Validate() error {
	if n := len(r.Completion.Values); n > maxCompletionValues {
		return fmt.Errorf("completion returned %d values, protocol caps at %d", n, maxCompletionValues)
	}
	return nil
}
