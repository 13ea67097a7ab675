package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/contextwire/mcp-wire-go/jsonrpc"
)

// ErrUnknownMethod reports a method the catalog has no entry for. It is a
// distinct outcome from a matched method with an invalid shape: whether an
// unknown method becomes a method-not-found reply is the dispatcher's call.
var ErrUnknownMethod = errors.New("unknown method")

// ErrInvalidParams reports params or a result that matched a catalog entry
// but failed its shape validation.
var ErrInvalidParams = errors.New("invalid params")

// Sender says which side of the connection may originate a message.
type Sender uint8

const (
	SenderClient Sender = 1 << iota
	SenderServer
)

// Client reports whether the client may send the message.
func (s Sender) Client() bool { return s&SenderClient != 0 }

// Server reports whether the server may send the message.
func (s Sender) Server() bool { return s&SenderServer != 0 }

// methodInfo binds one catalog entry: who sends it, how its params decode,
// and (for requests) how its result decodes.
type methodInfo struct {
	sender       Sender
	notification bool

	// preInit marks the messages legal before capability negotiation
	// completes. Enforcement sits with the dispatcher; the catalog only
	// exposes the fact.
	preInit bool

	decodeParams func(json.RawMessage) (any, error)
	decodeResult func(json.RawMessage) (any, error)
}

// catalog is populated in two passes: entries register under their method
// name at init time, after every shape referenced by a decoder exists.
var catalog = map[Method]methodInfo{}

func register(m Method, info methodInfo) {
	if _, dup := catalog[m]; dup {
		panic(fmt.Sprintf("mcp: duplicate catalog entry for %q", m))
	}
	catalog[m] = info
}

func init() {
	registerLifecycle()
	registerResources()
	registerPrompts()
	registerTools()
	registerLogging()
	registerSampling()
	registerCompletion()
}

func registerLifecycle() {
	register(InitializeMethod, methodInfo{
		sender:       SenderClient,
		preInit:      true,
		decodeParams: decodeShape[InitializeRequest],
		decodeResult: decodeShape[InitializeResult],
	})
	register(InitializedNotificationMethod, methodInfo{
		sender:       SenderClient,
		notification: true,
		preInit:      true,
		decodeParams: decodeShape[InitializedNotification],
	})
	register(PingMethod, methodInfo{
		sender:       SenderClient | SenderServer,
		decodeParams: decodeShape[PingRequest],
		decodeResult: decodeShape[EmptyResult],
	})
	register(ProgressNotificationMethod, methodInfo{
		sender:       SenderClient | SenderServer,
		notification: true,
		decodeParams: decodeShape[ProgressNotification],
	})
}

func registerResources() {
	register(ResourcesListMethod, methodInfo{
		sender:       SenderClient,
		decodeParams: decodeShape[ListResourcesRequest],
		decodeResult: decodeShape[ListResourcesResult],
	})
	register(ResourcesReadMethod, methodInfo{
		sender:       SenderClient,
		decodeParams: decodeShape[ReadResourceRequest],
		decodeResult: decodeShape[ReadResourceResult],
	})
	register(ResourcesSubscribeMethod, methodInfo{
		sender:       SenderClient,
		decodeParams: decodeShape[SubscribeRequest],
		decodeResult: decodeShape[EmptyResult],
	})
	register(ResourcesUnsubscribeMethod, methodInfo{
		sender:       SenderClient,
		decodeParams: decodeShape[UnsubscribeRequest],
		decodeResult: decodeShape[EmptyResult],
	})
	register(ResourcesListChangedNotificationMethod, methodInfo{
		sender:       SenderServer,
		notification: true,
		decodeParams: decodeShape[ResourceListChangedNotification],
	})
	register(ResourcesUpdatedNotificationMethod, methodInfo{
		sender:       SenderServer,
		notification: true,
		decodeParams: decodeShape[ResourceUpdatedNotification],
	})
}

func registerPrompts() {
	register(PromptsListMethod, methodInfo{
		sender:       SenderClient,
		decodeParams: decodeShape[ListPromptsRequest],
		decodeResult: decodeShape[ListPromptsResult],
	})
	register(PromptsGetMethod, methodInfo{
		sender:       SenderClient,
		decodeParams: decodeShape[GetPromptRequest],
		decodeResult: decodeShape[GetPromptResult],
	})
}

func registerTools() {
	register(ToolsListMethod, methodInfo{
		sender:       SenderClient,
		decodeParams: decodeShape[ListToolsRequest],
		decodeResult: decodeShape[ListToolsResult],
	})
	register(ToolsCallMethod, methodInfo{
		sender:       SenderClient,
		decodeParams: decodeShape[CallToolRequest],
		decodeResult: decodeShape[CallToolResult],
	})
	register(ToolsListChangedNotificationMethod, methodInfo{
		sender:       SenderServer,
		notification: true,
		decodeParams: decodeShape[ToolListChangedNotification],
	})
}

func registerLogging() {
	register(LoggingSetLevelMethod, methodInfo{
		sender:       SenderClient,
		decodeParams: decodeShape[SetLevelRequest],
		decodeResult: decodeShape[EmptyResult],
	})
	register(LoggingMessageNotificationMethod, methodInfo{
		sender:       SenderServer,
		notification: true,
		decodeParams: decodeShape[LoggingMessageNotification],
	})
}

func registerSampling() {
	register(SamplingCreateMessageMethod, methodInfo{
		sender:       SenderServer,
		decodeParams: decodeShape[CreateMessageRequest],
		decodeResult: decodeShape[CreateMessageResult],
	})
}

func registerCompletion() {
	register(CompletionCompleteMethod, methodInfo{
		sender:       SenderClient,
		decodeParams: decodeShape[CompleteRequest],
		decodeResult: decodeShape[CompleteResult],
	})
}

// validatable shapes run an extra structural check after decoding.
type validatable interface {
	Validate() error
}

// decodeShape narrows raw JSON into *T. Missing params decode as the zero
// shape. Keys the shape does not declare are ignored here but survive on
// the envelope's raw params, so validation never drops data.
func decodeShape[T any](raw json.RawMessage) (any, error) {
	v := new(T)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
		}
	}
	if val, ok := any(v).(validatable); ok {
		if err := val.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
		}
	}
	return v, nil
}

// Known reports whether the catalog has an entry for m.
func Known(m Method) bool {
	_, ok := catalog[m]
	return ok
}

// Methods returns every method the catalog knows, in no particular order.
func Methods() []Method {
	out := make([]Method, 0, len(catalog))
	for m := range catalog {
		out = append(out, m)
	}
	return out
}

// SenderOf reports which side may originate m. ok is false for methods the
// catalog does not know.
func SenderOf(m Method) (sender Sender, ok bool) {
	info, ok := catalog[m]
	return info.sender, ok
}

// IsNotification reports whether m is fire-and-forget. Unknown methods
// report false.
func IsNotification(m Method) bool {
	return catalog[m].notification
}

// AllowedBeforeInitialization reports whether m may be sent before
// capability negotiation completes.
func AllowedBeforeInitialization(m Method) bool {
	return catalog[m].preInit
}

// DecodeParams narrows raw params into the typed shape for m. It returns
// ErrUnknownMethod when the catalog has no entry, and an error wrapping
// ErrInvalidParams when the entry matched but the shape didn't.
func DecodeParams(m Method, raw json.RawMessage) (any, error) {
	info, ok := catalog[m]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, m)
	}
	return info.decodeParams(raw)
}

// DecodeResult narrows a raw result into the typed shape for the request
// method m. Notifications have no result and report ErrUnknownMethod.
func DecodeResult(m Method, raw json.RawMessage) (any, error) {
	info, ok := catalog[m]
	if !ok || info.decodeResult == nil {
		return nil, fmt.Errorf("%w: %q has no result shape", ErrUnknownMethod, m)
	}
	return info.decodeResult(raw)
}

// DecodeRequest narrows the params of a validated envelope. The request's
// method string keys the catalog exactly; no fuzzy matching.
func DecodeRequest(req *jsonrpc.Request) (any, error) {
	return DecodeParams(Method(req.Method), req.Params)
}
