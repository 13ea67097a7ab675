package mcp

// The role-scoped unions partition the catalog by originator. They are
// sealed: only the pointer shapes below satisfy them, so a switch over a
// union is exhaustive. The catalog's sender bits and these marker methods
// must agree; a test cross-checks them.

// ClientRequest is any request a client may send to a server.
type ClientRequest interface{ clientRequest() }

// ClientNotification is any notification a client may send to a server.
type ClientNotification interface{ clientNotification() }

// ClientResult is any result a client may send back to a server.
type ClientResult interface{ clientResult() }

// ServerRequest is any request a server may send to a client.
type ServerRequest interface{ serverRequest() }

// ServerNotification is any notification a server may send to a client.
type ServerNotification interface{ serverNotification() }

// ServerResult is any result a server may send back to a client.
type ServerResult interface{ serverResult() }

func (*InitializeRequest) clientRequest()    {}
func (*PingRequest) clientRequest()          {}
func (*ListResourcesRequest) clientRequest() {}
func (*ReadResourceRequest) clientRequest()  {}
func (*SubscribeRequest) clientRequest()     {}
func (*UnsubscribeRequest) clientRequest()   {}
func (*ListPromptsRequest) clientRequest()   {}
func (*GetPromptRequest) clientRequest()     {}
func (*ListToolsRequest) clientRequest()     {}
func (*CallToolRequest) clientRequest()      {}
func (*SetLevelRequest) clientRequest()      {}
func (*CompleteRequest) clientRequest()      {}

func (*InitializedNotification) clientNotification() {}
func (*ProgressNotification) clientNotification()    {}

func (*EmptyResult) clientResult()         {}
func (*CreateMessageResult) clientResult() {}

func (*PingRequest) serverRequest()          {}
func (*CreateMessageRequest) serverRequest() {}

func (*ProgressNotification) serverNotification()            {}
func (*LoggingMessageNotification) serverNotification()      {}
func (*ResourceListChangedNotification) serverNotification() {}
func (*ResourceUpdatedNotification) serverNotification()     {}
func (*ToolListChangedNotification) serverNotification()     {}

func (*EmptyResult) serverResult()         {}
func (*InitializeResult) serverResult()    {}
func (*ListResourcesResult) serverResult() {}
func (*ReadResourceResult) serverResult()  {}
func (*ListPromptsResult) serverResult()   {}
func (*GetPromptResult) serverResult()     {}
func (*ListToolsResult) serverResult()     {}
func (*CallToolResult) serverResult()      {}
func (*CompleteResult) serverResult()      {}
