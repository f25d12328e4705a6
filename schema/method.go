package schema

import (
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// MethodInitializedAck is the acknowledgement sent by clients that predate the notifications namespace.
const MethodInitializedAck = "initialized"

// Method identifies one of the protocol methods the bridge dispatches.
type Method int

const (
	MethodUnknown Method = iota
	MethodInitialize
	MethodInitialized
	MethodPing
	MethodToolsList
	MethodToolsCall
	MethodResourcesList
	MethodResourcesRead
)

// ParseMethod maps a protocol method name to a Method; unsupported names return MethodUnknown.
func ParseMethod(name string) Method {
	switch name {
	case mcpschema.MethodInitialize:
		return MethodInitialize
	case MethodInitializedAck, mcpschema.MethodNotificationInitialized:
		return MethodInitialized
	case mcpschema.MethodPing:
		return MethodPing
	case mcpschema.MethodToolsList:
		return MethodToolsList
	case mcpschema.MethodToolsCall:
		return MethodToolsCall
	case mcpschema.MethodResourcesList:
		return MethodResourcesList
	case mcpschema.MethodResourcesRead:
		return MethodResourcesRead
	}
	return MethodUnknown
}

// String returns the canonical protocol name.
func (m Method) String() string {
	switch m {
	case MethodInitialize:
		return mcpschema.MethodInitialize
	case MethodInitialized:
		return MethodInitializedAck
	case MethodPing:
		return mcpschema.MethodPing
	case MethodToolsList:
		return mcpschema.MethodToolsList
	case MethodToolsCall:
		return mcpschema.MethodToolsCall
	case MethodResourcesList:
		return mcpschema.MethodResourcesList
	case MethodResourcesRead:
		return mcpschema.MethodResourcesRead
	}
	return "unknown"
}
