// Package backend defines the capability provider contract consumed by the bridge
// and two providers: Registry, serving handlers registered in process, and Remote,
// forwarding every call to an upstream MCP server over HTTP JSON-RPC.
//
// Every call receives the request context; the configuration applied for that
// request is available through config.FromContext.
package backend
