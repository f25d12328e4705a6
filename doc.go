// Package mcphttp exposes a Model Context Protocol backend over a single HTTP endpoint.
//
// Each call carries its own connection settings in the query string; they are
// decoded from dot notation, mapped onto named configuration slots and handed to
// the backend through the request context. The endpoint answers
//
//   - GET with a discovery document,
//   - POST with the JSON-RPC response of the posted message,
//   - DELETE with an acknowledgement.
//
// Packages:
//   - config: query extraction, slot mapping and configuration stores
//   - schema: protocol messages, errors and tool descriptors
//   - backend: in-process registry and remote upstream backends
//   - server: method dispatch and the HTTP adapter
//   - bridge: command wiring, see bridge/mcphttp
package mcphttp
