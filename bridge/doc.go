// Package bridge wires the HTTP adapter, the configuration store and a backend
// into a runnable service.
//
// The mcphttp command under this directory is a thin main around Run. Without an
// upstream URL the service exposes an in-process registry carrying diagnostic
// tools and resources; with one it forwards every call to that upstream server.
package bridge
