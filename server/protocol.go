package server

import (
	"net/http"
)

const protocolVersionHeader = "MCP-Protocol-Version"

// protocolVersionMiddleware advertises the server protocol version on every response.
// Requests carrying a different version are still served since the bridge has no negotiation.
func protocolVersionMiddleware(version string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(protocolVersionHeader, version)
			next.ServeHTTP(w, r)
		})
	}
}
