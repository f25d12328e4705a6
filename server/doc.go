// Package server exposes a Backend over plain HTTP.
//
// A single path answers three verbs: GET returns a static discovery document,
// POST carries one JSON-RPC style message that Handler dispatches to the backend,
// and DELETE acknowledges a session teardown. Query parameters on every verb are
// folded into configuration (see package config) before the verb is handled.
//
// Two error channels are kept apart: protocol failures (unknown method, backend
// fault) are answered with HTTP 200 and an error object inside the response
// envelope, while transport failures (unreadable or malformed body, panics) are
// answered with HTTP 500 and a bare {"error": message} body.
package server
