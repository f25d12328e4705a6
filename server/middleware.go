package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Middleware is a function that takes an http.Handler and returns an http.Handler
type Middleware func(next http.Handler) http.Handler

// ChainMiddlewareHandlers chains multiple middleware handlers together
func ChainMiddlewareHandlers(h http.Handler, mws ...Middleware) http.Handler {
	// apply in reverse so the first middleware is outermost
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// recoveryMiddleware turns a panic into a transport error response.
func recoveryMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}
				slog.ErrorContext(r.Context(), "panic while handling request",
					"method", r.Method, "path", r.URL.Path, "panic", recovered, "stack", string(debug.Stack()))
				writeTransportError(w, http.StatusInternalServerError, fmt.Sprint(recovered))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
