package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/viant/mcphttp/config"
	"github.com/viant/mcphttp/schema"
)

const requestIdHeader = "X-Request-Id"

type responseWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
	rpcMethod   string
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.status = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.wroteHeader = true
		rw.status = http.StatusOK
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

// ServeHTTP handles GET, POST and DELETE; configuration from the query is applied for every verb.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
	requestId := r.Header.Get(requestIdHeader)
	if requestId == "" {
		requestId = uuid.NewString()
	}
	rw.Header().Set(requestIdHeader, requestId)
	slog.InfoContext(r.Context(), fmt.Sprintf("Received %v request to %v", r.Method, r.URL.Path), "request_id", requestId)

	ctx := s.configure(r.Context(), r.URL.RawQuery)
	s.serveRequest(rw, r.WithContext(ctx))

	slog.InfoContext(ctx, "http request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rw.status,
		"duration_ms", time.Since(start).Milliseconds(),
		"rpc_method", rw.rpcMethod,
		"request_id", requestId,
		"response_bytes", rw.bytes,
	)
}

// configure applies query configuration and returns ctx carrying the values visible to the backend.
func (s *Server) configure(ctx context.Context, rawQuery string) context.Context {
	tree := config.Extract(rawQuery)
	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		if data, err := json.MarshalIndent(tree.Redact(), "", "  "); err == nil {
			slog.DebugContext(ctx, "parsed configuration", "config", string(data))
		}
	}
	if s.shared != nil {
		config.Apply(ctx, tree, s.mapping, s.shared)
		return config.WithValues(ctx, s.shared.Snapshot())
	}
	values := config.Values{}
	config.Apply(ctx, tree, s.mapping, values)
	return config.WithValues(ctx, values)
}

func (s *Server) serveRequest(w *responseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.discovery())
	case http.MethodPost:
		s.handleMessage(w, r)
	case http.MethodDelete:
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		writeTransportError(w, http.StatusMethodNotAllowed, "method not allowed: "+r.Method)
	}
}

func (s *Server) handleMessage(w *responseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodySize))
	if err != nil {
		slog.ErrorContext(r.Context(), "Error processing request", "error", err)
		writeTransportError(w, http.StatusInternalServerError, err.Error())
		return
	}
	message, err := decodeMessage(body)
	if err != nil {
		slog.ErrorContext(r.Context(), "Error processing request", "error", err)
		writeTransportError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.rpcMethod = message.Method
	response := s.handler.Serve(r.Context(), message)
	writeJSON(w, http.StatusOK, response)
}

// decodeMessage requires body to be a single JSON object.
func decodeMessage(body []byte) (*schema.Message, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		if !json.Valid(trimmed) {
			return nil, fmt.Errorf("invalid JSON body")
		}
		return nil, fmt.Errorf("expected a JSON object body")
	}
	message := &schema.Message{}
	if err := json.Unmarshal(trimmed, message); err != nil {
		return nil, fmt.Errorf("invalid message: %w", err)
	}
	return message, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		writeTransportError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeTransportError writes the bare error envelope used outside the protocol response.
func writeTransportError(w http.ResponseWriter, status int, message string) {
	data, _ := json.Marshal(map[string]string{"error": message})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// HTTP creates an http.Server serving s on its path, wrapped with recovery, protocol version and CORS middleware.
func (s *Server) HTTP(_ context.Context, addr string) *http.Server {
	if addr == "" {
		addr = "0.0.0.0:8000"
	}
	middlewareHandlers := []Middleware{recoveryMiddleware(), protocolVersionMiddleware(s.protocolVersion)}
	if s.cors != nil {
		middlewareHandlers = append(middlewareHandlers, s.cors.Middleware)
	}
	mux := http.NewServeMux()
	mux.Handle(s.path, ChainMiddlewareHandlers(s, middlewareHandlers...))
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
