package server

import (
	"context"
	"log/slog"

	mcpschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/mcphttp/backend"
	"github.com/viant/mcphttp/schema"
)

// Handler dispatches protocol messages to a backend.
type Handler struct {
	backend         backend.Backend
	info            mcpschema.Implementation
	protocolVersion string
}

// Serve handles one message and always returns a response echoing the message id.
// Backend failures become internal errors; panics are left to the transport.
func (h *Handler) Serve(ctx context.Context, message *schema.Message) *schema.Response {
	method := schema.ParseMethod(message.Method)
	slog.DebugContext(ctx, "processing method", "method", message.Method, "notification", message.IsNotification())
	switch method {
	case schema.MethodInitialize:
		return schema.NewResult(message, h.initialize())
	case schema.MethodInitialized, schema.MethodPing:
		return schema.NewResult(message, map[string]interface{}{})
	case schema.MethodToolsList:
		result, err := h.listTools(ctx)
		return h.respond(ctx, message, result, err)
	case schema.MethodToolsCall:
		params := &schema.CallToolParams{}
		if err := message.DecodeParams(params); err != nil {
			return schema.NewError(message, schema.NewInvalidParams(err))
		}
		result, err := h.callTool(ctx, params)
		return h.respond(ctx, message, result, err)
	case schema.MethodResourcesList:
		result, err := h.listResources(ctx)
		return h.respond(ctx, message, result, err)
	case schema.MethodResourcesRead:
		params := &schema.ReadResourceParams{}
		if err := message.DecodeParams(params); err != nil {
			return schema.NewError(message, schema.NewInvalidParams(err))
		}
		result, err := h.readResource(ctx, params)
		return h.respond(ctx, message, result, err)
	case schema.MethodUnknown:
		return schema.NewError(message, schema.NewMethodNotFound(message.Method))
	}
	return schema.NewError(message, schema.NewMethodNotFound(message.Method))
}

func (h *Handler) respond(ctx context.Context, message *schema.Message, result interface{}, err error) *schema.Response {
	if err != nil {
		slog.ErrorContext(ctx, "backend call failed", "method", message.Method, "error", err)
		return schema.NewError(message, schema.NewInternalError(err))
	}
	return schema.NewResult(message, result)
}

// NewHandler creates a handler reporting info and protocolVersion on initialize.
func NewHandler(backend backend.Backend, info mcpschema.Implementation, protocolVersion string) *Handler {
	return &Handler{backend: backend, info: info, protocolVersion: protocolVersion}
}
