package server

import (
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// InitializeResult is returned for the initialize method.
type InitializeResult struct {
	ProtocolVersion string                   `json:"protocolVersion"`
	Capabilities    map[string]interface{}   `json:"capabilities"`
	ServerInfo      mcpschema.Implementation `json:"serverInfo"`
}

func (h *Handler) initialize() *InitializeResult {
	return &InitializeResult{
		ProtocolVersion: h.protocolVersion,
		Capabilities: map[string]interface{}{
			"tools":     map[string]interface{}{},
			"resources": map[string]interface{}{},
		},
		ServerInfo: h.info,
	}
}
