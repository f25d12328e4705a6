package server

import (
	"errors"

	mcpschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/mcphttp/backend"
	"github.com/viant/mcphttp/config"
)

const (
	// DefaultProtocolVersion is reported by initialize unless overridden.
	DefaultProtocolVersion = "2024-11-05"
	// DefaultPath is the single endpoint path.
	DefaultPath = "/mcp"
	// DefaultMaxBodySize caps POST bodies.
	DefaultMaxBodySize = 4 << 20
)

// Server adapts HTTP calls to protocol messages handled by a backend.
type Server struct {
	handler         *Handler
	backend         backend.Backend
	info            mcpschema.Implementation
	description     string
	protocolVersion string

	mapping config.Mapping
	// shared, when set, receives configuration writes for every request; otherwise each request has its own values
	shared config.SharedStore

	path        string
	maxBodySize int64
	cors        *Cors
}

// Discovery is the document returned for GET.
type Discovery struct {
	Name         string                `json:"name"`
	Version      string                `json:"version"`
	Description  string                `json:"description"`
	Capabilities DiscoveryCapabilities `json:"capabilities"`
}

// DiscoveryCapabilities advertises supported capability groups.
type DiscoveryCapabilities struct {
	Tools     bool `json:"tools"`
	Resources bool `json:"resources"`
}

func (s *Server) discovery() *Discovery {
	return &Discovery{
		Name:         s.info.Name,
		Version:      s.info.Version,
		Description:  s.description,
		Capabilities: DiscoveryCapabilities{Tools: true, Resources: true},
	}
}

// New creates a Server instance
func New(backend backend.Backend, options ...Option) (*Server, error) {
	if backend == nil {
		return nil, errors.New("no backend specified")
	}
	s := &Server{
		backend: backend,
		info: mcpschema.Implementation{
			Name:    "mssql_mcp_server",
			Version: "0.1.0",
		},
		description:     "Microsoft SQL Server MCP server",
		protocolVersion: DefaultProtocolVersion,
		mapping:         config.DefaultMapping(config.DefaultPrefix),
		path:            DefaultPath,
		maxBodySize:     DefaultMaxBodySize,
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	s.handler = NewHandler(s.backend, s.info, s.protocolVersion)
	return s, nil
}
