package server

import (
	"errors"
	"strings"

	mcpschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/mcphttp/config"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithImplementation sets the name and version reported by initialize and discovery.
func WithImplementation(implementation mcpschema.Implementation) Option {
	return func(s *Server) error {
		if implementation.Name == "" {
			return errors.New("implementation name was empty")
		}
		s.info = implementation
		return nil
	}
}

// WithDescription sets the discovery description.
func WithDescription(description string) Option {
	return func(s *Server) error {
		s.description = description
		return nil
	}
}

// WithProtocolVersion sets the protocol version reported by initialize.
func WithProtocolVersion(version string) Option {
	return func(s *Server) error {
		if version == "" {
			return errors.New("protocol version was empty")
		}
		s.protocolVersion = version
		return nil
	}
}

// WithMapping sets the bindings from query keys to configuration slots.
func WithMapping(mapping config.Mapping) Option {
	return func(s *Server) error {
		s.mapping = mapping
		return nil
	}
}

// WithSharedStore makes configuration process wide: every request writes into and reads from store.
// Requests of different clients then observe each other's configuration, so use it for single tenant deployments only.
func WithSharedStore(store config.SharedStore) Option {
	return func(s *Server) error {
		s.shared = store
		return nil
	}
}

// WithPath sets the endpoint path used by HTTP.
func WithPath(path string) Option {
	return func(s *Server) error {
		if !strings.HasPrefix(path, "/") {
			return errors.New("path must start with /")
		}
		s.path = path
		return nil
	}
}

// WithMaxBodySize caps the accepted POST body size.
func WithMaxBodySize(size int64) Option {
	return func(s *Server) error {
		if size <= 0 {
			return errors.New("max body size must be positive")
		}
		s.maxBodySize = size
		return nil
	}
}

// WithCORS enables CORS headers and origin validation.
func WithCORS(cors *Cors) Option {
	return func(s *Server) error {
		s.cors = cors
		return nil
	}
}
