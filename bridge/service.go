package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	mcpschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/mcphttp/backend"
	"github.com/viant/mcphttp/config"
	"github.com/viant/mcphttp/schema"
	"github.com/viant/mcphttp/server"
)

// ConnectionURI names the diagnostic resource exposing the request configuration.
const ConnectionURI = "config://connection"

// Service is a configured adapter ready to be served over HTTP.
type Service struct {
	options *Options
	mapping config.Mapping
	backend backend.Backend
	server  *server.Server
}

// Backend returns the backend served by s.
func (s *Service) Backend() backend.Backend {
	return s.backend
}

// HTTP creates the http.Server listening on the configured address.
func (s *Service) HTTP(ctx context.Context) *http.Server {
	return s.server.HTTP(ctx, s.options.Addr())
}

// New constructs a Service; it selects the backend and the configuration store from options.
func New(ctx context.Context, options *Options) (*Service, error) {
	svc := &Service{options: options, mapping: config.DefaultMapping(options.EnvPrefix)}
	var err error
	if svc.backend, err = svc.newBackend(); err != nil {
		return nil, err
	}
	serverOptions := []server.Option{
		server.WithImplementation(mcpschema.Implementation{Name: options.Name, Version: options.Version}),
		server.WithDescription(options.Description),
		server.WithProtocolVersion(options.ProtocolVersion),
		server.WithMapping(svc.mapping),
		server.WithPath(options.Path),
	}
	store, err := svc.newStore(ctx)
	if err != nil {
		return nil, err
	}
	if store != nil {
		serverOptions = append(serverOptions, server.WithSharedStore(store))
	}
	if len(options.CorsOrigins) > 0 {
		serverOptions = append(serverOptions, server.WithCORS(server.NewCors(options.CorsOrigins...)))
	}
	if svc.server, err = server.New(svc.backend, serverOptions...); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) newStore(ctx context.Context) (config.SharedStore, error) {
	switch s.options.ConfigScope {
	case "", ScopeRequest:
		return nil, nil
	case ScopeShared:
		slog.WarnContext(ctx, "configuration is shared by all clients; use for single tenant deployments only")
		return config.NewShared(), nil
	case ScopeEnv:
		slog.WarnContext(ctx, "configuration is exported to the process environment and shared by all clients")
		return config.NewEnvironment(s.mapping), nil
	}
	return nil, fmt.Errorf("unsupported config scope: %v", s.options.ConfigScope)
}

func (s *Service) newBackend() (backend.Backend, error) {
	if s.options.UpstreamURL != "" {
		return backend.NewRemote(s.options.UpstreamURL,
			backend.WithForwardedConfig(s.mapping),
			backend.WithProtocolVersion(s.options.ProtocolVersion),
			backend.WithClientInfo(mcpschema.Implementation{Name: s.options.Name, Version: s.options.Version}),
		)
	}
	return newDiagnostics(s.mapping)
}

// ConnectionInput selects connection slots by their query key.
type ConnectionInput struct {
	Keys []string `json:"keys,omitempty" description:"query keys to report, all when empty"`
}

// newDiagnostics creates a registry reporting the configuration each request carries, with secrets masked.
func newDiagnostics(mapping config.Mapping) (*backend.Registry, error) {
	registry := backend.NewRegistry()
	err := registry.RegisterResource(schema.Resource{
		Uri:         ConnectionURI,
		Name:        "Connection configuration",
		MimeType:    "application/json",
		Description: "Connection settings applied from the request query",
	}, func(ctx context.Context, uri string) (*schema.ResourceContent, error) {
		data, err := json.Marshal(config.FromContext(ctx).Redact())
		if err != nil {
			return nil, err
		}
		return &schema.ResourceContent{Text: string(data)}, nil
	})
	if err != nil {
		return nil, err
	}
	err = backend.RegisterTypedTool(registry, "describe_connection", "Reports connection settings applied from the request query",
		func(ctx context.Context, input *ConnectionInput) ([]schema.Content, error) {
			values := config.FromContext(ctx).Redact()
			keys := input.Keys
			if len(keys) == 0 {
				for _, binding := range mapping {
					keys = append(keys, binding.Key)
				}
			}
			var content []schema.Content
			for _, key := range keys {
				slot, ok := mapping.Slot(key)
				if !ok {
					return nil, errors.New("unsupported connection key: " + key)
				}
				value, ok := values.Get(slot)
				if !ok {
					continue
				}
				content = append(content, schema.NewTextContent(key+"="+value))
			}
			if len(content) == 0 {
				content = append(content, schema.NewTextContent("no connection settings"))
			}
			return content, nil
		})
	if err != nil {
		return nil, err
	}
	return registry, nil
}
