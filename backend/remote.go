package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/jsonrpc/transport/client/http/streamable"
	mcpschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/mcphttp/config"
	"github.com/viant/mcphttp/schema"
)

// DefaultRemoteTimeout bounds every upstream HTTP exchange unless WithHTTPClient says otherwise.
const DefaultRemoteTimeout = 30 * time.Second

// Dialer opens a JSON-RPC transport to the upstream server.
type Dialer func(ctx context.Context) (transport.Transport, error)

// Remote forwards backend calls to an upstream MCP server over the streamable HTTP transport.
// The initialize handshake runs lazily on first use and again after a transport failure.
type Remote struct {
	url             string
	client          *http.Client
	dial            Dialer
	mapping         config.Mapping
	info            mcpschema.Implementation
	protocolVersion string

	nextId atomic.Int64
	// session is a one slot semaphore guarding transport; waiting on it honours the caller context
	session   chan struct{}
	transport transport.Transport
}

// RemoteOption configures Remote.
type RemoteOption func(r *Remote)

// WithHTTPClient sets the client used for upstream calls.
func WithHTTPClient(client *http.Client) RemoteOption {
	return func(r *Remote) {
		r.client = client
	}
}

// WithForwardedConfig forwards request configuration as upstream query parameters named by mapping keys.
func WithForwardedConfig(mapping config.Mapping) RemoteOption {
	return func(r *Remote) {
		r.mapping = mapping
	}
}

// WithClientInfo sets the client implementation sent on initialize.
func WithClientInfo(info mcpschema.Implementation) RemoteOption {
	return func(r *Remote) {
		r.info = info
	}
}

// WithProtocolVersion sets the protocol version sent on initialize.
func WithProtocolVersion(version string) RemoteOption {
	return func(r *Remote) {
		r.protocolVersion = version
	}
}

// WithDialer replaces the streamable transport dialer.
func WithDialer(dial Dialer) RemoteOption {
	return func(r *Remote) {
		r.dial = dial
	}
}

// ListTools lists upstream tools.
func (r *Remote) ListTools(ctx context.Context) ([]schema.Tool, error) {
	result := &schema.ListToolsResult{}
	if err := r.call(ctx, mcpschema.MethodToolsList, map[string]interface{}{}, result); err != nil {
		return nil, err
	}
	return result.Tools, nil
}

// CallTool invokes an upstream tool; a result flagged isError becomes an error.
func (r *Remote) CallTool(ctx context.Context, name string, arguments map[string]interface{}) ([]schema.Content, error) {
	if arguments == nil {
		arguments = map[string]interface{}{}
	}
	result := &schema.CallToolResult{}
	params := &schema.CallToolParams{Name: name, Arguments: arguments}
	if err := r.call(ctx, mcpschema.MethodToolsCall, params, result); err != nil {
		return nil, err
	}
	if result.IsError {
		messages := make([]string, 0, len(result.Content))
		for _, item := range result.Content {
			messages = append(messages, item.Text)
		}
		return nil, fmt.Errorf("tool %v failed: %v", name, strings.Join(messages, "; "))
	}
	return result.Content, nil
}

// ListResources lists upstream resources.
func (r *Remote) ListResources(ctx context.Context) ([]schema.Resource, error) {
	result := &schema.ListResourcesResult{}
	if err := r.call(ctx, mcpschema.MethodResourcesList, map[string]interface{}{}, result); err != nil {
		return nil, err
	}
	return result.Resources, nil
}

// ReadResource reads the first upstream content of uri.
func (r *Remote) ReadResource(ctx context.Context, uri string) (*schema.ResourceContent, error) {
	result := &schema.ReadResourceResult{}
	if err := r.call(ctx, mcpschema.MethodResourcesRead, &schema.ReadResourceParams{Uri: uri}, result); err != nil {
		return nil, err
	}
	if len(result.Contents) == 0 {
		return nil, fmt.Errorf("resource %v: upstream returned no contents", uri)
	}
	content := result.Contents[0]
	return &content, nil
}

func (r *Remote) call(ctx context.Context, method string, params interface{}, result interface{}) error {
	aTransport, err := r.ensureSession(ctx)
	if err != nil {
		return err
	}
	response, err := r.send(ctx, aTransport, method, params)
	if err != nil {
		var rpcErr *jsonrpc.Error
		if !errors.As(err, &rpcErr) {
			r.resetSession(ctx, aTransport)
		}
		return err
	}
	if len(response.Result) == 0 {
		return nil
	}
	if err = json.Unmarshal(response.Result, result); err != nil {
		return fmt.Errorf("%v: invalid result: %w", method, err)
	}
	return nil
}

// send returns transport failures wrapped and upstream rpc errors as *jsonrpc.Error.
func (r *Remote) send(ctx context.Context, aTransport transport.Transport, method string, params interface{}) (*jsonrpc.Response, error) {
	request, err := jsonrpc.NewRequest(method, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create %v request: %w", method, err)
	}
	request.Jsonrpc = jsonrpc.Version
	request.Id = int(r.nextId.Add(1))
	response, err := aTransport.Send(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", method, err)
	}
	if response == nil {
		return nil, fmt.Errorf("%v: upstream returned no response", method)
	}
	if response.Error != nil {
		return nil, response.Error
	}
	return response, nil
}

// ensureSession returns the initialized transport, dialing and initializing it when absent.
// Callers wait for a concurrent handshake only as long as their context allows.
func (r *Remote) ensureSession(ctx context.Context) (transport.Transport, error) {
	select {
	case r.session <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for upstream session: %w", ctx.Err())
	}
	defer func() { <-r.session }()
	if r.transport != nil {
		return r.transport, nil
	}
	aTransport, err := r.dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect upstream: %w", err)
	}
	if err = r.initialize(ctx, aTransport); err != nil {
		return nil, fmt.Errorf("failed to initialize upstream: %w", err)
	}
	r.transport = aTransport
	return aTransport, nil
}

func (r *Remote) initialize(ctx context.Context, aTransport transport.Transport) error {
	params := &mcpschema.InitializeRequestParams{
		ClientInfo:      r.info,
		ProtocolVersion: r.protocolVersion,
	}
	response, err := r.send(ctx, aTransport, mcpschema.MethodInitialize, params)
	if err != nil {
		return err
	}
	result := &mcpschema.InitializeResult{}
	if len(response.Result) > 0 {
		if err = json.Unmarshal(response.Result, result); err != nil {
			return fmt.Errorf("invalid initialize result: %w", err)
		}
	}
	slog.DebugContext(ctx, "upstream initialized",
		"server", result.ServerInfo.Name, "version", result.ServerInfo.Version, "protocol", result.ProtocolVersion)
	if err = aTransport.Notify(ctx, &jsonrpc.Notification{Method: mcpschema.MethodNotificationInitialized}); err != nil {
		return fmt.Errorf("failed to notify initialized: %w", err)
	}
	return nil
}

// resetSession drops stale so that the next call dials again; an upstream rpc error keeps it.
func (r *Remote) resetSession(ctx context.Context, stale transport.Transport) {
	select {
	case r.session <- struct{}{}:
	case <-ctx.Done():
		return
	}
	defer func() { <-r.session }()
	if r.transport == stale {
		r.transport = nil
	}
}

// configForwarder appends the request configuration to every upstream call as query parameters.
type configForwarder struct {
	base    http.RoundTripper
	mapping config.Mapping
}

func (f *configForwarder) RoundTrip(request *http.Request) (*http.Response, error) {
	values := config.FromContext(request.Context())
	if len(values) == 0 {
		return f.base.RoundTrip(request)
	}
	forwarded := request.Clone(request.Context())
	query := forwarded.URL.Query()
	for _, binding := range f.mapping {
		if value, ok := values.Get(binding.Slot); ok {
			query.Set(binding.Key, value)
		}
	}
	forwarded.URL.RawQuery = query.Encode()
	return f.base.RoundTrip(forwarded)
}

func newConfigForwarder(base http.RoundTripper, mapping config.Mapping) *configForwarder {
	if base == nil {
		base = http.DefaultTransport
	}
	return &configForwarder{base: base, mapping: mapping}
}

// NewRemote creates a backend forwarding to rawURL.
func NewRemote(rawURL string, options ...RemoteOption) (*Remote, error) {
	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream url %q: %w", rawURL, err)
	}
	if target.Scheme != "http" && target.Scheme != "https" {
		return nil, fmt.Errorf("invalid upstream url %q: unsupported scheme", rawURL)
	}
	ret := &Remote{
		url:             target.String(),
		client:          &http.Client{Timeout: DefaultRemoteTimeout},
		info:            mcpschema.Implementation{Name: "mcphttp", Version: "0.1.0"},
		protocolVersion: "2024-11-05",
		session:         make(chan struct{}, 1),
	}
	for _, option := range options {
		option(ret)
	}
	if len(ret.mapping) > 0 {
		client := *ret.client
		client.Transport = newConfigForwarder(client.Transport, ret.mapping)
		ret.client = &client
	}
	if ret.dial == nil {
		ret.dial = func(_ context.Context) (transport.Transport, error) {
			return streamable.New(context.Background(), ret.url, streamable.WithHTTPClient(ret.client))
		}
	}
	return ret, nil
}
