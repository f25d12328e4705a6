package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/viant/mcphttp/schema"
)

type (
	// ToolHandler executes a registered tool.
	ToolHandler func(ctx context.Context, arguments map[string]interface{}) ([]schema.Content, error)
	// ResourceHandler produces a registered resource body.
	ResourceHandler func(ctx context.Context, uri string) (*schema.ResourceContent, error)

	registeredTool struct {
		schema.Tool
		handler ToolHandler
	}

	registeredResource struct {
		schema.Resource
		handler ResourceHandler
	}
)

// Registry is an in-process backend; tools and resources are listed in registration order.
type Registry struct {
	mux           sync.RWMutex
	tools         []*registeredTool
	toolIndex     map[string]*registeredTool
	resources     []*registeredResource
	resourceIndex map[string]*registeredResource
}

// RegisterTool adds or replaces a tool.
func (r *Registry) RegisterTool(tool schema.Tool, handler ToolHandler) error {
	if tool.Name == "" {
		return fmt.Errorf("tool name was empty")
	}
	if handler == nil {
		return fmt.Errorf("tool %v: handler was nil", tool.Name)
	}
	if tool.InputSchema == nil {
		tool.InputSchema = map[string]interface{}{"type": "object"}
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	entry := &registeredTool{Tool: tool, handler: handler}
	if prev, ok := r.toolIndex[tool.Name]; ok {
		*prev = *entry
		return nil
	}
	r.toolIndex[tool.Name] = entry
	r.tools = append(r.tools, entry)
	return nil
}

// RegisterResource adds or replaces a resource.
func (r *Registry) RegisterResource(resource schema.Resource, handler ResourceHandler) error {
	if resource.Uri == "" {
		return fmt.Errorf("resource uri was empty")
	}
	if handler == nil {
		return fmt.Errorf("resource %v: handler was nil", resource.Uri)
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	entry := &registeredResource{Resource: resource, handler: handler}
	if prev, ok := r.resourceIndex[resource.Uri]; ok {
		*prev = *entry
		return nil
	}
	r.resourceIndex[resource.Uri] = entry
	r.resources = append(r.resources, entry)
	return nil
}

// ListTools returns registered tools.
func (r *Registry) ListTools(_ context.Context) ([]schema.Tool, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]schema.Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		ret = append(ret, tool.Tool)
	}
	return ret, nil
}

// CallTool invokes a registered tool.
func (r *Registry) CallTool(ctx context.Context, name string, arguments map[string]interface{}) ([]schema.Content, error) {
	r.mux.RLock()
	tool, ok := r.toolIndex[name]
	var handler ToolHandler
	if ok {
		handler = tool.handler
	}
	r.mux.RUnlock()
	if !ok {
		return nil, schema.NewUnknownTool(name)
	}
	if arguments == nil {
		arguments = map[string]interface{}{}
	}
	return handler(ctx, arguments)
}

// ListResources returns registered resources.
func (r *Registry) ListResources(_ context.Context) ([]schema.Resource, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]schema.Resource, 0, len(r.resources))
	for _, resource := range r.resources {
		ret = append(ret, resource.Resource)
	}
	return ret, nil
}

// ReadResource reads a registered resource; an unset mime type falls back to the registered one.
func (r *Registry) ReadResource(ctx context.Context, uri string) (*schema.ResourceContent, error) {
	r.mux.RLock()
	entry, ok := r.resourceIndex[uri]
	var resource registeredResource
	if ok {
		resource = *entry
	}
	r.mux.RUnlock()
	if !ok {
		return nil, schema.NewResourceNotFound(uri)
	}
	content, err := resource.handler(ctx, uri)
	if err != nil {
		return nil, err
	}
	if content == nil {
		content = &schema.ResourceContent{}
	}
	if content.Uri == "" {
		content.Uri = uri
	}
	if content.MimeType == "" {
		content.MimeType = resource.MimeType
	}
	return content, nil
}

// RegisterTypedTool registers a tool whose arguments decode into I; the input schema is derived from I.
func RegisterTypedTool[I any](r *Registry, name, description string, fn func(ctx context.Context, input *I) ([]schema.Content, error)) error {
	inputSchema, err := schema.InputSchemaFor(new(I))
	if err != nil {
		return fmt.Errorf("tool %v: %w", name, err)
	}
	tool := schema.Tool{Name: name, Description: description, InputSchema: inputSchema}
	return r.RegisterTool(tool, func(ctx context.Context, arguments map[string]interface{}) ([]schema.Content, error) {
		data, err := json.Marshal(arguments)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal arguments: %w", err)
		}
		input := new(I)
		if err = json.Unmarshal(data, input); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
		return fn(ctx, input)
	})
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		toolIndex:     map[string]*registeredTool{},
		resourceIndex: map[string]*registeredResource{},
	}
}
