package backend

import (
	"context"

	"github.com/viant/mcphttp/schema"
)

// Backend lists and invokes tools and resources. Any returned error is a backend fault.
type Backend interface {
	ListTools(ctx context.Context) ([]schema.Tool, error)
	CallTool(ctx context.Context, name string, arguments map[string]interface{}) ([]schema.Content, error)
	ListResources(ctx context.Context) ([]schema.Resource, error)
	// ReadResource returns resource content; an empty MimeType means the type is unknown.
	ReadResource(ctx context.Context, uri string) (*schema.ResourceContent, error)
}
