package server

import (
	"context"
	"errors"

	"github.com/viant/mcphttp/config"
	"github.com/viant/mcphttp/schema"
)

// fakeBackend records the configuration seen by each call.
type fakeBackend struct {
	tools     []schema.Tool
	resources []schema.Resource
	err       error
	panicOn   string
	seen      []config.Values
	calls     []string
	arguments map[string]interface{}
	content   *schema.ResourceContent
}

func (f *fakeBackend) record(ctx context.Context, call string) error {
	f.seen = append(f.seen, config.FromContext(ctx))
	f.calls = append(f.calls, call)
	if f.panicOn == call {
		panic("nil map write in " + call)
	}
	return f.err
}

func (f *fakeBackend) ListTools(ctx context.Context) ([]schema.Tool, error) {
	if err := f.record(ctx, "ListTools"); err != nil {
		return nil, err
	}
	return f.tools, nil
}

func (f *fakeBackend) CallTool(ctx context.Context, name string, arguments map[string]interface{}) ([]schema.Content, error) {
	f.arguments = arguments
	if err := f.record(ctx, "CallTool:"+name); err != nil {
		return nil, err
	}
	return []schema.Content{
		{Type: "text", Text: "first"},
		{Type: "image", Text: "second"},
	}, nil
}

func (f *fakeBackend) ListResources(ctx context.Context) ([]schema.Resource, error) {
	if err := f.record(ctx, "ListResources"); err != nil {
		return nil, err
	}
	return f.resources, nil
}

func (f *fakeBackend) ReadResource(ctx context.Context, uri string) (*schema.ResourceContent, error) {
	if err := f.record(ctx, "ReadResource:"+uri); err != nil {
		return nil, err
	}
	if f.content != nil {
		return f.content, nil
	}
	return &schema.ResourceContent{Text: "id,name"}, nil
}

var errBackend = errors.New("login failed for user 'sa'")
