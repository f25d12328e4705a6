package server

import (
	"context"

	"github.com/viant/mcphttp/schema"
)

func (h *Handler) listResources(ctx context.Context) (*schema.ListResourcesResult, error) {
	resources, err := h.backend.ListResources(ctx)
	if err != nil {
		return nil, err
	}
	result := &schema.ListResourcesResult{Resources: make([]schema.Resource, 0, len(resources))}
	for _, resource := range resources {
		result.Resources = append(result.Resources, schema.Resource{
			Uri:         resource.Uri,
			Name:        resource.Name,
			MimeType:    resource.MimeType,
			Description: resource.Description,
		})
	}
	return result, nil
}

// readResource falls back to plain text when the backend does not report a mime type.
func (h *Handler) readResource(ctx context.Context, params *schema.ReadResourceParams) (*schema.ReadResourceResult, error) {
	content, err := h.backend.ReadResource(ctx, params.Uri)
	if err != nil {
		return nil, err
	}
	item := schema.ResourceContent{Uri: params.Uri, MimeType: schema.DefaultMimeType}
	if content != nil {
		item.Text = content.Text
		if content.MimeType != "" {
			item.MimeType = content.MimeType
		}
	}
	return &schema.ReadResourceResult{Contents: []schema.ResourceContent{item}}, nil
}
