package server

import (
	"context"

	"github.com/viant/mcphttp/schema"
)

func (h *Handler) listTools(ctx context.Context) (*schema.ListToolsResult, error) {
	tools, err := h.backend.ListTools(ctx)
	if err != nil {
		return nil, err
	}
	result := &schema.ListToolsResult{Tools: make([]schema.Tool, 0, len(tools))}
	for _, tool := range tools {
		result.Tools = append(result.Tools, schema.Tool{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.InputSchema,
		})
	}
	return result, nil
}

func (h *Handler) callTool(ctx context.Context, params *schema.CallToolParams) (*schema.CallToolResult, error) {
	arguments := params.Arguments
	if arguments == nil {
		arguments = map[string]interface{}{}
	}
	content, err := h.backend.CallTool(ctx, params.Name, arguments)
	if err != nil {
		return nil, err
	}
	result := &schema.CallToolResult{Content: make([]schema.Content, 0, len(content))}
	for _, item := range content {
		result.Content = append(result.Content, schema.Content{Type: item.Type, Text: item.Text})
	}
	return result, nil
}
