package schema

const (
	// ContentTypeText is the content item type produced for textual tool output.
	ContentTypeText = "text"
	// DefaultMimeType is reported for resource contents whose type the backend did not state.
	DefaultMimeType = "text/plain"
)

type (
	// Tool describes a backend tool; the bridge passes it through unchanged.
	Tool struct {
		Name        string                 `json:"name"`
		Description string                 `json:"description"`
		InputSchema map[string]interface{} `json:"inputSchema"`
	}

	// Resource describes a backend resource.
	Resource struct {
		Uri         string `json:"uri"`
		Name        string `json:"name"`
		MimeType    string `json:"mimeType"`
		Description string `json:"description"`
	}

	// Content is a single item produced by a tool invocation.
	Content struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}

	// ResourceContent is the body of a read resource.
	ResourceContent struct {
		Uri      string `json:"uri"`
		MimeType string `json:"mimeType"`
		Text     string `json:"text"`
	}

	// CallToolParams holds tools/call params.
	CallToolParams struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments,omitempty"`
	}

	// ReadResourceParams holds resources/read params.
	ReadResourceParams struct {
		Uri string `json:"uri"`
	}

	ListToolsResult struct {
		Tools []Tool `json:"tools"`
	}

	CallToolResult struct {
		Content []Content `json:"content"`
		IsError bool      `json:"isError,omitempty"`
	}

	ListResourcesResult struct {
		Resources []Resource `json:"resources"`
	}

	ReadResourceResult struct {
		Contents []ResourceContent `json:"contents"`
	}
)

// NewTextContent creates a text content item.
func NewTextContent(text string) Content {
	return Content{Type: ContentTypeText, Text: text}
}
