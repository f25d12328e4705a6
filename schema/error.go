package schema

import (
	"errors"
	"fmt"

	"github.com/viant/jsonrpc"
)

const (
	// MethodNotFound is the code returned for unsupported methods.
	MethodNotFound = -32601
	// InvalidParams is the code returned for undecodable params.
	InvalidParams = -32602
	// InternalError is the code returned for backend failures.
	InternalError = -32603
)

// NewMethodNotFound creates the error returned for unsupported methods.
func NewMethodNotFound(method string) *jsonrpc.Error {
	return jsonrpc.NewMethodNotFound("Method not found: "+method, nil)
}

// NewInvalidParams creates the error returned when params cannot be decoded.
func NewInvalidParams(err error) *jsonrpc.Error {
	return jsonrpc.NewInvalidParamsError(fmt.Sprintf("Invalid params: %v", err), nil)
}

// NewInternalError converts a backend failure into an internal error; a *jsonrpc.Error keeps its message.
func NewInternalError(err error) *jsonrpc.Error {
	var rpcErr *jsonrpc.Error
	if errors.As(err, &rpcErr) {
		return jsonrpc.NewInternalError(rpcErr.Message, nil)
	}
	return jsonrpc.NewInternalError(err.Error(), nil)
}

// NewUnknownTool creates the error raised for an unregistered tool.
func NewUnknownTool(name string) error {
	return fmt.Errorf("unknown tool: %v", name)
}

// NewResourceNotFound creates the error raised for an unregistered resource.
func NewResourceNotFound(uri string) error {
	return fmt.Errorf("resource not found: %v", uri)
}
