package schema

import (
	"bytes"
	"encoding/json"

	"github.com/viant/jsonrpc"
)

// Message represents an incoming remote procedure call.
// Id is kept raw so that it is echoed byte for byte; an absent Id marks a notification.
type Message struct {
	Jsonrpc string          `json:"jsonrpc,omitempty"`
	Id      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// UnmarshalJSON accepts a non string method and keeps its literal text, so that it is reported as not found.
func (m *Message) UnmarshalJSON(data []byte) error {
	type message Message
	aux := struct {
		*message
		Method json.RawMessage `json:"method"`
	}{message: (*message)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.Method = ""
	raw := bytes.TrimSpace(aux.Method)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, &m.Method); err != nil {
		m.Method = string(raw)
	}
	return nil
}

// IsNotification reports whether the message carries no id.
func (m *Message) IsNotification() bool {
	return len(m.Id) == 0
}

// DecodeParams unmarshals params into dest; absent or null params leave dest untouched.
func (m *Message) DecodeParams(dest interface{}) error {
	if len(m.Params) == 0 || string(m.Params) == "null" {
		return nil
	}
	return json.Unmarshal(m.Params, dest)
}

// Response carries exactly one of Result or Error.
type Response struct {
	Jsonrpc string          `json:"jsonrpc,omitempty"`
	Id      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *jsonrpc.Error  `json:"error,omitempty"`
}

// NewResult creates a success response echoing message id.
func NewResult(message *Message, result interface{}) *Response {
	return &Response{Jsonrpc: message.Jsonrpc, Id: message.Id, Result: result}
}

// NewError creates an error response echoing message id.
func NewError(message *Message, err *jsonrpc.Error) *Response {
	return &Response{Jsonrpc: message.Jsonrpc, Id: message.Id, Error: err}
}
