package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonrpc"
)

func TestResponse_EchoesId(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expectId    string
	}{
		{description: "number", input: `{"method":"ping","id":1}`, expectId: `1`},
		{description: "large number", input: `{"method":"ping","id":12345678901234567890}`, expectId: `12345678901234567890`},
		{description: "string", input: `{"method":"ping","id":"abc"}`, expectId: `"abc"`},
		{description: "null", input: `{"method":"ping","id":null}`, expectId: `null`},
		{description: "absent", input: `{"method":"ping"}`, expectId: `null`},
	}
	for _, testCase := range testCases {
		message := &Message{}
		require.NoError(t, json.Unmarshal([]byte(testCase.input), message), testCase.description)
		data, err := json.Marshal(NewResult(message, map[string]interface{}{}))
		require.NoError(t, err, testCase.description)
		var actual map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &actual), testCase.description)
		assert.Equal(t, testCase.expectId, string(actual["id"]), testCase.description)
		assert.Equal(t, `{}`, string(actual["result"]), testCase.description)
		_, hasError := actual["error"]
		assert.False(t, hasError, testCase.description)
	}
}

func TestMessage_IsNotification(t *testing.T) {
	message := &Message{}
	require.NoError(t, json.Unmarshal([]byte(`{"method":"initialized"}`), message))
	assert.True(t, message.IsNotification())
	require.NoError(t, json.Unmarshal([]byte(`{"method":"initialized","id":3}`), message))
	assert.False(t, message.IsNotification())
}

func TestMessage_UnmarshalMethod(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      string
	}{
		{description: "string", input: `{"method":"tools/list","id":9}`, expect: "tools/list"},
		{description: "number", input: `{"method":5,"id":9}`, expect: "5"},
		{description: "bool", input: `{"method":true,"id":9}`, expect: "true"},
		{description: "null", input: `{"method":null,"id":9}`, expect: ""},
		{description: "absent", input: `{"id":9}`, expect: ""},
	}
	for _, testCase := range testCases {
		message := &Message{}
		require.NoError(t, json.Unmarshal([]byte(testCase.input), message), testCase.description)
		assert.Equal(t, testCase.expect, message.Method, testCase.description)
		assert.Equal(t, `9`, string(message.Id), testCase.description)
	}
	assert.Error(t, json.Unmarshal([]byte(`{"method":`), &Message{}))
}

func TestMessage_DecodeParams(t *testing.T) {
	params := &CallToolParams{}
	message := &Message{Params: json.RawMessage(`{"name":"X","arguments":{"a":1}}`)}
	require.NoError(t, message.DecodeParams(params))
	assert.Equal(t, "X", params.Name)
	assert.EqualValues(t, 1, params.Arguments["a"])

	params = &CallToolParams{}
	assert.NoError(t, (&Message{}).DecodeParams(params))
	assert.NoError(t, (&Message{Params: json.RawMessage(`null`)}).DecodeParams(params))
	assert.Error(t, (&Message{Params: json.RawMessage(`[1]`)}).DecodeParams(params))
}

func TestResponse_Error(t *testing.T) {
	message := &Message{Id: json.RawMessage(`7`)}
	response := NewError(message, NewMethodNotFound("unknown/thing"))
	assert.Nil(t, response.Result)
	assert.Equal(t, MethodNotFound, response.Error.Code)
	assert.Equal(t, "Method not found: unknown/thing", response.Error.Message)
}

func TestNewInternalError(t *testing.T) {
	err := NewInternalError(errors.New("connection refused"))
	assert.Equal(t, InternalError, err.Code)
	assert.Equal(t, "connection refused", err.Message)

	upstream := jsonrpc.NewInvalidParamsError("bad table", nil)
	err = NewInternalError(upstream)
	assert.Equal(t, InternalError, err.Code)
	assert.Equal(t, "bad table", err.Message)
}
