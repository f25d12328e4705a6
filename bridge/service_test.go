package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/mcphttp/backend"
)

func defaultOptions() *Options {
	return &Options{
		Port:            8000,
		Host:            "127.0.0.1",
		Path:            "/mcp",
		ProtocolVersion: "2024-11-05",
		Name:            "mssql_mcp_server",
		Version:         "0.1.0",
		Description:     "Microsoft SQL Server MCP server",
		ConfigScope:     ScopeRequest,
		EnvPrefix:       "MSSQL_",
	}
}

func post(t *testing.T, url, body string) map[string]interface{} {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ret map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ret))
	return ret
}

func newTestService(t *testing.T, options *Options) (*Service, *httptest.Server) {
	t.Helper()
	svc, err := New(context.Background(), options)
	require.NoError(t, err)
	ts := httptest.NewServer(svc.HTTP(context.Background()).Handler)
	t.Cleanup(ts.Close)
	return svc, ts
}

func TestService_ConnectionResource(t *testing.T) {
	_, ts := newTestService(t, defaultOptions())
	body := post(t, ts.URL+"/mcp?server=db.local&password=secret&api_key=k",
		`{"jsonrpc":"2.0","method":"resources/read","params":{"uri":"config://connection"},"id":1}`)

	contents := body["result"].(map[string]interface{})["contents"].([]interface{})
	require.Len(t, contents, 1)
	content := contents[0].(map[string]interface{})
	assert.Equal(t, ConnectionURI, content["uri"])
	assert.Equal(t, "application/json", content["mimeType"])

	var values map[string]string
	require.NoError(t, json.Unmarshal([]byte(content["text"].(string)), &values))
	assert.Equal(t, map[string]string{"MSSQL_SERVER": "db.local", "MSSQL_PASSWORD": "***"}, values)
}

func TestService_DescribeConnection(t *testing.T) {
	_, ts := newTestService(t, defaultOptions())
	var testCases = []struct {
		description string
		query       string
		arguments   string
		expect      []string
		expectErr   bool
	}{
		{description: "all keys", query: "?server=db.local&port=1433", arguments: `{}`, expect: []string{"server=db.local", "port=1433"}},
		{description: "selected keys", query: "?server=db.local&user=sa", arguments: `{"keys":["user"]}`, expect: []string{"user=sa"}},
		{description: "no settings", arguments: `{}`, expect: []string{"no connection settings"}},
		{description: "unsupported key", arguments: `{"keys":["session"]}`, expectErr: true},
	}
	for _, testCase := range testCases {
		body := post(t, ts.URL+"/mcp"+testCase.query,
			`{"method":"tools/call","params":{"name":"describe_connection","arguments":`+testCase.arguments+`},"id":1}`)
		if testCase.expectErr {
			rpcErr := body["error"].(map[string]interface{})
			assert.EqualValues(t, -32603, rpcErr["code"], testCase.description)
			continue
		}
		var actual []string
		for _, item := range body["result"].(map[string]interface{})["content"].([]interface{}) {
			actual = append(actual, item.(map[string]interface{})["text"].(string))
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestService_ListTools(t *testing.T) {
	_, ts := newTestService(t, defaultOptions())
	body := post(t, ts.URL+"/mcp", `{"method":"tools/list","id":1}`)
	tools := body["result"].(map[string]interface{})["tools"].([]interface{})
	require.Len(t, tools, 1)
	tool := tools[0].(map[string]interface{})
	assert.Equal(t, "describe_connection", tool["name"])
	assert.Equal(t, "object", tool["inputSchema"].(map[string]interface{})["type"])
}

func TestService_SharedScope(t *testing.T) {
	options := defaultOptions()
	options.ConfigScope = ScopeShared
	_, ts := newTestService(t, options)
	post(t, ts.URL+"/mcp?database=Sales", `{"method":"ping","id":1}`)
	body := post(t, ts.URL+"/mcp", `{"method":"tools/call","params":{"name":"describe_connection"},"id":2}`)
	content := body["result"].(map[string]interface{})["content"].([]interface{})
	assert.Equal(t, "database=Sales", content[0].(map[string]interface{})["text"])
}

func TestService_EnvScope(t *testing.T) {
	options := defaultOptions()
	options.ConfigScope = ScopeEnv
	options.EnvPrefix = "MCPHTTP_TEST_"
	t.Cleanup(func() { _ = os.Unsetenv("MCPHTTP_TEST_SERVER") })
	_, ts := newTestService(t, options)
	post(t, ts.URL+"/mcp?server=env.local", `{"method":"ping","id":1}`)
	assert.Equal(t, "env.local", os.Getenv("MCPHTTP_TEST_SERVER"))
}

func TestNew_Errors(t *testing.T) {
	options := defaultOptions()
	options.ConfigScope = "global"
	_, err := New(context.Background(), options)
	assert.Error(t, err)

	options = defaultOptions()
	options.UpstreamURL = "ftp://example.com"
	_, err = New(context.Background(), options)
	assert.Error(t, err)
}

func TestNew_Upstream(t *testing.T) {
	options := defaultOptions()
	options.UpstreamURL = "http://127.0.0.1:9/mcp"
	svc, err := New(context.Background(), options)
	require.NoError(t, err)
	_, ok := svc.Backend().(*backend.Remote)
	assert.True(t, ok)
}
