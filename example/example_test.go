package example

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"

	"github.com/viant/mcphttp/backend"
	"github.com/viant/mcphttp/config"
	"github.com/viant/mcphttp/schema"
	"github.com/viant/mcphttp/server"
)

type Addition struct {
	A int `json:"a"`
	B int `json:"b"`
}

func Example() {
	registry := backend.NewRegistry()
	// Register a simple calculator tool: adds two integers
	err := backend.RegisterTypedTool(registry, "add", "Add two integers", func(ctx context.Context, input *Addition) ([]schema.Content, error) {
		return []schema.Content{schema.NewTextContent(strconv.Itoa(input.A + input.B))}, nil
	})
	if err != nil {
		log.Fatal(err)
	}
	// Report the database selected by the request query
	err = registry.RegisterTool(schema.Tool{Name: "current_database"}, func(ctx context.Context, _ map[string]interface{}) ([]schema.Content, error) {
		database, _ := config.FromContext(ctx).Get("MSSQL_DATABASE")
		return []schema.Content{schema.NewTextContent(database)}, nil
	})
	if err != nil {
		log.Fatal(err)
	}

	srv, err := server.New(registry)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	ts := httptest.NewServer(srv.HTTP(context.Background(), "").Handler)
	defer ts.Close()

	for _, body := range []string{
		`{"jsonrpc":"2.0","method":"tools/call","params":{"name":"add","arguments":{"a":1,"b":2}},"id":1}`,
		`{"jsonrpc":"2.0","method":"tools/call","params":{"name":"current_database"},"id":2}`,
	} {
		resp, err := http.Post(ts.URL+"/mcp?server=db.local&database=Sales", "application/json", strings.NewReader(body))
		if err != nil {
			log.Fatal(err)
		}
		data, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		fmt.Println(string(data))
	}
	// Output:
	// {"jsonrpc":"2.0","id":1,"result":{"content":[{"type":"text","text":"3"}]}}
	// {"jsonrpc":"2.0","id":2,"result":{"content":[{"type":"text","text":"Sales"}]}}
}
