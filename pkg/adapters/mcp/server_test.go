package mcp_test

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/aretw0/camelgraph/pkg/adapters/mcp"
	"github.com/aretw0/camelgraph/pkg/runner"
)

const routes = `<camelContext xmlns="http://camel.apache.org/schema/spring">
  <route id="orders">
    <from uri="direct:orders"/>
    <choice>
      <when><simple>${header.vip}</simple><to uri="seda:vip"/></when>
      <otherwise><to uri="seda:std"/></otherwise>
    </choice>
  </route>
</camelContext>`

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestHandleConvert(t *testing.T) {
	s := mcpadapter.NewServer(runner.NewRunner())
	ctx := context.Background()

	res, err := s.HandleConvert(ctx, callRequest("convert_routes", map[string]any{
		"xml":    routes,
		"format": "mermaid",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	out := textOf(t, res)
	assert.True(t, strings.HasPrefix(out, "graph LR\n"))
	assert.Contains(t, out, `orders(["orders"])`)

	res, err = s.HandleConvert(ctx, callRequest("convert_routes", map[string]any{
		"xml": strings.Replace(routes, "<choice>", "<loadBalance>", 1),
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = s.HandleConvert(ctx, callRequest("convert_routes", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleValidate(t *testing.T) {
	s := mcpadapter.NewServer(runner.NewRunner())
	ctx := context.Background()

	resp, err := s.HandleValidate(ctx, callRequest("validate_routes", nil), mcpadapter.ValidateArgs{XML: routes})
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, 4, resp.Nodes)
	assert.Equal(t, 1, resp.Routes)
	assert.Equal(t, 1, resp.Shapes["content_based_router"])

	broken := strings.Replace(routes, `<to uri="seda:std"/>`, `<to uri="ref:std"/>`, 1)
	resp, err = s.HandleValidate(ctx, callRequest("validate_routes", nil), mcpadapter.ValidateArgs{XML: broken})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, "to", resp.Tag)
	assert.Equal(t, 6, resp.Line)
	assert.Contains(t, resp.Error, `"std"`)

	_, err = s.HandleValidate(ctx, callRequest("validate_routes", nil), mcpadapter.ValidateArgs{})
	assert.Error(t, err)
}
