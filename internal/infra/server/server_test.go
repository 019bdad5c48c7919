package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"adhanmcp/internal/domain"
	"adhanmcp/internal/infra/aladhan"
	"adhanmcp/internal/infra/cache"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"ok":true}}`))
	}))
	t.Cleanup(ts.Close)

	cfg := domain.DefaultConfig()
	cfg.BaseURL = ts.URL
	client := aladhan.NewClient(aladhan.ClientOptions{Config: cfg})

	return New(Options{
		Config: cfg,
		Client: client,
		Cache:  cache.New(),
	})
}

func TestServerExposesAllTools(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	_, err := srv.MCP().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	mcpClient := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "0.1.0"}, nil)
	session, err := mcpClient.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	res, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.Len(t, res.Tools, 11)

	call, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "convert_gregorian_to_hijri",
		Arguments: map[string]any{"date": "2024-03-15"},
	})
	require.NoError(t, err)
	require.False(t, call.IsError)
}

func TestRunStreamableHTTPRequiresAddr(t *testing.T) {
	srv := newTestServer(t)
	srv.cfg.HTTPAddr = ""
	require.Error(t, srv.RunStreamableHTTP(context.Background()))
}

func TestRunStreamableHTTPServesAndStops(t *testing.T) {
	srv := newTestServer(t)
	srv.cfg.HTTPAddr = "127.0.0.1:0"

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	require.NoError(t, srv.RunStreamableHTTP(ctx))
}
