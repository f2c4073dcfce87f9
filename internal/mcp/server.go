package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"gpt-bridge",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	for _, name := range cfg.Registry.Names() {
		tc, _ := cfg.Registry.Lookup(name)
		adapter, ok := cfg.ToolAdapters[name]
		if !ok {
			continue
		}
		tool := mcp.NewTool(name,
			mcp.WithDescription(tc.Description),
			mcp.WithString("input",
				mcp.Required(),
				mcp.Description("Free-text input forwarded to the model"),
			),
		)
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// ServeStdio blocks serving the MCP protocol over stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
