package mcp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/biothings/mygene-mcp/api"
	"github.com/biothings/mygene-mcp/log"
)

// Server represents the MCP server for mygene-mcp
type Server struct {
	server *server.MCPServer
}

// NewServer creates a new MCP server instance backed by the given client
func NewServer(name string, client *api.Client) *Server {
	s := server.NewMCPServer(name, api.Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, client)

	return &Server{
		server: s,
	}
}

// Run starts the MCP server on stdio
func (s *Server) Run() error {
	return server.ServeStdio(s.server)
}

// RunHTTP starts the MCP server on the streamable HTTP transport
func (s *Server) RunHTTP(addr string) error {
	httpServer := server.NewStreamableHTTPServer(s.server,
		server.WithStateLess(true),
	)

	log.Info("Starting MCP streamable HTTP server", "addr", addr)
	return httpServer.Start(addr)
}

// registerTools registers all available tools, each wrapped with call logging
func registerTools(s *server.MCPServer, client *api.Client) {
	for _, t := range InitTools(client) {
		s.AddTool(t.Tool, withCallLog(t.Tool.Name, t.Handler))
	}
}

// withCallLog tags every invocation with an id and logs its duration
func withCallLog(name string, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := uuid.NewString()
		start := time.Now()
		log.Debug("Tool call", "tool", name, "invocation", id)

		result, err := handler(ctx, req)

		isError := err != nil || (result != nil && result.IsError)
		log.Debug("Tool call finished",
			"tool", name,
			"invocation", id,
			"duration", time.Since(start),
			"is_error", isError,
		)
		return result, err
	}
}

func newServerTool(tool mcp.Tool, handler server.ToolHandlerFunc) server.ServerTool {
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
