// Package mcp exposes the NLPearl API as MCP (Model Context Protocol) tools,
// so AI assistants can read accounts, Pearls and calls and manage leads.
//
//	c := client.New(client.Config{APIKey: key})
//	if err := mcp.ServeStdio(c); err != nil {
//	    log.Fatal(err)
//	}
//
// Tools follow the client's active API version. Calling a tool that does not
// exist in that version returns a tool error naming the version to switch to.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	nlpearl "github.com/spetersoncode/nlpearl"
	"github.com/spetersoncode/nlpearl/client"
)

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name     string
	version  string
	readOnly bool
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// WithReadOnly registers only the tools that do not change remote state.
func WithReadOnly() ServerOption {
	return func(c *serverConfig) {
		c.readOnly = true
	}
}

// NewServer creates an MCP server whose tools call c.
func NewServer(c *client.Client, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    "nlpearl-mcp-server",
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)

	for _, t := range tools(c) {
		if cfg.readOnly && t.mutates {
			continue
		}
		s.AddTool(t.tool, handle(t.run))
	}

	return s
}

// ServeStdio starts an MCP server that communicates over stdin/stdout.
func ServeStdio(c *client.Client, opts ...ServerOption) error {
	return server.ServeStdio(NewServer(c, opts...))
}

type runFunc func(ctx context.Context, req mcp.CallToolRequest) (*nlpearl.Result, error)

// handle turns an SDK call into an MCP handler. SDK errors become tool
// errors so the assistant can read and act on them.
func handle(run runFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := run(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		text := res.String()
		if text == "" {
			text = "ok"
		}
		return mcp.NewToolResultText(text), nil
	}
}
