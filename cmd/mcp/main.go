// Command mcp serves the NLPearl API as MCP tools over stdio.
//
// Configuration is read from PEARL_* environment variables or a .env file
// in the working directory (see internal/config).
//
// Usage:
//
//	PEARL_API_KEY=... go run ./cmd/mcp
//
// Configuration for Claude Desktop (~/Library/Application Support/Claude/claude_desktop_config.json):
//
//	{
//	    "mcpServers": {
//	        "nlpearl": {
//	            "command": "go",
//	            "args": ["run", "./cmd/mcp"],
//	            "cwd": "/path/to/nlpearl",
//	            "env": {"PEARL_API_KEY": "...", "PEARL_API_VERSION": "v2"}
//	        }
//	    }
//	}
package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/spetersoncode/nlpearl/internal/config"
	"github.com/spetersoncode/nlpearl/mcp"
)

func main() {
	configFile := flag.String("config", "", "optional config file (yaml, json or toml)")
	readOnly := flag.Bool("read-only", false, "expose only tools that do not change remote state")
	flag.Parse()

	cfg, err := config.Load(*configFile, nil)
	if err != nil {
		log.Fatal(err)
	}

	// zap's production config writes to stderr, leaving stdout to the protocol.
	logger, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	opts := []mcp.ServerOption{
		mcp.WithName("nlpearl"),
		mcp.WithVersion("1.0.0"),
	}
	if *readOnly {
		opts = append(opts, mcp.WithReadOnly())
	}

	logger.Info("serving MCP over stdio",
		zap.String("api_version", cfg.APIVersion.String()),
		zap.Bool("read_only", *readOnly),
	)
	if err := mcp.ServeStdio(cfg.NewClient(logger), opts...); err != nil {
		logger.Fatal("MCP server stopped", zap.Error(err))
	}
}
