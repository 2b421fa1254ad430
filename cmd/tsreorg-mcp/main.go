package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tsreorg/internal/adapters/filesystem"
	"tsreorg/internal/adapters/git"
	mcpadapter "tsreorg/internal/adapters/mcp"
	"tsreorg/internal/adapters/sqlite"
	"tsreorg/internal/config"
)

func main() {
	rootFlag := flag.String("root", config.SourceRoot(), "path to the source root")
	flag.Parse()

	repo := filesystem.NewRepository(*rootFlag)

	mover, err := git.NewMover(*rootFlag)
	if err != nil {
		log.Fatalf("tsreorg-mcp: %v", err)
	}

	journal := sqlite.NewJournal()
	if err := journal.Open(*rootFlag); err != nil {
		log.Fatalf("tsreorg-mcp: %v", err)
	}
	defer journal.Close()

	mcpServer := server.NewMCPServer(
		"tsreorg-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo, journal)
	mcpadapter.RegisterWriteTools(mcpServer, repo, mover, journal)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("tsreorg-mcp: %v", err)
	}
}
