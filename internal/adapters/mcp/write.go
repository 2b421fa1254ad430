package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tsreorg/internal/application"
	"tsreorg/internal/application/commands"
	"tsreorg/internal/ports"
)

// RegisterWriteTools adds the mutating reorganizer tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.SourceRepository, mover ports.Mover, journal ports.Journal) {
	s.AddTool(applyTool(), applyHandler(repo, mover, journal))
}

// --- apply ---

func applyTool() mcp.Tool {
	return mcp.NewTool("apply",
		mcp.WithDescription("Move source files and rewrite the relative imports in every affected file. Moves use git mv so history is preserved. A failed move aborts the run; prior moves stay applied."),
		mcp.WithString("moves",
			mcp.Description(`JSON object mapping origin to destination paths, relative to the source root (e.g. {"a.ts": "sub/a.ts"})`),
			mcp.Required(),
		),
	)
}

func applyHandler(repo ports.SourceRepository, mover ports.Mover, journal ports.Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw := req.GetString("moves", "")

		plan, err := application.ParsePlan(raw)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewApplyCommand(repo, mover, journal, plan)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, mv := range result.Moves {
			fmt.Fprintf(&sb, "git mv %s -> %s\n", mv.Origin, mv.Destination)
		}
		for _, u := range result.Updated {
			if !u.Moved {
				fmt.Fprintf(&sb, "updated imports in %s\n", u.Destination)
			}
		}
		sb.WriteString(result.Message)
		return mcp.NewToolResultText(sb.String()), nil
	}
}
