package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tsreorg/internal/application"
	"tsreorg/internal/application/commands"
	"tsreorg/internal/domain"
	"tsreorg/internal/ports"
)

// RegisterReadTools adds the read-only reorganizer tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.SourceRepository, journal ports.Journal) {
	s.AddTool(planTool(), planHandler(repo))
	s.AddTool(historyTool(), historyHandler(journal))
}

// --- plan ---

func planTool() mcp.Tool {
	return mcp.NewTool("plan",
		mcp.WithDescription("Preview a reorganization: which files would move and which imports would be rewritten. Touches no files."),
		mcp.WithString("moves",
			mcp.Description(`JSON object mapping origin to destination paths, relative to the source root (e.g. {"a.ts": "sub/a.ts"})`),
			mcp.Required(),
		),
	)
}

func planHandler(repo ports.SourceRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw := req.GetString("moves", "")

		plan, err := application.ParsePlan(raw)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewPlanCommand(repo, plan)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(formatPlan(result)), nil
	}
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("List recorded reorganization runs, newest first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of runs to return (default 10)"),
		),
	)
}

func historyHandler(journal ports.Journal) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := req.GetInt("limit", 10)

		runs, err := journal.ListRuns(limit)
		if err != nil {
			return toolError(err)
		}
		if len(runs) == 0 {
			return mcp.NewToolResultText("No runs recorded."), nil
		}

		var sb strings.Builder
		for _, run := range runs {
			sb.WriteString(formatRun(run))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatPlan(result *commands.PlanResult) string {
	if len(result.Updates) == 0 {
		return "Nothing to do."
	}

	var sb strings.Builder
	for _, u := range result.Updates {
		if u.Moved {
			fmt.Fprintf(&sb, "move %s -> %s\n", u.Origin, u.Destination)
		} else {
			fmt.Fprintf(&sb, "update imports in %s\n", u.Origin)
		}
	}
	sb.WriteString(result.Message)
	return sb.String()
}

func formatRun(run domain.RunRecord) string {
	return fmt.Sprintf("%s  %s  moved %d, updated %d",
		run.StartedAt.Format("2006-01-02 15:04"), run.Root, run.Moved, run.Updated)
}
