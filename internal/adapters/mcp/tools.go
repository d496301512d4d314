package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"zotsync/internal/application/commands"
	"zotsync/internal/domain"
	"zotsync/internal/ports"
)

// RegisterTools adds the reconciliation tools to the MCP server.
func RegisterTools(s *server.MCPServer, source ports.GraphSource, library ports.Library, tag string) {
	s.AddTool(statusTool(), statusHandler(source, library, tag))
	s.AddTool(syncTool(), syncHandler(source, library, tag))
}

// --- status ---

func statusTool() mcp.Tool {
	return mcp.NewTool("status",
		mcp.WithDescription("Report which Zotero items referenced in the Logseq graph still lack the sync tag. Read-only: no tags are written."),
		mcp.WithString("graph",
			mcp.Description("Logseq graph name. Omit to auto-detect the first DB graph."),
		),
	)
}

func statusHandler(source ports.GraphSource, library ports.Library, tag string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSyncCommand(source, library, tag)
		cmd.Graph = req.GetString("graph", "")
		cmd.DryRun = true

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Graph: %s\n", result.Graph)
		fmt.Fprintf(&b, "Referenced in Logseq: %d\n", result.LocalCount)
		fmt.Fprintf(&b, "Already tagged %q: %d\n", tag, result.TaggedCount)
		fmt.Fprintf(&b, "Pending: %d\n", result.WorkSet.Len())
		for _, key := range result.WorkSet.Sorted() {
			fmt.Fprintf(&b, "  - %s\n", key)
		}
		return mcp.NewToolResultText(b.String()), nil
	}
}

// --- sync ---

func syncTool() mcp.Tool {
	return mcp.NewTool("sync",
		mcp.WithDescription("Tag every Zotero item referenced in the Logseq graph with the sync tag. Items already tagged are left untouched."),
		mcp.WithString("graph",
			mcp.Description("Logseq graph name. Omit to auto-detect the first DB graph."),
		),
	)
}

func syncHandler(source ports.GraphSource, library ports.Library, tag string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSyncCommand(source, library, tag)
		cmd.Graph = req.GetString("graph", "")

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Graph: %s\n", result.Graph)
		if result.NothingToDo() {
			fmt.Fprintf(&b, "All %d referenced items already tagged %q. No action needed.\n",
				result.LocalCount, tag)
			return mcp.NewToolResultText(b.String()), nil
		}

		fmt.Fprintf(&b, "Tagged %d of %d pending items %q (%d failed)\n",
			result.Report.Successful(), result.WorkSet.Len(), tag, result.Report.Failed())
		for _, res := range result.Report.Results {
			switch res.Status {
			case domain.StatusTagged:
				fmt.Fprintf(&b, "  tagged %s: %s\n", res.Key, res.Title)
			case domain.StatusAlreadyTagged:
				fmt.Fprintf(&b, "  already tagged %s\n", res.Key)
			case domain.StatusFailed:
				fmt.Fprintf(&b, "  failed %s: %s\n", res.Key, res.Err)
			}
		}
		if !result.OK() {
			return mcp.NewToolResultError(b.String()), nil
		}
		return mcp.NewToolResultText(b.String()), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
