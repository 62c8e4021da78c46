package tools

import (
	"context"

	"github.com/HendryAvila/picots/internal/report"
	"github.com/HendryAvila/picots/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// StatusTool handles the picots_status MCP tool.
// Read-only: it never triggers analysis or evaluation.
type StatusTool struct {
	store session.Store
}

// NewStatusTool creates a StatusTool.
func NewStatusTool(store session.Store) *StatusTool {
	return &StatusTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *StatusTool) Definition() mcp.Tool {
	return mcp.NewTool("picots_status",
		mcp.WithDescription(
			"Show the current PICOTS worksheet: completion percentage, which fields are filled, "+
				"current findings, and both scores if they have been computed. Read-only.",
		),
	)
}

// Handle processes the picots_status tool call.
func (t *StatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(report.Status(report.Summarize(t.store.Load()))), nil
}

// ResetTool handles the picots_reset MCP tool.
type ResetTool struct {
	store session.Store
}

// NewResetTool creates a ResetTool.
func NewResetTool(store session.Store) *ResetTool {
	return &ResetTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ResetTool) Definition() mcp.Tool {
	return mcp.NewTool("picots_reset",
		mcp.WithDescription(
			"Clear the worksheet: empties all six fields, resets every rating to not_assessed, "+
				"and forgets previous analysis. Requires confirm=true. Ask the user first.",
		),
		mcp.WithBoolean("confirm",
			mcp.Required(),
			mcp.Description("Must be true to reset"),
		),
	)
}

// Handle processes the picots_reset tool call.
func (t *ResetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !req.GetBool("confirm", false) {
		return mcp.NewToolResultError("reset not confirmed — pass confirm=true to clear the worksheet"), nil
	}
	t.store.Reset()
	return mcp.NewToolResultText("# Worksheet reset\n\nAll fields are empty and all ratings are not assessed."), nil
}
