package tools

import (
	"context"

	"github.com/HendryAvila/picots/internal/report"
	"github.com/HendryAvila/picots/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// EvaluateTool handles the picots_evaluate MCP tool.
// It unlocks and reports the evidence quality score. It does not run
// pitfall analysis.
type EvaluateTool struct {
	store session.Store
}

// NewEvaluateTool creates an EvaluateTool.
func NewEvaluateTool(store session.Store) *EvaluateTool {
	return &EvaluateTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *EvaluateTool) Definition() mcp.Tool {
	return mcp.NewTool("picots_evaluate",
		mcp.WithDescription(
			"Evaluate evidence quality from the four ratings set with picots_rate. "+
				"Returns a 0-100 score (25 points max per dimension), a quality band with a "+
				"recommendation, and the common threats to validity. Unrated dimensions score 0.",
		),
	)
}

// Handle processes the picots_evaluate tool call.
func (t *EvaluateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	w := t.store.Update(func(w *session.Worksheet) {
		w.Evaluate()
	})
	return mcp.NewToolResultText(report.Evaluation(report.Summarize(w))), nil
}
