package tools

import (
	"context"
	"strings"

	"github.com/HendryAvila/picots/internal/config"
	"github.com/HendryAvila/picots/internal/report"
	"github.com/HendryAvila/picots/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// AnalyzeTool handles the picots_analyze MCP tool.
// It runs pitfall analysis over the whole worksheet and returns the
// strength score, findings, and framework summary.
type AnalyzeTool struct {
	store session.Store
	mode  config.Mode
}

// NewAnalyzeTool creates an AnalyzeTool with its dependencies.
func NewAnalyzeTool(store session.Store, mode config.Mode) *AnalyzeTool {
	return &AnalyzeTool{store: store, mode: mode}
}

// Definition returns the MCP tool definition for registration.
func (t *AnalyzeTool) Definition() mcp.Tool {
	return mcp.NewTool("picots_analyze",
		mcp.WithDescription(
			"Analyze the PICOTS worksheet for methodological pitfalls. "+
				"Missing fields and overly short descriptions are flagged as Critical or Moderate, "+
				"and a 0-100 framework strength score is computed (each Critical costs 15, each Moderate 5). "+
				"After the first analysis, every field edit re-runs it automatically.",
		),
	)
}

// Handle processes the picots_analyze tool call.
func (t *AnalyzeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	w := t.store.Update(func(w *session.Worksheet) {
		w.Analyze()
	})

	sum := report.Summarize(w)

	var sb strings.Builder
	sb.WriteString(report.Analysis(sum))

	if len(sum.Findings) > 0 {
		sb.WriteString("## Next Step\n\n")
		sb.WriteString("Work through the issues in order. For each one, ask the user to refine the field ")
		sb.WriteString("and call `picots_set_field`; findings update after every edit.\n")
		if t.mode == config.ModeGuided {
			sb.WriteString("\n---\n\n")
			sb.WriteString(report.FieldGuide(sum.Findings[0].Field()))
		}
	} else {
		sb.WriteString("## Next Step\n\n")
		sb.WriteString("The research question is well framed. Rate study quality with `picots_rate`, ")
		sb.WriteString("then call `picots_evaluate`.\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}
