// Package tools implements MCP tool handlers for the PICOTS worksheet.
//
// Each tool is a struct holding its dependencies (DIP) with a Definition
// for registration and a Handle compatible with mcp-go's CallToolRequest
// signature.
//
// Design principles:
// - SRP: each file = one tool (or a tight group over the same concern)
// - DIP: tools depend on session.Store, not on a concrete store
// - The scoring engine stays pure; tools only load, mutate, and render
package tools

import (
	"github.com/HendryAvila/picots/internal/config"
	"github.com/HendryAvila/picots/internal/framework"
	"github.com/HendryAvila/picots/internal/report"
	"github.com/HendryAvila/picots/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// parseFieldArg reads and validates the "field" argument.
// A nil result means the field was valid.
func parseFieldArg(req mcp.CallToolRequest) (framework.Field, *mcp.CallToolResult) {
	raw := req.GetString("field", "")
	if raw == "" {
		return "", mcp.NewToolResultError("'field' is required")
	}
	f, err := framework.ParseField(raw)
	if err != nil {
		return "", mcp.NewToolResultError(err.Error())
	}
	return f, nil
}

// withGuidance appends the field tip and example in guided mode.
func withGuidance(mode config.Mode, text string, f framework.Field) string {
	if mode != config.ModeGuided {
		return text
	}
	return text + "\n---\n\n" + report.FieldGuide(f)
}

// nextEmptyField returns the first blank field after the active one,
// wrapping around. Returns "" when every field is filled.
func nextEmptyField(w session.Worksheet) framework.Field {
	start := w.ActiveField.Index()
	n := len(framework.FieldOrder)
	for i := 1; i <= n; i++ {
		f := framework.FieldOrder[(start+i+n)%n]
		if !w.Framework.Filled(f) {
			return f
		}
	}
	return ""
}
