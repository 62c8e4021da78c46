// Picots: PICOTS research question MCP server
//
// An MCP server that works with any AI assistant (Claude, OpenCode,
// Gemini CLI, Codex, Cursor, VS Code Copilot) to help researchers frame a
// question with PICOTS and appraise study quality.
//
// Usage:
//
//	picots serve                      # Start MCP server (stdio transport)
//	picots analyze -f worksheet.yaml  # Analyze a worksheet file
//	picots version
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
