// Package server wires the PICOTS worksheet into an MCP server.
//
// It builds the session store and hands it to every tool and resource.
// Scoring and rendering live in their own packages; this one only registers.
package server

import (
	"context"
	"time"

	"github.com/HendryAvila/picots/internal/config"
	"github.com/HendryAvila/picots/internal/prompts"
	"github.com/HendryAvila/picots/internal/resources"
	"github.com/HendryAvila/picots/internal/session"
	"github.com/HendryAvila/picots/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. The worksheet lives in memory for the
// lifetime of the returned server. logger must not write to stdout,
// which belongs to the stdio transport.
func New(mode config.Mode, logger *zap.Logger) *server.MCPServer {
	return NewWithStore(mode, session.NewMemoryStore(), logger)
}

// NewWithStore is New with an injected worksheet store.
func NewWithStore(mode config.Mode, store session.Store, logger *zap.Logger) *server.MCPServer {
	logger.Info("starting picots", zap.String("version", Version), zap.String("mode", string(mode)))

	s := server.NewMCPServer(
		"picots",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithToolHandlerMiddleware(logToolCalls(logger)),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register worksheet tools ---

	setField := tools.NewSetFieldTool(store, mode)
	s.AddTool(setField.Definition(), setField.Handle)

	useExample := tools.NewUseExampleTool(store, mode)
	s.AddTool(useExample.Definition(), useExample.Handle)

	guide := tools.NewGuideTool(store)
	s.AddTool(guide.Definition(), guide.Handle)

	analyze := tools.NewAnalyzeTool(store, mode)
	s.AddTool(analyze.Definition(), analyze.Handle)

	// --- Register quality appraisal tools ---

	rate := tools.NewRateTool(store)
	s.AddTool(rate.Definition(), rate.Handle)

	evaluate := tools.NewEvaluateTool(store)
	s.AddTool(evaluate.Definition(), evaluate.Handle)

	// --- Register worksheet management tools ---

	status := tools.NewStatusTool(store)
	s.AddTool(status.Definition(), status.Handle)

	reset := tools.NewResetTool(store)
	s.AddTool(reset.Definition(), reset.Handle)

	// --- Register prompts ---

	startPrompt := prompts.NewStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	appraisePrompt := prompts.NewAppraisePrompt()
	s.AddPrompt(appraisePrompt.Definition(), appraisePrompt.Handle)

	// --- Register resources ---

	rh := resources.NewHandler(store)
	s.AddResource(rh.StatusResource(), rh.HandleStatus)
	s.AddResource(rh.GuideResource(), rh.HandleGuide)
	s.AddResource(rh.RatingsResource(), rh.HandleRatings)
	s.AddResource(rh.ThreatsResource(), rh.HandleThreats)

	return s
}

// logToolCalls logs every tool call with its outcome and duration.
func logToolCalls(logger *zap.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, req)

			fields := []zap.Field{
				zap.String("tool", req.Params.Name),
				zap.Duration("elapsed", time.Since(start)),
			}
			switch {
			case err != nil:
				logger.Error("tool call failed", append(fields, zap.Error(err))...)
			case result != nil && result.IsError:
				logger.Info("tool call rejected", fields...)
			default:
				logger.Debug("tool call", fields...)
			}
			return result, err
		}
	}
}

// serverInstructions returns the system instructions that tell the AI
// how to use the PICOTS worksheet effectively.
func serverInstructions() string {
	return `You have access to a PICOTS research question worksheet.

## WHEN TO USE IT

Suggest the worksheet when the user:
- Wants to formulate a clinical or research question
- Is planning a study, systematic review, or evidence search
- Asks to appraise a study's methodological quality

## FRAMING THE QUESTION (PICOTS)

The worksheet has six fields: Population, Intervention, Comparison,
Outcomes, Timing, Setting.

1. Use picots_guide to get the tip and example for a field before asking about it
2. Save the user's answer verbatim with picots_set_field — never invent content
3. When the fields are filled, run picots_analyze
4. Each finding is Critical (missing core field) or Moderate (too vague, or
   missing timing/setting). The strength score starts at 100 and loses 15 per
   Critical and 5 per Moderate finding
5. After the first analysis, every picots_set_field call re-runs analysis and
   reports whether the edited field is still flagged

The checks only look at presence and word counts. A field can pass and still
be poorly worded — use your judgement when helping the user refine it.

## APPRAISING EVIDENCE QUALITY

Rate four dimensions with picots_rate, then call picots_evaluate:
- internal_validity, external_validity: high | moderate | low | not_assessed
- bias_risk: low | moderate | high | not_assessed (low risk is best)
- evidence_grading: a | b | c | d | not_assessed

Each dimension is worth up to 25 points. Bands: 75+ High, 50-74 Moderate,
25-49 Low, below 25 Very Low quality evidence.

## STATE

There is one worksheet, held in memory for this session only. Use
picots_status to see it and picots_reset (after asking the user) to start over.`
}
