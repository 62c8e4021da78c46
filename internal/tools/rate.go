package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/picots/internal/framework"
	"github.com/HendryAvila/picots/internal/reference"
	"github.com/HendryAvila/picots/internal/scoring"
	"github.com/HendryAvila/picots/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// RateTool handles the picots_rate MCP tool.
// It records one study quality rating.
type RateTool struct {
	store session.Store
}

// NewRateTool creates a RateTool.
func NewRateTool(store session.Store) *RateTool {
	return &RateTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *RateTool) Definition() mcp.Tool {
	return mcp.NewTool("picots_rate",
		mcp.WithDescription(
			"Record one study quality rating. Dimensions: internal_validity, external_validity "+
				"(high|moderate|low|not_assessed), bias_risk (low|moderate|high|not_assessed — low risk "+
				"is best), evidence_grading (a|b|c|d|not_assessed). "+
				"Use picots_evaluate afterwards to get the evidence quality score.",
		),
		mcp.WithString("dimension",
			mcp.Required(),
			mcp.Description("The quality dimension to rate"),
			mcp.Enum(framework.DimensionValues()...),
		),
		mcp.WithString("rating",
			mcp.Required(),
			mcp.Description("The rating value. Allowed values depend on the dimension."),
		),
	)
}

// Handle processes the picots_rate tool call.
func (t *RateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawDim := req.GetString("dimension", "")
	rating := strings.ToLower(strings.TrimSpace(req.GetString("rating", "")))

	if rawDim == "" {
		return mcp.NewToolResultError("'dimension' is required"), nil
	}
	if rating == "" {
		return mcp.NewToolResultError("'rating' is required"), nil
	}

	dim, err := framework.ParseDimension(rawDim)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := framework.ValidateRating(dim, rating); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	w := t.store.Update(func(w *session.Worksheet) {
		w.Rate(dim, rating)
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s rated\n\n", dim.Title())
	fmt.Fprintf(&sb, "**Rating:** %s (%d points)\n\n",
		reference.RatingLabel(dim, rating), scoring.Points(dim, rating))

	var pending []string
	for _, d := range framework.DimensionOrder {
		if w.Quality.Get(d) == framework.RatingNotAssessed {
			pending = append(pending, d.Title())
		}
	}
	if len(pending) > 0 {
		fmt.Fprintf(&sb, "**Not yet assessed:** %s\n", strings.Join(pending, ", "))
	} else {
		sb.WriteString("All four dimensions are rated. Run `picots_evaluate` for the evidence quality score.\n")
	}

	if s := w.EvidenceScore(); s != nil {
		fmt.Fprintf(&sb, "\n**Evidence Quality Score:** %d/100 — %s\n", *s, scoring.EvidenceBand(*s).Label)
	}

	return mcp.NewToolResultText(sb.String()), nil
}
