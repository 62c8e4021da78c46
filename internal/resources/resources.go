// Package resources implements MCP resource handlers for the PICOTS worksheet.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (picots://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/HendryAvila/picots/internal/report"
	"github.com/HendryAvila/picots/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// Resource URIs.
const (
	StatusURI  = "picots://worksheet/status"
	GuideURI   = "picots://reference/guide"
	RatingsURI = "picots://reference/ratings"
	ThreatsURI = "picots://reference/threats"
)

// Handler manages PICOTS resource endpoints.
type Handler struct {
	store session.Store
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(store session.Store) *Handler {
	return &Handler{store: store}
}

// StatusResource returns the MCP resource definition for worksheet status.
func (h *Handler) StatusResource() mcp.Resource {
	return mcp.NewResource(
		StatusURI,
		"PICOTS Worksheet Status",
		mcp.WithResourceDescription("Current worksheet fields, ratings, findings, completion and scores"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleStatus returns the current worksheet summary as JSON.
func (h *Handler) HandleStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(report.Summarize(h.store.Load()), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling status: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// GuideResource returns the MCP resource definition for the field guide.
func (h *Handler) GuideResource() mcp.Resource {
	return mcp.NewResource(
		GuideURI,
		"PICOTS Field Guide",
		mcp.WithResourceDescription("Tips and worked examples for each PICOTS field"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// HandleGuide returns the field guide as markdown.
func (h *Handler) HandleGuide(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return markdownResource(req.Params.URI, report.Guide()), nil
}

// RatingsResource returns the MCP resource definition for the rating guide.
func (h *Handler) RatingsResource() mcp.Resource {
	return mcp.NewResource(
		RatingsURI,
		"Quality Rating Guide",
		mcp.WithResourceDescription("Allowed ratings and their meaning for each study quality dimension"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// HandleRatings returns the rating guide as markdown.
func (h *Handler) HandleRatings(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return markdownResource(req.Params.URI, report.RatingGuide()), nil
}

// ThreatsResource returns the MCP resource definition for threats to validity.
func (h *Handler) ThreatsResource() mcp.Resource {
	return mcp.NewResource(
		ThreatsURI,
		"Threats to Validity",
		mcp.WithResourceDescription("Common sources of bias to consider when appraising a study"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// HandleThreats returns the threats to validity as markdown.
func (h *Handler) HandleThreats(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return markdownResource(req.Params.URI, report.Threats()), nil
}

func markdownResource(uri, text string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     text,
		},
	}
}
