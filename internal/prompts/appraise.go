package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// AppraisePrompt handles the picots-appraise MCP prompt.
// It instructs the AI to rate study quality and report the evidence score.
type AppraisePrompt struct{}

// NewAppraisePrompt creates an AppraisePrompt.
func NewAppraisePrompt() *AppraisePrompt {
	return &AppraisePrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *AppraisePrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("picots-appraise",
		mcp.WithPromptDescription(
			"Appraise the quality of a study: internal validity, external validity, "+
				"risk of bias and evidence grade, scored 0-100.",
		),
	)
}

// Handle processes the picots-appraise prompt request.
func (p *AppraisePrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Appraise study quality",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"I want to appraise the quality of a study.\n\n" +
						"Please:\n" +
						"1. Read the `picots://reference/ratings` resource so you know the options\n" +
						"2. Ask me about each of the four dimensions in turn, showing me the options\n" +
						"3. Record each answer with `picots_rate`\n" +
						"4. Run `picots_evaluate` and explain the score, the quality band and the recommendation\n" +
						"5. Point out which threats to validity are most relevant to what I told you",
				),
			},
		},
	}, nil
}
