// Package prompts implements MCP prompt handlers for the PICOTS worksheet.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// StartPrompt handles the picots-start MCP prompt.
// It guides the AI through framing a research question field by field.
type StartPrompt struct{}

// NewStartPrompt creates a StartPrompt.
func NewStartPrompt() *StartPrompt {
	return &StartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("picots-start",
		mcp.WithPromptDescription(
			"Frame a research question with PICOTS. "+
				"Walks through Population, Intervention, Comparison, Outcomes, Timing and Setting, "+
				"then checks the framework for methodological pitfalls.",
		),
		mcp.WithArgument("topic",
			mcp.ArgumentDescription("Short description of the research topic, e.g. 'exercise for hypertension'"),
		),
	)
}

// Handle processes the picots-start prompt request.
func (p *StartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic := ""
	if args := req.Params.Arguments; args != nil {
		topic = args["topic"]
	}

	opening := "Ask me what I want to research."
	description := "Frame a PICOTS research question"
	if topic != "" {
		opening = fmt.Sprintf("My research topic is: %s.", topic)
		description = fmt.Sprintf("Frame a PICOTS research question: %s", topic)
	}

	return &mcp.GetPromptResult{
		Description: description,
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to frame a research question using the PICOTS framework. %s\n\n"+
						"Please:\n"+
						"1. Run `picots_status` to see what is already filled in\n"+
						"2. For each empty field, call `picots_guide` and ask me about that field using the tip\n"+
						"3. Save my answer with `picots_set_field` using my own words\n"+
						"4. When all six fields have content, run `picots_analyze`\n"+
						"5. Walk me through each issue found, starting with Critical ones, until the strength score is as high as I want it\n\n"+
						"Only use `picots_use_example` if I ask for the example.",
					opening,
				)),
			},
		},
	}, nil
}
