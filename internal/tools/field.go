package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/picots/internal/config"
	"github.com/HendryAvila/picots/internal/framework"
	"github.com/HendryAvila/picots/internal/pitfall"
	"github.com/HendryAvila/picots/internal/reference"
	"github.com/HendryAvila/picots/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// SetFieldTool handles the picots_set_field MCP tool.
// It edits one PICOTS field. After the first analysis every edit
// re-runs analysis, so the response reports the field's current finding.
type SetFieldTool struct {
	store session.Store
	mode  config.Mode
}

// NewSetFieldTool creates a SetFieldTool with its dependencies.
func NewSetFieldTool(store session.Store, mode config.Mode) *SetFieldTool {
	return &SetFieldTool{store: store, mode: mode}
}

// Definition returns the MCP tool definition for registration.
func (t *SetFieldTool) Definition() mcp.Tool {
	return mcp.NewTool("picots_set_field",
		mcp.WithDescription(
			"Set one field of the PICOTS worksheet (Population, Intervention, Comparison, "+
				"Outcomes, Timing, Setting). Pass the user's wording verbatim — do not "+
				"rewrite or embellish it. An empty value clears the field. "+
				"Once picots_analyze has run, findings are recomputed after every edit.",
		),
		mcp.WithString("field",
			mcp.Required(),
			mcp.Description("The PICOTS field to set"),
			mcp.Enum(framework.FieldValues()...),
		),
		mcp.WithString("value",
			mcp.Description("Free-text content for the field. Empty clears it."),
		),
	)
}

// Handle processes the picots_set_field tool call.
func (t *SetFieldTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	field, errResult := parseFieldArg(req)
	if errResult != nil {
		return errResult, nil
	}
	value := req.GetString("value", "")

	w := t.store.Update(func(w *session.Worksheet) {
		w.SetField(field, value)
		w.ActiveField = field
	})

	return mcp.NewToolResultText(fieldResponse(t.mode, w, field, "updated")), nil
}

// UseExampleTool handles the picots_use_example MCP tool.
// It copies the worked example into a field, like the form's
// "Use Example" button.
type UseExampleTool struct {
	store session.Store
	mode  config.Mode
}

// NewUseExampleTool creates a UseExampleTool with its dependencies.
func NewUseExampleTool(store session.Store, mode config.Mode) *UseExampleTool {
	return &UseExampleTool{store: store, mode: mode}
}

// Definition returns the MCP tool definition for registration.
func (t *UseExampleTool) Definition() mcp.Tool {
	return mcp.NewTool("picots_use_example",
		mcp.WithDescription(
			"Fill one PICOTS field with its worked example (a hypertension / mindfulness study). "+
				"Only use this when the user explicitly asks for the example.",
		),
		mcp.WithString("field",
			mcp.Required(),
			mcp.Description("The PICOTS field to fill"),
			mcp.Enum(framework.FieldValues()...),
		),
	)
}

// Handle processes the picots_use_example tool call.
func (t *UseExampleTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	field, errResult := parseFieldArg(req)
	if errResult != nil {
		return errResult, nil
	}

	w := t.store.Update(func(w *session.Worksheet) {
		w.SetField(field, reference.Example(field))
		w.ActiveField = field
	})

	return mcp.NewToolResultText(fieldResponse(t.mode, w, field, "filled with the example")), nil
}

// GuideTool handles the picots_guide MCP tool.
// It returns the tip and example for a field and makes it the active field.
type GuideTool struct {
	store session.Store
}

// NewGuideTool creates a GuideTool.
func NewGuideTool(store session.Store) *GuideTool {
	return &GuideTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *GuideTool) Definition() mcp.Tool {
	return mcp.NewTool("picots_guide",
		mcp.WithDescription(
			"Get guidance for one PICOTS field: a short tip and a worked example. "+
				"Call this before asking the user about a field so your question is concrete. "+
				"If 'field' is omitted, guidance is returned for the next empty field.",
		),
		mcp.WithString("field",
			mcp.Description("The PICOTS field to explain. Optional."),
			mcp.Enum(framework.FieldValues()...),
		),
	)
}

// Handle processes the picots_guide tool call.
func (t *GuideTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var field framework.Field
	if req.GetString("field", "") != "" {
		f, errResult := parseFieldArg(req)
		if errResult != nil {
			return errResult, nil
		}
		field = f
	} else {
		field = nextEmptyField(t.store.Load())
		if field == "" {
			return mcp.NewToolResultText(
				"All six PICOTS fields are filled. Run `picots_analyze` to check for pitfalls.",
			), nil
		}
	}

	w := t.store.Update(func(w *session.Worksheet) {
		w.ActiveField = field
	})

	var sb strings.Builder
	sb.WriteString(guideFor(field))
	if current := w.Framework.Get(field); current != "" {
		fmt.Fprintf(&sb, "**Current value:** %s\n", current)
	} else {
		sb.WriteString("**Current value:** _empty_\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func guideFor(f framework.Field) string {
	return fmt.Sprintf("# %s (%d/6)\n\n**Tip:** %s\n\n**Example:** %s\n\n",
		f.Title(), f.Index()+1, reference.Tooltip(f), reference.Example(f))
}

// fieldResponse builds the reply shared by the field-editing tools.
func fieldResponse(mode config.Mode, w session.Worksheet, field framework.Field, verb string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s %s\n\n", field.Title(), verb)

	value := w.Framework.Get(field)
	if value == "" {
		sb.WriteString("**Value:** _empty_\n\n")
	} else {
		fmt.Fprintf(&sb, "**Value:** %s\n\n", value)
	}
	fmt.Fprintf(&sb, "**Completion:** %d%%\n\n", w.Completion())

	if w.Analyzed {
		if f, ok := pitfall.ForField(w.Findings, field); ok {
			fmt.Fprintf(&sb, "**Still flagged (%s):** %s — %s\n\n", f.Severity, f.Issue, f.Recommendation)
		} else {
			sb.WriteString("**No pitfalls for this field.**\n\n")
		}
		if s := w.Strength(); s != nil {
			fmt.Fprintf(&sb, "**Framework Strength:** %d/100\n\n", *s)
		}
	}

	next := nextEmptyField(w)
	if next == "" {
		sb.WriteString("All fields have content. Run `picots_analyze` to check the framework.\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "**Next empty field:** %s\n", next.Title())
	return withGuidance(mode, sb.String(), next)
}
