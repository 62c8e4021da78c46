package report

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/picots/internal/framework"
	"github.com/HendryAvila/picots/internal/pitfall"
	"github.com/HendryAvila/picots/internal/reference"
)

// NotDefined is shown for empty fields in the framework summary.
const NotDefined = "Not defined"

// barWidth is the number of cells in a text progress bar.
const barWidth = 20

// Bar renders a percentage as a fixed-width text bar, e.g. "[██████░░░░]".
func Bar(pct int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * barWidth / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"
}

// Analysis renders the framework analysis results.
func Analysis(sum Summary) string {
	var sb strings.Builder
	sb.WriteString("# Framework Analysis Results\n\n")

	fmt.Fprintf(&sb, "**Completion:** %d%% %s\n\n", sum.Completion, Bar(sum.Completion))

	if sum.Strength == nil {
		sb.WriteString("_Framework has not been analyzed yet. Run `picots_analyze`._\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "**Framework Strength:** %d/100 %s (%s)\n\n",
		*sum.Strength, Bar(*sum.Strength), sum.StrengthBadge)

	if len(sum.Findings) > 0 {
		fmt.Fprintf(&sb, "## Identified Issues (%d critical, %d moderate)\n\n", sum.Critical, sum.Moderate)
		for _, f := range sum.Findings {
			sb.WriteString(Finding(f))
		}
	} else {
		sb.WriteString("## ✓ Your framework looks good!\n\n")
		sb.WriteString("No significant methodological issues were identified. Your PICOTS framework is well-defined.\n\n")
	}

	sb.WriteString(FrameworkSummary(sum.Framework))
	return sb.String()
}

// Finding renders a single pitfall card.
func Finding(f pitfall.Finding) string {
	icon := "⚠️"
	if f.Severity == pitfall.SeverityCritical {
		icon = "🚫"
	}
	return fmt.Sprintf("### %s — %s %s\n\n%s\n\n**Recommendation:** %s\n\n",
		f.Category, icon, f.Severity, f.Issue, f.Recommendation)
}

// FrameworkSummary renders every field, showing NotDefined for empty ones.
func FrameworkSummary(s framework.State) string {
	var sb strings.Builder
	sb.WriteString("## Framework Summary\n\n")
	for _, f := range framework.FieldOrder {
		value := s.Get(f)
		if value == "" {
			value = NotDefined
		}
		fmt.Fprintf(&sb, "- **%s:** %s\n", f.Title(), value)
	}
	sb.WriteString("\n")
	return sb.String()
}

// Evaluation renders the evidence quality results and threats to validity.
func Evaluation(sum Summary) string {
	var sb strings.Builder
	sb.WriteString("# Evidence Quality Evaluation\n\n")

	sb.WriteString("## Ratings\n\n")
	for _, d := range framework.DimensionOrder {
		fmt.Fprintf(&sb, "- **%s:** %s\n", d.Title(), reference.RatingLabel(d, sum.Quality.Get(d)))
	}
	sb.WriteString("\n")

	if sum.EvidenceScore == nil {
		sb.WriteString("_Evidence quality has not been evaluated yet. Run `picots_evaluate`._\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "## Evidence Quality Score: %d/100 (%s)\n\n", *sum.EvidenceScore, sum.EvidenceBadge)
	fmt.Fprintf(&sb, "**%s**\n\n", sum.EvidenceBand.Label)
	sb.WriteString("### Recommendations Based on Evidence Quality\n\n")
	fmt.Fprintf(&sb, "- %s\n\n", sum.EvidenceBand.Recommendation)

	sb.WriteString(Threats())
	return sb.String()
}

// Threats renders the common threats to validity.
func Threats() string {
	var sb strings.Builder
	sb.WriteString("## Common Threats to Validity\n\n")
	for _, t := range reference.Threats() {
		fmt.Fprintf(&sb, "- **%s:** %s\n", t.Title(), t.Description)
	}
	sb.WriteString("\n")
	return sb.String()
}

// FieldGuide renders the tip and worked example for one field.
func FieldGuide(f framework.Field) string {
	return fmt.Sprintf("### %s\n\n**Tip:** %s\n\n**Example:** %s\n\n",
		f.Title(), reference.Tooltip(f), reference.Example(f))
}

// Guide renders the tips and examples for every field.
func Guide() string {
	var sb strings.Builder
	sb.WriteString("# PICOTS Field Guide\n\n")
	for _, f := range framework.FieldOrder {
		sb.WriteString(FieldGuide(f))
	}
	return sb.String()
}

// RatingGuide renders the rating options for every quality dimension.
func RatingGuide() string {
	var sb strings.Builder
	sb.WriteString("# Quality Rating Guide\n\n")
	for _, d := range framework.DimensionOrder {
		fmt.Fprintf(&sb, "## %s (`%s`)\n\n_%s_\n\n", d.Title(), d, reference.DimensionHelp(d))
		for _, o := range reference.RatingOptions(d) {
			fmt.Fprintf(&sb, "- `%s` — %s\n", o.Value, o.Label)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Status renders a compact overview of the whole worksheet.
func Status(sum Summary) string {
	var sb strings.Builder
	sb.WriteString("# PICOTS Worksheet Status\n\n")
	fmt.Fprintf(&sb, "**Completion:** %d%% %s\n\n", sum.Completion, Bar(sum.Completion))

	sb.WriteString("| Field | Status |\n|---|---|\n")
	for _, f := range framework.FieldOrder {
		status := "○ empty"
		if sum.Framework.Filled(f) {
			status = "● filled"
		}
		if finding, ok := pitfall.ForField(sum.Findings, f); ok {
			status += fmt.Sprintf(" — %s: %s", finding.Severity, finding.Issue)
		}
		fmt.Fprintf(&sb, "| %s | %s |\n", f.Title(), status)
	}
	sb.WriteString("\n")

	if sum.Strength != nil {
		fmt.Fprintf(&sb, "**Framework Strength:** %d/100 (%s)\n\n", *sum.Strength, sum.StrengthBadge)
	} else {
		sb.WriteString("**Framework Strength:** not analyzed\n\n")
	}

	if sum.EvidenceScore != nil {
		fmt.Fprintf(&sb, "**Evidence Quality:** %d/100 — %s\n", *sum.EvidenceScore, sum.EvidenceBand.Label)
	} else {
		sb.WriteString("**Evidence Quality:** not evaluated\n")
	}
	return sb.String()
}
