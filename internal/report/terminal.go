package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/HendryAvila/picots/internal/framework"
	"github.com/HendryAvila/picots/internal/pitfall"
	"github.com/HendryAvila/picots/internal/reference"
	"github.com/HendryAvila/picots/internal/scoring"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	moderateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	badgeStyles = map[scoring.Badge]lipgloss.Style{
		scoring.BadgeHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		scoring.BadgeMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		scoring.BadgeLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// Terminal writes a styled report for the CLI.
func Terminal(w io.Writer, sum Summary) error {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("PICOTS Framework Analysis") + "\n\n")
	fmt.Fprintf(&sb, "%s %d%% %s\n", labelStyle.Render("Completion:"), sum.Completion, Bar(sum.Completion))

	if sum.Strength != nil {
		fmt.Fprintf(&sb, "%s %s %s\n\n",
			labelStyle.Render("Framework Strength:"),
			styleScore(*sum.Strength, sum.StrengthBadge),
			Bar(*sum.Strength))
	}

	if len(sum.Findings) == 0 {
		sb.WriteString(badgeStyles[scoring.BadgeHigh].Render("✓ Your framework looks good!") + "\n")
		sb.WriteString(mutedStyle.Render("No significant methodological issues were identified.") + "\n\n")
	} else {
		sb.WriteString(labelStyle.Render("Identified Issues") + "\n")
		for _, f := range sum.Findings {
			sb.WriteString(findingCard(f) + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(labelStyle.Render("Framework Summary") + "\n")
	for _, f := range framework.FieldOrder {
		value := sum.Framework.Get(f)
		if value == "" {
			value = mutedStyle.Render(NotDefined)
		}
		fmt.Fprintf(&sb, "  %-13s %s\n", f.Title()+":", value)
	}
	sb.WriteString("\n")

	if sum.EvidenceScore != nil {
		sb.WriteString(labelStyle.Render("Evidence Quality") + "\n")
		for _, d := range framework.DimensionOrder {
			fmt.Fprintf(&sb, "  %-18s %s\n", d.Title()+":", reference.RatingLabel(d, sum.Quality.Get(d)))
		}
		fmt.Fprintf(&sb, "  %s  %s\n", styleScore(*sum.EvidenceScore, sum.EvidenceBadge), sum.EvidenceBand.Label)
		fmt.Fprintf(&sb, "  %s\n", mutedStyle.Render(sum.EvidenceBand.Recommendation))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func styleScore(score int, badge scoring.Badge) string {
	style, ok := badgeStyles[badge]
	if !ok {
		style = labelStyle
	}
	return style.Render(fmt.Sprintf("%d/100", score))
}

func findingCard(f pitfall.Finding) string {
	sev := moderateStyle.Render("⚠ " + string(f.Severity))
	if f.Severity == pitfall.SeverityCritical {
		sev = criticalStyle.Render("✖ " + string(f.Severity))
	}
	body := fmt.Sprintf("%s  %s\n%s\n%s %s",
		labelStyle.Render(f.Category), sev,
		f.Issue,
		mutedStyle.Render("Recommendation:"), f.Recommendation)
	return cardStyle.Render(body)
}
