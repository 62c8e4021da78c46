// Package report renders worksheet results for humans and machines.
//
// Summary is the JSON view used by the status resource and the CLI's
// --json flag. The markdown renderers feed MCP tool responses, and the
// terminal renderer styles the CLI report.
package report

import (
	"github.com/HendryAvila/picots/internal/framework"
	"github.com/HendryAvila/picots/internal/pitfall"
	"github.com/HendryAvila/picots/internal/scoring"
	"github.com/HendryAvila/picots/internal/session"
)

// Summary is a point-in-time snapshot of a worksheet and its scores.
type Summary struct {
	Framework  framework.State             `json:"framework"`
	Quality    framework.QualityAssessment `json:"quality"`
	Completion int                         `json:"completion"`

	Analyzed      bool              `json:"analyzed"`
	Findings      []pitfall.Finding `json:"findings"`
	Critical      int               `json:"critical"`
	Moderate      int               `json:"moderate"`
	Strength      *int              `json:"strength"`
	StrengthBadge scoring.Badge     `json:"strength_badge,omitempty"`

	Evaluated     bool          `json:"evaluated"`
	EvidenceScore *int          `json:"evidence_score"`
	EvidenceBadge scoring.Badge `json:"evidence_badge,omitempty"`
	EvidenceBand  *scoring.Band `json:"evidence_band,omitempty"`
}

// Summarize computes every score for a worksheet.
func Summarize(w session.Worksheet) Summary {
	findings := w.Findings
	if findings == nil {
		findings = []pitfall.Finding{}
	}

	sum := Summary{
		Framework:     w.Framework,
		Quality:       w.Quality,
		Completion:    w.Completion(),
		Analyzed:      w.Analyzed,
		Findings:      findings,
		Critical:      pitfall.Count(findings, pitfall.SeverityCritical),
		Moderate:      pitfall.Count(findings, pitfall.SeverityModerate),
		Strength:      w.Strength(),
		Evaluated:     w.Evaluated,
		EvidenceScore: w.EvidenceScore(),
	}

	if sum.Strength != nil {
		sum.StrengthBadge = scoring.StrengthBadge(*sum.Strength)
	}
	if sum.EvidenceScore != nil {
		sum.EvidenceBadge = scoring.EvidenceBadge(*sum.EvidenceScore)
		band := scoring.EvidenceBand(*sum.EvidenceScore)
		sum.EvidenceBand = &band
	}
	return sum
}
