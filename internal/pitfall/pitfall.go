// Package pitfall flags methodological gaps in a PICOTS worksheet.
//
// Each field has exactly one static rule. Rules look only at presence and
// word count; they never interpret the text. Analyze always returns a fresh
// slice ordered by framework.FieldOrder.
package pitfall

import (
	"strings"

	"github.com/HendryAvila/picots/internal/framework"
)

// Severity grades a finding.
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityModerate Severity = "Moderate"
)

// Finding is one flagged gap in a single PICOTS field.
type Finding struct {
	Category       string   `json:"category"`
	Issue          string   `json:"issue"`
	Severity       Severity `json:"severity"`
	Recommendation string   `json:"recommendation"`
}

// Field returns the PICOTS field the finding belongs to.
func (f Finding) Field() framework.Field {
	return framework.Field(strings.ToLower(f.Category))
}

// issue is the text pair attached to a finding.
type issue struct {
	text           string
	severity       Severity
	recommendation string
}

// rule is the per-field check. missing fires when the field is the empty
// string; vague fires when the field is present but has fewer than
// minWords tokens. A zero minWords disables the word-count check.
type rule struct {
	missing  issue
	vague    issue
	minWords int
}

var rules = map[framework.Field]rule{
	framework.FieldPopulation: {
		missing: issue{"No population defined", SeverityCritical,
			"Clearly specify inclusion and exclusion criteria"},
		vague: issue{"Vague population description", SeverityModerate,
			"Provide more detailed demographic and clinical characteristics"},
		minWords: 3,
	},
	framework.FieldIntervention: {
		missing: issue{"No intervention specified", SeverityCritical,
			"Clearly define the specific intervention or exposure"},
		vague: issue{"Insufficient intervention details", SeverityModerate,
			"Provide more specific details about the intervention protocol"},
		minWords: 2,
	},
	framework.FieldComparison: {
		missing: issue{"No comparison group defined", SeverityCritical,
			"Specify the control or alternative intervention group"},
	},
	framework.FieldOutcomes: {
		missing: issue{"No outcomes specified", SeverityCritical,
			"Clearly define primary and secondary outcome measures"},
		vague: issue{"Vague outcome description", SeverityModerate,
			"Provide measurable and specific outcome criteria"},
		minWords: 2,
	},
	framework.FieldTiming: {
		missing: issue{"No study duration specified", SeverityModerate,
			"Define the specific timeframe for data collection and follow-up"},
	},
	framework.FieldSetting: {
		missing: issue{"No research setting described", SeverityModerate,
			"Specify the context and location of the research"},
	},
}

// Analyze runs every field rule against state, in field order.
//
// Presence is "non-empty string": a whitespace-only value counts as present
// and falls through to the word-count check where the field has one.
func Analyze(state framework.State) []Finding {
	findings := make([]Finding, 0, len(framework.FieldOrder))
	for _, field := range framework.FieldOrder {
		r := rules[field]
		value := state.Get(field)

		switch {
		case value == "":
			findings = append(findings, r.missing.finding(field))
		case r.minWords > 0 && WordCount(value) < r.minWords:
			findings = append(findings, r.vague.finding(field))
		}
	}
	return findings
}

func (i issue) finding(field framework.Field) Finding {
	return Finding{
		Category:       field.Title(),
		Issue:          i.text,
		Severity:       i.severity,
		Recommendation: i.recommendation,
	}
}

// WordCount lower-cases text, splits it on runs of whitespace and counts
// the non-empty tokens.
func WordCount(text string) int {
	return len(strings.Fields(strings.ToLower(text)))
}

// Count returns the number of findings with the given severity.
func Count(findings []Finding, sev Severity) int {
	n := 0
	for _, f := range findings {
		if f.Severity == sev {
			n++
		}
	}
	return n
}

// ForField returns the finding for a field, if any.
func ForField(findings []Finding, field framework.Field) (Finding, bool) {
	for _, f := range findings {
		if f.Field() == field {
			return f, true
		}
	}
	return Finding{}, false
}
