// Package session keeps the single in-memory worksheet the MCP tools edit.
//
// It plays the role of the form's local state: six PICOTS fields, four
// quality ratings, the latest findings, and the caller-owned "has run"
// flags that gate scoring. Nothing is written to disk.
package session

import (
	"github.com/HendryAvila/picots/internal/framework"
	"github.com/HendryAvila/picots/internal/pitfall"
	"github.com/HendryAvila/picots/internal/scoring"
)

// Worksheet is the user's working copy.
type Worksheet struct {
	Framework   framework.State             `json:"framework"`
	Quality     framework.QualityAssessment `json:"quality"`
	Findings    []pitfall.Finding           `json:"findings"`
	ActiveField framework.Field             `json:"active_field"`

	// Analyzed is set by the first analysis and never cleared until reset.
	// Once set, every field edit re-runs analysis.
	Analyzed bool `json:"analyzed"`
	// Evaluated gates the evidence quality score.
	Evaluated bool `json:"evaluated"`
}

// NewWorksheet returns an empty worksheet with every rating not assessed.
func NewWorksheet() Worksheet {
	return Worksheet{
		Quality:     framework.NewQualityAssessment(),
		Findings:    []pitfall.Finding{},
		ActiveField: framework.FieldPopulation,
	}
}

// SetField stores one PICOTS value. If analysis has already run, the
// finding list is recomputed from scratch.
func (w *Worksheet) SetField(f framework.Field, value string) {
	w.Framework.Set(f, value)
	if w.Analyzed {
		w.Findings = pitfall.Analyze(w.Framework)
	}
}

// Rate stores one quality rating. Ratings never trigger re-analysis.
func (w *Worksheet) Rate(d framework.Dimension, rating string) {
	w.Quality.Set(d, rating)
}

// Analyze runs pitfall analysis over the current fields.
//
// Analysis also unlocks the evidence score: the form used one submit flag
// for both tabs.
func (w *Worksheet) Analyze() []pitfall.Finding {
	w.Analyzed = true
	w.Evaluated = true
	w.Findings = pitfall.Analyze(w.Framework)
	return w.Findings
}

// Evaluate unlocks the evidence quality score without running analysis.
func (w *Worksheet) Evaluate() {
	w.Evaluated = true
}

// Completion returns the share of non-blank fields, 0..100.
func (w Worksheet) Completion() int {
	return framework.Completion(w.Framework)
}

// Strength returns the framework strength score, or nil before analysis.
func (w Worksheet) Strength() *int {
	return scoring.Strength(w.Findings, w.Analyzed)
}

// EvidenceScore returns the evidence quality score, or nil before evaluation.
func (w Worksheet) EvidenceScore() *int {
	return scoring.EvidenceScore(w.Quality, w.Evaluated)
}

// clone returns a deep copy so callers never share the findings slice.
func (w Worksheet) clone() Worksheet {
	out := w
	out.Findings = make([]pitfall.Finding, len(w.Findings))
	copy(out.Findings, w.Findings)
	return out
}
