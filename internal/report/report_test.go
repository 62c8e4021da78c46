package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/HendryAvila/picots/internal/framework"
	"github.com/HendryAvila/picots/internal/reference"
	"github.com/HendryAvila/picots/internal/scoring"
	"github.com/HendryAvila/picots/internal/session"
)

func analyzedWorksheet(state framework.State) session.Worksheet {
	w := session.NewWorksheet()
	w.Framework = state
	w.Analyze()
	return w
}

// --- Summarize ---

func TestSummarize_NotAnalyzed(t *testing.T) {
	sum := Summarize(session.NewWorksheet())

	if sum.Strength != nil || sum.EvidenceScore != nil {
		t.Error("scores should be nil before analysis")
	}
	if sum.StrengthBadge != "" || sum.EvidenceBand != nil {
		t.Error("badges should be empty before analysis")
	}
	if sum.Findings == nil {
		t.Error("Findings should be an empty slice, not nil")
	}
}

func TestSummarize_EmptyFrameworkAnalyzed(t *testing.T) {
	sum := Summarize(analyzedWorksheet(framework.State{}))

	if sum.Critical != 4 || sum.Moderate != 2 {
		t.Errorf("counts = %d critical / %d moderate, want 4/2", sum.Critical, sum.Moderate)
	}
	if sum.Strength == nil || *sum.Strength != 30 {
		t.Errorf("Strength = %v, want 30", sum.Strength)
	}
	if sum.StrengthBadge != scoring.BadgeLow {
		t.Errorf("StrengthBadge = %s, want low", sum.StrengthBadge)
	}
	if sum.EvidenceBand == nil || sum.EvidenceBand.Label != "Very Low Quality Evidence" {
		t.Errorf("EvidenceBand = %+v, want Very Low", sum.EvidenceBand)
	}
}

func TestSummarize_JSONShape(t *testing.T) {
	data, err := json.Marshal(Summarize(session.NewWorksheet()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, ok := m["strength"]; !ok || v != nil {
		t.Errorf("strength should be present and null, got %v", v)
	}
	if _, ok := m["strength_badge"]; ok {
		t.Error("strength_badge should be omitted before analysis")
	}
}

// --- Markdown ---

func TestBar(t *testing.T) {
	tests := []struct {
		pct    int
		filled int
	}{
		{0, 0},
		{50, 10},
		{100, 20},
		{150, 20},
		{-5, 0},
	}
	for _, tt := range tests {
		got := Bar(tt.pct)
		if n := strings.Count(got, "█"); n != tt.filled {
			t.Errorf("Bar(%d) filled = %d, want %d", tt.pct, n, tt.filled)
		}
	}
}

func TestAnalysis_NotRun(t *testing.T) {
	text := Analysis(Summarize(session.NewWorksheet()))
	if !strings.Contains(text, "has not been analyzed") {
		t.Errorf("expected not-analyzed hint, got: %s", text)
	}
}

func TestAnalysis_WithFindings(t *testing.T) {
	text := Analysis(Summarize(analyzedWorksheet(framework.State{Population: "adult"})))

	// 3 critical + 3 moderate = 100 - 45 - 15.
	for _, want := range []string{
		"40/100",
		"Vague population description",
		"No comparison group defined",
		"**Population:** adult",
		"**Setting:** Not defined",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("analysis should contain %q", want)
		}
	}
	if strings.Contains(text, "looks good") {
		t.Error("analysis with findings should not show the success message")
	}
}

func TestAnalysis_Clean(t *testing.T) {
	text := Analysis(Summarize(analyzedWorksheet(reference.ExampleState())))
	if !strings.Contains(text, "Your framework looks good!") {
		t.Error("clean analysis should show the success message")
	}
	if !strings.Contains(text, "100/100") {
		t.Error("clean analysis should score 100")
	}
}

func TestFrameworkSummary_WhitespaceIsShownRaw(t *testing.T) {
	text := FrameworkSummary(framework.State{Timing: "  "})
	if strings.Contains(text, "**Timing:** Not defined") {
		t.Error("whitespace-only value should not be reported as Not defined")
	}
}

func TestEvaluation(t *testing.T) {
	w := session.NewWorksheet()
	w.Rate(framework.DimInternalValidity, framework.RatingHigh)
	w.Rate(framework.DimExternalValidity, framework.RatingHigh)
	w.Rate(framework.DimBiasRisk, framework.RatingLow)
	w.Rate(framework.DimEvidenceGrading, framework.GradeA)
	w.Evaluate()

	text := Evaluation(Summarize(w))
	for _, want := range []string{
		"100/100",
		"High Quality Evidence",
		"Strong evidence",
		"Selection Bias",
		"Grade A - High quality evidence",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("evaluation should contain %q", want)
		}
	}
}

func TestEvaluation_NotRun(t *testing.T) {
	text := Evaluation(Summarize(session.NewWorksheet()))
	if !strings.Contains(text, "has not been evaluated") {
		t.Error("expected not-evaluated hint")
	}
	if strings.Contains(text, "Threats to Validity") {
		t.Error("threats should only be shown after evaluation")
	}
}

func TestGuides_CoverEverything(t *testing.T) {
	guide := Guide()
	for _, f := range framework.FieldOrder {
		if !strings.Contains(guide, reference.Example(f)) {
			t.Errorf("guide missing example for %s", f)
		}
	}
	ratings := RatingGuide()
	for _, d := range framework.DimensionOrder {
		if !strings.Contains(ratings, string(d)) {
			t.Errorf("rating guide missing %s", d)
		}
	}
}

func TestStatus(t *testing.T) {
	w := analyzedWorksheet(framework.State{Population: "adults with asthma", Outcomes: "fev1"})
	text := Status(Summarize(w))

	for _, want := range []string{
		"33%",
		"| Population | ● filled |",
		"Vague outcome description",
		"Evidence Quality:** 0/100",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("status should contain %q, got:\n%s", want, text)
		}
	}
}

// --- Terminal ---

func TestTerminal(t *testing.T) {
	var buf bytes.Buffer
	if err := Terminal(&buf, Summarize(analyzedWorksheet(framework.State{}))); err != nil {
		t.Fatalf("Terminal failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"30/100", "No population defined", NotDefined, "Very Low Quality Evidence"} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output should contain %q", want)
		}
	}
}
