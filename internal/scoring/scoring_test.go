package scoring

import (
	"testing"

	"github.com/HendryAvila/picots/internal/framework"
	"github.com/HendryAvila/picots/internal/pitfall"
)

// --- Strength ---

func TestStrength_NotRun_ReturnsNil(t *testing.T) {
	if got := Strength(nil, false); got != nil {
		t.Errorf("Strength(nil, false) = %d, want nil", *got)
	}
}

func TestStrength_RunWithNoFindings_Returns100(t *testing.T) {
	got := Strength(nil, true)
	if got == nil || *got != 100 {
		t.Errorf("Strength(nil, true) = %v, want 100", got)
	}
}

func TestStrength_FindingsWithoutRunFlag_StillScored(t *testing.T) {
	findings := []pitfall.Finding{{Severity: pitfall.SeverityModerate}}
	got := Strength(findings, false)
	if got == nil || *got != 95 {
		t.Errorf("Strength(1 moderate, false) = %v, want 95", got)
	}
}

func TestStrength_EmptyFramework_Returns30(t *testing.T) {
	findings := pitfall.Analyze(framework.State{})
	got := Strength(findings, true)
	if got == nil || *got != 30 {
		t.Errorf("Strength(empty framework) = %v, want 30", got)
	}
}

func TestStrength_Deductions(t *testing.T) {
	crit := pitfall.Finding{Severity: pitfall.SeverityCritical}
	mod := pitfall.Finding{Severity: pitfall.SeverityModerate}

	tests := []struct {
		name     string
		findings []pitfall.Finding
		want     int
	}{
		{"one critical", []pitfall.Finding{crit}, 85},
		{"one moderate", []pitfall.Finding{mod}, 95},
		{"mixed", []pitfall.Finding{crit, mod, mod}, 75},
		{"seven critical clamps at zero", []pitfall.Finding{crit, crit, crit, crit, crit, crit, crit}, 0},
		{"unknown severity ignored", []pitfall.Finding{{Severity: "Minor"}}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strength(tt.findings, true)
			if got == nil || *got != tt.want {
				t.Errorf("Strength() = %v, want %d", got, tt.want)
			}
		})
	}
}

// --- EvidenceScore ---

func TestEvidenceScore_NotRun_ReturnsNil(t *testing.T) {
	q := framework.QualityAssessment{
		InternalValidity: "high", ExternalValidity: "high", BiasRisk: "low", EvidenceGrading: "a",
	}
	if got := EvidenceScore(q, false); got != nil {
		t.Errorf("EvidenceScore(_, false) = %d, want nil", *got)
	}
}

func TestEvidenceScore(t *testing.T) {
	tests := []struct {
		name string
		q    framework.QualityAssessment
		want int
	}{
		{"best", framework.QualityAssessment{"high", "high", "low", "a"}, 100},
		{"all not assessed", framework.NewQualityAssessment(), 0},
		{"zero value", framework.QualityAssessment{}, 0},
		{"all moderate grade b", framework.QualityAssessment{"moderate", "moderate", "moderate", "b"}, 60},
		{"worst rated", framework.QualityAssessment{"low", "low", "high", "d"}, 15},
		{"bias inverted", framework.QualityAssessment{BiasRisk: "high"}, 5},
		{"unknown values score zero", framework.QualityAssessment{"excellent", "HIGH", "none", "A"}, 0},
		{"grade on validity scores zero", framework.QualityAssessment{InternalValidity: "a", EvidenceGrading: "c"}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvidenceScore(tt.q, true)
			if got == nil || *got != tt.want {
				t.Errorf("EvidenceScore(%+v) = %v, want %d", tt.q, got, tt.want)
			}
		})
	}
}

func TestPoints_UnknownDimension(t *testing.T) {
	if got := Points(framework.Dimension("power"), "high"); got != 0 {
		t.Errorf("Points(unknown) = %d, want 0", got)
	}
}

// --- Bands ---

func TestEvidenceBadge(t *testing.T) {
	tests := []struct {
		score int
		want  Badge
	}{
		{100, BadgeHigh},
		{75, BadgeHigh},
		{74, BadgeMedium},
		{50, BadgeMedium},
		{49, BadgeLow},
		{25, BadgeLow},
		{0, BadgeLow},
	}
	for _, tt := range tests {
		if got := EvidenceBadge(tt.score); got != tt.want {
			t.Errorf("EvidenceBadge(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestStrengthBadge(t *testing.T) {
	tests := []struct {
		score int
		want  Badge
	}{
		{100, BadgeHigh},
		{80, BadgeHigh},
		{75, BadgeMedium},
		{50, BadgeMedium},
		{30, BadgeLow},
	}
	for _, tt := range tests {
		if got := StrengthBadge(tt.score); got != tt.want {
			t.Errorf("StrengthBadge(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestEvidenceBand(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "High Quality Evidence"},
		{75, "High Quality Evidence"},
		{74, "Moderate Quality Evidence"},
		{50, "Moderate Quality Evidence"},
		{49, "Low Quality Evidence"},
		{25, "Low Quality Evidence"},
		{24, "Very Low Quality Evidence"},
		{0, "Very Low Quality Evidence"},
	}
	for _, tt := range tests {
		band := EvidenceBand(tt.score)
		if band.Label != tt.want {
			t.Errorf("EvidenceBand(%d) = %q, want %q", tt.score, band.Label, tt.want)
		}
		if band.Recommendation == "" {
			t.Errorf("EvidenceBand(%d) has no recommendation", tt.score)
		}
	}
}

func TestBadgeAndBandDiverge(t *testing.T) {
	// 25..49 is a "low" badge but a "Low Quality" band, not "Very Low".
	if EvidenceBadge(30) != BadgeLow {
		t.Errorf("EvidenceBadge(30) should be low")
	}
	if EvidenceBand(30).Label != "Low Quality Evidence" {
		t.Errorf("EvidenceBand(30) = %q", EvidenceBand(30).Label)
	}
}
