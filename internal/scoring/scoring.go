// Package scoring turns pitfall findings and quality ratings into 0-100 scores.
//
// Both scores are gated by a caller-owned "has run" flag: the engine keeps
// no state, so the caller decides whether an analysis or evaluation has
// happened yet. A nil result means "not run", which is different from zero.
package scoring

import (
	"github.com/HendryAvila/picots/internal/framework"
	"github.com/HendryAvila/picots/internal/pitfall"
)

// Strength score weights. These are fixed configuration constants.
const (
	CriticalWeight = 15
	ModerateWeight = 5

	// MaxPitfalls is the nominal pitfall ceiling used as a normalization
	// constant. It is not a true bound (Analyze emits at most six) and the
	// strength formula does not read it.
	MaxPitfalls = 7
)

// Strength scores a framework from its findings:
// max(0, 100 - 15*critical - 5*moderate).
//
// Returns nil when analysis has not run and there are no findings.
// A run with zero findings yields 100.
func Strength(findings []pitfall.Finding, hasRun bool) *int {
	if len(findings) == 0 && !hasRun {
		return nil
	}

	critical := pitfall.Count(findings, pitfall.SeverityCritical)
	moderate := pitfall.Count(findings, pitfall.SeverityModerate)

	score := 100 - critical*CriticalWeight - moderate*ModerateWeight
	if score < 0 {
		score = 0
	}
	return &score
}

// weights maps each dimension to its per-rating points.
// Bias risk is inverted: low risk earns the most.
var weights = map[framework.Dimension]map[string]int{
	framework.DimInternalValidity: {
		framework.RatingHigh: 25, framework.RatingModerate: 15, framework.RatingLow: 5, framework.RatingNotAssessed: 0,
	},
	framework.DimExternalValidity: {
		framework.RatingHigh: 25, framework.RatingModerate: 15, framework.RatingLow: 5, framework.RatingNotAssessed: 0,
	},
	framework.DimBiasRisk: {
		framework.RatingLow: 25, framework.RatingModerate: 15, framework.RatingHigh: 5, framework.RatingNotAssessed: 0,
	},
	framework.DimEvidenceGrading: {
		framework.GradeA: 25, framework.GradeB: 15, framework.GradeC: 5, framework.GradeD: 0, framework.RatingNotAssessed: 0,
	},
}

// Points returns the contribution of a single rating. Unknown dimensions
// and unknown ratings are worth 0.
func Points(d framework.Dimension, rating string) int {
	return weights[d][rating]
}

// EvidenceScore sums the four rating lookups. Returns nil when evaluation
// has not been triggered.
func EvidenceScore(q framework.QualityAssessment, hasRun bool) *int {
	if !hasRun {
		return nil
	}

	total := 0
	for _, d := range framework.DimensionOrder {
		total += Points(d, q.Get(d))
	}
	return &total
}
