package framework

import (
	"fmt"
	"strings"
)

// --- Quality dimension enum ---

// Dimension identifies one of the four study quality criteria.
type Dimension string

const (
	DimInternalValidity Dimension = "internal_validity"
	DimExternalValidity Dimension = "external_validity"
	DimBiasRisk         Dimension = "bias_risk"
	DimEvidenceGrading  Dimension = "evidence_grading"
)

// DimensionOrder is the declared order of the quality dimensions.
var DimensionOrder = []Dimension{
	DimInternalValidity,
	DimExternalValidity,
	DimBiasRisk,
	DimEvidenceGrading,
}

// Title returns a human label for the dimension.
func (d Dimension) Title() string {
	switch d {
	case DimInternalValidity:
		return "Internal Validity"
	case DimExternalValidity:
		return "External Validity"
	case DimBiasRisk:
		return "Risk of Bias"
	case DimEvidenceGrading:
		return "Evidence Grade"
	}
	return string(d)
}

// DimensionValues returns the dimension names for MCP enum definitions.
func DimensionValues() []string {
	out := make([]string, len(DimensionOrder))
	for i, d := range DimensionOrder {
		out[i] = string(d)
	}
	return out
}

// ParseDimension normalizes user input into a Dimension. Both the
// snake_case names and the camelCase spellings (internalValidity) are accepted.
func ParseDimension(s string) (Dimension, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for _, d := range DimensionOrder {
		if strings.ReplaceAll(string(d), "_", "") == key {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid quality dimension %q: must be one of: %s",
		s, strings.Join(DimensionValues(), ", "))
}

// --- Ratings ---

// Rating values. Validity and bias dimensions use the ordinal scale
// high/moderate/low; evidence grading uses letter grades a..d.
const (
	RatingHigh        = "high"
	RatingModerate    = "moderate"
	RatingLow         = "low"
	RatingNotAssessed = "not_assessed"

	GradeA = "a"
	GradeB = "b"
	GradeC = "c"
	GradeD = "d"
)

// RatingValues returns the allowed ratings for a dimension, in display order.
func RatingValues(d Dimension) []string {
	switch d {
	case DimBiasRisk:
		return []string{RatingLow, RatingModerate, RatingHigh, RatingNotAssessed}
	case DimEvidenceGrading:
		return []string{GradeA, GradeB, GradeC, GradeD, RatingNotAssessed}
	default:
		return []string{RatingHigh, RatingModerate, RatingLow, RatingNotAssessed}
	}
}

// ValidateRating returns an error if rating is not allowed for d.
// This is a shell-side check; scoring itself accepts any string.
func ValidateRating(d Dimension, rating string) error {
	allowed := RatingValues(d)
	for _, v := range allowed {
		if v == rating {
			return nil
		}
	}
	return fmt.Errorf("invalid rating %q for %s: must be one of: %s",
		rating, d, strings.Join(allowed, ", "))
}

// QualityAssessment records the four study quality ratings.
// Values are kept as plain strings so that out-of-range input survives
// and simply scores zero.
type QualityAssessment struct {
	InternalValidity string `json:"internal_validity" yaml:"internal_validity"`
	ExternalValidity string `json:"external_validity" yaml:"external_validity"`
	BiasRisk         string `json:"bias_risk" yaml:"bias_risk"`
	EvidenceGrading  string `json:"evidence_grading" yaml:"evidence_grading"`
}

// NewQualityAssessment returns an assessment with every dimension not assessed.
func NewQualityAssessment() QualityAssessment {
	return QualityAssessment{
		InternalValidity: RatingNotAssessed,
		ExternalValidity: RatingNotAssessed,
		BiasRisk:         RatingNotAssessed,
		EvidenceGrading:  RatingNotAssessed,
	}
}

// Get returns the rating for a dimension. Unknown dimensions read as "".
func (q QualityAssessment) Get(d Dimension) string {
	if p := q.slot(d); p != nil {
		return *p
	}
	return ""
}

// Set stores a rating for a single dimension. Unknown dimensions are ignored.
func (q *QualityAssessment) Set(d Dimension, rating string) {
	if p := q.slot(d); p != nil {
		*p = rating
	}
}

func (q *QualityAssessment) slot(d Dimension) *string {
	switch d {
	case DimInternalValidity:
		return &q.InternalValidity
	case DimExternalValidity:
		return &q.ExternalValidity
	case DimBiasRisk:
		return &q.BiasRisk
	case DimEvidenceGrading:
		return &q.EvidenceGrading
	}
	return nil
}
