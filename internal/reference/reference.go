// Package reference holds the static guidance shown next to the worksheet:
// per-field tips and worked examples, rating option labels, and the common
// threats to validity.
//
// Nothing here is computed. The scoring engine never reads this package.
package reference

import (
	"strings"

	"github.com/HendryAvila/picots/internal/framework"
)

var tooltips = map[framework.Field]string{
	framework.FieldPopulation:   "Define who is being studied (e.g., adults with type 2 diabetes, children ages 5-12 with asthma)",
	framework.FieldIntervention: "Specify the treatment, approach, or exposure (e.g., cognitive behavioral therapy, new medication)",
	framework.FieldComparison:   "Identify the control or alternative (e.g., placebo, standard of care, no treatment)",
	framework.FieldOutcomes:     "List measurable results (e.g., reduction in symptoms, mortality rate, quality of life scores)",
	framework.FieldTiming:       "Specify timeframe (e.g., 6-month follow-up, measurements at baseline and 12 weeks)",
	framework.FieldSetting:      "Describe where the study takes place (e.g., urban hospitals, rural clinics, home-based)",
}

var examples = map[framework.Field]string{
	framework.FieldPopulation:   "Adults aged 40-75 with diagnosed hypertension (systolic BP ≥140 mmHg) without history of cardiovascular disease",
	framework.FieldIntervention: "Mindfulness-based stress reduction program consisting of 8 weekly 2-hour group sessions plus daily 30-minute home practice",
	framework.FieldComparison:   "Wait-list control group receiving standard hypertension medication management only",
	framework.FieldOutcomes:     "Primary: Change in systolic blood pressure at 12 weeks. Secondary: Self-reported stress levels measured by PSS-10 scale",
	framework.FieldTiming:       "Assessments at baseline, 8 weeks (post-intervention), and 6-month follow-up",
	framework.FieldSetting:      "Three urban primary care clinics serving diverse socioeconomic populations",
}

// Tooltip returns the one-line tip for a field.
func Tooltip(f framework.Field) string {
	return tooltips[f]
}

// Example returns the worked example for a field.
func Example(f framework.Field) string {
	return examples[f]
}

// ExampleState returns a worksheet filled entirely with the worked examples.
func ExampleState() framework.State {
	var s framework.State
	for _, f := range framework.FieldOrder {
		s.Set(f, examples[f])
	}
	return s
}

// --- Rating options ---

// Option is one selectable rating with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var ratingOptions = map[framework.Dimension][]Option{
	framework.DimInternalValidity: {
		{framework.RatingHigh, "High - Robust methodology with minimal bias"},
		{framework.RatingModerate, "Moderate - Generally sound with some limitations"},
		{framework.RatingLow, "Low - Significant methodological concerns"},
		{framework.RatingNotAssessed, "Not Assessed"},
	},
	framework.DimExternalValidity: {
		{framework.RatingHigh, "High - Results widely generalizable"},
		{framework.RatingModerate, "Moderate - Generalizable to similar populations"},
		{framework.RatingLow, "Low - Limited generalizability"},
		{framework.RatingNotAssessed, "Not Assessed"},
	},
	framework.DimBiasRisk: {
		{framework.RatingLow, "Low - Minimal bias concerns"},
		{framework.RatingModerate, "Moderate - Some bias possible but unlikely to alter results"},
		{framework.RatingHigh, "High - Significant bias concerns that may impact findings"},
		{framework.RatingNotAssessed, "Not Assessed"},
	},
	framework.DimEvidenceGrading: {
		{framework.GradeA, "Grade A - High quality evidence"},
		{framework.GradeB, "Grade B - Moderate quality evidence"},
		{framework.GradeC, "Grade C - Low quality evidence"},
		{framework.GradeD, "Grade D - Very low quality evidence"},
		{framework.RatingNotAssessed, "Not Assessed"},
	},
}

var dimensionHelp = map[framework.Dimension]string{
	framework.DimInternalValidity: "The extent to which the design and conduct of the study eliminate the possibility of bias",
	framework.DimExternalValidity: "The extent to which the results can be generalized to other settings or populations",
	framework.DimBiasRisk:         "The likelihood that systematic errors may have influenced the results",
	framework.DimEvidenceGrading:  "Overall assessment of evidence quality based on study design, implementation, and relevance",
}

// RatingOptions returns the selectable ratings for a dimension, in display order.
func RatingOptions(d framework.Dimension) []Option {
	return ratingOptions[d]
}

// RatingLabel returns the display label for a rating, or the raw value
// when the rating is not one of the dimension's options.
func RatingLabel(d framework.Dimension, value string) string {
	for _, o := range ratingOptions[d] {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// DimensionHelp returns the one-line description of a quality dimension.
func DimensionHelp(d framework.Dimension) string {
	return dimensionHelp[d]
}

// --- Threats to validity ---

// Threat is a common source of bias in study design.
type Threat struct {
	Key         string `json:"key"`
	Description string `json:"description"`
}

// Title renders the threat heading, e.g. "Selection Bias".
func (t Threat) Title() string {
	if t.Key == "" {
		return ""
	}
	return strings.ToUpper(t.Key[:1]) + t.Key[1:] + " Bias"
}

var threats = []Threat{
	{"selection", "Selection bias occurs when the selection process creates systematic differences between comparison groups."},
	{"performance", "Performance bias results from systematic differences in care provided apart from the intervention."},
	{"attrition", "Attrition bias occurs when outcome data is incomplete or there are systematic differences in withdrawals."},
	{"detection", "Detection bias comes from systematic differences in outcome assessment."},
	{"reporting", "Reporting bias results from selective reporting of outcomes."},
	{"confounding", "Confounding occurs when an extraneous variable correlates with both the intervention and outcome."},
}

// Threats returns the threats to validity in display order.
func Threats() []Threat {
	out := make([]Threat, len(threats))
	copy(out, threats)
	return out
}
