// Package framework holds the PICOTS worksheet value types.
//
// A worksheet is six free-text fields (Population, Intervention, Comparison,
// Outcomes, Timing, Setting) plus a four-dimension study quality assessment.
// Everything here is a plain value: no I/O, no locking, no hidden state.
package framework

import (
	"fmt"
	"math"
	"strings"
)

// --- Field enum ---

// Field identifies one of the six PICOTS fields.
type Field string

const (
	FieldPopulation   Field = "population"
	FieldIntervention Field = "intervention"
	FieldComparison   Field = "comparison"
	FieldOutcomes     Field = "outcomes"
	FieldTiming       Field = "timing"
	FieldSetting      Field = "setting"
)

// FieldOrder is the declared order of the PICOTS fields.
// Analysis, summaries and completion all iterate in this order.
var FieldOrder = []Field{
	FieldPopulation,
	FieldIntervention,
	FieldComparison,
	FieldOutcomes,
	FieldTiming,
	FieldSetting,
}

// Title returns the capitalized field name, e.g. "Population".
func (f Field) Title() string {
	if f == "" {
		return ""
	}
	return strings.ToUpper(string(f[:1])) + string(f[1:])
}

// Index returns the position of f in FieldOrder, or -1 if unknown.
func (f Field) Index() int {
	for i, candidate := range FieldOrder {
		if candidate == f {
			return i
		}
	}
	return -1
}

// FieldValues returns the field names for MCP enum definitions.
func FieldValues() []string {
	out := make([]string, len(FieldOrder))
	for i, f := range FieldOrder {
		out[i] = string(f)
	}
	return out
}

// ParseField normalizes user input into a Field.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	if f.Index() < 0 {
		return "", fmt.Errorf("invalid field %q: must be one of: %s",
			s, strings.Join(FieldValues(), ", "))
	}
	return f, nil
}

// --- State ---

// State holds the six PICOTS text fields. The zero value is an empty
// worksheet. Fields are independent; setting one never touches another.
type State struct {
	Population   string `json:"population" yaml:"population"`
	Intervention string `json:"intervention" yaml:"intervention"`
	Comparison   string `json:"comparison" yaml:"comparison"`
	Outcomes     string `json:"outcomes" yaml:"outcomes"`
	Timing       string `json:"timing" yaml:"timing"`
	Setting      string `json:"setting" yaml:"setting"`
}

// Get returns the raw value of a field. Unknown fields read as "".
func (s State) Get(f Field) string {
	if p := s.slot(f); p != nil {
		return *p
	}
	return ""
}

// Set stores value into a single field, unchanged (no trimming).
// Unknown fields are ignored.
func (s *State) Set(f Field, value string) {
	if p := s.slot(f); p != nil {
		*p = value
	}
}

func (s *State) slot(f Field) *string {
	switch f {
	case FieldPopulation:
		return &s.Population
	case FieldIntervention:
		return &s.Intervention
	case FieldComparison:
		return &s.Comparison
	case FieldOutcomes:
		return &s.Outcomes
	case FieldTiming:
		return &s.Timing
	case FieldSetting:
		return &s.Setting
	}
	return nil
}

// Filled reports whether a field has non-blank content.
// Whitespace-only values count as blank here.
func (s State) Filled(f Field) bool {
	return strings.TrimSpace(s.Get(f)) != ""
}

// Completion returns the percentage of fields with non-blank content,
// rounded to the nearest integer (0..100).
//
// Note this uses trimmed emptiness, unlike pitfall analysis which treats
// any non-empty string as present.
func Completion(s State) int {
	filled := 0
	for _, f := range FieldOrder {
		if s.Filled(f) {
			filled++
		}
	}
	return int(math.Round(float64(filled) / float64(len(FieldOrder)) * 100))
}
