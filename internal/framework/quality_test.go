package framework

import "testing"

func TestNewQualityAssessment_AllNotAssessed(t *testing.T) {
	q := NewQualityAssessment()
	for _, d := range DimensionOrder {
		if got := q.Get(d); got != RatingNotAssessed {
			t.Errorf("Get(%s) = %q, want %q", d, got, RatingNotAssessed)
		}
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		input   string
		want    Dimension
		wantErr bool
	}{
		{"internal_validity", DimInternalValidity, false},
		{"internalValidity", DimInternalValidity, false},
		{"EXTERNAL_VALIDITY", DimExternalValidity, false},
		{"biasRisk", DimBiasRisk, false},
		{" evidence_grading ", DimEvidenceGrading, false},
		{"", "", true},
		{"power", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDimension(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDimension(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDimension(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateRating(t *testing.T) {
	tests := []struct {
		name    string
		dim     Dimension
		rating  string
		wantErr bool
	}{
		{"validity high", DimInternalValidity, RatingHigh, false},
		{"validity not assessed", DimExternalValidity, RatingNotAssessed, false},
		{"bias low", DimBiasRisk, RatingLow, false},
		{"grade d", DimEvidenceGrading, GradeD, false},
		{"grade on validity", DimInternalValidity, GradeA, true},
		{"ordinal on grading", DimEvidenceGrading, RatingHigh, true},
		{"case sensitive", DimBiasRisk, "Low", true},
		{"empty", DimBiasRisk, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRating(tt.dim, tt.rating)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRating(%s, %q) error = %v, wantErr = %v", tt.dim, tt.rating, err, tt.wantErr)
			}
		})
	}
}

func TestQualityAssessment_SetOneDimension(t *testing.T) {
	q := NewQualityAssessment()
	q.Set(DimBiasRisk, RatingLow)

	if q.BiasRisk != RatingLow {
		t.Errorf("BiasRisk = %q, want low", q.BiasRisk)
	}
	if q.InternalValidity != RatingNotAssessed || q.EvidenceGrading != RatingNotAssessed {
		t.Errorf("other dimensions changed: %+v", q)
	}
}

func TestDimension_Title(t *testing.T) {
	if got := DimBiasRisk.Title(); got != "Risk of Bias" {
		t.Errorf("Title() = %q, want Risk of Bias", got)
	}
	if got := Dimension("other").Title(); got != "other" {
		t.Errorf("Title() = %q, want raw name for unknown", got)
	}
}
