package session

import (
	"sync"
	"testing"

	"github.com/HendryAvila/picots/internal/framework"
)

// --- Worksheet ---

func TestNewWorksheet_Defaults(t *testing.T) {
	w := NewWorksheet()

	if w.Analyzed || w.Evaluated {
		t.Error("new worksheet should not be analyzed or evaluated")
	}
	if w.ActiveField != framework.FieldPopulation {
		t.Errorf("ActiveField = %s, want population", w.ActiveField)
	}
	if w.Quality != framework.NewQualityAssessment() {
		t.Errorf("Quality = %+v, want all not_assessed", w.Quality)
	}
	if w.Strength() != nil {
		t.Error("Strength() should be nil before analysis")
	}
	if w.EvidenceScore() != nil {
		t.Error("EvidenceScore() should be nil before evaluation")
	}
	if w.Completion() != 0 {
		t.Errorf("Completion() = %d, want 0", w.Completion())
	}
}

func TestWorksheet_SetField_BeforeAnalysis_NoFindings(t *testing.T) {
	w := NewWorksheet()
	w.SetField(framework.FieldPopulation, "adult")

	if len(w.Findings) != 0 {
		t.Errorf("Findings = %d, want 0 before first analysis", len(w.Findings))
	}
}

func TestWorksheet_SetField_AfterAnalysis_Reanalyzes(t *testing.T) {
	w := NewWorksheet()
	w.Analyze()
	if len(w.Findings) != 6 {
		t.Fatalf("Findings after empty analysis = %d, want 6", len(w.Findings))
	}

	w.SetField(framework.FieldComparison, "placebo")
	if len(w.Findings) != 5 {
		t.Errorf("Findings after filling comparison = %d, want 5", len(w.Findings))
	}

	w.SetField(framework.FieldComparison, "")
	if len(w.Findings) != 6 {
		t.Errorf("Findings after clearing comparison = %d, want 6", len(w.Findings))
	}
}

func TestWorksheet_Analyze_UnlocksBothScores(t *testing.T) {
	w := NewWorksheet()
	w.Analyze()

	s := w.Strength()
	if s == nil || *s != 30 {
		t.Errorf("Strength() = %v, want 30", s)
	}
	e := w.EvidenceScore()
	if e == nil || *e != 0 {
		t.Errorf("EvidenceScore() = %v, want 0", e)
	}
}

func TestWorksheet_Evaluate_DoesNotAnalyze(t *testing.T) {
	w := NewWorksheet()
	w.Rate(framework.DimInternalValidity, framework.RatingHigh)
	w.Rate(framework.DimEvidenceGrading, framework.GradeA)
	w.Evaluate()

	if w.Analyzed {
		t.Error("Evaluate() should not mark the worksheet analyzed")
	}
	if w.Strength() != nil {
		t.Error("Strength() should stay nil after evaluation only")
	}
	e := w.EvidenceScore()
	if e == nil || *e != 50 {
		t.Errorf("EvidenceScore() = %v, want 50", e)
	}
}

func TestWorksheet_Rate_DoesNotReanalyze(t *testing.T) {
	w := NewWorksheet()
	w.Analyze()
	w.Framework.Population = "adults with asthma" // bypass SetField
	w.Rate(framework.DimBiasRisk, framework.RatingLow)

	if w.Findings[0].Category != "Population" {
		t.Errorf("Rate() should not re-run analysis, findings = %+v", w.Findings)
	}
}

// --- MemoryStore ---

func TestMemoryStore_UpdateAndLoad(t *testing.T) {
	s := NewMemoryStore()
	s.Update(func(w *Worksheet) {
		w.SetField(framework.FieldSetting, "rural clinics")
	})

	got := s.Load()
	if got.Framework.Setting != "rural clinics" {
		t.Errorf("Setting = %q, want rural clinics", got.Framework.Setting)
	}
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.Update(func(w *Worksheet) { w.Analyze() })

	got := s.Load()
	got.Findings[0].Issue = "mutated"
	got.Framework.Population = "mutated"

	again := s.Load()
	if again.Findings[0].Issue == "mutated" {
		t.Error("Load() shares the findings slice with the store")
	}
	if again.Framework.Population != "" {
		t.Error("Load() shares framework state with the store")
	}
}

func TestMemoryStore_Reset(t *testing.T) {
	s := NewMemoryStore()
	s.Update(func(w *Worksheet) {
		w.SetField(framework.FieldTiming, "12 weeks")
		w.Analyze()
	})

	got := s.Reset()
	if got.Analyzed || got.Framework.Timing != "" || len(got.Findings) != 0 {
		t.Errorf("Reset() = %+v, want default worksheet", got)
	}
}

func TestMemoryStore_ConcurrentUpdates(t *testing.T) {
	s := NewMemoryStore()
	s.Update(func(w *Worksheet) { w.Analyze() })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f := framework.FieldOrder[i%len(framework.FieldOrder)]
			s.Update(func(w *Worksheet) { w.SetField(f, "a b c d") })
			_ = s.Load()
		}(i)
	}
	wg.Wait()

	got := s.Load()
	if len(got.Findings) != 0 {
		t.Errorf("Findings = %+v, want none after filling every field", got.Findings)
	}
	if got.Completion() != 100 {
		t.Errorf("Completion() = %d, want 100", got.Completion())
	}
}
