package aggregate

import (
	"math"
	"testing"

	"github.com/gracobjo/sentencias/internal/model"
)

func doc(id string, favorable bool, phrases map[string]int) model.DocumentAnalysis {
	hits := make(map[string]model.CategoryHits, len(phrases))
	for name, n := range phrases {
		occs := make([]model.Occurrence, n)
		for i := range occs {
			occs[i] = model.Occurrence{Category: name, Document: id, Position: i}
		}
		hits[name] = model.CategoryHits{Total: n, Occurrences: occs}
	}
	return model.DocumentAnalysis{
		ID:        id,
		Processed: true,
		Phrases:   hits,
		Prediction: &model.PredictionResult{
			Favorable: favorable,
		},
	}
}

func TestEmptyCorpus(t *testing.T) {
	r := NewAggregator().Report(nil)

	if r.DocumentCount != 0 || r.ProcessedCount != 0 {
		t.Errorf("counts = %d/%d, want 0/0", r.DocumentCount, r.ProcessedCount)
	}
	if r.Prediction.ProbabilityFavorable != 0.5 {
		t.Errorf("probability = %.2f, want 0.5", r.Prediction.ProbabilityFavorable)
	}
	if r.Prediction.DataConfidence != 0.1 {
		t.Errorf("confidence = %.2f, want 0.1", r.Prediction.DataConfidence)
	}
	if r.Risk.Level != model.LevelLow {
		t.Errorf("risk level = %q, want low", r.Risk.Level)
	}
	if r.Summary == "" {
		t.Error("summary missing")
	}
}

func TestSmallCorpusDampening(t *testing.T) {
	docs := []model.DocumentAnalysis{
		doc("sts_2021_123", true, map[string]int{"inss": 2}),
		doc("juzgado_social_4", false, map[string]int{"inss": 1}),
	}
	r := NewAggregator().Report(docs)

	// Weighted raw estimate is 1.5/2.5 = 0.6, pulled toward 0.5.
	want := 0.5 + (0.6-0.5)*0.3
	if math.Abs(r.Prediction.ProbabilityFavorable-want) > 1e-9 {
		t.Errorf("probability = %.4f, want %.4f", r.Prediction.ProbabilityFavorable, want)
	}
	if !r.Prediction.Dampened {
		t.Error("small corpus not flagged as dampened")
	}
	if r.Prediction.DataConfidence != 0.3 {
		t.Errorf("confidence = %.2f, want 0.3", r.Prediction.DataConfidence)
	}
	if w := r.Prediction.DocumentWeights["sts_2021_123"]; w != 1.5 {
		t.Errorf("supreme weight = %.1f, want 1.5", w)
	}
}

func TestProbabilityClampedOnUnanimousCorpus(t *testing.T) {
	var docs []model.DocumentAnalysis
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		docs = append(docs, doc(id, true, map[string]int{"inss": 1}))
	}
	r := NewAggregator().Report(docs)

	if r.Prediction.ProbabilityFavorable != 0.85 {
		t.Errorf("probability = %.2f, want clamp at 0.85", r.Prediction.ProbabilityFavorable)
	}
	if r.Prediction.Dampened {
		t.Error("large corpus flagged as dampened")
	}
	if r.Prediction.DataConfidence != 0.5 {
		t.Errorf("confidence = %.2f, want 0.5 for 5 documents", r.Prediction.DataConfidence)
	}
	if got := 1 - r.Prediction.ProbabilityFavorable; math.Abs(r.Prediction.ProbabilityUnfavorable-got) > 1e-9 {
		t.Errorf("unfavorable probability = %.2f, want complement", r.Prediction.ProbabilityUnfavorable)
	}
	if r.Prediction.Trend != "favorable" {
		t.Errorf("trend = %q, want favorable", r.Prediction.Trend)
	}
}

func TestUnanimousUnfavorableClamp(t *testing.T) {
	var docs []model.DocumentAnalysis
	for _, id := range []string{"a", "b", "c"} {
		docs = append(docs, doc(id, false, nil))
	}
	r := NewAggregator().Report(docs)
	if r.Prediction.ProbabilityFavorable != 0.15 {
		t.Errorf("probability = %.2f, want clamp at 0.15", r.Prediction.ProbabilityFavorable)
	}
	if r.Prediction.Trend != "unfavorable" {
		t.Errorf("trend = %q, want unfavorable", r.Prediction.Trend)
	}
}

func TestRankingOrderAndTotals(t *testing.T) {
	docs := []model.DocumentAnalysis{
		doc("d1", true, map[string]int{"inss": 3, "lesiones_hombro": 1}),
		doc("d2", true, map[string]int{"inss": 2, "prestaciones": 4}),
	}
	r := NewAggregator().Report(docs)

	if len(r.Ranking) != 3 {
		t.Fatalf("got %d ranking entries, want 3", len(r.Ranking))
	}
	if r.Ranking[0].Category != "inss" || r.Ranking[0].Total != 5 {
		t.Errorf("top entry = %s/%d, want inss/5", r.Ranking[0].Category, r.Ranking[0].Total)
	}
	if r.Ranking[1].Category != "prestaciones" || r.Ranking[1].Total != 4 {
		t.Errorf("second entry = %s/%d, want prestaciones/4", r.Ranking[1].Category, r.Ranking[1].Total)
	}
	if r.TotalOccurrences != 10 {
		t.Errorf("total occurrences = %d, want 10", r.TotalOccurrences)
	}
	if len(r.Ranking[0].Occurrences) != 5 {
		t.Errorf("inss occurrences = %d, want 5", len(r.Ranking[0].Occurrences))
	}
}

func TestRankingDeterministic(t *testing.T) {
	docs := []model.DocumentAnalysis{
		doc("d1", true, map[string]int{"b_cat": 1, "a_cat": 1, "c_cat": 1}),
	}
	a := NewAggregator()
	first := a.Report(docs).Ranking
	for i := 0; i < 10; i++ {
		again := a.Report(docs).Ranking
		for j := range first {
			if again[j].Category != first[j].Category {
				t.Fatalf("ranking order changed between runs: %v", again)
			}
		}
	}
}

func TestFailedDocumentsExcluded(t *testing.T) {
	failed := model.DocumentAnalysis{ID: "roto.pdf", Processed: false, Error: "unreadable"}
	docs := []model.DocumentAnalysis{
		doc("d1", true, map[string]int{"inss": 1}),
		failed,
	}
	r := NewAggregator().Report(docs)

	if r.DocumentCount != 2 {
		t.Errorf("document count = %d, want 2", r.DocumentCount)
	}
	if r.ProcessedCount != 1 {
		t.Errorf("processed count = %d, want 1", r.ProcessedCount)
	}
	if r.TotalOccurrences != 1 {
		t.Errorf("failed document leaked into totals: %d", r.TotalOccurrences)
	}
}

func TestKeyFactors(t *testing.T) {
	docs := []model.DocumentAnalysis{
		doc("d1", true, map[string]int{"reclamacion_administrativa": 1, "inss": 2}),
		doc("d2", true, map[string]int{"reclamacion_administrativa": 2}),
		doc("d3", true, map[string]int{"reclamacion_administrativa": 1, "prestaciones": 1}),
		doc("d4", false, map[string]int{"lesiones_permanentes": 1}),
	}
	r := NewAggregator().Report(docs)

	fav := r.Prediction.KeyFavorable
	if len(fav) == 0 {
		t.Fatal("no favorable key factors")
	}
	if fav[0].Category != "reclamacion_administrativa" {
		t.Errorf("top favorable factor = %q", fav[0].Category)
	}
	if fav[0].Frequency != 3 || fav[0].Impact != model.LevelHigh {
		t.Errorf("top factor = %+v, want frequency 3 impact high", fav[0])
	}
	if len(r.Prediction.KeyUnfavorable) != 1 {
		t.Errorf("unfavorable factors = %v", r.Prediction.KeyUnfavorable)
	}
}

func TestRiskScalesWithInstances(t *testing.T) {
	base := []model.DocumentAnalysis{
		doc("d1", true, map[string]int{"procedimiento_legal": 10}),
		doc("d2", true, map[string]int{"reclamacion_administrativa": 10}),
		doc("d3", false, map[string]int{"fundamentos_juridicos": 10}),
	}
	supreme := []model.DocumentAnalysis{
		doc("sts_1", true, map[string]int{"procedimiento_legal": 10}),
		doc("sts_2", true, map[string]int{"reclamacion_administrativa": 10}),
		doc("sts_3", false, map[string]int{"fundamentos_juridicos": 10}),
	}
	a := NewAggregator()
	baseRisk := a.Report(base).Risk
	supremeRisk := a.Report(supreme).Risk

	if baseRisk.InstanceFactor != 1 {
		t.Errorf("base instance factor = %.2f, want 1", baseRisk.InstanceFactor)
	}
	if supremeRisk.InstanceFactor != 1.5 {
		t.Errorf("supreme instance factor = %.2f, want 1.5", supremeRisk.InstanceFactor)
	}
	if supremeRisk.Value <= baseRisk.Value {
		t.Errorf("supreme corpus risk %.1f not above base %.1f", supremeRisk.Value, baseRisk.Value)
	}
	if baseRisk.Level != model.LevelMedium {
		t.Errorf("base risk level = %q, want medium for value %.1f", baseRisk.Level, baseRisk.Value)
	}
	if supremeRisk.Level != model.LevelHigh {
		t.Errorf("supreme risk level = %q, want high for value %.1f", supremeRisk.Level, supremeRisk.Value)
	}
}
