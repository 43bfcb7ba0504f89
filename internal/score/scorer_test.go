package score

import (
	"strings"
	"testing"
)

const favorableRuling = `FUNDAMENTOS DE DERECHO

En atención a los hechos probados y a los antecedentes expuestos, estimamos
procedente la solicitud de incapacidad permanente parcial. El informe médico
acredita lesiones permanentes en el hombro derecho con secuelas, sufridas en
accidente laboral durante la jornada en el lugar de trabajo. La reclamación
administrativa previa fue presentada dentro de plazo.

Por todo ello, el recurso del actor resulta fundado y la resolución de
instancia debe revocarse.`

const unfavorableRuling = `Desestimamos la demanda por infundada. Las alegaciones
del actor no resultan acreditadas y la prueba aportada es insuficiente, por lo
que rechazamos la pretensión y denegamos la prestación solicitada.`

func TestScoreFavorable(t *testing.T) {
	s := NewScorer(DefaultWeights())
	r := s.Score(favorableRuling)

	if !r.Favorable {
		t.Fatalf("expected favorable prediction, got score %.3f", r.Score)
	}
	if r.Confidence <= 0.3 {
		t.Errorf("expected confidence above the floor for a rich ruling, got %.3f", r.Confidence)
	}
	if r.Confidence > 0.95 {
		t.Errorf("confidence exceeds cap: %.3f", r.Confidence)
	}
	if !strings.Contains(string(r.Label), "favorable") || strings.Contains(string(r.Label), "unfavorable") {
		t.Errorf("unexpected label %q", r.Label)
	}
	if r.Method != "keyword" {
		t.Errorf("method = %q, want keyword", r.Method)
	}
}

func TestScoreUnfavorable(t *testing.T) {
	s := NewScorer(DefaultWeights())
	r := s.Score(unfavorableRuling)

	if r.Favorable {
		t.Fatalf("expected unfavorable prediction, got score %.3f", r.Score)
	}
	if !strings.Contains(string(r.Label), "unfavorable") {
		t.Errorf("unexpected label %q", r.Label)
	}
}

func TestScoreEmptyText(t *testing.T) {
	s := NewScorer(DefaultWeights())
	r := s.Score("")

	if r.Score != 0 {
		t.Errorf("empty text score = %.3f, want 0", r.Score)
	}
	if r.Favorable {
		t.Error("empty text must not be favorable")
	}
	if r.Confidence != 0.3 {
		t.Errorf("empty text confidence = %.3f, want floor 0.3", r.Confidence)
	}
	if r.Success == nil {
		t.Fatal("success estimate missing")
	}
}

func TestConfidenceBounds(t *testing.T) {
	s := NewScorer(DefaultWeights())
	texts := []string{
		"", "sin contenido relevante", favorableRuling, unfavorableRuling,
		strings.Repeat(favorableRuling, 5),
	}
	for _, text := range texts {
		r := s.Score(text)
		if r.Confidence < 0.3 || r.Confidence > 0.95 {
			t.Errorf("confidence %.3f out of [0.3, 0.95] for %q", r.Confidence, text[:min(len(text), 30)])
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := NewScorer(DefaultWeights())
	a := s.Score(favorableRuling)
	b := s.Score(favorableRuling)
	if a.Score != b.Score || a.Confidence != b.Confidence || a.Label != b.Label {
		t.Errorf("scoring is not deterministic: %.4f/%.4f vs %.4f/%.4f",
			a.Score, a.Confidence, b.Score, b.Confidence)
	}
}

func TestMoreFavorableVocabularyNeverLowersScore(t *testing.T) {
	s := NewScorer(DefaultWeights())
	base := s.Score(unfavorableRuling).Score
	text := unfavorableRuling
	prev := base
	for _, extra := range []string{"estimamos", "procedente", "reconocemos", "favorable"} {
		text += " " + extra
		got := s.Score(text).Score
		if got < prev {
			t.Errorf("adding %q lowered score from %.4f to %.4f", extra, prev, got)
		}
		prev = got
	}
	if prev <= base {
		t.Errorf("favorable vocabulary had no effect: %.4f -> %.4f", base, prev)
	}
}

func TestPerFactorBreakdown(t *testing.T) {
	s := NewScorer(DefaultWeights())
	r := s.Score(favorableRuling)

	want := []string{
		FactorPolarity, FactorStructure, FactorEvidence,
		FactorProcedure, FactorContext, FactorTerminology,
	}
	if len(r.Factors) != len(want) {
		t.Fatalf("got %d factors, want %d", len(r.Factors), len(want))
	}
	for i, name := range want {
		if r.Factors[i].Name != name {
			t.Errorf("factor[%d] = %q, want %q", i, r.Factors[i].Name, name)
		}
	}
	if f := r.Factor(FactorEvidence); f == nil || f.Score < 0.7 {
		t.Errorf("evidence factor should be strong for this ruling, got %+v", f)
	}
	if f := r.Factor(FactorStructure); f == nil || len(f.Detected) == 0 {
		t.Error("structure factor detected nothing")
	}
}

func TestSuccessEstimateBonuses(t *testing.T) {
	s := NewScorer(DefaultWeights())
	r := s.Score(favorableRuling)

	if r.Success == nil {
		t.Fatal("success estimate missing")
	}
	// Evidence markers all fire in favorableRuling, so at least that bonus applies.
	if r.Success.Bonus < 0.1 {
		t.Errorf("bonus = %.2f, want at least 0.1", r.Success.Bonus)
	}
	if r.Success.Probability > 0.95 {
		t.Errorf("probability exceeds cap: %.3f", r.Success.Probability)
	}
	if r.Success.Rating == "" {
		t.Error("rating missing")
	}
}

func TestRecommendationsPresent(t *testing.T) {
	s := NewScorer(DefaultWeights())
	r := s.Score(unfavorableRuling)
	if len(r.Recommendations) == 0 {
		t.Fatal("expected recommendations for a weak document")
	}
}
