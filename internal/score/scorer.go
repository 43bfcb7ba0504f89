package score

import (
	"fmt"
	"strings"

	"github.com/gracobjo/sentencias/internal/model"
)

// Scorer produces a favorability prediction for a ruling from six weighted
// lexical factors. It is deterministic and safe for concurrent use.
type Scorer struct {
	weights     Weights
	factors     []markerFactor
	favorable   []string
	unfavorable []string
	terms       []string
}

// NewScorer builds a scorer with the given calibration. Zero-value weights
// fall back to DefaultWeights.
func NewScorer(w Weights) *Scorer {
	if w == (Weights{}) {
		w = DefaultWeights()
	}
	return &Scorer{
		weights:     w,
		factors:     defaultMarkerFactors(w),
		favorable:   favorableVocabulary(),
		unfavorable: unfavorableVocabulary(),
		terms:       legalTerms(),
	}
}

func contains(lower, term string) bool {
	return strings.Contains(lower, term)
}

// Score evaluates the document text and returns the full prediction,
// including the per-factor breakdown and the success estimate.
func (s *Scorer) Score(text string) *model.PredictionResult {
	lower := strings.ToLower(text)

	factors := make([]model.ScoringFactor, 0, len(s.factors)+2)
	total := 0.0

	polarity := s.scorePolarity(lower)
	factors = append(factors, polarity)
	total += polarity.Score * polarity.Weight

	for _, mf := range s.factors {
		f := scoreMarkers(mf, lower)
		factors = append(factors, f)
		total += f.Score * f.Weight
	}

	terminology := s.scoreTerminology(lower)
	factors = append(factors, terminology)
	total += terminology.Score * terminology.Weight

	total = clamp(total, -1, 1)

	confidence := abs(total)
	if confidence < s.weights.ConfidenceFloor {
		confidence = s.weights.ConfidenceFloor
	}
	if confidence > s.weights.ConfidenceCap {
		confidence = s.weights.ConfidenceCap
	}

	result := &model.PredictionResult{
		Favorable:  total > 0,
		Confidence: confidence,
		Score:      total,
		Method:     "keyword",
		Factors:    factors,
	}
	result.Label = Label(result.Favorable, confidence)
	result.Recommendations = s.generalRecommendations(result)
	result.Success = s.successEstimate(result)
	return result
}

// scorePolarity compares favorable versus unfavorable vocabulary presence.
// The subscore is the normalized difference in [-1, 1].
func (s *Scorer) scorePolarity(lower string) model.ScoringFactor {
	var found []string
	fav, unfav := 0, 0
	for _, term := range s.favorable {
		if contains(lower, term) {
			fav++
			found = append(found, term)
		}
	}
	for _, term := range s.unfavorable {
		if contains(lower, term) {
			unfav++
			found = append(found, term)
		}
	}

	score := 0.0
	if fav+unfav > 0 {
		score = float64(fav-unfav) / float64(fav+unfav)
	}
	return model.ScoringFactor{
		Name:           FactorPolarity,
		Score:          score,
		Weight:         s.weights.Polarity,
		Detected:       found,
		Recommendation: polarityRecommendation(fav, unfav),
	}
}

func scoreMarkers(mf markerFactor, lower string) model.ScoringFactor {
	var found []string
	score := 0.0
	for _, m := range mf.markers {
		if m.matches(lower) {
			score += m.Points
			found = append(found, m.Label)
		}
	}
	return model.ScoringFactor{
		Name:           mf.name,
		Score:          clamp(score, 0, 1),
		Weight:         mf.weight,
		Detected:       found,
		Recommendation: markerRecommendation(mf.name, score),
	}
}

func (s *Scorer) scoreTerminology(lower string) model.ScoringFactor {
	var found []string
	score := 0.0
	for _, term := range s.terms {
		if contains(lower, term) {
			score += pointsPerLegalTerm
			found = append(found, term)
		}
	}
	score = clamp(score, 0, 1)
	rec := "Terminología jurídica escasa, revisar la redacción técnica del escrito."
	if score >= 0.5 {
		rec = "El documento emplea terminología jurídica adecuada."
	}
	return model.ScoringFactor{
		Name:           FactorTerminology,
		Score:          score,
		Weight:         s.weights.Terminology,
		Detected:       found,
		Recommendation: rec,
	}
}

// Label maps a verdict direction and confidence to the public label
func Label(favorable bool, confidence float64) model.Verdict {
	switch {
	case favorable && confidence >= 0.8:
		return model.VerdictVeryFavorable
	case favorable && confidence >= 0.6:
		return model.VerdictFavorable
	case favorable:
		return model.VerdictPartiallyFavorable
	case confidence >= 0.8:
		return model.VerdictVeryUnfavorable
	case confidence >= 0.6:
		return model.VerdictUnfavorable
	default:
		return model.VerdictPartiallyUnfavorable
	}
}

// successEstimate derives the success probability from the confidence, the
// mean factor subscore and targeted bonuses for strong evidence, procedure
// and structure.
func (s *Scorer) successEstimate(r *model.PredictionResult) *model.SuccessEstimate {
	if len(r.Factors) == 0 {
		return &model.SuccessEstimate{Probability: 0.5, Rating: "medium"}
	}
	sum := 0.0
	for _, f := range r.Factors {
		sum += f.Score
	}
	mean := sum / float64(len(r.Factors))

	bonus := 0.0
	if f := r.Factor(FactorEvidence); f != nil && f.Score >= 0.7 {
		bonus += 0.1
	}
	if f := r.Factor(FactorProcedure); f != nil && f.Score >= 0.7 {
		bonus += 0.1
	}
	if f := r.Factor(FactorStructure); f != nil && f.Score >= 0.7 {
		bonus += 0.05
	}

	prob := (r.Confidence+mean)/2 + bonus
	if prob > s.weights.SuccessCap {
		prob = s.weights.SuccessCap
	}
	if prob < 0 {
		prob = 0
	}
	return &model.SuccessEstimate{
		Probability:     prob,
		Rating:          successRating(prob),
		MeanFactorScore: mean,
		Bonus:           bonus,
	}
}

func successRating(p float64) string {
	switch {
	case p >= 0.8:
		return "very_high"
	case p >= 0.6:
		return "high"
	case p >= 0.4:
		return "medium"
	default:
		return "low"
	}
}

func (s *Scorer) generalRecommendations(r *model.PredictionResult) []string {
	var recs []string
	if r.Favorable {
		recs = append(recs, "Los indicios lingüísticos apuntan a una resolución favorable.")
	} else {
		recs = append(recs, "Los indicios lingüísticos apuntan a una resolución desfavorable, conviene reforzar la argumentación.")
	}
	for _, f := range r.Factors {
		if f.Score < 0.3 && f.Name != FactorPolarity {
			recs = append(recs, f.Recommendation)
		}
	}
	if r.Confidence < 0.5 {
		recs = append(recs, fmt.Sprintf("Confianza baja (%.0f%%), validar la predicción con revisión manual.", r.Confidence*100))
	}
	return recs
}

func polarityRecommendation(fav, unfav int) string {
	switch {
	case fav > unfav && fav >= 5:
		return "Abundantes términos favorables, la resolución apunta a estimación."
	case fav > unfav:
		return "Predominan los términos favorables."
	case unfav > fav && unfav >= 3:
		return "Predominan los términos desfavorables, revisar los fundamentos de la reclamación."
	case unfav > fav:
		return "Algunos términos desfavorables detectados."
	default:
		return "Sin señal lexical clara de sentido del fallo."
	}
}

func markerRecommendation(name string, score float64) string {
	if score >= 0.7 {
		switch name {
		case FactorStructure:
			return "El documento presenta una estructura argumental completa."
		case FactorEvidence:
			return "La evidencia médica aportada es sólida."
		case FactorProcedure:
			return "El procedimiento administrativo aparece correctamente agotado."
		case FactorContext:
			return "El contexto laboral del accidente está bien acreditado."
		}
	}
	switch name {
	case FactorStructure:
		return "Reforzar la estructura del escrito: fundamentos, hechos y petitum."
	case FactorEvidence:
		return "Aportar más evidencia médica: informes, dictámenes periciales y secuelas documentadas."
	case FactorProcedure:
		return "Verificar el agotamiento de la vía administrativa previa y los plazos."
	case FactorContext:
		return "Acreditar mejor el contexto laboral: jornada, lugar de trabajo y medidas de seguridad."
	}
	return ""
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
