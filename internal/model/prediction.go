package model

// ScoringFactor is one weighted component of the rule-based verdict
type ScoringFactor struct {
	Name           string   `json:"name"`
	Score          float64  `json:"score"`  // Raw sub-score before weighting
	Weight         float64  `json:"weight"` // Contribution weight in the total
	Detected       []string `json:"detected,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// Verdict labels, bucketed by confidence
type Verdict string

const (
	VerdictVeryFavorable        Verdict = "very_favorable"
	VerdictFavorable            Verdict = "favorable"
	VerdictPartiallyFavorable   Verdict = "partially_favorable"
	VerdictVeryUnfavorable      Verdict = "very_unfavorable"
	VerdictUnfavorable          Verdict = "unfavorable"
	VerdictPartiallyUnfavorable Verdict = "partially_unfavorable"
)

// PredictionResult is the favorability verdict for one document
type PredictionResult struct {
	Favorable  bool    `json:"favorable"`
	Confidence float64 `json:"confidence"` // Always within [0.3, 0.95]
	Label      Verdict `json:"label"`
	Score      float64 `json:"score"`  // Weighted total, clamped to [-1, 1]
	Method     string  `json:"method"` // "keyword", or "classifier:<provider>" when a classifier decided

	Factors         []ScoringFactor  `json:"factors"`
	Recommendations []string         `json:"recommendations,omitempty"`
	Success         *SuccessEstimate `json:"success,omitempty"`
}

// SuccessEstimate blends confidence with the factor breakdown into a
// litigation success probability
type SuccessEstimate struct {
	Probability     float64 `json:"probability"` // Capped at 0.95
	Rating          string  `json:"rating"`      // very_high, high, medium, low
	MeanFactorScore float64 `json:"mean_factor_score"`
	Bonus           float64 `json:"bonus"` // Adjustment earned by strong critical factors
}

// Factor returns the named factor breakdown, or nil when absent
func (p *PredictionResult) Factor(name string) *ScoringFactor {
	for i := range p.Factors {
		if p.Factors[i].Name == name {
			return &p.Factors[i]
		}
	}
	return nil
}
