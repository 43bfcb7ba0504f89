package model

import "time"

// Instance identifies the authority tier of the court that issued a document
type Instance string

const (
	InstanceSupreme   Instance = "supreme"   // Tribunal Supremo
	InstanceAppellate Instance = "appellate" // Tribunal Superior de Justicia
	InstanceOther     Instance = "other"
)

// Weight returns the precedential weight used in corpus aggregation
func (i Instance) Weight() float64 {
	switch i {
	case InstanceSupreme:
		return 1.5
	case InstanceAppellate:
		return 1.2
	default:
		return 1.0
	}
}

// RankingEntry aggregates one category across the whole corpus
type RankingEntry struct {
	Category    string       `json:"category"`
	Total       int          `json:"total"`
	Occurrences []Occurrence `json:"occurrences"`
}

// CorpusRanking lists categories ordered by descending total.
// Ties keep first-seen order.
type CorpusRanking []RankingEntry

// KeyFactor is a category that recurs across documents sharing a verdict
type KeyFactor struct {
	Category  string  `json:"category"`
	Frequency int     `json:"frequency"` // Documents the category appeared in
	Share     float64 `json:"share"`     // Frequency over documents with that verdict
	Impact    Level   `json:"impact"`
}

// AggregatePrediction is the corpus-wide favorability estimate
type AggregatePrediction struct {
	ProbabilityFavorable   float64 `json:"probability_favorable"`
	ProbabilityUnfavorable float64 `json:"probability_unfavorable"`
	DataConfidence         float64 `json:"data_confidence"`
	Favorable              int     `json:"favorable"`
	Unfavorable            int     `json:"unfavorable"`
	Dampened               bool    `json:"dampened"` // Small corpus pulled toward 0.5

	DocumentWeights map[string]float64 `json:"document_weights,omitempty"` // Per-document instance weight used
	KeyFavorable    []KeyFactor        `json:"key_favorable,omitempty"`
	KeyUnfavorable  []KeyFactor        `json:"key_unfavorable,omitempty"`
	Trend           string             `json:"trend"` // favorable, unfavorable, balanced
}

// RiskTier sums weighted occurrences for one severity bucket
type RiskTier struct {
	Level      Level    `json:"level"`
	Categories []string `json:"categories"`
	Total      int      `json:"total"`
}

// RiskAnalysis classifies the corpus-wide legal risk
type RiskAnalysis struct {
	Tiers          []RiskTier `json:"tiers"`
	Value          float64    `json:"value"` // Weighted and authority-scaled total
	Level          Level      `json:"level"`
	InstanceFactor float64    `json:"instance_factor"`
	Interpretation string     `json:"interpretation"`
}

// CorpusReport merges many per-document analyses into corpus ranking,
// calibrated probability and risk tiering
type CorpusReport struct {
	GeneratedAt      time.Time           `json:"generated_at"`
	DocumentCount    int                 `json:"document_count"`
	ProcessedCount   int                 `json:"processed_count"`
	TotalOccurrences int                 `json:"total_occurrences"`
	Ranking          CorpusRanking       `json:"ranking"`
	Prediction       AggregatePrediction `json:"prediction"`
	Risk             RiskAnalysis        `json:"risk"`
	Documents        []DocumentAnalysis  `json:"documents,omitempty"`
	Summary          string              `json:"summary"`
	Stale            bool                `json:"stale,omitempty"` // Served from an expired cache entry
}
