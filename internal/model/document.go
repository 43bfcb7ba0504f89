package model

import "time"

// Occurrence represents one matched catalog phrase inside a document
type Occurrence struct {
	Category string `json:"category"`           // Catalog category the phrase belongs to
	Phrase   string `json:"phrase"`             // The variant that matched
	Position int    `json:"position"`           // Byte offset of the match start
	Line     int    `json:"line"`               // 1-based line number
	Context  string `json:"context"`            // Symmetric text window around the match
	Document string `json:"document,omitempty"` // Source document id
}

// CategoryHits groups every occurrence of one category in one document
type CategoryHits struct {
	Total       int          `json:"total"`
	Occurrences []Occurrence `json:"occurrences"`
}

// DocumentKind classifies the analyzed document by its content
type DocumentKind string

const (
	KindRuling        DocumentKind = "ruling"         // Court decision
	KindMedicalReport DocumentKind = "medical_report" // Clinical/forensic report
	KindGeneric       DocumentKind = "generic"        // Anything else
)

// DocumentAnalysis is the immutable snapshot produced for one analyzed text.
// It is created once per document and never mutated afterwards.
type DocumentAnalysis struct {
	ID         string    `json:"id"`          // Caller-supplied document id (usually the file name)
	AnalysisID string    `json:"analysis_id"` // Unique id of this analysis run
	AnalyzedAt time.Time `json:"analyzed_at"`
	TextLength int       `json:"text_length"`
	Processed  bool      `json:"processed"`
	Error      string    `json:"error,omitempty"` // Set when the document could not be processed

	Phrases    map[string]CategoryHits `json:"phrases,omitempty"`
	Prediction *PredictionResult       `json:"prediction,omitempty"`
	Report     *DiscrepancyReport      `json:"discrepancies,omitempty"`
}

// TotalOccurrences sums phrase hits across every category
func (a *DocumentAnalysis) TotalOccurrences() int {
	total := 0
	for _, hits := range a.Phrases {
		total += hits.Total
	}
	return total
}

// Level expresses severity, relevance, strength and priority scales
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)
