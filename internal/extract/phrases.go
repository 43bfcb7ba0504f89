package extract

import (
	"strings"

	"github.com/gracobjo/sentencias/internal/catalog"
	"github.com/gracobjo/sentencias/internal/model"
)

// Extractor scans document text against the phrase catalog
type Extractor struct {
	catalog *catalog.Manager
	window  int
}

// NewExtractor creates a phrase extractor. window is the number of
// characters captured on each side of a match.
func NewExtractor(m *catalog.Manager, window int) *Extractor {
	if window <= 0 {
		window = 50
	}
	return &Extractor{catalog: m, window: window}
}

// Occurrences returns every catalog phrase match grouped by category.
// Categories without matches are omitted. The catalog snapshot is taken
// fresh on every call, so updates become visible immediately.
func (e *Extractor) Occurrences(text, docID string) map[string]model.CategoryHits {
	snap := e.catalog.Snapshot()
	results := make(map[string]model.CategoryHits)

	for _, cat := range snap.Categories() {
		var hits model.CategoryHits
		for _, m := range snap.Matchers(cat.Name) {
			for _, loc := range m.Pattern.FindAllStringIndex(text, -1) {
				hits.Total++
				hits.Occurrences = append(hits.Occurrences, model.Occurrence{
					Category: cat.Name,
					Phrase:   m.Phrase,
					Position: loc[0],
					Line:     lineAt(text, loc[0]),
					Context:  Context(text, loc[0], loc[1], e.window),
					Document: docID,
				})
			}
		}
		if hits.Total > 0 {
			results[cat.Name] = hits
		}
	}
	return results
}

// Context returns a symmetric window around [start,end), clipped to the
// text bounds
func Context(text string, start, end, window int) string {
	from := start - window
	if from < 0 {
		from = 0
	}
	to := end + window
	if to > len(text) {
		to = len(text)
	}
	return text[from:to]
}

// lineAt returns the 1-based line number of a byte offset
func lineAt(text string, pos int) int {
	return strings.Count(text[:pos], "\n") + 1
}
