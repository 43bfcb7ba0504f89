package argument

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gracobjo/sentencias/internal/model"
)

// Ruling connectors whose trailing clause carries the court's reasoning.
// The capture runs to the end of the sentence.
var argumentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)por\s+(?:lo\s+)?que\s+([^.]*?\.)`),
	regexp.MustCompile(`(?i)fundamentos?\s+(?:de\s+)?derecho\s+([^.]*?\.)`),
	regexp.MustCompile(`(?i)considerando\s+que\s+([^.]*?\.)`),
	regexp.MustCompile(`(?i)en\s+consecuencia\s+([^.]*?\.)`),
}

// Statute, ruling and decree citation forms
var referencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:artículo|art\.)\s+\d+\S*\s+(?:de\s+)?(?:la\s+)?[^,.\n]+`),
	regexp.MustCompile(`(?i)(?:STS|Sentencia|Resolución)\s+\d+/\d{4}`),
	regexp.MustCompile(`(?i)Ley\s+General\s+de\s+la\s+Seguridad\s+Social|LGSS`),
	regexp.MustCompile(`(?i)(?:Real\s+Decreto|RD)\s+\d+/\d{4}`),
}

// Clauses shorter than this carry no usable reasoning
const minArgumentRunes = 20

const (
	argumentConfidence  = 0.8
	referenceConfidence = 0.9
)

// Citations extracts favorable argument clauses and legal references
// verbatim from the document text. Argument clauses come first, then
// references, each group in pattern order.
func Citations(text string) []model.Citation {
	var citations []model.Citation

	for _, pattern := range argumentPatterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(text, -1) {
			clause := strings.TrimSpace(text[m[2]:m[3]])
			if utf8.RuneCountInString(clause) <= minArgumentRunes {
				continue
			}
			citations = append(citations, model.Citation{
				Kind:       model.CitationLegalArgument,
				Text:       clause,
				Position:   m[0],
				Confidence: argumentConfidence,
			})
		}
	}

	for _, pattern := range referencePatterns {
		for _, m := range pattern.FindAllStringIndex(text, -1) {
			citations = append(citations, model.Citation{
				Kind:       model.CitationLegalRef,
				Text:       strings.TrimSpace(text[m[0]:m[1]]),
				Position:   m[0],
				Confidence: referenceConfidence,
			})
		}
	}

	return citations
}
