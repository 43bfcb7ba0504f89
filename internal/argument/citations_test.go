package argument

import (
	"strings"
	"testing"

	"github.com/gracobjo/sentencias/internal/model"
)

const reasonedRuling = `FUNDAMENTOS DE DERECHO

Considerando que las secuelas acreditadas reducen el rendimiento normal de la
trabajadora en su profesión habitual. Por lo que procede reconocer la
incapacidad permanente parcial solicitada con arreglo al artículo 194.2 de la
Ley General de la Seguridad Social. En consecuencia se estima la demanda
interpuesta frente a la entidad gestora.

Es de aplicación la doctrina de la STS 1234/2023 y el Real Decreto 1300/1995.`

func kinds(citations []model.Citation) map[model.CitationKind]int {
	out := make(map[model.CitationKind]int)
	for _, c := range citations {
		out[c.Kind]++
	}
	return out
}

func TestCitationsExtractsArgumentsAndReferences(t *testing.T) {
	citations := Citations(reasonedRuling)
	if len(citations) == 0 {
		t.Fatal("no citations extracted")
	}

	count := kinds(citations)
	if count[model.CitationLegalArgument] < 2 {
		t.Errorf("legal arguments = %d, want at least 2", count[model.CitationLegalArgument])
	}
	if count[model.CitationLegalRef] < 3 {
		t.Errorf("legal references = %d, want art., STS and RD", count[model.CitationLegalRef])
	}

	var sawSTS, sawArt bool
	for _, c := range citations {
		if c.Text == "" {
			t.Fatalf("citation with empty text: %+v", c)
		}
		if c.Position < 0 || c.Position >= len(reasonedRuling) {
			t.Errorf("position %d out of range for %q", c.Position, c.Text)
		}
		switch c.Kind {
		case model.CitationLegalArgument:
			if c.Confidence != 0.8 {
				t.Errorf("argument confidence = %.2f, want 0.8", c.Confidence)
			}
		case model.CitationLegalRef:
			if c.Confidence != 0.9 {
				t.Errorf("reference confidence = %.2f, want 0.9", c.Confidence)
			}
			if strings.Contains(c.Text, "STS 1234/2023") {
				sawSTS = true
			}
			if strings.HasPrefix(strings.ToLower(c.Text), "art") {
				sawArt = true
			}
		}
	}
	if !sawSTS {
		t.Error("STS citation not extracted")
	}
	if !sawArt {
		t.Error("artículo citation not extracted")
	}
}

func TestCitationsFiltersShortClauses(t *testing.T) {
	citations := Citations("Por lo que se estima.")
	for _, c := range citations {
		if c.Kind == model.CitationLegalArgument {
			t.Errorf("short clause should be filtered: %q", c.Text)
		}
	}
}

func TestCitationsEmptyText(t *testing.T) {
	if got := Citations(""); len(got) != 0 {
		t.Errorf("got %d citations for empty text", len(got))
	}
}
