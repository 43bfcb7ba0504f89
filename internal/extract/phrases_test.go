package extract

import (
	"strings"
	"testing"

	"github.com/gracobjo/sentencias/internal/catalog"
)

func testManager(t *testing.T) *catalog.Manager {
	t.Helper()
	m, err := catalog.NewManager([]catalog.Category{
		{Name: "lesiones_hombro", Variants: []string{"lesiones en el hombro", "rotura del manguito"}},
		{Name: "inss", Variants: []string{"INSS", "instituto nacional de la seguridad social"}},
	})
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	return m
}

func TestOccurrencesBasic(t *testing.T) {
	e := NewExtractor(testManager(t), 20)
	text := "El trabajador presenta lesiones en el hombro derecho.\nEl INSS denegó la prestación."

	hits := e.Occurrences(text, "doc-1")

	for _, want := range []string{"lesiones_hombro", "inss"} {
		h, ok := hits[want]
		if !ok {
			t.Fatalf("category %q missing from results", want)
		}
		if h.Total != len(h.Occurrences) {
			t.Errorf("%s: total %d != %d occurrences", want, h.Total, len(h.Occurrences))
		}
		for _, occ := range h.Occurrences {
			if occ.Position < 0 || occ.Position >= len(text) {
				t.Errorf("%s: position %d out of bounds", want, occ.Position)
			}
			if occ.Document != "doc-1" {
				t.Errorf("%s: document = %q", want, occ.Document)
			}
			if occ.Context == "" {
				t.Errorf("%s: empty context", want)
			}
		}
	}

	if got := hits["inss"].Occurrences[0].Line; got != 2 {
		t.Errorf("inss line = %d, want 2", got)
	}
}

func TestOccurrencesNoMatches(t *testing.T) {
	e := NewExtractor(testManager(t), 50)
	hits := e.Occurrences("texto sin ninguna frase relevante", "doc-2")
	if len(hits) != 0 {
		t.Errorf("expected empty result map, got %d categories", len(hits))
	}
}

func TestOccurrencesEmptyText(t *testing.T) {
	e := NewExtractor(testManager(t), 50)
	if hits := e.Occurrences("", "doc-3"); len(hits) != 0 {
		t.Errorf("empty text produced %d categories", len(hits))
	}
}

func TestSeparatorAndCaseInsensitiveMatching(t *testing.T) {
	e := NewExtractor(testManager(t), 50)
	variants := []string{
		"Lesiones En El Hombro",
		"lesiones  en  el  hombro",
		"lesiones-en-el-hombro",
		"lesiones_en_el_hombro",
	}
	for _, v := range variants {
		hits := e.Occurrences("informe: "+v+" izquierdo", "doc-4")
		if hits["lesiones_hombro"].Total != 1 {
			t.Errorf("variant %q not matched", v)
		}
	}
}

func TestContextClipping(t *testing.T) {
	text := "INSS al principio"
	e := NewExtractor(testManager(t), 200)
	hits := e.Occurrences(text, "doc-5")
	occ := hits["inss"].Occurrences[0]
	if occ.Context != text {
		t.Errorf("context = %q, want whole text", occ.Context)
	}
	if occ.Position != 0 {
		t.Errorf("position = %d, want 0", occ.Position)
	}
}

func TestCatalogUpdateVisibleOnNextExtraction(t *testing.T) {
	m := testManager(t)
	e := NewExtractor(m, 50)
	text := "Se acreditan lesiones en el hombro derecho."

	before := e.Occurrences(text, "doc-6")
	if _, ok := before["lesiones_hombro"]; !ok {
		t.Fatal("expected match under the original category name")
	}

	if err := m.RenameCategory("lesiones_hombro", "lesiones_articulares"); err != nil {
		t.Fatalf("rename: %v", err)
	}

	after := e.Occurrences(text, "doc-6")
	if _, ok := after["lesiones_hombro"]; ok {
		t.Error("old category name still present after rename")
	}
	got, ok := after["lesiones_articulares"]
	if !ok {
		t.Fatal("renamed category missing from results")
	}
	if got.Total != before["lesiones_hombro"].Total {
		t.Errorf("occurrence count changed across rename: %d vs %d",
			got.Total, before["lesiones_hombro"].Total)
	}
	if got.Occurrences[0].Category != "lesiones_articulares" {
		t.Errorf("occurrence category = %q", got.Occurrences[0].Category)
	}
}

func TestMultipleOccurrencesOrdered(t *testing.T) {
	e := NewExtractor(testManager(t), 30)
	text := strings.Repeat("resolución del INSS. ", 3)
	hits := e.Occurrences(text, "doc-7")
	occs := hits["inss"].Occurrences
	if len(occs) != 3 {
		t.Fatalf("got %d occurrences, want 3", len(occs))
	}
	for i := 1; i < len(occs); i++ {
		if occs[i].Position <= occs[i-1].Position {
			t.Errorf("occurrences not in position order: %d then %d",
				occs[i-1].Position, occs[i].Position)
		}
	}
}
