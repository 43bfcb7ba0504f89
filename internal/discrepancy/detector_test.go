package discrepancy

import (
	"testing"

	"github.com/gracobjo/sentencias/internal/catalog"
	"github.com/gracobjo/sentencias/internal/model"
)

const medicalReport = `INFORME MÉDICO DE SÍNTESIS

Paciente intervenido por rotura de espesor completo del tendón supraespinoso.
Exploración actual: flexión activa solo 90º, balance muscular 3/5 y discinesia
escapular. Diagnóstico confirmado mediante RMN de 12.03.2024. Evolución tórpida
con múltiples recaídas. Duración del proceso: 14 meses de tratamiento.

Alta médica: el paciente no presenta limitación importante, si bien la
limitación activa persiste en la exploración y refiere molestias residuales.

Conclusión: se califican las secuelas como lesiones permanentes no
incapacitantes (LPNI).`

func testDetector(t *testing.T) *Detector {
	t.Helper()
	m, err := catalog.NewManager(catalog.DefaultCategories())
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	return NewDetector(m, 12)
}

func TestAnalyzeMedicalReport(t *testing.T) {
	d := testDetector(t)
	r := d.Analyze(medicalReport, "informe-1")

	if r.Kind != model.KindMedicalReport {
		t.Errorf("kind = %q, want medical_report", r.Kind)
	}

	var mismatch *model.Discrepancy
	for i := range r.Discrepancies {
		if r.Discrepancies[i].Type == model.DiscrepancyClassificationMismatch {
			mismatch = &r.Discrepancies[i]
		}
	}
	if mismatch == nil {
		t.Fatal("structural injury classified as LPNI did not raise classification_mismatch")
	}
	if mismatch.Severity != model.LevelHigh {
		t.Errorf("mismatch severity = %q, want high", mismatch.Severity)
	}
	if len(mismatch.Evidence) == 0 {
		t.Error("mismatch carries no supporting evidence")
	}

	if r.Probability < 0.5 {
		t.Errorf("probability = %.2f, want at least 0.5 for this report", r.Probability)
	}
	if r.Score <= 0 || r.Score > 100 {
		t.Errorf("score = %d, want in (0, 100]", r.Score)
	}
	if len(r.Contradictions) == 0 {
		t.Error("internal contradiction not detected")
	}
	for _, typ := range []model.EvidenceType{
		model.EvidenceStructuralInjury,
		model.EvidenceFunctionalLimitation,
		model.EvidenceProcessDuration,
	} {
		if !hasEvidence(r, typ) {
			t.Errorf("missing evidence of type %q", typ)
		}
	}
	if r.Summary == "" {
		t.Error("summary missing")
	}
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	d := testDetector(t)
	r := d.Analyze("", "vacio")

	if len(r.Discrepancies) != 0 || len(r.Evidence) != 0 || len(r.Contradictions) != 0 {
		t.Error("empty document produced findings")
	}
	if r.Score != 0 {
		t.Errorf("score = %d, want 0", r.Score)
	}
	if r.Probability != 0 {
		t.Errorf("probability = %.2f, want 0", r.Probability)
	}
}

func TestAnalyzeCleanText(t *testing.T) {
	d := testDetector(t)
	r := d.Analyze("Acta de la reunión ordinaria de la comunidad de propietarios.", "acta")

	if len(r.Discrepancies) != 0 {
		t.Errorf("got %d discrepancies from unrelated text", len(r.Discrepancies))
	}
	if r.Kind != model.KindGeneric {
		t.Errorf("kind = %q, want generic", r.Kind)
	}
	if r.Summary == "" {
		t.Error("summary missing")
	}
}

func TestDurationBelowThresholdIgnored(t *testing.T) {
	d := testDetector(t)
	r := d.Analyze("Tratamiento rehabilitador durante 6 meses con buena evolución.", "corto")
	if hasEvidence(r, model.EvidenceProcessDuration) {
		t.Error("duration under the threshold counted as evidence")
	}
}

func TestDurationInYears(t *testing.T) {
	d := testDetector(t)
	r := d.Analyze("Proceso de 2 años de evolución sin mejoría.", "largo")
	if !hasEvidence(r, model.EvidenceProcessDuration) {
		t.Error("duration in years not converted to months")
	}
}

func TestDetectKind(t *testing.T) {
	cases := []struct {
		text string
		want model.DocumentKind
	}{
		{`SENTENCIA del Juzgado de lo Social. Antecedentes de hecho y fundamentos
		  de derecho. El demandante interpone recurso de suplicación. Fallamos.`, model.KindRuling},
		{`Informe médico del paciente. Exploración y diagnóstico tras RMN.
		  Evolución favorable, alta médica.`, model.KindMedicalReport},
		{"Factura de suministros del mes de enero.", model.KindGeneric},
		{"", model.KindGeneric},
	}
	for _, c := range cases {
		if got := DetectKind(c.text); got != c.want {
			t.Errorf("DetectKind(%.30q) = %q, want %q", c.text, got, c.want)
		}
	}
}
