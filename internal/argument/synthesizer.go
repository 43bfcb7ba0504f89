// Package argument turns detected evidence and discrepancies into
// structured legal arguments and defense recommendations for an IPP claim.
package argument

import (
	"fmt"

	"github.com/gracobjo/sentencias/internal/model"
)

// Synthesizer builds the argumentative section of a discrepancy report.
// It is stateless and safe for concurrent use.
type Synthesizer struct{}

func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Arguments composes the legal arguments for a report: one principal
// argument when favorable evidence exists, one specific argument per
// discrepancy type in detection order, and a defense argument when any
// discrepancy was found.
func (s *Synthesizer) Arguments(r *model.DiscrepancyReport) []model.Argument {
	var args []model.Argument

	if len(r.Evidence) > 0 {
		args = append(args, principalArgument(r))
	}

	seen := make(map[model.DiscrepancyType]bool)
	for _, d := range r.Discrepancies {
		if seen[d.Type] {
			continue
		}
		seen[d.Type] = true
		args = append(args, specificArgument(d))
	}

	if len(r.Discrepancies) > 0 {
		args = append(args, defenseArgument(r))
	}
	return args
}

// Recommendations derives actionable defense suggestions from the evidence
// found. With nothing to work from it returns a single generic suggestion.
func (s *Synthesizer) Recommendations(r *model.DiscrepancyReport) []model.Recommendation {
	var recs []model.Recommendation

	if hasType(r, model.EvidenceStructuralInjury) {
		recs = append(recs, model.Recommendation{
			Title: "Pericial sobre la lesión estructural",
			Content: "Solicitar informe pericial traumatológico que cuantifique el daño " +
				"anatómico y su carácter irreversible.",
			Actions: []string{
				"Aportar las pruebas de imagen originales con informe radiológico",
				"Interesar la ratificación del perito en el acto de juicio",
			},
			Priority: model.LevelHigh,
		})
	}
	if hasType(r, model.EvidenceFunctionalLimitation) {
		recs = append(recs, model.Recommendation{
			Title: "Prueba biomecánica de la limitación funcional",
			Content: "Documentar con valoración biomecánica la pérdida de rendimiento en las " +
				"tareas fundamentales de la profesión habitual.",
			Actions: []string{
				"Aportar estudio de biomecánica con medición instrumental de fuerza y movilidad",
				"Relacionar cada limitación con las tareas del puesto de trabajo",
			},
			Priority: model.LevelHigh,
		})
	}
	if hasType(r, model.EvidenceProcessDuration) {
		recs = append(recs, model.Recommendation{
			Title: "Cronología del proceso",
			Content: "Reconstruir la cronología completa del proceso para acreditar la " +
				"cronicidad y el fracaso del tratamiento conservador.",
			Actions: []string{
				"Aportar el historial de bajas, recaídas e intervenciones con fechas",
			},
			Priority: model.LevelMedium,
		})
	}
	if len(r.Contradictions) > 0 {
		recs = append(recs, model.Recommendation{
			Title: "Impugnación del informe contradictorio",
			Content: "Señalar en conclusiones las contradicciones internas del informe de " +
				"valoración, que debilitan su fuerza probatoria.",
			Priority: model.LevelMedium,
		})
	}

	if len(recs) == 0 && len(r.Discrepancies) == 0 {
		recs = append(recs, model.Recommendation{
			Title: "Revisión documental",
			Content: "No se han detectado elementos favorables automatizables; revisar " +
				"manualmente el expediente en busca de evidencia médica adicional.",
			Priority: model.LevelLow,
		})
	}
	return recs
}

func principalArgument(r *model.DiscrepancyReport) model.Argument {
	support := make([]string, 0, len(r.Evidence))
	for _, e := range r.Evidence {
		support = append(support, e.Description)
	}
	strength := model.LevelMedium
	if len(r.Evidence) >= 3 {
		strength = model.LevelHigh
	}
	return model.Argument{
		Kind:  model.ArgumentPrincipal,
		Title: "Procedencia de la incapacidad permanente parcial",
		Content: fmt.Sprintf("La evidencia médica objetivada (%d elementos) acredita una "+
			"disminución del rendimiento normal superior al 33%% en la profesión habitual, "+
			"por lo que procede la calificación de incapacidad permanente parcial del "+
			"art. 194.2 LGSS en lugar de la reconocida.", len(r.Evidence)),
		Support:  support,
		Strength: strength,
	}
}

func specificArgument(d model.Discrepancy) model.Argument {
	titles := map[model.DiscrepancyType]string{
		model.DiscrepancyClassificationMismatch: "Calificación incompatible con la lesión estructural",
		model.DiscrepancyLimitationVsDischarge:  "Alta médica contradicha por la exploración",
		model.DiscrepancyEvidenceVsConclusion:   "Conclusión apartada de la prueba objetiva",
		model.DiscrepancyInternalContradiction:  "Contradicción interna del informe",
	}
	support := make([]string, 0, len(d.Evidence))
	for _, occ := range d.Evidence {
		support = append(support, occ.Phrase)
	}
	return model.Argument{
		Kind:     model.ArgumentSpecific,
		Title:    titles[d.Type],
		Content:  d.Argument,
		Support:  support,
		Strength: d.Severity,
	}
}

func defenseArgument(r *model.DiscrepancyReport) model.Argument {
	return model.Argument{
		Kind:  model.ArgumentDefense,
		Title: "Carga de la prueba sobre la entidad gestora",
		Content: fmt.Sprintf("Detectadas %d discrepancias entre la evidencia médica y la "+
			"calificación administrativa, corresponde a la entidad gestora justificar que "+
			"las secuelas no alcanzan el umbral de la incapacidad permanente parcial.",
			len(r.Discrepancies)),
		Strength: model.LevelMedium,
	}
}

func hasType(r *model.DiscrepancyReport, typ model.EvidenceType) bool {
	for _, e := range r.Evidence {
		if e.Type == typ {
			return true
		}
	}
	return false
}
