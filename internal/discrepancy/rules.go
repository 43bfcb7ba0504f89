package discrepancy

import (
	"regexp"

	"github.com/gracobjo/sentencias/internal/catalog"
	"github.com/gracobjo/sentencias/internal/model"
)

var (
	// Clean discharge that denies any relevant limitation
	dischargeNoLimitation = regexp.MustCompile(`(?is)alta\s+médica.*?(?:no\s+presenta\s+limitación|no\s+impide)`)
	// Conclusion that reduces the picture to minor subjective symptoms
	subjectiveMinor = regexp.MustCompile(`(?i)(?:molestias?|dolor\s+leve|síntomas?\s+menores?)`)
	// Process duration expressed in months or years
	durationPattern = regexp.MustCompile(`(?i)(\d+)\s*(meses|mes|años|año)`)
)

// crossRule contrasts a medical pattern group against a legal conclusion.
// The legal side is either another catalog group or an inline pattern.
type crossRule struct {
	typ          model.DiscrepancyType
	medical      catalog.GroupName
	legalGroup   catalog.GroupName
	legalPattern *regexp.Regexp
	severity     model.Level
	description  string
	argument     string
}

func crossRules() []crossRule {
	return []crossRule{
		{
			typ:         model.DiscrepancyClassificationMismatch,
			medical:     catalog.GroupStructuralInjury,
			legalGroup:  catalog.GroupLPNI,
			severity:    model.LevelHigh,
			description: "Lesión estructural grave calificada como lesión permanente no incapacitante",
			argument: "La gravedad de la lesión estructural documentada es incompatible con la " +
				"calificación de lesiones permanentes no incapacitantes; procede su revisión " +
				"conforme al art. 194.2 LGSS.",
		},
		{
			typ:          model.DiscrepancyLimitationVsDischarge,
			medical:      catalog.GroupFunctionalLimitation,
			legalPattern: dischargeNoLimitation,
			severity:     model.LevelHigh,
			description:  "Limitaciones funcionales documentadas frente a alta médica sin limitaciones",
			argument: "El alta médica sin limitaciones contradice las limitaciones funcionales " +
				"objetivadas en la exploración, lo que cuestiona la valoración realizada.",
		},
		{
			typ:          model.DiscrepancyEvidenceVsConclusion,
			medical:      catalog.GroupObjectiveEvidence,
			legalPattern: subjectiveMinor,
			severity:     model.LevelMedium,
			description:  "Evidencia objetiva reducida a síntomas subjetivos menores en la conclusión",
			argument: "Las pruebas objetivas aportadas no pueden despacharse como molestias " +
				"subjetivas; la conclusión debe fundarse en la evidencia instrumental.",
		},
	}
}

// evidenceRule maps a medical pattern group to a favorable evidence item
type evidenceRule struct {
	typ       model.EvidenceType
	group     catalog.GroupName
	relevance model.Level
	argument  string
}

func evidenceRules() []evidenceRule {
	return []evidenceRule{
		{
			typ:       model.EvidenceStructuralInjury,
			group:     catalog.GroupStructuralInjury,
			relevance: model.LevelHigh,
			argument: "La lesión estructural objetivada acredita un menoscabo anatómico " +
				"permanente relevante para la incapacidad permanente parcial.",
		},
		{
			typ:       model.EvidenceFunctionalLimitation,
			group:     catalog.GroupFunctionalLimitation,
			relevance: model.LevelHigh,
			argument: "La limitación funcional medida supone una merma del rendimiento " +
				"superior al 33% en las tareas fundamentales de la profesión habitual.",
		},
	}
}

var rulingIndicators = []string{
	"sentencia", "fundamentos de derecho", "antecedentes de hecho", "fallamos",
	"juzgado", "tribunal", "demandante", "demandado", "recurso de suplicación",
}

var medicalIndicators = []string{
	"informe médico", "exploración", "diagnóstico", "rmn", "resonancia",
	"tratamiento", "evolución", "alta médica", "balance articular", "paciente",
}
