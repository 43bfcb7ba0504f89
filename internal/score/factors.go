package score

// Weights holds the scorer's calibration constants. The values mirror the
// behavior observed in production rulings and are deliberately tunable.
type Weights struct {
	Polarity    float64
	Structure   float64
	Evidence    float64
	Procedure   float64
	Context     float64
	Terminology float64

	ConfidenceFloor float64
	ConfidenceCap   float64
	SuccessCap      float64
}

// DefaultWeights returns the standard calibration
func DefaultWeights() Weights {
	return Weights{
		Polarity:    0.25,
		Structure:   0.20,
		Evidence:    0.20,
		Procedure:   0.15,
		Context:     0.10,
		Terminology: 0.10,

		ConfidenceFloor: 0.3,
		ConfidenceCap:   0.95,
		SuccessCap:      0.95,
	}
}

// Marker is one detectable element of a factor. It matches when every term
// in All is present and, if Any is non-empty, at least one of its terms is.
type Marker struct {
	Label  string
	All    []string
	Any    []string
	Points float64
}

func (m Marker) matches(lower string) bool {
	for _, term := range m.All {
		if !contains(lower, term) {
			return false
		}
	}
	if len(m.Any) == 0 {
		return true
	}
	for _, term := range m.Any {
		if contains(lower, term) {
			return true
		}
	}
	return false
}

// markerFactor is a factor scored by summing the points of its matched
// markers; weights and markers are configuration, not code paths
type markerFactor struct {
	name    string
	weight  float64
	markers []Marker
}

// Factor names exposed in the per-factor breakdown
const (
	FactorPolarity    = "polarity"
	FactorStructure   = "structure"
	FactorEvidence    = "evidence"
	FactorProcedure   = "procedure"
	FactorContext     = "context"
	FactorTerminology = "terminology"
)

func defaultMarkerFactors(w Weights) []markerFactor {
	return []markerFactor{
		{
			name:   FactorStructure,
			weight: w.Structure,
			markers: []Marker{
				{Label: "argumentos/fundamentos", Any: []string{"argumentos", "fundamentos"}, Points: 0.3},
				{Label: "conclusiones/resolución", Any: []string{"conclusiones", "resolucion"}, Points: 0.3},
				{Label: "hechos/antecedentes", Any: []string{"hechos", "antecedentes"}, Points: 0.2},
				{Label: "solicitud/petitum", Any: []string{"solicitud", "petitum"}, Points: 0.2},
			},
		},
		{
			name:   FactorEvidence,
			weight: w.Evidence,
			markers: []Marker{
				{Label: "informe médico/dictamen pericial", Any: []string{"informe médico", "dictamen pericial"}, Points: 0.4},
				{Label: "lesiones graves/permanentes", All: []string{"lesiones"}, Any: []string{"grave", "permanente"}, Points: 0.3},
				{Label: "accidente laboral", Any: []string{"accidente laboral"}, Points: 0.2},
				{Label: "secuelas", Any: []string{"secuelas"}, Points: 0.1},
			},
		},
		{
			name:   FactorProcedure,
			weight: w.Procedure,
			markers: []Marker{
				{Label: "reclamación administrativa previa", Any: []string{"reclamación administrativa previa"}, Points: 0.4},
				{Label: "trámites cumplidos", All: []string{"trámite", "cumplido"}, Points: 0.3},
				{Label: "plazos respetados", All: []string{"plazo", "dentro"}, Points: 0.3},
				{Label: "notificaciones", Any: []string{"notificación"}, Points: 0.1},
			},
		},
		{
			name:   FactorContext,
			weight: w.Context,
			markers: []Marker{
				{Label: "accidente durante jornada", All: []string{"durante", "jornada"}, Points: 0.3},
				{Label: "accidente en lugar de trabajo", Any: []string{"lugar de trabajo"}, Points: 0.3},
				{Label: "medidas de seguridad", Any: []string{"medidas de seguridad"}, Points: 0.2},
				{Label: "responsabilidad empresarial", All: []string{"empresa", "responsabilidad"}, Points: 0.2},
			},
		},
	}
}

// favorableVocabulary lists terms that indicate a favorable resolution
func favorableVocabulary() []string {
	return []string{
		"procedente", "estimamos", "accedemos", "concedemos", "reconocemos",
		"favorable", "justificado", "acreditado", "confirmado", "establecido",
		"fundada", "procede", "accede", "concede", "reconoce",
	}
}

// unfavorableVocabulary lists terms that indicate a dismissal
func unfavorableVocabulary() []string {
	return []string{
		"desestimamos", "infundada", "rechazamos", "denegamos", "no procedente",
		"desfavorable", "no acreditado", "insuficiente", "negligencia",
		"culpabilidad", "desestima", "rechaza", "denega",
	}
}

// legalTerms is the canonical terminology-density vocabulary; each term
// found contributes pointsPerLegalTerm
func legalTerms() []string {
	return []string{
		"actor", "demandado", "procedimiento", "instancia",
		"resolución", "recurso", "fundamento", "considerando",
	}
}

const pointsPerLegalTerm = 0.125
