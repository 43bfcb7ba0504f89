package catalog

// GroupName identifies one of the built-in regex pattern groups used by the
// discrepancy detector
type GroupName string

const (
	GroupStructuralInjury      GroupName = "structural_injury"
	GroupFunctionalLimitation  GroupName = "functional_limitation"
	GroupInternalContradiction GroupName = "internal_contradiction"
	GroupLPNI                  GroupName = "lpni_terminology"
	GroupIPP                   GroupName = "ipp_terminology"
	GroupObjectiveEvidence     GroupName = "objective_evidence"
)

// DefaultCategories returns the built-in phrase catalog for Spanish
// social-security rulings (IPP/LPNI case law)
func DefaultCategories() []Category {
	return []Category{
		{Name: "incapacidad_permanente_parcial", Variants: []string{
			"incapacidad permanente parcial", "IPP", "permanente parcial",
			"incapacidad parcial permanente", "secuela permanente",
			"incapacidad permanente", "secuelas permanentes",
		}},
		{Name: "reclamacion_administrativa", Variants: []string{
			"reclamación administrativa previa", "RAP", "reclamación previa",
			"vía administrativa", "recurso administrativo", "reclamación",
		}},
		{Name: "inss", Variants: []string{
			"INSS", "Instituto Nacional de la Seguridad Social",
			"Seguridad Social", "Instituto Nacional",
		}},
		{Name: "lesiones_permanentes", Variants: []string{
			"lesiones permanentes no incapacitantes", "LPNI", "secuelas",
			"lesiones permanentes", "lesiones",
		}},
		{Name: "personal_limpieza", Variants: []string{
			"limpiadora", "personal de limpieza", "servicios de limpieza",
			"trabajador de limpieza", "empleada de limpieza", "limpieza",
		}},
		{Name: "lesiones_hombro", Variants: []string{
			"rotura del manguito rotador", "supraespinoso", "hombro derecho",
			"lesión de hombro", "manguito rotador", "tendón supraespinoso",
			"hombro", "manguito",
		}},
		{Name: "procedimiento_legal", Variants: []string{
			"procedente", "desestimamos", "estimamos", "fundada",
			"infundada", "accedemos", "concedemos", "reconocemos",
		}},
		{Name: "fundamentos_juridicos", Variants: []string{
			"fundamentos de derecho", "fundamento jurídico", "considerando",
			"antecedentes de hecho",
		}},
		{Name: "accidente_laboral", Variants: []string{
			"accidente laboral", "accidente de trabajo", "durante la jornada",
			"lugar de trabajo",
		}},
		{Name: "prestaciones", Variants: []string{
			"prestación", "prestaciones", "pensión", "indemnización",
		}},
	}
}

// DefaultGroups returns the built-in regex groups. Patterns are matched
// case-insensitively with dot-matches-newline, so the two-clause
// contradiction patterns can span sentences.
func DefaultGroups() map[GroupName][]string {
	return map[GroupName][]string{
		GroupStructuralInjury: {
			`rotura\s+(?:de\s+)?espesor\s+completo`,
			`retracción\s+fibrilar\s+\d+\s*mm`,
			`tenopatía\s+severa`,
			`artropatía\s+acromioclavicular\s+severa`,
			`lesión\s+estructural\s+grave`,
			`rotura\s+completa\s+del\s+manguito\s+rotador`,
			`anclajes?\s+(?:corkscrew|tornillos?)`,
			`cirugía\s+reconstructiva`,
		},
		GroupFunctionalLimitation: {
			`flexión\s+activa\s+solo\s+\d+[°º]`,
			`abducción\s+activa\s+\d+[°º]`,
			`fuerza\s+insuficiente\s+para\s+vencer\s+la\s+gravedad`,
			`balance\s+muscular\s+\d+/\d+`,
			`fuerza\s+de\s+garra\s+solo\s+\d+\s*kg`,
			`limitación\s+activa\s+a\s+\d+[°º]`,
			`discinesia\s+escapular`,
			`atrofia\s+periescapular`,
			`prácticamente\s+nulo\s+desarrollo\s+de\s+fuerza`,
		},
		GroupInternalContradiction: {
			`no\s+presenta\s+limitación\s+importante.*?limitación\s+activa`,
			`no\s+impide\s+actividades.*?limitación\s+activa`,
			`alta\s+médica.*?limitaciones?\s+persistentes`,
			`recuperación.*?secuelas?\s+permanentes`,
			`movilidad\s+pasiva.*?activa\s+sigue\s+limitada`,
		},
		GroupLPNI: {
			`lesiones?\s+permanentes?\s+no\s+incapacitantes?`,
			`LPNI`,
			`secuelas?\s+no\s+invalidantes?`,
			`molestias?\s+leves?`,
			`lesiones?\s+menores?`,
		},
		GroupIPP: {
			`incapacidad\s+permanente\s+parcial`,
			`IPP`,
			`disminución\s+(?:del\s+)?rendimiento.*?33%`,
			`art\.\s*194\.2\s+LGSS`,
			`limitación\s+funcional\s+permanente`,
			`merma\s+funcional.*?33%`,
		},
		GroupObjectiveEvidence: {
			`RMN.*?\d{2}\.\d{2}\.\d{4}`,
			`informe\s+de\s+biomecánica`,
			`fuerza.*?normal.*?>\d+\s*kg`,
			`duración\s+del\s+proceso.*?\d+\s*meses?`,
			`múltiples\s+recaídas?`,
			`cirugía.*?\d{2}\.\d{2}\.\d{4}`,
		},
	}
}
