package model

// DiscrepancyType tags the kind of medical/legal mismatch detected
type DiscrepancyType string

const (
	// Severe structural injury described but classified as non-disabling (LPNI)
	DiscrepancyClassificationMismatch DiscrepancyType = "classification_mismatch"
	// Documented functional limitations contradicted by a clean discharge
	DiscrepancyLimitationVsDischarge DiscrepancyType = "limitation_vs_discharge"
	// Objective findings contradicted by a subjective minor-symptom conclusion
	DiscrepancyEvidenceVsConclusion DiscrepancyType = "evidence_vs_conclusion"
	// Two clauses of the same report contradict each other
	DiscrepancyInternalContradiction DiscrepancyType = "internal_contradiction"
)

// Discrepancy is a detected mismatch between medical evidence and the
// assigned legal classification, or an internal contradiction
type Discrepancy struct {
	Type          DiscrepancyType `json:"type"`
	Description   string          `json:"description"`
	Severity      Level           `json:"severity"`
	Evidence      []Occurrence    `json:"evidence,omitempty"`      // Matches supporting the medical side
	Contradiction string          `json:"contradiction,omitempty"` // Text of the contradicting clause
	Argument      string          `json:"argument"`                // Templated legal argument
	Position      int             `json:"position,omitempty"`
}

// EvidenceType tags favorable medical evidence items
type EvidenceType string

const (
	EvidenceStructuralInjury     EvidenceType = "structural_injury"
	EvidenceFunctionalLimitation EvidenceType = "functional_limitation"
	EvidenceProcessDuration      EvidenceType = "process_duration"
)

// EvidenceItem is one piece of medical evidence favoring the disability claim
type EvidenceItem struct {
	Type        EvidenceType `json:"type"`
	Description string       `json:"description"`
	Relevance   Level        `json:"relevance"`
	Argument    string       `json:"argument"`
	Position    int          `json:"position"`
}

// ArgumentKind orders synthesized arguments
type ArgumentKind string

const (
	ArgumentPrincipal ArgumentKind = "principal"
	ArgumentSpecific  ArgumentKind = "specific"
	ArgumentDefense   ArgumentKind = "defense"
)

// Argument is a structured legal argument built from detected evidence
type Argument struct {
	Kind     ArgumentKind `json:"kind"`
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Support  []string     `json:"support,omitempty"`
	Strength Level        `json:"strength"`
}

// CitationKind tags text lifted verbatim from the document
type CitationKind string

const (
	CitationLegalArgument CitationKind = "legal_argument"  // Reasoning clause after a ruling connector
	CitationLegalRef      CitationKind = "legal_reference" // Statute, ruling or decree citation
)

// Citation is a favorable argument sentence or legal reference extracted
// verbatim from the document text
type Citation struct {
	Kind       CitationKind `json:"kind"`
	Text       string       `json:"text"`
	Position   int          `json:"position"`
	Confidence float64      `json:"confidence"`
}

// Recommendation is an actionable defense suggestion
type Recommendation struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Actions  []string `json:"actions,omitempty"`
	Priority Level    `json:"priority"`
}

// DiscrepancyReport contrasts medical evidence against the legal
// classification assigned to one document
type DiscrepancyReport struct {
	DocumentID     string           `json:"document_id"`
	Kind           DocumentKind     `json:"kind"`
	Discrepancies  []Discrepancy    `json:"discrepancies"`
	Evidence       []EvidenceItem   `json:"evidence"`
	Contradictions []Discrepancy    `json:"contradictions"`
	Citations      []Citation       `json:"citations,omitempty"`
	Arguments      []Argument       `json:"arguments"`
	Recommendation []Recommendation `json:"recommendations"`
	Score          int              `json:"score"`       // Discrepancy score, 0-100
	Probability    float64          `json:"probability"` // Probability the case merits IPP, 0-1
	Summary        string           `json:"summary"`
}
