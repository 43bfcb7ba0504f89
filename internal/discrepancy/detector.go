package discrepancy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gracobjo/sentencias/internal/catalog"
	"github.com/gracobjo/sentencias/internal/extract"
	"github.com/gracobjo/sentencias/internal/model"
)

const contextWindow = 60

// Detector contrasts the medical evidence in a document against the legal
// classification it was given and reports the mismatches. Thresholds come
// from the analysis configuration; pattern groups come from the catalog.
type Detector struct {
	catalog           *catalog.Manager
	minDurationMonths int
}

// NewDetector builds a detector. minDurationMonths is the process duration
// from which treatment length counts as favorable evidence.
func NewDetector(m *catalog.Manager, minDurationMonths int) *Detector {
	if minDurationMonths <= 0 {
		minDurationMonths = 12
	}
	return &Detector{catalog: m, minDurationMonths: minDurationMonths}
}

// Analyze runs every discrepancy and evidence rule over the text and
// returns the report. Arguments and recommendations are filled in later by
// the synthesizer.
func (d *Detector) Analyze(text, docID string) *model.DiscrepancyReport {
	snap := d.catalog.Snapshot()

	report := &model.DiscrepancyReport{
		DocumentID: docID,
		Kind:       DetectKind(text),
	}
	if strings.TrimSpace(text) == "" {
		report.Summary = "Documento vacío, sin análisis posible."
		return report
	}

	matches := make(map[catalog.GroupName][]model.Occurrence)
	for _, name := range []catalog.GroupName{
		catalog.GroupStructuralInjury,
		catalog.GroupFunctionalLimitation,
		catalog.GroupInternalContradiction,
		catalog.GroupLPNI,
		catalog.GroupObjectiveEvidence,
	} {
		matches[name] = groupMatches(snap, name, text, docID)
	}

	for _, rule := range crossRules() {
		medical := matches[rule.medical]
		if len(medical) == 0 {
			continue
		}
		if !legalSideFires(rule, matches, text) {
			continue
		}
		report.Discrepancies = append(report.Discrepancies, model.Discrepancy{
			Type:        rule.typ,
			Description: rule.description,
			Severity:    rule.severity,
			Evidence:    medical,
			Argument:    rule.argument,
			Position:    medical[0].Position,
		})
	}

	for _, occ := range matches[catalog.GroupInternalContradiction] {
		report.Contradictions = append(report.Contradictions, model.Discrepancy{
			Type:          model.DiscrepancyInternalContradiction,
			Description:   "Contradicción interna entre afirmaciones del mismo documento",
			Severity:      model.LevelHigh,
			Contradiction: occ.Phrase,
			Argument: "El documento afirma y niega la misma limitación, lo que priva de " +
				"fuerza probatoria a la conclusión desestimatoria.",
			Position: occ.Position,
		})
	}

	report.Evidence = d.collectEvidence(matches, text)
	report.Score = discrepancyScore(report)
	report.Probability = ippProbability(report)
	report.Summary = summarize(report)
	return report
}

func legalSideFires(rule crossRule, matches map[catalog.GroupName][]model.Occurrence, text string) bool {
	if rule.legalGroup != "" {
		return len(matches[rule.legalGroup]) > 0
	}
	return rule.legalPattern.MatchString(text)
}

func groupMatches(snap *catalog.Snapshot, name catalog.GroupName, text, docID string) []model.Occurrence {
	var occs []model.Occurrence
	for _, re := range snap.Group(name) {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			occs = append(occs, model.Occurrence{
				Category: string(name),
				Phrase:   text[loc[0]:loc[1]],
				Position: loc[0],
				Line:     strings.Count(text[:loc[0]], "\n") + 1,
				Context:  extract.Context(text, loc[0], loc[1], contextWindow),
				Document: docID,
			})
		}
	}
	return occs
}

func (d *Detector) collectEvidence(matches map[catalog.GroupName][]model.Occurrence, text string) []model.EvidenceItem {
	var items []model.EvidenceItem
	for _, rule := range evidenceRules() {
		for _, occ := range matches[rule.group] {
			items = append(items, model.EvidenceItem{
				Type:        rule.typ,
				Description: occ.Phrase,
				Relevance:   rule.relevance,
				Argument:    rule.argument,
				Position:    occ.Position,
			})
		}
	}

	for _, loc := range durationPattern.FindAllStringSubmatchIndex(text, -1) {
		amount, err := strconv.Atoi(text[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		unit := strings.ToLower(text[loc[4]:loc[5]])
		months := amount
		if strings.HasPrefix(unit, "año") {
			months = amount * 12
		}
		if months < d.minDurationMonths {
			continue
		}
		items = append(items, model.EvidenceItem{
			Type:        model.EvidenceProcessDuration,
			Description: text[loc[0]:loc[1]],
			Relevance:   model.LevelMedium,
			Argument: fmt.Sprintf("Un proceso de %d meses de evolución evidencia la cronicidad "+
				"de la lesión y la insuficiencia del tratamiento conservador.", months),
			Position: loc[0],
		})
	}
	return items
}

// discrepancyScore summarizes the strength of the mismatch in [0, 100]
func discrepancyScore(r *model.DiscrepancyReport) int {
	score := 0
	for _, d := range r.Discrepancies {
		score += severityPoints(d.Severity, 25, 15, 10)
	}
	for _, e := range r.Evidence {
		score += severityPoints(e.Relevance, 15, 10, 5)
	}
	score += 10 * len(r.Contradictions)
	if score > 100 {
		score = 100
	}
	return score
}

func severityPoints(l model.Level, high, medium, low int) int {
	switch l {
	case model.LevelHigh:
		return high
	case model.LevelMedium:
		return medium
	default:
		return low
	}
}

// ippProbability estimates how likely the documented case merits an IPP
// classification rather than the assigned one
func ippProbability(r *model.DiscrepancyReport) float64 {
	p := 0.0
	if len(r.Evidence) > 0 {
		p = 0.3
	}
	extra := 0.1 * float64(len(r.Discrepancies))
	if extra > 0.4 {
		extra = 0.4
	}
	p += extra

	if hasEvidence(r, model.EvidenceStructuralInjury) {
		p += 0.2
	}
	if hasEvidence(r, model.EvidenceFunctionalLimitation) {
		p += 0.2
	}
	if hasEvidence(r, model.EvidenceProcessDuration) {
		p += 0.1
	}
	if p > 1 {
		p = 1
	}
	return p
}

func hasEvidence(r *model.DiscrepancyReport, typ model.EvidenceType) bool {
	for _, e := range r.Evidence {
		if e.Type == typ {
			return true
		}
	}
	return false
}

func summarize(r *model.DiscrepancyReport) string {
	if len(r.Discrepancies) == 0 && len(r.Evidence) == 0 && len(r.Contradictions) == 0 {
		return "No se detectaron discrepancias médico-legales relevantes."
	}
	return fmt.Sprintf(
		"Se detectaron %d discrepancias, %d evidencias favorables y %d contradicciones internas. "+
			"Puntuación de discrepancia %d/100, probabilidad estimada de IPP %.0f%%.",
		len(r.Discrepancies), len(r.Evidence), len(r.Contradictions),
		r.Score, r.Probability*100)
}

// DetectKind classifies the document as a court ruling, a medical report or
// generic text by counting domain indicators. Three hits are required
// before a specific kind is assigned.
func DetectKind(text string) model.DocumentKind {
	lower := strings.ToLower(text)
	medical := countIndicators(lower, medicalIndicators)
	ruling := countIndicators(lower, rulingIndicators)

	switch {
	case medical >= 3 && medical >= ruling:
		return model.KindMedicalReport
	case ruling >= 3:
		return model.KindRuling
	default:
		return model.KindGeneric
	}
}

func countIndicators(lower string, indicators []string) int {
	n := 0
	for _, ind := range indicators {
		if strings.Contains(lower, ind) {
			n++
		}
	}
	return n
}
