package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gracobjo/sentencias/internal/model"
)

// Renderer writes analysis results as JSON or Markdown
type Renderer struct {
	verbose bool
	footer  bool
}

// NewRenderer creates a renderer honoring the output configuration
func NewRenderer(cfg model.OutputConfig) *Renderer {
	return &Renderer{verbose: cfg.Verbose, footer: cfg.IncludeFooter}
}

// JSON writes any result as indented JSON
func (r *Renderer) JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// Document writes one analysis as Markdown
func (r *Renderer) Document(w io.Writer, doc *model.DocumentAnalysis) {
	fmt.Fprintf(w, "# Análisis de %s\n\n", doc.ID)
	if doc.Error != "" {
		fmt.Fprintf(w, "**Error:** %s\n", doc.Error)
		return
	}

	if p := doc.Prediction; p != nil {
		fmt.Fprintf(w, "**Predicción:** %s (confianza %.0f%%, método %s)\n\n",
			verdictES(p.Label), p.Confidence*100, p.Method)
		if p.Success != nil {
			fmt.Fprintf(w, "**Probabilidad de éxito:** %.0f%% (%s)\n\n",
				p.Success.Probability*100, ratingES(p.Success.Rating))
		}
		if r.verbose {
			fmt.Fprintf(w, "## Factores\n\n")
			for _, f := range p.Factors {
				fmt.Fprintf(w, "- %s: %.2f (peso %.2f)", f.Name, f.Score, f.Weight)
				if len(f.Detected) > 0 {
					fmt.Fprintf(w, " — %s", strings.Join(f.Detected, ", "))
				}
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w)
		}
		if len(p.Recommendations) > 0 {
			fmt.Fprintf(w, "## Recomendaciones\n\n")
			for _, rec := range p.Recommendations {
				fmt.Fprintf(w, "- %s\n", rec)
			}
			fmt.Fprintln(w)
		}
	}

	if len(doc.Phrases) > 0 {
		fmt.Fprintf(w, "## Frases clave (%d coincidencias)\n\n", doc.TotalOccurrences())
		categories := make([]string, 0, len(doc.Phrases))
		for category := range doc.Phrases {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			fmt.Fprintf(w, "- **%s**: %d\n", category, doc.Phrases[category].Total)
		}
		fmt.Fprintln(w)
	}

	if doc.Report != nil {
		r.Discrepancies(w, doc.Report)
	}
	r.writeFooter(w)
}

// Discrepancies writes a discrepancy report as Markdown
func (r *Renderer) Discrepancies(w io.Writer, report *model.DiscrepancyReport) {
	fmt.Fprintf(w, "## Discrepancias médico-legales\n\n")
	fmt.Fprintf(w, "%s\n\n", report.Summary)

	if len(report.Discrepancies) > 0 {
		for _, d := range report.Discrepancies {
			fmt.Fprintf(w, "- [%s] %s\n", levelES(d.Severity), d.Description)
		}
		fmt.Fprintln(w)
	}
	if len(report.Evidence) > 0 {
		fmt.Fprintf(w, "### Evidencia favorable\n\n")
		for _, e := range report.Evidence {
			fmt.Fprintf(w, "- [%s] %s\n", levelES(e.Relevance), e.Description)
		}
		fmt.Fprintln(w)
	}
	if len(report.Arguments) > 0 {
		fmt.Fprintf(w, "### Argumentos\n\n")
		for _, a := range report.Arguments {
			fmt.Fprintf(w, "**%s** (fuerza %s)\n\n%s\n\n", a.Title, levelES(a.Strength), a.Content)
		}
	}
	if len(report.Citations) > 0 {
		fmt.Fprintf(w, "### Citas del documento\n\n")
		for _, c := range report.Citations {
			switch c.Kind {
			case model.CitationLegalRef:
				fmt.Fprintf(w, "- Referencia legal: %s\n", c.Text)
			default:
				fmt.Fprintf(w, "- Argumento: %s\n", c.Text)
			}
		}
		fmt.Fprintln(w)
	}
	if len(report.Recommendation) > 0 {
		fmt.Fprintf(w, "### Recomendaciones de defensa\n\n")
		for _, rec := range report.Recommendation {
			fmt.Fprintf(w, "**%s** (prioridad %s): %s\n", rec.Title, levelES(rec.Priority), rec.Content)
			for _, action := range rec.Actions {
				fmt.Fprintf(w, "  - %s\n", action)
			}
			fmt.Fprintln(w)
		}
	}
}

// Corpus writes a corpus report as Markdown
func (r *Renderer) Corpus(w io.Writer, report *model.CorpusReport) {
	fmt.Fprintf(w, "# Informe del corpus\n\n")
	if report.Stale {
		fmt.Fprintf(w, "_Informe en caché posiblemente desactualizado._\n\n")
	}
	fmt.Fprintf(w, "%s\n\n", report.Summary)

	if len(report.Ranking) > 0 {
		fmt.Fprintf(w, "## Frases más frecuentes\n\n")
		limit := len(report.Ranking)
		if !r.verbose && limit > 10 {
			limit = 10
		}
		for _, entry := range report.Ranking[:limit] {
			fmt.Fprintf(w, "- %s: %d\n", entry.Category, entry.Total)
		}
		fmt.Fprintln(w)
	}

	p := report.Prediction
	fmt.Fprintf(w, "## Predicción global\n\n")
	fmt.Fprintf(w, "- Favorable: %.0f%% (%d documentos)\n", p.ProbabilityFavorable*100, p.Favorable)
	fmt.Fprintf(w, "- Desfavorable: %.0f%% (%d documentos)\n", p.ProbabilityUnfavorable*100, p.Unfavorable)
	fmt.Fprintf(w, "- Confianza en los datos: %.0f%%\n", p.DataConfidence*100)
	if p.Dampened {
		fmt.Fprintf(w, "- Corpus reducido: estimación atenuada hacia el 50%%\n")
	}
	fmt.Fprintln(w)

	if len(p.KeyFavorable) > 0 {
		fmt.Fprintf(w, "### Factores clave favorables\n\n")
		for _, f := range p.KeyFavorable {
			fmt.Fprintf(w, "- %s (%d documentos, impacto %s)\n", f.Category, f.Frequency, levelES(f.Impact))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "## Riesgo\n\n")
	fmt.Fprintf(w, "- Nivel: %s (valor %.1f)\n", levelES(report.Risk.Level), report.Risk.Value)
	fmt.Fprintf(w, "- %s\n", report.Risk.Interpretation)
	r.writeFooter(w)
}

func (r *Renderer) writeFooter(w io.Writer) {
	if r.footer {
		fmt.Fprintf(w, "\n---\nAnálisis automático orientativo, no constituye asesoramiento jurídico.\n")
	}
}

func verdictES(v model.Verdict) string {
	switch v {
	case model.VerdictVeryFavorable:
		return "muy favorable"
	case model.VerdictFavorable:
		return "favorable"
	case model.VerdictPartiallyFavorable:
		return "parcialmente favorable"
	case model.VerdictVeryUnfavorable:
		return "muy desfavorable"
	case model.VerdictUnfavorable:
		return "desfavorable"
	default:
		return "parcialmente desfavorable"
	}
}

func ratingES(rating string) string {
	switch rating {
	case "very_high":
		return "muy alta"
	case "high":
		return "alta"
	case "medium":
		return "media"
	default:
		return "baja"
	}
}

func levelES(l model.Level) string {
	switch l {
	case model.LevelHigh:
		return "alta"
	case model.LevelMedium:
		return "media"
	default:
		return "baja"
	}
}
