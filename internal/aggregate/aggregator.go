// Package aggregate merges per-document analyses into a corpus-level
// report: category ranking, calibrated favorability probability, key
// factors and risk tiering.
package aggregate

import (
	"fmt"
	"sort"
	"time"

	"github.com/gracobjo/sentencias/internal/model"
)

// Calibration bounds for the corpus probability. A keyword pipeline cannot
// honestly promise near-certain outcomes, so estimates from a usable corpus
// are clamped to this band; tiny corpora are pulled toward 0.5 instead.
const (
	probabilityFloor = 0.15
	probabilityCeil  = 0.85

	smallCorpus   = 3
	smallDamping  = 0.3
	maxConfidence = 0.8
)

// Aggregator builds corpus reports. It is stateless and safe for
// concurrent use.
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Report merges the given analyses. Documents that failed to process
// contribute to the counts but not to ranking or prediction.
func (a *Aggregator) Report(docs []model.DocumentAnalysis) *model.CorpusReport {
	report := &model.CorpusReport{
		GeneratedAt:   time.Now().UTC(),
		DocumentCount: len(docs),
		Documents:     docs,
	}

	var processed []model.DocumentAnalysis
	for _, d := range docs {
		if d.Processed && d.Error == "" {
			processed = append(processed, d)
		}
	}
	report.ProcessedCount = len(processed)

	report.Ranking = ranking(processed)
	for _, entry := range report.Ranking {
		report.TotalOccurrences += entry.Total
	}
	report.Prediction = a.prediction(processed)
	report.Risk = riskAnalysis(processed)
	report.Summary = summarize(report)
	return report
}

// ranking merges category hits across documents, ordered by descending
// total. Ties keep the order of first appearance, with categories visited
// alphabetically inside each document so the result is stable.
func ranking(docs []model.DocumentAnalysis) model.CorpusRanking {
	totals := make(map[string]*model.RankingEntry)
	var order []string

	for _, doc := range docs {
		names := make([]string, 0, len(doc.Phrases))
		for name := range doc.Phrases {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			hits := doc.Phrases[name]
			entry, ok := totals[name]
			if !ok {
				entry = &model.RankingEntry{Category: name}
				totals[name] = entry
				order = append(order, name)
			}
			entry.Total += hits.Total
			entry.Occurrences = append(entry.Occurrences, hits.Occurrences...)
		}
	}

	result := make(model.CorpusRanking, 0, len(order))
	for _, name := range order {
		result = append(result, *totals[name])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total > result[j].Total
	})
	return result
}

func (a *Aggregator) prediction(docs []model.DocumentAnalysis) model.AggregatePrediction {
	pred := model.AggregatePrediction{
		ProbabilityFavorable:   0.5,
		ProbabilityUnfavorable: 0.5,
		DataConfidence:         0.1,
		DocumentWeights:        make(map[string]float64),
		Trend:                  "balanced",
	}

	var weightedFav, weightTotal float64
	n := 0
	for _, doc := range docs {
		if doc.Prediction == nil {
			continue
		}
		w := InstanceOf(doc.ID).Weight()
		pred.DocumentWeights[doc.ID] = w
		weightTotal += w
		n++
		if doc.Prediction.Favorable {
			weightedFav += w
			pred.Favorable++
		} else {
			pred.Unfavorable++
		}
	}

	if n == 0 {
		return pred
	}

	raw := weightedFav / weightTotal
	switch {
	case n < smallCorpus:
		pred.ProbabilityFavorable = 0.5 + (raw-0.5)*smallDamping
		pred.Dampened = true
		pred.DataConfidence = 0.3
	default:
		p := raw
		if p < probabilityFloor {
			p = probabilityFloor
		}
		if p > probabilityCeil {
			p = probabilityCeil
		}
		pred.ProbabilityFavorable = p
		pred.DataConfidence = float64(n) / 10
		if pred.DataConfidence > maxConfidence {
			pred.DataConfidence = maxConfidence
		}
	}
	pred.ProbabilityUnfavorable = 1 - pred.ProbabilityFavorable

	switch {
	case pred.ProbabilityFavorable > 0.6:
		pred.Trend = "favorable"
	case pred.ProbabilityFavorable < 0.4:
		pred.Trend = "unfavorable"
	default:
		pred.Trend = "balanced"
	}

	pred.KeyFavorable = keyFactors(docs, true)
	pred.KeyUnfavorable = keyFactors(docs, false)
	return pred
}

// keyFactors returns the five categories that most often co-occur with the
// given verdict, with an impact bucket per share of documents.
func keyFactors(docs []model.DocumentAnalysis, favorable bool) []model.KeyFactor {
	freq := make(map[string]int)
	group := 0
	for _, doc := range docs {
		if doc.Prediction == nil || doc.Prediction.Favorable != favorable {
			continue
		}
		group++
		for name := range doc.Phrases {
			freq[name]++
		}
	}
	if group == 0 {
		return nil
	}

	factors := make([]model.KeyFactor, 0, len(freq))
	for name, n := range freq {
		share := float64(n) / float64(group)
		impact := model.LevelLow
		switch {
		case share >= 0.7:
			impact = model.LevelHigh
		case share >= 0.4:
			impact = model.LevelMedium
		}
		factors = append(factors, model.KeyFactor{
			Category:  name,
			Frequency: n,
			Share:     share,
			Impact:    impact,
		})
	}
	sort.Slice(factors, func(i, j int) bool {
		if factors[i].Frequency != factors[j].Frequency {
			return factors[i].Frequency > factors[j].Frequency
		}
		return factors[i].Category < factors[j].Category
	})
	if len(factors) > 5 {
		factors = factors[:5]
	}
	return factors
}

func summarize(r *model.CorpusReport) string {
	if r.DocumentCount == 0 {
		return "Corpus vacío, sin documentos que analizar."
	}
	return fmt.Sprintf(
		"Corpus de %d documentos (%d procesados) con %d coincidencias. "+
			"Probabilidad de resolución favorable %.0f%% (confianza %.0f%%), riesgo %s.",
		r.DocumentCount, r.ProcessedCount, r.TotalOccurrences,
		r.Prediction.ProbabilityFavorable*100, r.Prediction.DataConfidence*100,
		riskLevelES(r.Risk.Level))
}

func riskLevelES(l model.Level) string {
	switch l {
	case model.LevelHigh:
		return "alto"
	case model.LevelMedium:
		return "medio"
	default:
		return "bajo"
	}
}
