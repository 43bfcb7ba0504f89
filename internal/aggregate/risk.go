package aggregate

import (
	"github.com/gracobjo/sentencias/internal/model"
)

// Risk tier membership. Categories tied to the contested procedure weigh
// most; purely descriptive categories weigh least.
var riskTiers = []struct {
	level      model.Level
	weight     int
	categories []string
}{
	{model.LevelHigh, 3, []string{
		"reclamacion_administrativa", "procedimiento_legal", "fundamentos_juridicos",
	}},
	{model.LevelMedium, 2, []string{
		"lesiones_permanentes", "accidente_laboral", "prestaciones",
	}},
	{model.LevelLow, 1, []string{
		"inss", "personal_limpieza", "lesiones_hombro",
	}},
}

// riskAnalysis scores corpus-wide legal risk from tiered category totals,
// scaled up when higher courts dominate the corpus.
func riskAnalysis(docs []model.DocumentAnalysis) model.RiskAnalysis {
	totals := make(map[string]int)
	for _, doc := range docs {
		for name, hits := range doc.Phrases {
			totals[name] += hits.Total
		}
	}

	analysis := model.RiskAnalysis{InstanceFactor: instanceFactor(docs)}
	weighted := 0
	for _, tier := range riskTiers {
		t := model.RiskTier{Level: tier.level, Categories: tier.categories}
		for _, name := range tier.categories {
			t.Total += totals[name]
		}
		weighted += tier.weight * t.Total
		analysis.Tiers = append(analysis.Tiers, t)
	}

	analysis.Value = float64(weighted) * analysis.InstanceFactor
	analysis.Level = riskLevel(analysis.Value, len(docs))
	analysis.Interpretation = interpretRisk(analysis.Level)
	return analysis
}

// instanceFactor scales risk by the share of supreme and appellate rulings
func instanceFactor(docs []model.DocumentAnalysis) float64 {
	if len(docs) == 0 {
		return 1
	}
	supreme, appellate := 0, 0
	for _, doc := range docs {
		switch InstanceOf(doc.ID) {
		case model.InstanceSupreme:
			supreme++
		case model.InstanceAppellate:
			appellate++
		}
	}
	n := float64(len(docs))
	return 1 + 0.5*float64(supreme)/n + 0.2*float64(appellate)/n
}

func riskLevel(value float64, docCount int) model.Level {
	if docCount < smallCorpus {
		if value > 30 {
			return model.LevelMedium
		}
		return model.LevelLow
	}
	switch {
	case value > 100:
		return model.LevelHigh
	case value > 50:
		return model.LevelMedium
	default:
		return model.LevelLow
	}
}

func interpretRisk(l model.Level) string {
	switch l {
	case model.LevelHigh:
		return "Riesgo alto: el corpus concentra litigiosidad procedimental en " +
			"instancias superiores, preparar la defensa con especial rigor."
	case model.LevelMedium:
		return "Riesgo medio: presencia relevante de materias contenciosas, revisar precedentes."
	default:
		return "Riesgo bajo: el corpus es mayoritariamente descriptivo."
	}
}
