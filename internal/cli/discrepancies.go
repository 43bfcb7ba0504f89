package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gracobjo/sentencias/internal/pipeline"
	"github.com/gracobjo/sentencias/internal/source"
)

// discrepanciesCmd represents the discrepancies command
var discrepanciesCmd = &cobra.Command{
	Use:   "discrepancies <file>",
	Short: "Detectar discrepancias médico-legales en un documento",
	Long: `Discrepancies runs only the medical/legal discrepancy pass:
- Classify the document (medical report, ruling, generic)
- Detect classification mismatches, limitation vs discharge conflicts,
  subjective minimization and internal contradictions
- Collect favorable evidence for an IPP claim
- Synthesize legal arguments under art. 194.2 LGSS

Example:
  sentencias discrepancies informe_medico.pdf
  sentencias discrepancies informe.txt --json discrepancias.json`,
	Args: cobra.ExactArgs(1),
	RunE: runDiscrepancies,
}

func init() {
	rootCmd.AddCommand(discrepanciesCmd)

	discrepanciesCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	discrepanciesCmd.Flags().StringVar(&catalogPath, "catalog", "", "phrase catalog YAML file (built-in catalog when empty)")
}

func runDiscrepancies(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg := buildConfig()
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}

	analyzer, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}

	text, err := source.Extract(path)
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}

	report := analyzer.Discrepancies(text, filepath.Base(path))

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Document kind: %s\n", report.Kind)
		fmt.Fprintf(os.Stderr, "✓ Discrepancies: %d, evidence: %d, score: %d/100\n",
			len(report.Discrepancies), len(report.Evidence), report.Score)
		fmt.Fprintln(os.Stderr)
	}

	renderer := pipeline.NewRenderer(cfg.Output)
	if outJSON != "" {
		f, err := os.Create(outJSON)
		if err != nil {
			return fmt.Errorf("create %s: %w", outJSON, err)
		}
		defer f.Close()
		return renderer.JSON(f, report)
	}
	renderer.Discrepancies(os.Stdout, report)
	return nil
}
