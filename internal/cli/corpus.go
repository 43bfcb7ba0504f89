package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
)

var (
	corpusTimeout time.Duration
	concurrency   int
	fresh         bool
)

// corpusCmd represents the corpus command
var corpusCmd = &cobra.Command{
	Use:   "corpus <dir>",
	Short: "Agregar un directorio de documentos en un informe de corpus",
	Long: `Corpus analyzes every supported document under a directory and
aggregates the results:
- Instance-weighted category ranking (Tribunal Supremo counts 1.5x)
- Calibrated aggregate probability with small-corpus damping
- Key favorability factors and trend
- Economic risk analysis for the managing entity

Reports are cached and recomputed when the TTL expires.

Example:
  sentencias corpus ./sentencias
  sentencias corpus ./sentencias --json corpus.json --fresh
  sentencias corpus ./sentencias --concurrency 8 --timeout 10m`,
	Args: cobra.ExactArgs(1),
	RunE: runCorpus,
}

func init() {
	rootCmd.AddCommand(corpusCmd)

	corpusCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	corpusCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional, defaults to stdout)")
	corpusCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	corpusCmd.Flags().DurationVar(&corpusTimeout, "timeout", 10*time.Minute, "total timeout for corpus processing")
	corpusCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	corpusCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the per-document cache")
	corpusCmd.Flags().BoolVar(&fresh, "fresh", false, "discard the cached corpus report and recompute")
	corpusCmd.Flags().StringVar(&catalogPath, "catalog", "", "phrase catalog YAML file (built-in catalog when empty)")
}

func runCorpus(cmd *cobra.Command, args []string) error {
	dir := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), corpusTimeout)
	defer cancel()

	cfg := buildConfig()
	if noCache {
		cfg.Cache.Enabled = false
	}
	cfg.Output.IncludeFooter = !noFooter
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}

	analyzer, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	if fresh {
		analyzer.InvalidateCorpus()
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Corpus: %s\n", dir)
		fmt.Fprintf(os.Stderr, "Workers: %d\n", cfg.Concurrency.Workers)
		fmt.Fprintln(os.Stderr)
	}

	report, err := analyzer.CorpusFromDir(ctx, dir)
	if err != nil {
		return fmt.Errorf("corpus failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Processed %d/%d documents\n", report.ProcessedCount, report.DocumentCount)
		fmt.Fprintf(os.Stderr, "✓ Aggregate probability: %.2f (confidence %.2f)\n",
			report.Prediction.ProbabilityFavorable, report.Prediction.DataConfidence)
		if report.Stale {
			fmt.Fprintf(os.Stderr, "! Served from an expired cache entry\n")
		}
		fmt.Fprintln(os.Stderr)
	}

	return writeCorpusReport(analyzer, report)
}
