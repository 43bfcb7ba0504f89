package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	outJSON        string
	outMD          string
	analyzeTimeout time.Duration
	noCache        bool
	noFooter       bool
	catalogPath    string
	clfProvider    string
	clfModel       string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analizar un documento y generar el informe completo",
	Long: `Analyze runs the full pipeline on a single document:
- Extract key phrases against the configured catalog
- Score favorability across six weighted factors
- Detect medical/legal discrepancies and favorable evidence
- Synthesize legal arguments and recommendations

Supported formats: .txt, .md, .pdf, .html, .htm

Example:
  sentencias analyze sentencia_243_2024.pdf
  sentencias analyze informe.txt --json informe.json --md informe.md
  sentencias analyze sts_1234_2023.txt --classifier openai --model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional, defaults to stdout)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Pipeline flags
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh analysis)")
	analyzeCmd.Flags().StringVar(&catalogPath, "catalog", "", "phrase catalog YAML file (built-in catalog when empty)")

	// Classifier flags
	analyzeCmd.Flags().StringVar(&clfProvider, "classifier", "", "statistical classifier provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&clfModel, "model", "", "classifier model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	cfg := buildConfig()
	if noCache {
		cfg.Cache.Enabled = false
	}
	cfg.Output.IncludeFooter = !noFooter
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}
	if clfProvider != "" {
		cfg.Classifier.Provider = clfProvider
	}
	if clfModel != "" {
		cfg.Classifier.Model = clfModel
	}
	if cfg.Classifier.Provider != "" && cfg.Classifier.APIKey == "" {
		switch cfg.Classifier.Provider {
		case "openai":
			cfg.Classifier.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.Classifier.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			cfg.Classifier.APIKey = os.Getenv("ANTHROPIC_API_KEY")
			if cfg.Classifier.APIKey == "" {
				return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		case "ollama":
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.Classifier.BaseURL = baseURL
			}
		}
	}

	analyzer, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		if cfg.Classifier.Provider != "" {
			fmt.Fprintf(os.Stderr, "Classifier: %s/%s\n", cfg.Classifier.Provider, cfg.Classifier.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	doc, err := analyzer.AnalyzeFile(ctx, path)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d phrase occurrences\n", doc.TotalOccurrences())
		if doc.Prediction != nil {
			fmt.Fprintf(os.Stderr, "✓ Prediction: %s (confidence %.2f, method %s)\n",
				doc.Prediction.Label, doc.Prediction.Confidence, doc.Prediction.Method)
		}
		if doc.Report != nil {
			fmt.Fprintf(os.Stderr, "✓ Found %d discrepancies, %d favorable evidence items\n",
				len(doc.Report.Discrepancies), len(doc.Report.Evidence))
		}
		fmt.Fprintln(os.Stderr)
	}

	return writeDocumentReport(analyzer, doc)
}
