package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gracobjo/sentencias/internal/pipeline"
	"github.com/gracobjo/sentencias/internal/worker"
)

var (
	batchOutputDir string
	batchTimeout   time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file-or-dir>",
	Short: "Analizar múltiples documentos en paralelo",
	Long: `Batch processes many documents concurrently:
- Accepts a directory of documents or a list file (one path per line,
  blank lines and # comments ignored)
- Analyzes documents in parallel with a configurable worker count
- Writes one JSON report per document to the output directory
- A failed document never aborts the batch

Example:
  sentencias batch ./sentencias
  sentencias batch documentos.txt --concurrency 8 --output-dir ./informes
  sentencias batch ./sentencias --timeout 15m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "./sentencias-informes", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the per-document cache")
	batchCmd.Flags().StringVar(&catalogPath, "catalog", "", "phrase catalog YAML file (built-in catalog when empty)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildConfig()
	if noCache {
		cfg.Cache.Enabled = false
	}
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

	paths, err := resolveBatchInput(input)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no supported documents in %s", input)
	}

	if err := os.MkdirAll(batchOutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Processing %d documents with %d workers...\n", len(paths), cfg.Concurrency.Workers)

	docs := analyzer.AnalyzeFiles(ctx, paths)

	renderer := pipeline.NewRenderer(cfg.Output)
	succeeded, failed := 0, 0
	for i := range docs {
		doc := &docs[i]
		if doc.Error != "" {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %s\n", doc.ID, doc.Error)
			continue
		}
		succeeded++
		name := reportFileName(doc.ID)
		f, err := os.Create(filepath.Join(batchOutputDir, name))
		if err != nil {
			return fmt.Errorf("create report for %s: %w", doc.ID, err)
		}
		writeErr := renderer.JSON(f, doc)
		closeErr := f.Close()
		if writeErr != nil {
			return fmt.Errorf("write report for %s: %w", doc.ID, writeErr)
		}
		if closeErr != nil {
			return fmt.Errorf("close report for %s: %w", doc.ID, closeErr)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s → %s\n", doc.ID, name)
		}
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d succeeded, %d failed, reports in %s\n", succeeded, failed, batchOutputDir)
	return nil
}

// resolveBatchInput expands a directory or list file into document paths
func resolveBatchInput(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", input, err)
	}
	if info.IsDir() {
		return worker.ListDocuments(input)
	}
	return worker.ReadPathsFromFile(input)
}

// reportFileName derives a safe JSON report name from a document id
func reportFileName(docID string) string {
	base := strings.TrimSuffix(docID, filepath.Ext(docID))
	base = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, base)
	return base + ".json"
}
