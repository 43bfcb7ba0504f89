package cli

import (
	"fmt"
	"os"

	"github.com/gracobjo/sentencias/internal/model"
	"github.com/gracobjo/sentencias/internal/pipeline"
)

// writeDocumentReport renders a document analysis to the configured outputs.
// Markdown goes to stdout unless --json or --md redirect it.
func writeDocumentReport(analyzer *pipeline.Analyzer, doc *model.DocumentAnalysis) error {
	renderer := pipeline.NewRenderer(analyzer.Config().Output)

	if outJSON != "" {
		f, err := os.Create(outJSON)
		if err != nil {
			return fmt.Errorf("create %s: %w", outJSON, err)
		}
		defer f.Close()
		if err := renderer.JSON(f, doc); err != nil {
			return fmt.Errorf("write JSON report: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ JSON report: %s\n", outJSON)
		}
	}

	if outMD != "" {
		f, err := os.Create(outMD)
		if err != nil {
			return fmt.Errorf("create %s: %w", outMD, err)
		}
		defer f.Close()
		renderer.Document(f, doc)
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Markdown report: %s\n", outMD)
		}
	}

	if outJSON == "" && outMD == "" {
		renderer.Document(os.Stdout, doc)
	}
	return nil
}

// writeCorpusReport renders a corpus report to the configured outputs
func writeCorpusReport(analyzer *pipeline.Analyzer, report *model.CorpusReport) error {
	renderer := pipeline.NewRenderer(analyzer.Config().Output)

	if outJSON != "" {
		f, err := os.Create(outJSON)
		if err != nil {
			return fmt.Errorf("create %s: %w", outJSON, err)
		}
		defer f.Close()
		if err := renderer.JSON(f, report); err != nil {
			return fmt.Errorf("write JSON report: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ JSON report: %s\n", outJSON)
		}
	}

	if outMD != "" {
		f, err := os.Create(outMD)
		if err != nil {
			return fmt.Errorf("create %s: %w", outMD, err)
		}
		defer f.Close()
		renderer.Corpus(f, report)
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Markdown report: %s\n", outMD)
		}
	}

	if outJSON == "" && outMD == "" {
		renderer.Corpus(os.Stdout, report)
	}
	return nil
}
