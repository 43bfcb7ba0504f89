package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gracobjo/sentencias/internal/model"
	"github.com/gracobjo/sentencias/internal/source"
)

// Analyzer analyzes one document file
type Analyzer interface {
	AnalyzeFile(ctx context.Context, path string) (*model.DocumentAnalysis, error)
}

// AnalysisJob analyzes a single file; the index preserves input order
type AnalysisJob struct {
	Index    int
	Path     string
	Analyzer Analyzer
}

// AnalysisResult is the outcome of one analysis job. A failed document
// carries a partial analysis with the error recorded, never a nil one.
type AnalysisResult struct {
	Index    int
	Path     string
	Analysis *model.DocumentAnalysis
	Err      error
}

func (r *AnalysisResult) GetError() error {
	return r.Err
}

// Execute runs the analysis for one file
func (j *AnalysisJob) Execute(ctx context.Context) Result {
	analysis, err := j.Analyzer.AnalyzeFile(ctx, j.Path)
	if err != nil {
		analysis = &model.DocumentAnalysis{
			ID:    filepath.Base(j.Path),
			Error: err.Error(),
		}
	}
	return &AnalysisResult{
		Index:    j.Index,
		Path:     j.Path,
		Analysis: analysis,
		Err:      err,
	}
}

// BatchProcessor analyzes many documents concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor with bounded concurrency
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{analyzer: analyzer, concurrency: concurrency}
}

// ProcessFiles analyzes the given files concurrently. Results come back in
// input order; one failed document does not abort the rest.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*AnalysisResult {
	if len(paths) == 0 {
		return []*AnalysisResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// ctx.Done is nil for non-cancellable contexts; skip the watcher then
	// so it cannot leak.
	if done := ctx.Done(); done != nil {
		stop := make(chan struct{})
		defer close(stop)
		go func() {
			select {
			case <-done:
				pool.Shutdown()
			case <-stop:
			}
		}()
	}

	// Submission must overlap with draining: the queue and result buffers
	// are smaller than a realistic corpus.
	go func() {
		for i, path := range paths {
			pool.Submit(&AnalysisJob{Index: i, Path: path, Analyzer: b.analyzer})
		}
		pool.Close()
	}()

	results := pool.Wait()
	ordered := make([]*AnalysisResult, len(paths))
	for _, r := range results {
		res := r.(*AnalysisResult)
		ordered[res.Index] = res
	}

	// Under cancellation some slots never produced a result.
	compact := ordered[:0]
	for _, res := range ordered {
		if res != nil {
			compact = append(compact, res)
		}
	}
	return compact
}

// ProcessDir analyzes every supported document in a directory
func (b *BatchProcessor) ProcessDir(ctx context.Context, dir string) ([]*AnalysisResult, error) {
	paths, err := ListDocuments(dir)
	if err != nil {
		return nil, err
	}
	return b.ProcessFiles(ctx, paths), nil
}

// ProcessList reads document paths from a list file and analyzes them
func (b *BatchProcessor) ProcessList(ctx context.Context, listPath string) ([]*AnalysisResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read document list: %w", err)
	}
	return b.ProcessFiles(ctx, paths), nil
}

// ListDocuments returns the supported document files in dir, sorted by name
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !source.Supported(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadPathsFromFile reads file paths from a list file, one per line.
// Empty lines and # comments are skipped; duplicates are dropped.
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return paths, nil
}
