// Package pipeline orchestrates the analysis passes: text extraction,
// phrase matching, favorability scoring, discrepancy detection, argument
// synthesis and corpus aggregation.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gracobjo/sentencias/internal/aggregate"
	"github.com/gracobjo/sentencias/internal/argument"
	"github.com/gracobjo/sentencias/internal/cache"
	"github.com/gracobjo/sentencias/internal/catalog"
	"github.com/gracobjo/sentencias/internal/classifier"
	"github.com/gracobjo/sentencias/internal/discrepancy"
	"github.com/gracobjo/sentencias/internal/extract"
	"github.com/gracobjo/sentencias/internal/model"
	"github.com/gracobjo/sentencias/internal/score"
	"github.com/gracobjo/sentencias/internal/source"
	"github.com/gracobjo/sentencias/internal/worker"
)

// Analyzer wires the analysis stages together. It is safe for concurrent
// use; per-document work is pure over a catalog snapshot.
type Analyzer struct {
	catalog     *catalog.Manager
	extractor   *extract.Extractor
	scorer      *score.Scorer
	detector    *discrepancy.Detector
	synthesizer *argument.Synthesizer
	aggregator  *aggregate.Aggregator
	provider    classifier.Provider // nil when classification is disabled
	limiter     *worker.Limiter
	store       cache.Cache // nil when caching is disabled
	corpus      *cache.CorpusCache
	config      *model.Config

	mu        sync.Mutex
	corpusDir string
}

// New builds an analyzer from configuration. A misconfigured classifier
// only disables itself; the keyword pipeline keeps working.
func New(cfg *model.Config) (*Analyzer, error) {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	provider, err := classifier.NewProvider(cfg.Classifier)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: classifier disabled: %v\n", err)
		provider = nil
	}

	var store cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			store = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	return &Analyzer{
		catalog:     cat,
		extractor:   extract.NewExtractor(cat, cfg.Analysis.ContextWindow),
		scorer:      score.NewScorer(score.DefaultWeights()),
		detector:    discrepancy.NewDetector(cat, cfg.Analysis.MinDurationMonths),
		synthesizer: argument.NewSynthesizer(),
		aggregator:  aggregate.NewAggregator(),
		provider:    provider,
		limiter:     worker.NewLimiter(cfg.Classifier.RequestsPerSecond, 5),
		store:       store,
		corpus:      cache.NewCorpusCache(cfg.Cache.CorpusTTL, cfg.Cache.RecomputeTimeout),
		config:      cfg,
	}, nil
}

// Catalog exposes the phrase catalog for management commands
func (a *Analyzer) Catalog() *catalog.Manager {
	return a.catalog
}

// Config returns the configuration the analyzer was built with
func (a *Analyzer) Config() *model.Config {
	return a.config
}

// AnalyzeText runs the full per-document analysis over raw text
func (a *Analyzer) AnalyzeText(ctx context.Context, text, id string) *model.DocumentAnalysis {
	doc := &model.DocumentAnalysis{
		ID:         id,
		AnalysisID: uuid.NewString(),
		AnalyzedAt: time.Now().UTC(),
		TextLength: len(text),
		Processed:  true,
		Phrases:    a.extractor.Occurrences(text, id),
		Prediction: a.predict(ctx, text),
		Report:     a.Discrepancies(text, id),
	}
	return doc
}

// predict scores the text and lets the configured classifier refine the
// verdict. Classifier failures fall back to the keyword result silently.
func (a *Analyzer) predict(ctx context.Context, text string) *model.PredictionResult {
	pred := a.scorer.Score(text)
	if a.provider == nil {
		return pred
	}

	if err := a.limiter.Wait(ctx, a.provider.Name()); err != nil {
		return pred
	}
	c, err := a.provider.Classify(ctx, text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s classification failed, keeping keyword verdict: %v\n",
			a.provider.Name(), err)
		return pred
	}

	pred.Favorable = c.Favorable
	if c.Confidence > 0 {
		conf := c.Confidence
		if conf < 0.3 {
			conf = 0.3
		}
		if conf > 0.95 {
			conf = 0.95
		}
		pred.Confidence = conf
	}
	pred.Method = "classifier:" + a.provider.Name()
	pred.Label = score.Label(pred.Favorable, pred.Confidence)
	return pred
}

// Discrepancies runs detection and argument synthesis over raw text
func (a *Analyzer) Discrepancies(text, id string) *model.DiscrepancyReport {
	report := a.detector.Analyze(text, id)
	report.Citations = argument.Citations(text)
	report.Arguments = a.synthesizer.Arguments(report)
	report.Recommendation = a.synthesizer.Recommendations(report)
	return report
}

// AnalyzeFile extracts text from a document file and analyzes it, serving
// repeated calls from the cache when the content is unchanged.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*model.DocumentAnalysis, error) {
	text, err := source.Extract(path)
	if err != nil {
		return nil, err
	}
	id := filepath.Base(path)

	key := cache.Key(id, a.catalog.Snapshot().Fingerprint(), []byte(text))
	if a.store != nil {
		if cached, ok := cache.GetAnalysis(a.store, key); ok {
			return cached, nil
		}
	}

	doc := a.AnalyzeText(ctx, text, id)
	if a.store != nil {
		if err := cache.SetAnalysis(a.store, key, doc, 0); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cache write failed for %s: %v\n", id, err)
		}
	}
	return doc, nil
}

// AnalyzeFiles analyzes many files concurrently, isolating per-document
// failures. Results keep input order.
func (a *Analyzer) AnalyzeFiles(ctx context.Context, paths []string) []model.DocumentAnalysis {
	batch := worker.NewBatchProcessor(a, a.config.Concurrency.Workers)
	results := batch.ProcessFiles(ctx, paths)

	docs := make([]model.DocumentAnalysis, 0, len(results))
	for _, r := range results {
		docs = append(docs, *r.Analysis)
	}
	return docs
}

// Aggregate merges per-document analyses into a corpus report
func (a *Analyzer) Aggregate(docs []model.DocumentAnalysis) *model.CorpusReport {
	return a.aggregator.Report(docs)
}

// CorpusFromDir analyzes every supported document in dir and aggregates
// the results. Reports are served from the corpus cache while fresh; a
// directory change invalidates it.
func (a *Analyzer) CorpusFromDir(ctx context.Context, dir string) (*model.CorpusReport, error) {
	a.mu.Lock()
	if a.corpusDir != dir {
		a.corpus.Invalidate()
		a.corpusDir = dir
	}
	a.mu.Unlock()

	return a.corpus.Report(ctx, func(cctx context.Context) (*model.CorpusReport, error) {
		paths, err := worker.ListDocuments(dir)
		if err != nil {
			return nil, err
		}
		docs := a.AnalyzeFiles(cctx, paths)
		if err := cctx.Err(); err != nil {
			return nil, err
		}
		return a.aggregator.Report(docs), nil
	})
}

// InvalidateCorpus drops the cached corpus report, forcing the next call
// to recompute. Catalog edits call this through the CLI.
func (a *Analyzer) InvalidateCorpus() {
	a.corpus.Invalidate()
}
