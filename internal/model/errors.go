package model

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a malformed or empty catalog. It is fatal at
// load time: the engine refuses to start without a usable catalog.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "catalog configuration: " + e.Reason
}

// ExtractionError reports that a document's text could not be extracted.
// It is recovered locally by producing an unprocessed DocumentAnalysis.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract text from %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ClassifierError reports an optional-model failure. Callers always recover
// via the rule-based scorer; the error never reaches the end user.
type ClassifierError struct {
	Provider string
	Err      error
}

func (e *ClassifierError) Error() string {
	return fmt.Sprintf("classifier %s: %v", e.Provider, e.Err)
}

func (e *ClassifierError) Unwrap() error { return e.Err }

// ErrAggregationTimeout signals that a corpus recompute exceeded its time
// budget. The cache serves the last good result marked stale instead.
var ErrAggregationTimeout = errors.New("corpus aggregation timed out")
