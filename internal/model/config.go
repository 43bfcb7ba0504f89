package model

import "time"

// Config is the complete runtime configuration
type Config struct {
	CatalogPath string            `yaml:"catalog_path"` // Optional phrase catalog file; built-ins when empty
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Cache       CacheConfig       `yaml:"cache"`
	Classifier  ClassifierConfig  `yaml:"classifier"`
	Output      OutputConfig      `yaml:"output"`
}

// AnalysisConfig tunes the extraction and detection passes
type AnalysisConfig struct {
	ContextWindow     int `yaml:"context_window"`      // Characters captured on each side of a match
	MinDurationMonths int `yaml:"min_duration_months"` // Process duration counted as favorable evidence
}

// ConcurrencyConfig sizes the document worker pool
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// CacheConfig controls the per-document and corpus caches
type CacheConfig struct {
	Enabled          bool          `yaml:"enabled"`
	Dir              string        `yaml:"dir"` // Disk layer location; memory-only when empty
	MemoryTTL        time.Duration `yaml:"memory_ttl"`
	DiskTTL          time.Duration `yaml:"disk_ttl"`
	CorpusTTL        time.Duration `yaml:"corpus_ttl"`
	RecomputeTimeout time.Duration `yaml:"recompute_timeout"`
}

// ClassifierConfig configures the optional statistical classifier.
// An empty provider disables it and the rule-based scorer decides alone.
type ClassifierConfig struct {
	Provider          string  `yaml:"provider"` // "openai", "anthropic", "ollama", ""
	Model             string  `yaml:"model"`
	APIKey            string  `yaml:"api_key,omitempty"`
	BaseURL           string  `yaml:"base_url,omitempty"`
	TimeoutSeconds    int     `yaml:"timeout_seconds"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	HTTPProxy         string  `yaml:"http_proxy,omitempty"`
	HTTPSProxy        string  `yaml:"https_proxy,omitempty"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns the standard configuration
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			ContextWindow:     50,
			MinDurationMonths: 12,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Cache: CacheConfig{
			Enabled:          true,
			MemoryTTL:        30 * time.Minute,
			DiskTTL:          24 * time.Hour,
			CorpusTTL:        5 * time.Minute,
			RecomputeTimeout: 30 * time.Second,
		},
		Classifier: ClassifierConfig{
			TimeoutSeconds:    30,
			RequestsPerSecond: 1,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
