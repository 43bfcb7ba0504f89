package cli

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestBuildConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := buildConfig()

	if cfg.Concurrency.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Concurrency.Workers)
	}
	if !cfg.Cache.Enabled {
		t.Error("cache should be enabled by default")
	}
	if cfg.Classifier.Provider != "" {
		t.Errorf("classifier should be disabled by default, got %q", cfg.Classifier.Provider)
	}
}

func TestBuildConfigOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("catalog_path", "frases.yaml")
	viper.Set("concurrency.workers", 8)
	viper.Set("cache.corpus_ttl", "10m")
	viper.Set("classifier.provider", "ollama")
	viper.Set("classifier.model", "llama3.2")

	cfg := buildConfig()

	if cfg.CatalogPath != "frases.yaml" {
		t.Errorf("CatalogPath = %q", cfg.CatalogPath)
	}
	if cfg.Concurrency.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Concurrency.Workers)
	}
	if cfg.Cache.CorpusTTL != 10*time.Minute {
		t.Errorf("CorpusTTL = %v, want 10m", cfg.Cache.CorpusTTL)
	}
	if cfg.Classifier.Provider != "ollama" || cfg.Classifier.Model != "llama3.2" {
		t.Errorf("classifier = %s/%s", cfg.Classifier.Provider, cfg.Classifier.Model)
	}
}

func TestBuildConfigAPIKeyFromEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("classifier.provider", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := buildConfig()
	if cfg.Classifier.APIKey != "sk-test" {
		t.Errorf("APIKey = %q, want value from OPENAI_API_KEY", cfg.Classifier.APIKey)
	}
}

func TestReportFileName(t *testing.T) {
	cases := map[string]string{
		"sentencia_243_2024.pdf": "sentencia_243_2024.json",
		"informe médico.txt":     "informe_médico.json",
		"sts/1234.html":          "sts_1234.json",
	}
	for in, want := range cases {
		if got := reportFileName(in); got != want {
			t.Errorf("reportFileName(%q) = %q, want %q", in, got, want)
		}
	}
}
