// Package cli implements the sentencias command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gracobjo/sentencias/internal/model"
	"github.com/gracobjo/sentencias/internal/pipeline"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sentencias",
	Short: "Análisis de sentencias de incapacidad permanente parcial",
	Long: `sentencias analiza resoluciones judiciales e informes médicos españoles
sobre incapacidad permanente parcial (IPP) y lesiones permanentes no
incapacitantes (LPNI).

Extrae frases clave, predice la favorabilidad del fallo, detecta
discrepancias entre la evidencia médica y la calificación legal, y agrega
corpus completos con probabilidad calibrada y análisis de riesgo.

La herramienta es orientativa y no constituye asesoramiento jurídico.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sentencias v0.3.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.sentencias/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(filepath.Join(home, ".sentencias"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("SENTENCIAS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// buildConfig merges defaults, the config file and environment variables
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("catalog_path"); v != "" {
		cfg.CatalogPath = v
	}
	if v := viper.GetInt("concurrency.workers"); v > 0 {
		cfg.Concurrency.Workers = v
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if v := viper.GetString("cache.dir"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := viper.GetDuration("cache.memory_ttl"); v > 0 {
		cfg.Cache.MemoryTTL = v
	}
	if v := viper.GetDuration("cache.disk_ttl"); v > 0 {
		cfg.Cache.DiskTTL = v
	}
	if v := viper.GetDuration("cache.corpus_ttl"); v > 0 {
		cfg.Cache.CorpusTTL = v
	}
	if v := viper.GetString("classifier.provider"); v != "" {
		cfg.Classifier.Provider = v
	}
	if v := viper.GetString("classifier.model"); v != "" {
		cfg.Classifier.Model = v
	}
	if v := viper.GetString("classifier.api_key"); v != "" {
		cfg.Classifier.APIKey = v
	}
	if v := viper.GetString("classifier.base_url"); v != "" {
		cfg.Classifier.BaseURL = v
	}
	if v := viper.GetFloat64("classifier.requests_per_second"); v > 0 {
		cfg.Classifier.RequestsPerSecond = v
	}
	cfg.Output.Verbose = verbose

	// Default disk cache location and provider credentials from the
	// conventional environment variables.
	if cfg.Cache.Enabled && cfg.Cache.Dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Cache.Dir = filepath.Join(home, ".sentencias", "cache")
		}
	}
	if cfg.Classifier.APIKey == "" {
		switch cfg.Classifier.Provider {
		case "openai":
			cfg.Classifier.APIKey = os.Getenv("OPENAI_API_KEY")
		case "anthropic", "claude":
			cfg.Classifier.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}
	return cfg
}

// newAnalyzer builds the pipeline from the merged configuration
func newAnalyzer(cfg *model.Config) (*pipeline.Analyzer, error) {
	analyzer, err := pipeline.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize analyzer: %w", err)
	}
	return analyzer, nil
}
