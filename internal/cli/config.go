package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gracobjo/sentencias/internal/model"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sentencias configuration",
	Long: `Manage sentencias configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (SENTENCIAS_*, OPENAI_API_KEY, ANTHROPIC_API_KEY)
3. Config file (~/.sentencias/config.yaml)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig()

		configFile := viper.ConfigFileUsed()
		if configFile != "" {
			fmt.Fprintf(os.Stderr, "Configuration file: %s\n\n", configFile)
		} else {
			fmt.Fprintf(os.Stderr, "No configuration file found (using defaults)\n\n")
		}

		yamlData, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}
		fmt.Println(string(yamlData))

		fmt.Println("Configuration hierarchy (highest to lowest priority):")
		fmt.Println("  1. CLI flags")
		fmt.Println("  2. Environment variables (SENTENCIAS_*, OPENAI_API_KEY, ANTHROPIC_API_KEY)")
		fmt.Println("  3. Config file (~/.sentencias/config.yaml)")
		fmt.Println("  4. Defaults")
		fmt.Println()

		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	Long:  `Create a default configuration file at ~/.sentencias/config.yaml with all available options documented.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error finding home directory: %w", err)
		}

		configDir := filepath.Join(home, ".sentencias")
		configPath := filepath.Join(configDir, "config.yaml")

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config file already exists: %s\nUse 'sentencias config show' to view it, or delete it first to recreate", configPath)
		}

		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("error creating config directory: %w", err)
		}

		f, err := os.Create(configPath)
		if err != nil {
			return fmt.Errorf("error creating config file: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close config file: %w", closeErr)
			}
		}()

		printf := func(format string, a ...interface{}) {
			if err != nil {
				return
			}
			_, err = fmt.Fprintf(f, format, a...)
		}

		defaultCfg := model.DefaultConfig()

		printf("# sentencias configuration file\n")
		printf("#\n")
		printf("# Configuration hierarchy (highest to lowest priority):\n")
		printf("#   1. CLI flags\n")
		printf("#   2. Environment variables (SENTENCIAS_*)\n")
		printf("#   3. This config file\n")
		printf("#   4. Built-in defaults\n\n")

		printf("# Phrase catalog file. Empty uses the built-in IPP/LPNI catalog.\n")
		printf("catalog_path: \"%s\"\n\n", defaultCfg.CatalogPath)

		printf("analysis:\n")
		printf("  # Characters captured on each side of a phrase match\n")
		printf("  context_window: %d\n", defaultCfg.Analysis.ContextWindow)
		printf("  # Process duration counted as favorable evidence\n")
		printf("  min_duration_months: %d\n\n", defaultCfg.Analysis.MinDurationMonths)

		printf("concurrency:\n")
		printf("  workers: %d\n\n", defaultCfg.Concurrency.Workers)

		printf("cache:\n")
		printf("  enabled: %t\n", defaultCfg.Cache.Enabled)
		printf("  # Disk layer location. Empty keeps the cache in memory only.\n")
		printf("  dir: \"\"\n")
		printf("  memory_ttl: %s\n", defaultCfg.Cache.MemoryTTL)
		printf("  disk_ttl: %s\n", defaultCfg.Cache.DiskTTL)
		printf("  corpus_ttl: %s\n", defaultCfg.Cache.CorpusTTL)
		printf("  recompute_timeout: %s\n\n", defaultCfg.Cache.RecomputeTimeout)

		printf("classifier:\n")
		printf("  # Optional statistical classifier: openai, anthropic, ollama.\n")
		printf("  # Empty disables it and the rule-based scorer decides alone.\n")
		printf("  provider: \"\"\n")
		printf("  model: \"\"\n")
		printf("  # API keys come from OPENAI_API_KEY / ANTHROPIC_API_KEY.\n")
		printf("  timeout_seconds: %d\n", defaultCfg.Classifier.TimeoutSeconds)
		printf("  requests_per_second: %g\n\n", defaultCfg.Classifier.RequestsPerSecond)

		printf("output:\n")
		printf("  verbose: %t\n", defaultCfg.Output.Verbose)
		printf("  include_footer: %t\n", defaultCfg.Output.IncludeFooter)

		if err != nil {
			return fmt.Errorf("error writing config file: %w", err)
		}

		fmt.Printf("✓ Created configuration file: %s\n", configPath)
		fmt.Println("\nEdit this file to customize sentencias behavior.")
		fmt.Println("Run 'sentencias config show' to view the current configuration.")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
