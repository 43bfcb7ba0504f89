package classifier

import (
	"fmt"
	"strings"

	"github.com/gracobjo/sentencias/internal/model"
)

// NewProvider creates a classifier provider from configuration. An empty
// provider name disables classification and returns nil without error.
func NewProvider(config model.ClassifierConfig) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown classifier provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}
