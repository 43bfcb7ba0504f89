// Package classifier provides optional LLM-backed favorability
// classification. The keyword scorer remains the source of truth; a
// provider, when configured, can refine the verdict and the pipeline falls
// back silently when it is unavailable.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Provider classifies ruling text as favorable or unfavorable
type Provider interface {
	// Name returns the provider name
	Name() string

	// Classify evaluates the ruling text
	Classify(ctx context.Context, text string) (*Classification, error)

	// IsAvailable checks if the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// Classification is a provider verdict on one document
type Classification struct {
	Favorable  bool    `json:"favorable"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason,omitempty"`
	Model      string  `json:"model"`
}

// maxPromptChars bounds the document excerpt sent to the provider
const maxPromptChars = 8000

func buildPrompt(text string) string {
	if len(text) > maxPromptChars {
		text = text[:maxPromptChars]
	}
	return fmt.Sprintf(`Eres un analista de jurisprudencia española de seguridad social.
Lee el siguiente texto de una sentencia y decide si la resolución es favorable
al trabajador demandante.

Responde EXCLUSIVAMENTE con un objeto JSON con esta forma:
{"favorable": true|false, "confianza": 0.0-1.0, "motivo": "una frase"}

Texto de la sentencia:
%s`, text)
}

// parseResponse extracts the JSON verdict from a provider reply, tolerating
// markdown fences and surrounding prose.
func parseResponse(raw, modelName string) (*Classification, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response: %q", truncate(raw, 120))
	}

	var payload struct {
		Favorable  bool    `json:"favorable"`
		Confidence float64 `json:"confianza"`
		Reason     string  `json:"motivo"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("malformed response JSON: %w", err)
	}
	if payload.Confidence < 0 {
		payload.Confidence = 0
	}
	if payload.Confidence > 1 {
		payload.Confidence = 1
	}
	return &Classification{
		Favorable:  payload.Favorable,
		Confidence: payload.Confidence,
		Reason:     payload.Reason,
		Model:      modelName,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
