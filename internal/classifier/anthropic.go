package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gracobjo/sentencias/internal/model"
	"github.com/gracobjo/sentencias/internal/util"
)

// AnthropicProvider implements the Provider interface for Claude models
type AnthropicProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	config     model.ClassifierConfig
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Messages    []anthropicMessage `json:"messages"`
	System      string             `json:"system,omitempty"`
	Temperature float64            `json:"temperature,omitempty"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Model string `json:"model"`
}

type anthropicError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewAnthropicProvider creates a new Anthropic provider
func NewAnthropicProvider(config model.ClassifierConfig) (*AnthropicProvider, error) {
	if config.APIKey == "" {
		return nil, &model.ClassifierError{
			Provider: "anthropic",
			Err:      fmt.Errorf("API key is required"),
		}
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}
	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &AnthropicProvider{
		apiKey:  config.APIKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(config.HTTPProxy, config.HTTPSProxy),
			},
		},
		config: config,
	}, nil
}

func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// IsAvailable reports whether the provider has credentials. Anthropic has
// no cheap list endpoint, so no network call is made.
func (p *AnthropicProvider) IsAvailable(ctx context.Context) bool {
	return p.apiKey != ""
}

// Classify asks Claude for a favorability verdict on the ruling text
func (p *AnthropicProvider) Classify(ctx context.Context, text string) (*Classification, error) {
	modelName := p.config.Model
	if modelName == "" {
		modelName = "claude-3-5-haiku-latest"
	}

	body, err := json.Marshal(anthropicRequest{
		Model:     modelName,
		MaxTokens: 200,
		System:    "Clasificas sentencias españolas de seguridad social y respondes solo con JSON.",
		Messages: []anthropicMessage{
			{Role: "user", Content: buildPrompt(text)},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return nil, &model.ClassifierError{Provider: "anthropic", Err: err}
	}

	url := fmt.Sprintf("%s/v1/messages", p.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &model.ClassifierError{Provider: "anthropic", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &model.ClassifierError{Provider: "anthropic", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.ClassifierError{Provider: "anthropic", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr anthropicError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, &model.ClassifierError{
				Provider: "anthropic",
				Err:      fmt.Errorf("API error: %s", apiErr.Error.Message),
			}
		}
		return nil, &model.ClassifierError{
			Provider: "anthropic",
			Err:      fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var out anthropicResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &model.ClassifierError{Provider: "anthropic", Err: err}
	}
	if len(out.Content) == 0 {
		return nil, &model.ClassifierError{
			Provider: "anthropic",
			Err:      fmt.Errorf("empty response"),
		}
	}

	c, err := parseResponse(strings.TrimSpace(out.Content[0].Text), out.Model)
	if err != nil {
		return nil, &model.ClassifierError{Provider: "anthropic", Err: err}
	}
	return c, nil
}
