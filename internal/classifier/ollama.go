package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gracobjo/sentencias/internal/model"
	"github.com/gracobjo/sentencias/internal/util"
)

// OllamaProvider implements the Provider interface for Ollama local models
type OllamaProvider struct {
	baseURL    string
	httpClient *http.Client
	config     model.ClassifierConfig
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	System  string        `json:"system,omitempty"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type ollamaError struct {
	Error string `json:"error"`
}

// NewOllamaProvider creates a new Ollama provider
func NewOllamaProvider(config model.ClassifierConfig) (*OllamaProvider, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}

	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	if timeout == 0 {
		// Local models can be slow on first load
		timeout = 60 * time.Second
	}

	return &OllamaProvider{
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

func (p *OllamaProvider) Name() string {
	return "ollama"
}

// IsAvailable checks if Ollama is running by listing its models
func (p *OllamaProvider) IsAvailable(ctx context.Context) bool {
	url := fmt.Sprintf("%s/api/tags", p.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ollama availability check failed (connection to %s): %v\n", p.baseURL, err)
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode == http.StatusOK
}

// Classify asks the local model for a favorability verdict
func (p *OllamaProvider) Classify(ctx context.Context, text string) (*Classification, error) {
	modelName := p.config.Model
	if modelName == "" {
		modelName = "llama3.2"
	}

	body, err := json.Marshal(ollamaRequest{
		Model:  modelName,
		Prompt: buildPrompt(text),
		Stream: false,
		System: "Clasificas sentencias españolas de seguridad social y respondes solo con JSON.",
		Options: ollamaOptions{
			Temperature: 0.1,
			NumPredict:  200,
		},
	})
	if err != nil {
		return nil, &model.ClassifierError{Provider: "ollama", Err: err}
	}

	url := fmt.Sprintf("%s/api/generate", p.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &model.ClassifierError{Provider: "ollama", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &model.ClassifierError{Provider: "ollama", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.ClassifierError{Provider: "ollama", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr ollamaError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return nil, &model.ClassifierError{
				Provider: "ollama",
				Err:      fmt.Errorf("API error: %s", apiErr.Error),
			}
		}
		return nil, &model.ClassifierError{
			Provider: "ollama",
			Err:      fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var out ollamaResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &model.ClassifierError{Provider: "ollama", Err: err}
	}

	c, err := parseResponse(strings.TrimSpace(out.Response), out.Model)
	if err != nil {
		return nil, &model.ClassifierError{Provider: "ollama", Err: err}
	}
	return c, nil
}
