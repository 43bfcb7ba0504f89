package classifier

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/gracobjo/sentencias/internal/model"
)

// OpenAIProvider implements the Provider interface for OpenAI models
type OpenAIProvider struct {
	client *openai.Client
	config model.ClassifierConfig
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(config model.ClassifierConfig) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, &model.ClassifierError{
			Provider: "openai",
			Err:      fmt.Errorf("API key is required"),
		}
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.ListModels(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "OpenAI API check failed: %v\n", err)
		return false
	}
	return true
}

// Classify asks the model for a favorability verdict on the ruling text
func (p *OpenAIProvider) Classify(ctx context.Context, text string) (*Classification, error) {
	modelName := p.config.Model
	if modelName == "" {
		modelName = openai.GPT4oMini
	}

	timeout := time.Duration(p.config.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "Clasificas sentencias españolas de seguridad social y respondes solo con JSON.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(text),
			},
		},
		MaxTokens:   200,
		Temperature: 0.1,
	}

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, req)
	if err != nil {
		return nil, &model.ClassifierError{Provider: "openai", Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &model.ClassifierError{
			Provider: "openai",
			Err:      fmt.Errorf("empty response"),
		}
	}

	c, err := parseResponse(strings.TrimSpace(resp.Choices[0].Message.Content), resp.Model)
	if err != nil {
		return nil, &model.ClassifierError{Provider: "openai", Err: err}
	}
	return c, nil
}
