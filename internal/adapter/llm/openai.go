package llm

import (
	"context"
	"fmt"

	"study-helper/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	systemPrompt = "You are an expert educational content creator. Generate accurate, helpful study materials in JSON format."
	temperature  = 0.7
	maxTokens    = 1000
)

// OpenAICompleter implements domain.TextCompleter with a LangchainGo OpenAI chat model.
type OpenAICompleter struct {
	model llms.Model
}

// NewOpenAICompleter creates a completer for the given key and model. baseURL
// may point at any OpenAI-compatible endpoint and is optional.
func NewOpenAICompleter(apiKey, modelName, baseURL string) (*OpenAICompleter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key cannot be empty")
	}
	if modelName == "" {
		modelName = "gpt-3.5-turbo"
	}

	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(modelName),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo OpenAI client: %w", err)
	}
	return &OpenAICompleter{model: model}, nil
}

func (c *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
			llms.TextParts(llms.ChatMessageTypeHuman, prompt),
		},
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Content, nil
}

func (c *OpenAICompleter) Name() string {
	return "openai"
}

var _ domain.TextCompleter = (*OpenAICompleter)(nil)
