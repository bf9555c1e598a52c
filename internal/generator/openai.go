package generator

import (
	"context"
	"fmt"
	"os"

	"github.com/raysh454/siteforge/internal/interfaces"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerator talks to OpenAI's hosted API, or to any server that speaks
// the same chat-completions protocol when given a base URL.
type OpenAIGenerator struct {
	client    *openai.Client
	name      string
	model     string
	maxTokens int
	logger    interfaces.Logger
}

func NewOpenAIGenerator(cfg Config, logger interfaces.Logger) (*OpenAIGenerator, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("SITEFORGE_OPENAI_KEY")
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: SITEFORGE_OPENAI_KEY or OPENAI_API_KEY not set", ErrModelUnavailable)
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o"
	}

	return newOpenAICompatible(openai.NewClient(apiKey), BackendOpenAI, model, cfg, logger), nil
}

// NewLocalGenerator targets an OpenAI-compatible local server such as Ollama.
// No credentials are required; the key is a placeholder the protocol demands.
func NewLocalGenerator(cfg Config, logger interfaces.Logger) (*OpenAIGenerator, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultConfig().BaseURL
	}

	clientCfg := openai.DefaultConfig("local")
	clientCfg.BaseURL = baseURL

	model := cfg.Model
	if model == "" {
		model = DefaultConfig().Model
	}

	return newOpenAICompatible(openai.NewClientWithConfig(clientCfg), BackendLocal, model, cfg, logger), nil
}

func newOpenAICompatible(client *openai.Client, name, model string, cfg Config, logger interfaces.Logger) *OpenAIGenerator {
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultConfig().MaxTokens
	}
	return &OpenAIGenerator{
		client:    client,
		name:      name,
		model:     model,
		maxTokens: maxTokens,
		logger:    logger.With(interfaces.Field{Key: "backend", Value: name}),
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s api: %w", g.name, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty response from %s model %s", g.name, g.model)
	}

	text := resp.Choices[0].Message.Content
	g.logger.Debug("model response received",
		interfaces.Field{Key: "model", Value: g.model},
		interfaces.Field{Key: "chars", Value: len(text)})
	return text, nil
}

func (g *OpenAIGenerator) Name() string { return g.name }
