package generator

import (
	"context"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/raysh454/siteforge/internal/interfaces"
)

// ClaudeGenerator talks to Anthropic's hosted API.
type ClaudeGenerator struct {
	client    *anthropic.Client
	model     string
	maxTokens int
	logger    interfaces.Logger
}

func NewClaudeGenerator(cfg Config, logger interfaces.Logger) (*ClaudeGenerator, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("SITEFORGE_ANTHROPIC_KEY")
	}
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: SITEFORGE_ANTHROPIC_KEY or ANTHROPIC_API_KEY not set", ErrModelUnavailable)
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	model := cfg.Model
	if model == "" {
		model = string(anthropic.ModelClaudeSonnet4_20250514)
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultConfig().MaxTokens
	}

	return &ClaudeGenerator{
		client:    &client,
		model:     model,
		maxTokens: maxTokens,
		logger:    logger.With(interfaces.Field{Key: "backend", Value: BackendClaude}),
	}, nil
}

func (g *ClaudeGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: int64(g.maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude api: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	if text == "" {
		return "", fmt.Errorf("empty response from claude model %s", g.model)
	}

	g.logger.Debug("model response received",
		interfaces.Field{Key: "model", Value: g.model},
		interfaces.Field{Key: "chars", Value: len(text)})
	return text, nil
}

func (g *ClaudeGenerator) Name() string { return BackendClaude }
