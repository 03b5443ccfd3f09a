package openai

import (
	"context"
	"fmt"

	"github.com/mikey/clearbox/internal/core"
	"github.com/mikey/clearbox/internal/roast"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIClient is an implementation of the RoastGenerator interface using OpenAI
type OpenAIClient struct {
	client    *openai.Client
	modelName string
	maxTokens int
	logger    *zap.Logger
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(
	client *openai.Client,
	modelName string,
	maxTokens int,
	logger *zap.Logger,
) *OpenAIClient {
	return &OpenAIClient{
		client:    client,
		modelName: modelName,
		maxTokens: maxTokens,
		logger:    logger,
	}
}

// GenerateRoast generates a roast of the inbox statistics
func (c *OpenAIClient) GenerateRoast(ctx context.Context, stats core.EmailStats, severity core.RoastSeverity) (string, error) {
	cfg := roast.ConfigFor(severity)
	prompt := roast.BuildPrompt(stats, severity)

	req := openai.ChatCompletionRequest{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   c.maxTokens,
		Temperature: cfg.Temperature,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion with OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}

	c.logger.Debug("Generated roast",
		zap.String("model", c.modelName),
		zap.String("severity", string(severity)),
		zap.String("processing_id", resp.ID))

	return resp.Choices[0].Message.Content, nil
}
