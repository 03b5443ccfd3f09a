package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/mikey/clearbox/internal/core"
	"github.com/mikey/clearbox/internal/roast"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiClient is an implementation of the RoastGenerator interface using Google Gemini
type GeminiClient struct {
	client    *genai.Client
	modelName string
	maxTokens int
	logger    *zap.Logger
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(
	apiKey string,
	modelName string,
	maxTokens int,
	logger *zap.Logger,
) (*GeminiClient, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: modelName,
		maxTokens: maxTokens,
		logger:    logger,
	}, nil
}

// Close closes the Gemini client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// GenerateRoast generates a roast of the inbox statistics
func (c *GeminiClient) GenerateRoast(ctx context.Context, stats core.EmailStats, severity core.RoastSeverity) (string, error) {
	cfg := roast.ConfigFor(severity)

	// The temperature varies by severity, so the model is configured per call
	model := c.client.GenerativeModel(c.modelName)
	model.SetTemperature(cfg.Temperature)
	model.SetMaxOutputTokens(int32(c.maxTokens))

	prompt := roast.BuildPrompt(stats, severity)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content with Gemini: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])

	c.logger.Debug("Generated roast",
		zap.String("model", c.modelName),
		zap.String("severity", string(severity)))

	return responseText, nil
}
