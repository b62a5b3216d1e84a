package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/avasari/GraderAPI/internal/config"
	"github.com/avasari/GraderAPI/pkg/logger_i"
	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type Client struct {
	client openaisdk.Client
	model  string
	logger *logger_i.Logger
}

// NewClient builds a chat-completions client for the caller's own key. One
// client per submission; nothing is shared across sessions.
func NewClient(apiKey string, model string) *Client {
	return &Client{
		client: openaisdk.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		logger: logger_i.NewLogger("llm_openai"),
	}
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	c.logger.Debug("starting chat completion", "model", c.model)

	completion, err := c.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model:       openaisdk.ChatModel(c.model),
		Temperature: openaisdk.Float(config.ModelTemperature),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("openai completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
