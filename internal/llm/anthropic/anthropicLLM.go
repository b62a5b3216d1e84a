package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/avasari/GraderAPI/internal/config"
	"github.com/avasari/GraderAPI/pkg/logger_i"
)

type Client struct {
	client anthropicsdk.Client
	model  string
	logger *logger_i.Logger
}

func NewClient(apiKey string, model string) *Client {
	return &Client{
		client: anthropicsdk.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		logger: logger_i.NewLogger("llm_anthropic"),
	}
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	c.logger.Debug("starting message request", "model", c.model)

	message, err := c.client.Messages.New(ctx, anthropicsdk.MessageNewParams{
		Model:       anthropicsdk.Model(c.model),
		MaxTokens:   config.MaxCompletionTokens,
		Temperature: anthropicsdk.Float(config.ModelTemperature),
		Messages: []anthropicsdk.MessageParam{
			anthropicsdk.NewUserMessage(anthropicsdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic message: %w", err)
	}

	var b strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", errors.New("anthropic message contained no text blocks")
	}
	return b.String(), nil
}
