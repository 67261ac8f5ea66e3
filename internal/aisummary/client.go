// Package aisummary wraps the OpenAI chat completion API to produce short
// narrative blurbs for the summary page.
package aisummary

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyCompletion indicates that the API returned no choices.
var ErrEmptyCompletion = errors.New("empty completion")

// Client calls the chat completion endpoint with a fixed model.
type Client struct {
	api   *openai.Client
	model string
}

// New returns a Client authenticated with the given API key.
func New(apiKey string) *Client {
	return &Client{
		api:   openai.NewClient(apiKey),
		model: openai.GPT4oMini,
	}
}

// Complete sends prompt as a single user message and returns the first
// completion choice.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	l := zerolog.Ctx(ctx)

	res, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		l.Error().Err(err).Send()
		return "", err
	}

	if len(res.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return res.Choices[0].Message.Content, nil
}
