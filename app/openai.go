package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/babumoltbot/saasname/app/config"
)

// llmClient wraps the OpenAI client with the one call shape every LLM
// adapter uses: a system+user prompt pair answered in JSON mode.
type llmClient struct {
	client *openai.Client
	model  string
}

func newLLMClient(cfg config.OpenAIConfig) *llmClient {
	return &llmClient{
		client: openai.NewClient(cfg.APIKey),
		model:  cfg.Model,
	}
}

var errEmptyCompletion = errors.New("empty completion")

// chatJSON runs one JSON-mode completion and decodes the reply into out.
func (c *llmClient) chatJSON(ctx context.Context, system, user string, temperature float32, out any) error {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return errEmptyCompletion
	}

	content := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("malformed completion: %w", err)
	}
	return nil
}
