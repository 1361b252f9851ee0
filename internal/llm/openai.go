package llm

import (
	"context"
	"fmt"
	"strings"

	"pizzachat-backend/internal/models"

	openai "github.com/meguminnnnnnnnn/go-openai"
)

// Ensure OpenAIClient implements the CompletionClient interface.
var _ CompletionClient = (*OpenAIClient)(nil)

// OpenAIClient calls the chat completion API through the OpenAI SDK.
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates a completion client. baseURL may be empty for
// the default endpoint, or point at any OpenAI-compatible API.
func NewOpenAIClient(apiKey, baseURL string) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
	}
}

// Complete sends the transcript and returns the first completion
// candidate, trimmed of surrounding whitespace.
func (c *OpenAIClient) Complete(ctx context.Context, messages []models.Message, params Params) (string, error) {
	openaiMsgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		openaiMsgs = append(openaiMsgs, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	req := openai.ChatCompletionRequest{
		Model:    params.Model,
		Messages: openaiMsgs,
	}
	if params.MaxTokens > 0 {
		req.MaxTokens = params.MaxTokens
	}
	if params.Temperature > 0 {
		req.Temperature = &params.Temperature
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from completion API")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
