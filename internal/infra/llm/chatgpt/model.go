package chatgpt

import (
	"context"

	"github.com/lookia/lookia/internal/domain/generation"
	"github.com/lookia/lookia/pkg/metrics"
)

// Model adapts the client to a single-prompt generation call.
type Model struct {
	client      *Client
	model       string
	temperature float32
}

// NewModel constructs the adapter.
func NewModel(client *Client, model string, temperature float32) *Model {
	return &Model{client: client, model: model, temperature: temperature}
}

// Generate sends the prompt as one user message.
func (m *Model) Generate(ctx context.Context, prompt string) (generation.Completion, error) {
	resp, err := m.client.CreateChatCompletion(ctx, ChatCompletionRequest{
		Model:       m.model,
		Temperature: m.temperature,
		Messages:    []Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return generation.Completion{}, err
	}
	out := generation.Completion{
		Usage: metrics.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}
	return out, nil
}

var _ generation.Model = (*Model)(nil)
