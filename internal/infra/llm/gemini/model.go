package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/lookia/lookia/internal/domain/generation"
	"github.com/lookia/lookia/pkg/metrics"
)

const defaultModel = "gemini-2.5-flash"

// Config holds Gemini API settings.
type Config struct {
	APIKey      string
	Model       string
	Temperature float32
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Model generates text with the Gemini API.
type Model struct {
	models      contentGenerator
	model       string
	temperature float32
}

// NewModel builds a Gemini-backed model.
func NewModel(ctx context.Context, cfg Config) (*Model, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini api key cannot be empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	return newModel(client.Models, cfg), nil
}

func newModel(models contentGenerator, cfg Config) *Model {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	return &Model{models: models, model: model, temperature: cfg.Temperature}
}

// Generate sends a single text prompt.
func (m *Model) Generate(ctx context.Context, prompt string) (generation.Completion, error) {
	var config *genai.GenerateContentConfig
	if m.temperature > 0 {
		config = &genai.GenerateContentConfig{Temperature: genai.Ptr(m.temperature)}
	}
	resp, err := m.models.GenerateContent(ctx, m.model, genai.Text(prompt), config)
	if err != nil {
		return generation.Completion{}, wrapError(err)
	}
	return generation.Completion{Text: responseText(resp), Usage: usage(resp)}, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

func usage(resp *genai.GenerateContentResponse) metrics.TokenUsage {
	if resp == nil || resp.UsageMetadata == nil {
		return metrics.TokenUsage{}
	}
	meta := resp.UsageMetadata
	return metrics.TokenUsage{
		PromptTokens:     int(meta.PromptTokenCount),
		CompletionTokens: int(meta.CandidatesTokenCount),
		TotalTokens:      int(meta.TotalTokenCount),
	}
}

// StatusError carries the HTTP status reported by the Gemini API.
type StatusError struct {
	Status int
	Err    error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gemini request failed: status=%d: %v", e.Status, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// StatusCode exposes the HTTP status for failure classification.
func (e *StatusError) StatusCode() int {
	return e.Status
}

func wrapError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &StatusError{Status: apiErr.Code, Err: err}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &StatusError{Status: apiErrPtr.Code, Err: err}
	}
	return fmt.Errorf("gemini request failed: %w", err)
}

var _ generation.Model = (*Model)(nil)
