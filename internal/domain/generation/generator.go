package generation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lookia/lookia/pkg/metrics"
)

// Generator runs prompts through a Model and folds every outcome into a Result.
// It never returns an error; callers pick their fallback from Result.Failure.
type Generator struct {
	model   Model
	counter *metrics.TokenCounter
	logger  *slog.Logger
}

// NewGenerator wires a generator. A nil model yields FailureUnconfigured on every call.
func NewGenerator(model Model, counter *metrics.TokenCounter, logger *slog.Logger) *Generator {
	return &Generator{
		model:   model,
		counter: counter,
		logger:  logger.With("component", "generation.generator"),
	}
}

// Run executes a single model call. No retries are attempted.
func (g *Generator) Run(ctx context.Context, prompt string) Result {
	if g == nil || g.model == nil {
		return Result{Failure: FailureUnconfigured, Err: ErrUnconfigured}
	}

	promptTokens := g.counter.Count(prompt)
	completion, err := g.model.Generate(ctx, prompt)
	if err != nil {
		kind := Classify(err)
		g.logger.Warn("model call failed", "failure", string(kind), "prompt_tokens", promptTokens, "error", err)
		return Result{Failure: kind, Err: err}
	}

	text := strings.TrimSpace(completion.Text)
	if text == "" {
		g.logger.Warn("model returned empty completion", "failure", string(FailureUpstream))
		return Result{Failure: FailureUpstream, Err: ErrEmptyCompletion}
	}

	usage := completion.Usage
	if usage.PromptTokens == 0 {
		usage.PromptTokens = promptTokens
	}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens
	}
	g.logger.Debug("model call succeeded",
		"prompt_tokens", usage.PromptTokens,
		"completion_tokens", usage.CompletionTokens,
	)
	return Result{Text: text, Usage: usage}
}
