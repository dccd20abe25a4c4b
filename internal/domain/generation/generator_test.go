package generation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lookia/lookia/pkg/metrics"
)

type stubModel struct {
	completion Completion
	err        error
	prompts    []string
}

func (s *stubModel) Generate(_ context.Context, prompt string) (Completion, error) {
	s.prompts = append(s.prompts, prompt)
	return s.completion, s.err
}

type statusErr int

func (e statusErr) Error() string   { return fmt.Sprintf("status %d", int(e)) }
func (e statusErr) StatusCode() int { return int(e) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunSuccess(t *testing.T) {
	model := &stubModel{completion: Completion{Text: "  look lindo \n", Usage: metrics.TokenUsage{PromptTokens: 3, CompletionTokens: 2}}}
	gen := NewGenerator(model, nil, discardLogger())

	res := gen.Run(context.Background(), "prompt")
	require.True(t, res.OK())
	require.Equal(t, "look lindo", res.Text)
	require.Equal(t, 5, res.Usage.TotalTokens)
	require.Equal(t, []string{"prompt"}, model.prompts)
}

func TestRunWithUnloadedCounterFallsBackToModelUsage(t *testing.T) {
	model := &stubModel{completion: Completion{Text: "ok"}}
	gen := NewGenerator(model, &metrics.TokenCounter{}, discardLogger())

	res := gen.Run(context.Background(), "prompt")
	require.True(t, res.OK())
	require.Zero(t, res.Usage.PromptTokens)
	require.Len(t, model.prompts, 1)
}

func TestRunNilModelIsUnconfigured(t *testing.T) {
	gen := NewGenerator(nil, nil, discardLogger())
	res := gen.Run(context.Background(), "prompt")
	require.False(t, res.OK())
	require.Equal(t, FailureUnconfigured, res.Failure)
	require.ErrorIs(t, res.Err, ErrUnconfigured)
}

func TestRunEmptyTextIsUpstreamFailure(t *testing.T) {
	gen := NewGenerator(&stubModel{completion: Completion{Text: "   "}}, nil, discardLogger())
	res := gen.Run(context.Background(), "prompt")
	require.Equal(t, FailureUpstream, res.Failure)
	require.ErrorIs(t, res.Err, ErrEmptyCompletion)
}

func TestClassify(t *testing.T) {
	cases := map[string]struct {
		err  error
		want Failure
	}{
		"nil":          {nil, FailureNone},
		"unconfigured": {fmt.Errorf("wrap: %w", ErrUnconfigured), FailureUnconfigured},
		"rate limited": {fmt.Errorf("wrap: %w", statusErr(429)), FailureRateLimited},
		"unavailable":  {statusErr(503), FailureUnavailable},
		"server error": {statusErr(500), FailureUpstream},
		"plain":        {errors.New("boom"), FailureUpstream},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.err))
		})
	}
}

func TestRunRateLimitIsRetryableKind(t *testing.T) {
	gen := NewGenerator(&stubModel{err: statusErr(429)}, nil, discardLogger())
	res := gen.Run(context.Background(), "prompt")
	require.Equal(t, FailureRateLimited, res.Failure)
	require.True(t, res.Retryable())
}
