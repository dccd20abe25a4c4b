package generation

import (
	"context"
	"errors"
	"net/http"

	"github.com/lookia/lookia/pkg/metrics"
)

// Failure classifies why a model call produced no text.
type Failure string

const (
	// FailureNone marks a successful call.
	FailureNone Failure = ""
	// FailureUnconfigured means no model credentials are available.
	FailureUnconfigured Failure = "unconfigured"
	// FailureRateLimited maps upstream HTTP 429.
	FailureRateLimited Failure = "rate_limited"
	// FailureUnavailable maps upstream HTTP 503.
	FailureUnavailable Failure = "unavailable"
	// FailureUpstream covers every other error, including empty replies.
	FailureUpstream Failure = "upstream"
)

// ErrUnconfigured is returned by models built without credentials.
var ErrUnconfigured = errors.New("generative model is not configured")

// ErrEmptyCompletion is reported when the model answers with no text.
var ErrEmptyCompletion = errors.New("model returned an empty completion")

// Completion is the raw output of a single model call.
type Completion struct {
	Text  string
	Usage metrics.TokenUsage
}

// Model performs one prompt-in, text-out call against a hosted model.
type Model interface {
	Generate(ctx context.Context, prompt string) (Completion, error)
}

// StatusCoder is implemented by upstream errors that carry an HTTP status.
type StatusCoder interface {
	StatusCode() int
}

// Result is the outcome of a generation: either Text or a Failure kind.
type Result struct {
	Text    string
	Failure Failure
	Err     error
	Usage   metrics.TokenUsage
}

// OK reports whether the result carries usable text.
func (r Result) OK() bool {
	return r.Failure == FailureNone && r.Text != ""
}

// Retryable reports whether the failure was a capacity problem on the provider side.
func (r Result) Retryable() bool {
	return r.Failure == FailureRateLimited || r.Failure == FailureUnavailable
}

// Classify maps a model error to its failure kind.
func Classify(err error) Failure {
	if err == nil {
		return FailureNone
	}
	if errors.Is(err, ErrUnconfigured) {
		return FailureUnconfigured
	}
	var coder StatusCoder
	if errors.As(err, &coder) {
		switch coder.StatusCode() {
		case http.StatusTooManyRequests:
			return FailureRateLimited
		case http.StatusServiceUnavailable:
			return FailureUnavailable
		}
	}
	return FailureUpstream
}
