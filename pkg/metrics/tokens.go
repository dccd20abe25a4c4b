package metrics

import (
	"context"
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "cl100k_base"

// TokenCounter estimates prompt sizes before a model call. The zero value
// counts nothing, so a counter whose encoding failed to load is still usable.
type TokenCounter struct {
	enc *tiktoken.Tiktoken
}

// EncodingLoader resolves the BPE encoding for a model name.
type EncodingLoader func(model string) (*tiktoken.Tiktoken, error)

// LoadTokenCounter resolves the encoding for model before the first request.
// Resolving may download a BPE file, so it is abandoned when ctx ends; the
// returned counter then reports zero and the error says why.
func LoadTokenCounter(ctx context.Context, model string, load EncodingLoader) (*TokenCounter, error) {
	if load == nil {
		load = ResolveEncoding
	}
	type result struct {
		enc *tiktoken.Tiktoken
		err error
	}
	done := make(chan result, 1)
	go func() {
		enc, err := load(model)
		done <- result{enc: enc, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return &TokenCounter{}, fmt.Errorf("load token encoding for %q: %w", model, r.err)
		}
		return &TokenCounter{enc: r.enc}, nil
	case <-ctx.Done():
		return &TokenCounter{}, fmt.Errorf("load token encoding for %q: %w", model, ctx.Err())
	}
}

// ResolveEncoding uses the model's own encoding, or cl100k_base for models
// tiktoken does not know.
func ResolveEncoding(model string) (*tiktoken.Tiktoken, error) {
	if enc, err := tiktoken.EncodingForModel(model); err == nil {
		return enc, nil
	}
	return tiktoken.GetEncoding(fallbackEncoding)
}

// Count returns the number of tokens in text, or 0 when no encoding is loaded.
func (c *TokenCounter) Count(text string) int {
	if c == nil || c.enc == nil || text == "" {
		return 0
	}
	return len(c.enc.Encode(text, nil, nil))
}
