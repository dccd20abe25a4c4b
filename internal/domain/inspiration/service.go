package inspiration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	apperrors "github.com/lookia/lookia/pkg/errors"
)

const defaultQuery = "fashion inspiration"

// ErrUnconfigured is returned when no access token is available.
var ErrUnconfigured = errors.New("image search provider is not configured")

// UpstreamError carries a non-2xx response from the search provider so the
// transport can relay status and body unchanged.
type UpstreamError struct {
	Status int
	Body   json.RawMessage
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("image search failed: status=%d", e.Status)
}

// StatusCode exposes the upstream HTTP status.
func (e *UpstreamError) StatusCode() int {
	return e.Status
}

// Param is one extra query parameter forwarded to the provider.
type Param struct {
	Key   string
	Value string
}

// Searcher queries an image search provider. Items are passed through untouched.
type Searcher interface {
	Search(ctx context.Context, query string, params []Param) ([]json.RawMessage, error)
}

// Request is the inspiration search payload.
type Request struct {
	Query   string         `json:"query"`
	Filters map[string]any `json:"filters"`
}

// Response wraps provider items.
type Response struct {
	Results []json.RawMessage `json:"results"`
}

// Service exposes inspiration search.
type Service interface {
	Search(ctx context.Context, req Request) (Response, error)
}

type service struct {
	searcher Searcher
	logger   *slog.Logger
}

// NewService wires the inspiration domain. A nil searcher behaves as unconfigured.
func NewService(searcher Searcher, logger *slog.Logger) Service {
	return &service{
		searcher: searcher,
		logger:   logger.With("component", "inspiration.service"),
	}
}

func (s *service) Search(ctx context.Context, req Request) (Response, error) {
	if s.searcher == nil {
		return Response{}, apperrors.Wrap(apperrors.CodeUnconfigured, "Pinterest access token not configured.", ErrUnconfigured)
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		query = defaultQuery
	}

	items, err := s.searcher.Search(ctx, query, filterParams(req.Filters))
	if err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			s.logger.Warn("image search rejected", "status", upstream.Status)
			return Response{}, err
		}
		s.logger.Warn("image search failed", "error", err)
		return Response{}, apperrors.Wrap(apperrors.CodeUpstream, err.Error(), err)
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	return Response{Results: items}, nil
}

// filterParams keeps truthy filter values, sorted by key for stable URLs.
func filterParams(filters map[string]any) []Param {
	params := make([]Param, 0, len(filters))
	for key, raw := range filters {
		var value string
		switch v := raw.(type) {
		case nil:
			continue
		case string:
			value = v
		case bool:
			if !v {
				continue
			}
			value = "true"
		case float64:
			if v == 0 {
				continue
			}
			value = fmt.Sprint(v)
		default:
			value = fmt.Sprint(v)
		}
		if value == "" {
			continue
		}
		params = append(params, Param{Key: key, Value: value})
	}
	sort.Slice(params, func(i, j int) bool { return params[i].Key < params[j].Key })
	return params
}
