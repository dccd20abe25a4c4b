package pinterest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lookia/lookia/internal/domain/inspiration"
)

const (
	defaultBaseURL = "https://api.pinterest.com/v5"
	pageSize       = "10"
)

// Client searches pins through the Pinterest v5 API.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

// NewClient constructs a Pinterest client.
func NewClient(accessToken, baseURL string) (*Client, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, errors.New("pinterest access token cannot be empty")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		accessToken: accessToken,
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// Search returns the raw pin items for a query.
func (c *Client) Search(ctx context.Context, query string, params []inspiration.Param) ([]json.RawMessage, error) {
	values := url.Values{}
	values.Set("query", query)
	values.Set("page_size", pageSize)
	for _, p := range params {
		values.Add(p.Key, p.Value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search/pins?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build pinterest request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pinterest request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read pinterest response: %w", err)
	}
	if resp.StatusCode >= 300 {
		if !json.Valid(body) {
			encoded, _ := json.Marshal(string(body))
			body = encoded
		}
		return nil, &inspiration.UpstreamError{Status: resp.StatusCode, Body: body}
	}

	var out struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode pinterest response: %w", err)
	}
	return out.Items, nil
}

var _ inspiration.Searcher = (*Client)(nil)
