package unsplash

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lookia/lookia/internal/domain/imageproxy"
)

const (
	defaultBaseURL   = "https://images.unsplash.com"
	defaultUserAgent = "Lookia Fashion Assistant (https://lookia.app)"
	maxImageBytes    = 20 << 20
)

// Client downloads photos from the Unsplash image CDN.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds an image CDN client.
func NewClient(baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// Fetch downloads one photo, forwarding the sizing query verbatim.
func (c *Client) Fetch(ctx context.Context, imageID, rawQuery string) (imageproxy.Image, error) {
	endpoint := c.baseURL + "/" + imageID
	if rawQuery != "" {
		endpoint += "?" + rawQuery
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return imageproxy.Image{}, fmt.Errorf("build image request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return imageproxy.Image{}, fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return imageproxy.Image{}, fmt.Errorf("failed to fetch image: status=%d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return imageproxy.Image{}, fmt.Errorf("read image body: %w", err)
	}
	return imageproxy.Image{Data: data, ContentType: resp.Header.Get("Content-Type")}, nil
}

var _ imageproxy.Fetcher = (*Client)(nil)
