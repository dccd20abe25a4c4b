package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lookia/lookia/internal/domain/location"
	"github.com/lookia/lookia/internal/domain/look"
	"github.com/lookia/lookia/internal/domain/weather"
)

const (
	defaultBaseURL    = "https://api.openweathermap.org/data/2.5"
	defaultGeoBaseURL = "https://api.openweathermap.org/geo/1.0"
	defaultLang       = "pt_br"
)

// Config holds OpenWeatherMap connection settings.
type Config struct {
	APIKey     string
	BaseURL    string
	GeoBaseURL string
	Lang       string
}

// Client talks to the OpenWeatherMap current weather and reverse geocoding APIs.
type Client struct {
	apiKey     string
	baseURL    string
	geoBaseURL string
	lang       string
	httpClient *http.Client
}

// NewClient builds a client. An empty API key yields a client that reports
// weather.ErrUnconfigured on every call.
func NewClient(cfg Config) *Client {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	geo := strings.TrimSpace(cfg.GeoBaseURL)
	if geo == "" {
		geo = defaultGeoBaseURL
	}
	lang := strings.TrimSpace(cfg.Lang)
	if lang == "" {
		lang = defaultLang
	}
	return &Client{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		baseURL:    strings.TrimRight(base, "/"),
		geoBaseURL: strings.TrimRight(geo, "/"),
		lang:       lang,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Current fetches current conditions for a city in metric units.
func (c *Client) Current(ctx context.Context, city string) (weather.Report, error) {
	if !c.Configured() {
		return weather.Report{}, weather.ErrUnconfigured
	}
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")
	query.Set("lang", c.lang)

	var raw currentResponse
	if err := c.getJSON(ctx, c.baseURL+"/weather?"+query.Encode(), &raw); err != nil {
		return weather.Report{}, err
	}
	return normalize(raw), nil
}

// Name identifies the provider in logs.
func (c *Client) Name() string {
	return "openweather"
}

// Reverse resolves coordinates using the geo reverse endpoint with a single result.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (location.Place, bool, error) {
	if !c.Configured() {
		return location.Place{}, false, weather.ErrUnconfigured
	}
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("limit", "1")
	query.Set("appid", c.apiKey)

	var results []reverseEntry
	if err := c.getJSON(ctx, c.geoBaseURL+"/reverse?"+query.Encode(), &results); err != nil {
		return location.Place{}, false, err
	}
	if len(results) == 0 {
		return location.Place{}, false, nil
	}
	first := results[0]
	return location.Place{City: first.Name, Country: first.Country, State: first.State}, true, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build openweather request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("openweather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("openweather request error: status=%d body=%s", resp.StatusCode, string(payload))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode openweather response: %w", err)
	}
	return nil
}

type currentResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
}

type reverseEntry struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	State   string `json:"state"`
}

func normalize(raw currentResponse) weather.Report {
	report := weather.Report{
		Weather: look.Weather{
			Temperature: round(raw.Main.Temp),
			Humidity:    raw.Main.Humidity,
			WindSpeed:   round(raw.Wind.Speed * 3.6),
			FeelsLike:   round(raw.Main.FeelsLike),
		},
		City: raw.Name,
	}
	if len(raw.Weather) > 0 {
		report.Description = raw.Weather[0].Description
		report.Condition = strings.ToLower(raw.Weather[0].Main)
	}
	return report
}

// round matches half-up rounding toward positive infinity.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

var (
	_ weather.Provider  = (*Client)(nil)
	_ location.Geocoder = (*Client)(nil)
)
