package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	LLM       LLMConfig       `yaml:"llm"`
	Weather   WeatherConfig   `yaml:"weather"`
	Geocoding GeocodingConfig `yaml:"geocoding"`
	Images    ImagesConfig    `yaml:"images"`
	Pinterest PinterestConfig `yaml:"pinterest"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Feedback  FeedbackConfig  `yaml:"feedback"`
	Lookbook  LookbookConfig  `yaml:"lookbook"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	// TrustedProxies lists proxy addresses or CIDRs whose forwarding headers
	// are honoured. Empty means the peer address is the client address.
	TrustedProxies []string        `yaml:"trustedProxies"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// LLM providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// defaultModels is used when llm.model is not set for the selected provider.
var defaultModels = map[string]string{
	ProviderGemini: "gemini-2.5-flash",
	ProviderOpenAI: "gpt-4o-mini",
}

// LLMConfig selects and configures the generative model.
type LLMConfig struct {
	Provider    string  `yaml:"provider"`
	APIKey      string  `yaml:"apiKey"`
	BaseURL     string  `yaml:"baseUrl"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

// WeatherConfig holds OpenWeatherMap settings.
type WeatherConfig struct {
	APIKey      string `yaml:"apiKey"`
	BaseURL     string `yaml:"baseUrl"`
	GeoBaseURL  string `yaml:"geoBaseUrl"`
	Lang        string `yaml:"lang"`
	DefaultCity string `yaml:"defaultCity"`
}

// GeocodingConfig holds the fallback reverse geocoder settings.
type GeocodingConfig struct {
	NominatimBaseURL string `yaml:"nominatimBaseUrl"`
	UserAgent        string `yaml:"userAgent"`
}

// ImagesConfig controls the image proxy.
type ImagesConfig struct {
	BaseURL          string       `yaml:"baseUrl"`
	PlaceholderID    string       `yaml:"placeholderId"`
	PlaceholderQuery string       `yaml:"placeholderQuery"`
	ProxyPrefix      string       `yaml:"proxyPrefix"`
	Mirror           MirrorConfig `yaml:"mirror"`
}

// MirrorConfig describes the optional image mirror: an S3-compatible bucket,
// or an in-process store when Memory is set.
type MirrorConfig struct {
	Memory    bool   `yaml:"memory"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

// Enabled reports whether enough settings are present to use the mirror.
func (m MirrorConfig) Enabled() bool {
	return strings.TrimSpace(m.Endpoint) != "" && strings.TrimSpace(m.Bucket) != ""
}

// PinterestConfig holds the inspiration search credentials.
type PinterestConfig struct {
	AccessToken string `yaml:"accessToken"`
	BaseURL     string `yaml:"baseUrl"`
}

// CatalogConfig points at an optional catalog override file.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// FeedbackConfig controls feedback persistence.
type FeedbackConfig struct {
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// LookbookConfig controls lookbook persistence.
type LookbookConfig struct {
	Valkey ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig contains connection information for the lookbook store.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// Load reads configuration from .env, a YAML file and environment variables.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)
	applyModelDefault(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadDotEnv reads .env (or DOTENV_PATH) without overriding real environment variables.
func loadDotEnv() error {
	path := os.Getenv("DOTENV_PATH")
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load dotenv file: %w", err)
	}
	return nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// applyModelDefault picks the provider's model when none was configured.
func applyModelDefault(cfg *Config) {
	if strings.TrimSpace(cfg.LLM.Model) == "" {
		cfg.LLM.Model = defaultModels[cfg.LLM.Provider]
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("PORT"); v != "" && os.Getenv("HTTP_ADDRESS") == "" {
		cfg.HTTP.Address = ":" + v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_TRUSTED_PROXIES"); v != "" {
		cfg.HTTP.TrustedProxies = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}

	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	switch cfg.LLM.Provider {
	case ProviderOpenAI:
		if v := firstEnv("OPENAI_API_KEY", "LLM_API_KEY"); v != "" {
			cfg.LLM.APIKey = v
		}
	default:
		if v := firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY", "LLM_API_KEY"); v != "" {
			cfg.LLM.APIKey = v
		}
	}

	if v := os.Getenv("OPENWEATHER_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}
	if v := os.Getenv("OPENWEATHER_BASE_URL"); v != "" {
		cfg.Weather.BaseURL = v
	}
	if v := os.Getenv("WEATHER_DEFAULT_CITY"); v != "" {
		cfg.Weather.DefaultCity = v
	}
	if v := os.Getenv("NOMINATIM_BASE_URL"); v != "" {
		cfg.Geocoding.NominatimBaseURL = v
	}

	if v := os.Getenv("IMAGES_BASE_URL"); v != "" {
		cfg.Images.BaseURL = v
	}
	if v := os.Getenv("IMAGES_PROXY_PREFIX"); v != "" {
		cfg.Images.ProxyPrefix = v
	}
	if v := os.Getenv("IMAGE_MIRROR_ENDPOINT"); v != "" {
		cfg.Images.Mirror.Endpoint = v
	}
	if v := os.Getenv("IMAGE_MIRROR_ACCESS_KEY"); v != "" {
		cfg.Images.Mirror.AccessKey = v
	}
	if v := os.Getenv("IMAGE_MIRROR_SECRET_KEY"); v != "" {
		cfg.Images.Mirror.SecretKey = v
	}
	if v := os.Getenv("IMAGE_MIRROR_BUCKET"); v != "" {
		cfg.Images.Mirror.Bucket = v
	}
	if v := os.Getenv("IMAGE_MIRROR_MEMORY"); v != "" {
		cfg.Images.Mirror.Memory = parseBool(v)
	}
	if v := os.Getenv("IMAGE_MIRROR_REGION"); v != "" {
		cfg.Images.Mirror.Region = v
	}

	if v := os.Getenv("PINTEREST_ACCESS_TOKEN"); v != "" {
		cfg.Pinterest.AccessToken = v
	}
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}

	if v := os.Getenv("FEEDBACK_POSTGRES_DSN"); v != "" {
		cfg.Feedback.Postgres.DSN = v
	}
	if v := os.Getenv("FEEDBACK_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Feedback.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("FEEDBACK_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Feedback.Postgres.MinConns = int32(parsed)
		}
	}

	if v := os.Getenv("LOOKBOOK_VALKEY_ADDR"); v != "" {
		cfg.Lookbook.Valkey.Addr = v
		cfg.Lookbook.Valkey.Enabled = true
	}
	if v := os.Getenv("LOOKBOOK_VALKEY_ENABLED"); v != "" {
		cfg.Lookbook.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("LOOKBOOK_VALKEY_PREFIX"); v != "" {
		cfg.Lookbook.Valkey.Prefix = v
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:        ":8080",
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   60 * time.Second,
			AllowedOrigins: []string{"http://localhost:3000"},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
		},
		LLM: LLMConfig{
			Provider:    ProviderGemini,
			Temperature: 0.8,
		},
		Weather: WeatherConfig{
			BaseURL:     "https://api.openweathermap.org/data/2.5",
			GeoBaseURL:  "https://api.openweathermap.org/geo/1.0",
			Lang:        "pt_br",
			DefaultCity: "São Paulo",
		},
		Geocoding: GeocodingConfig{
			NominatimBaseURL: "https://nominatim.openstreetmap.org",
			UserAgent:        "Lookia-App/1.0",
		},
		Images: ImagesConfig{
			BaseURL:          "https://images.unsplash.com",
			PlaceholderID:    "photo-1441986300917-64674bd600d8",
			PlaceholderQuery: "w=400&h=600&fit=crop&crop=center",
			Mirror: MirrorConfig{
				Region: "auto",
			},
		},
		Pinterest: PinterestConfig{
			BaseURL: "https://api.pinterest.com/v5",
		},
		Feedback: FeedbackConfig{
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
		},
		Lookbook: LookbookConfig{
			Valkey: ValkeyConfig{
				Prefix: "lookbook",
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.ReadTimeout < 0 || c.HTTP.WriteTimeout < 0 {
		return errors.New("http timeouts cannot be negative")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("llm.provider must be %q or %q", ProviderGemini, ProviderOpenAI)
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model cannot be empty")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return errors.New("llm.temperature must be between 0 and 2")
	}
	if strings.TrimSpace(c.Images.PlaceholderID) == "" {
		return errors.New("images.placeholderId cannot be empty")
	}
	if c.Lookbook.Valkey.Enabled && strings.TrimSpace(c.Lookbook.Valkey.Addr) == "" {
		return errors.New("lookbook.valkey.addr cannot be empty when valkey is enabled")
	}
	if c.Feedback.Postgres.MaxConns < 0 || c.Feedback.Postgres.MinConns < 0 {
		return errors.New("feedback.postgres connection limits cannot be negative")
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
