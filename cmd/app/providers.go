package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/lookia/lookia/internal/bootstrap"
	"github.com/lookia/lookia/internal/domain/catalog"
	"github.com/lookia/lookia/internal/domain/chat"
	"github.com/lookia/lookia/internal/domain/feedback"
	"github.com/lookia/lookia/internal/domain/generation"
	"github.com/lookia/lookia/internal/domain/imageproxy"
	"github.com/lookia/lookia/internal/domain/inspiration"
	"github.com/lookia/lookia/internal/domain/location"
	"github.com/lookia/lookia/internal/domain/lookbook"
	"github.com/lookia/lookia/internal/domain/quiz"
	"github.com/lookia/lookia/internal/domain/stylist"
	"github.com/lookia/lookia/internal/domain/weather"
	"github.com/lookia/lookia/internal/infra/config"
	"github.com/lookia/lookia/internal/infra/feedbackrepo"
	"github.com/lookia/lookia/internal/infra/imagemirror"
	"github.com/lookia/lookia/internal/infra/llm/chatgpt"
	"github.com/lookia/lookia/internal/infra/llm/gemini"
	"github.com/lookia/lookia/internal/infra/lookbookrepo"
	"github.com/lookia/lookia/internal/infra/nominatim"
	"github.com/lookia/lookia/internal/infra/openweather"
	"github.com/lookia/lookia/internal/infra/pinterest"
	"github.com/lookia/lookia/internal/infra/unsplash"
	httpiface "github.com/lookia/lookia/internal/interface/http"
	"github.com/lookia/lookia/pkg/metrics"
)

// provideCatalog loads the style tables. images.proxyPrefix, when set,
// replaces the prefix from the catalog document.
func provideCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	if prefix := strings.TrimSpace(cfg.Images.ProxyPrefix); prefix != "" {
		cat.ProxyPrefix = prefix
	}
	return cat, nil
}

const tokenEncodingTimeout = 5 * time.Second

// provideTokenCounter resolves the prompt encoding at startup. Requests never
// wait on it; when loading fails or times out prompts are counted as zero.
func provideTokenCounter(cfg *config.Config, logger *slog.Logger) *metrics.TokenCounter {
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		return &metrics.TokenCounter{}
	}
	ctx, cancel := context.WithTimeout(context.Background(), tokenEncodingTimeout)
	defer cancel()
	counter, err := metrics.LoadTokenCounter(ctx, cfg.LLM.Model, metrics.ResolveEncoding)
	if err != nil {
		logger.Warn("token encoding unavailable, prompt sizes will not be logged", "model", cfg.LLM.Model, "error", err)
	}
	return counter
}

// provideModel returns nil when no key is configured; generation then reports
// every call as unconfigured and callers serve their fallbacks.
func provideModel(cfg *config.Config, logger *slog.Logger) generation.Model {
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		logger.Warn("llm api key not set, generative features will use fallbacks", "provider", cfg.LLM.Provider)
		return nil
	}
	switch cfg.LLM.Provider {
	case config.ProviderOpenAI:
		client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
		if err != nil {
			logger.Error("failed to create chatgpt client, generative features will use fallbacks", "error", err)
			return nil
		}
		logger.Info("openai model enabled", "model", cfg.LLM.Model)
		return chatgpt.NewModel(client, cfg.LLM.Model, cfg.LLM.Temperature)
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		model, err := gemini.NewModel(ctx, gemini.Config{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
		})
		if err != nil {
			logger.Error("failed to create gemini client, generative features will use fallbacks", "error", err)
			return nil
		}
		logger.Info("gemini model enabled", "model", cfg.LLM.Model)
		return model
	}
}

func provideOpenWeatherClient(cfg *config.Config) *openweather.Client {
	return openweather.NewClient(openweather.Config{
		APIKey:     cfg.Weather.APIKey,
		BaseURL:    cfg.Weather.BaseURL,
		GeoBaseURL: cfg.Weather.GeoBaseURL,
		Lang:       cfg.Weather.Lang,
	})
}

func provideWeatherService(cfg *config.Config, client *openweather.Client, logger *slog.Logger) weather.Service {
	if !client.Configured() {
		logger.Warn("openweather api key not set, weather lookups disabled")
	}
	return weather.NewService(weather.Config{DefaultCity: cfg.Weather.DefaultCity}, client, logger)
}

func provideLocationService(cfg *config.Config, client *openweather.Client, logger *slog.Logger) location.Service {
	fallback := nominatim.NewClient(cfg.Geocoding.NominatimBaseURL, cfg.Geocoding.UserAgent)
	if !client.Configured() {
		return location.NewService(logger, fallback)
	}
	return location.NewService(logger, client, fallback)
}

func provideStylistService(generator *generation.Generator, weatherSvc weather.Service, cat *catalog.Catalog, logger *slog.Logger) stylist.Service {
	return stylist.NewService(generator, weatherSvc, cat, logger)
}

func provideChatService(generator *generation.Generator, logger *slog.Logger) chat.Service {
	return chat.NewService(generator, logger)
}

func provideImageProxyService(cfg *config.Config, logger *slog.Logger) imageproxy.Service {
	fetcher := unsplash.NewClient(cfg.Images.BaseURL)
	proxyCfg := imageproxy.Config{
		PlaceholderID:    cfg.Images.PlaceholderID,
		PlaceholderQuery: cfg.Images.PlaceholderQuery,
	}
	return imageproxy.NewService(proxyCfg, fetcher, provideImageMirror(cfg.Images.Mirror, logger), logger)
}

// provideImageMirror returns nil when no mirror is configured or the bucket
// cannot be reached; the proxy then always goes to the image host.
func provideImageMirror(mirrorCfg config.MirrorConfig, logger *slog.Logger) imageproxy.Mirror {
	if mirrorCfg.Memory {
		logger.Info("image mirror enabled", "backend", "memory")
		return imagemirror.NewMemoryMirror()
	}
	if !mirrorCfg.Enabled() {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mirror, err := imagemirror.NewS3Mirror(ctx, imagemirror.S3Config{
		Endpoint:  mirrorCfg.Endpoint,
		AccessKey: mirrorCfg.AccessKey,
		SecretKey: mirrorCfg.SecretKey,
		Bucket:    mirrorCfg.Bucket,
		Region:    mirrorCfg.Region,
	}, logger)
	if err != nil {
		logger.Error("image mirror unavailable, proxying without it", "error", err)
		return nil
	}
	logger.Info("image mirror enabled", "backend", "s3", "bucket", mirrorCfg.Bucket)
	return mirror
}

func provideInspirationService(cfg *config.Config, logger *slog.Logger) inspiration.Service {
	client, err := pinterest.NewClient(cfg.Pinterest.AccessToken, cfg.Pinterest.BaseURL)
	if err != nil {
		logger.Warn("pinterest access token not set, inspiration search disabled")
		return inspiration.NewService(nil, logger)
	}
	return inspiration.NewService(client, logger)
}

func provideFeedbackRepository(cfg *config.Config, resources *bootstrap.Resources, logger *slog.Logger) feedback.Repository {
	fallback := feedbackrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Feedback.Postgres.DSN)
	if dsn == "" {
		logger.Info("feedback postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.Feedback.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Feedback.Postgres.MaxConns
	}
	if cfg.Feedback.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Feedback.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	resources.Add(pool.Close)
	logger.Info("feedback postgres repository enabled")
	return feedbackrepo.NewPostgresRepository(pool)
}

func provideLookbookRepository(cfg *config.Config, resources *bootstrap.Resources, logger *slog.Logger) lookbook.Repository {
	vcfg := cfg.Lookbook.Valkey
	if !vcfg.Enabled {
		logger.Info("lookbook valkey disabled, using memory repository")
		return lookbookrepo.NewMemoryRepository()
	}
	opt, err := buildValkeyOptions(vcfg.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory repository", "error", err)
		return lookbookrepo.NewMemoryRepository()
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory repository", "error", err)
		return lookbookrepo.NewMemoryRepository()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory repository", "error", err)
		client.Close()
		return lookbookrepo.NewMemoryRepository()
	}
	resources.Add(client.Close)
	logger.Info("lookbook valkey repository enabled", "addr", vcfg.Addr)
	return lookbookrepo.NewValkeyRepository(client, vcfg.Prefix)
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

func provideServices(
	stylistSvc stylist.Service,
	chatSvc chat.Service,
	feedbackSvc feedback.Service,
	lookbookSvc lookbook.Service,
	weatherSvc weather.Service,
	locationSvc location.Service,
	imageSvc imageproxy.Service,
	inspirationSvc inspiration.Service,
	quizSvc quiz.Service,
) httpiface.Services {
	return httpiface.Services{
		Stylist:     stylistSvc,
		Chat:        chatSvc,
		Feedback:    feedbackSvc,
		Lookbook:    lookbookSvc,
		Weather:     weatherSvc,
		Location:    locationSvc,
		ImageProxy:  imageSvc,
		Inspiration: inspirationSvc,
		Quiz:        quizSvc,
	}
}
