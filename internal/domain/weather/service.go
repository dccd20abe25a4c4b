package weather

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/lookia/lookia/internal/domain/look"
	apperrors "github.com/lookia/lookia/pkg/errors"
)

// ErrUnconfigured is returned by providers that have no API key.
var ErrUnconfigured = errors.New("weather provider is not configured")

// Report is a normalized snapshot plus the city name resolved by the provider.
type Report struct {
	look.Weather
	City string `json:"city"`
}

// Provider fetches current conditions for a city.
type Provider interface {
	Current(ctx context.Context, city string) (Report, error)
}

// Config wires runtime defaults for the weather domain.
type Config struct {
	DefaultCity string
}

// Service exposes weather lookups and clothing advice.
type Service interface {
	Current(ctx context.Context, city string) (Report, error)
	Advise(ctx context.Context, city string) (AdviceReport, error)
	// Lookup is the best-effort variant used to enrich profiles: it never fails.
	Lookup(ctx context.Context, city string) (*look.Weather, bool)
}

// AdviceReport bundles the snapshot with derived clothing advice.
type AdviceReport struct {
	Report
	Advice Advice `json:"recommendations"`
}

type service struct {
	cfg      Config
	provider Provider
	logger   *slog.Logger
}

// NewService wires the weather domain. A nil provider behaves as unconfigured.
func NewService(cfg Config, provider Provider, logger *slog.Logger) Service {
	if strings.TrimSpace(cfg.DefaultCity) == "" {
		cfg.DefaultCity = "São Paulo"
	}
	return &service{
		cfg:      cfg,
		provider: provider,
		logger:   logger.With("component", "weather.service"),
	}
}

func (s *service) Current(ctx context.Context, city string) (Report, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		city = s.cfg.DefaultCity
	}
	if s.provider == nil {
		return Report{}, apperrors.Wrap(apperrors.CodeUnconfigured, "API key do OpenWeatherMap não configurada", ErrUnconfigured)
	}
	report, err := s.provider.Current(ctx, city)
	if err != nil {
		if errors.Is(err, ErrUnconfigured) {
			return Report{}, apperrors.Wrap(apperrors.CodeUnconfigured, "API key do OpenWeatherMap não configurada", err)
		}
		s.logger.Warn("weather lookup failed", "city", city, "error", err)
		return Report{}, apperrors.Wrap(apperrors.CodeUpstream, "Erro ao buscar dados do clima", err)
	}
	return report, nil
}

func (s *service) Advise(ctx context.Context, city string) (AdviceReport, error) {
	report, err := s.Current(ctx, city)
	if err != nil {
		return AdviceReport{}, err
	}
	return AdviceReport{Report: report, Advice: Advise(report.Weather)}, nil
}

func (s *service) Lookup(ctx context.Context, city string) (*look.Weather, bool) {
	if s.provider == nil || strings.TrimSpace(city) == "" {
		return nil, false
	}
	report, err := s.provider.Current(ctx, city)
	if err != nil {
		s.logger.Warn("weather enrichment skipped", "city", city, "error", err)
		return nil, false
	}
	w := report.Weather
	return &w, true
}
