package stylist

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lookia/lookia/internal/domain/catalog"
	"github.com/lookia/lookia/internal/domain/generation"
	"github.com/lookia/lookia/internal/domain/look"
	apperrors "github.com/lookia/lookia/pkg/errors"
)

const (
	// StatusMessage is returned by the recommendation health endpoint.
	StatusMessage = "API do Assistente de Estilo funcionando!"
	// AlternativesStatusMessage is returned by the alternatives health endpoint.
	AlternativesStatusMessage = "API de alternativas de looks funcionando! Use POST para gerar alternativas."

	alternativesMessage = "🎉 Criei 3 alternativas incríveis para você escolher!"
	missingProfileMsg   = "Perfil do usuário é obrigatório."
)

// Request carries the profile posted by the client.
type Request struct {
	Profile *look.Profile `json:"profile"`
}

// AlternativesResponse is the alternatives payload.
type AlternativesResponse struct {
	Success      bool                  `json:"success"`
	Message      string                `json:"message"`
	Alternatives []look.Recommendation `json:"alternatives"`
	Total        int                   `json:"total"`
}

// Runner executes a prompt and reports success or a failure kind.
type Runner interface {
	Run(ctx context.Context, prompt string) generation.Result
}

// WeatherLookup enriches profiles; it must never fail the request.
type WeatherLookup interface {
	Lookup(ctx context.Context, city string) (*look.Weather, bool)
}

// Service produces looks for a profile.
type Service interface {
	Recommend(ctx context.Context, req Request) (look.Recommendation, error)
	Alternatives(ctx context.Context, req Request) (AlternativesResponse, error)
}

type service struct {
	runner  Runner
	weather WeatherLookup
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewService wires the stylist domain. weather may be nil.
func NewService(runner Runner, weather WeatherLookup, cat *catalog.Catalog, logger *slog.Logger) Service {
	return &service{
		runner:  runner,
		weather: weather,
		catalog: cat,
		logger:  logger.With("component", "stylist.service"),
	}
}

// Recommend builds the principal look. When the profile names a city but has
// no weather yet, the snapshot is looked up and attached to req.Profile.
func (s *service) Recommend(ctx context.Context, req Request) (look.Recommendation, error) {
	if req.Profile == nil {
		return look.Recommendation{}, apperrors.Wrap(apperrors.CodeInvalidInput, missingProfileMsg, nil)
	}
	profile := req.Profile

	if profile.Cidade != "" && profile.WeatherData == nil && s.weather != nil {
		if w, ok := s.weather.Lookup(ctx, profile.Cidade); ok {
			profile.WeatherData = w
		}
	}

	descricao := fallbackDescription(*profile)
	if res := s.runner.Run(ctx, recommendationPrompt(*profile)); res.OK() {
		descricao = res.Text
	} else {
		s.logger.Info("recommendation fell back to template", "failure", string(res.Failure))
	}

	return look.Recommendation{
		Descricao:  descricao,
		Imagens:    s.catalog.Images(profile.EstiloDesejado, profile.Ocasiao),
		Dicas:      s.catalog.Tips(*profile),
		Acessorios: s.catalog.Accessories(*profile),
	}, nil
}

// Alternatives generates one look per catalog variation. The model calls run
// concurrently and each falls back on its own.
func (s *service) Alternatives(ctx context.Context, req Request) (AlternativesResponse, error) {
	if req.Profile == nil {
		return AlternativesResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, missingProfileMsg, nil)
	}
	profile := *req.Profile
	variations := s.catalog.Variations()
	out := make([]look.Recommendation, len(variations))

	var group errgroup.Group
	for i, v := range variations {
		group.Go(func() error {
			descricao := alternativeFallback(profile, v.Title)
			if res := s.runner.Run(ctx, alternativePrompt(profile, v.Label)); res.OK() {
				descricao = res.Text
			} else {
				s.logger.Info("alternative fell back to template", "variation", v.ID, "failure", string(res.Failure))
			}
			out[i] = look.Recommendation{
				ID:         v.ID,
				Title:      v.Title,
				Descricao:  descricao,
				Imagens:    s.catalog.VariationImages(v.Style),
				Dicas:      s.catalog.VariationTips(v.Label),
				Acessorios: s.catalog.VariationAccessories(v.Label),
				Style:      v.Style,
			}
			return nil
		})
	}
	// Goroutines never return errors; Wait only joins them.
	_ = group.Wait()

	s.logger.Info("alternatives generated", "count", len(out))
	return AlternativesResponse{
		Success:      true,
		Message:      alternativesMessage,
		Alternatives: out,
		Total:        len(out),
	}, nil
}

func fallbackDescription(p look.Profile) string {
	var b strings.Builder
	b.WriteString("Look personalizado")
	qualified := false
	if p.Ocasiao != "" {
		b.WriteString(" para " + p.Ocasiao)
		qualified = true
	}
	style := p.EstiloDesejado
	if style == "" {
		style = p.Estilo
	}
	if style != "" {
		b.WriteString(" no estilo " + style)
		qualified = true
	}
	if qualified {
		b.WriteString(",")
	}
	b.WriteString(" baseado nas suas preferências e no clima atual.")
	return b.String()
}

func alternativeFallback(p look.Profile, title string) string {
	cores := p.Cores.String()
	if cores == "" {
		cores = "suas cores favoritas"
	}
	return "💖 " + title + ": Um look especial pensado para você! Combinando " + cores +
		" com o estilo " + or(p.Estilo, "que mais combina com você") +
		", perfeito para " + or(p.Ocasiao, "qualquer ocasião") + "! ✨"
}

func or(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
