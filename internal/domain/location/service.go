package location

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	apperrors "github.com/lookia/lookia/pkg/errors"
)

// Place is the reverse geocoding result returned to clients.
type Place struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	State   string `json:"state,omitempty"`
}

// Empty reports whether no field was resolved.
func (p Place) Empty() bool {
	return p.City == "" && p.Country == "" && p.State == ""
}

// Geocoder resolves coordinates. found is false when the provider has no match.
type Geocoder interface {
	Name() string
	Reverse(ctx context.Context, lat, lon float64) (place Place, found bool, err error)
}

// Service exposes reverse geocoding over an ordered chain of providers.
type Service interface {
	Reverse(ctx context.Context, lat, lon string) (Place, error)
}

type service struct {
	geocoders []Geocoder
	logger    *slog.Logger
}

// NewService wires providers in priority order; nil entries are skipped.
func NewService(logger *slog.Logger, geocoders ...Geocoder) Service {
	chain := make([]Geocoder, 0, len(geocoders))
	for _, g := range geocoders {
		if g != nil {
			chain = append(chain, g)
		}
	}
	return &service{
		geocoders: chain,
		logger:    logger.With("component", "location.service"),
	}
}

func (s *service) Reverse(ctx context.Context, rawLat, rawLon string) (Place, error) {
	rawLat, rawLon = strings.TrimSpace(rawLat), strings.TrimSpace(rawLon)
	if rawLat == "" || rawLon == "" {
		return Place{}, apperrors.Wrap(apperrors.CodeInvalidInput, "Latitude e longitude são obrigatórias", nil)
	}
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return Place{}, apperrors.Wrap(apperrors.CodeInvalidInput, "Latitude inválida", err)
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return Place{}, apperrors.Wrap(apperrors.CodeInvalidInput, "Longitude inválida", err)
	}

	var errs []error
	for _, g := range s.geocoders {
		place, found, err := g.Reverse(ctx, lat, lon)
		if err != nil {
			s.logger.Warn("geocoder failed", "provider", g.Name(), "error", err)
			errs = append(errs, err)
			continue
		}
		if !found || place.Empty() {
			s.logger.Info("geocoder had no match", "provider", g.Name(), "lat", lat, "lon", lon)
			continue
		}
		s.logger.Info("geocoding resolved", "provider", g.Name(), "city", place.City)
		return place, nil
	}
	return Place{}, apperrors.Wrap(apperrors.CodeUpstream, "Não foi possível obter informações de localização", errors.Join(errs...))
}
