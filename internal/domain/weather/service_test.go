package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lookia/lookia/internal/domain/look"
	apperrors "github.com/lookia/lookia/pkg/errors"
)

type stubProvider struct {
	report Report
	err    error
	cities []string
}

func (s *stubProvider) Current(_ context.Context, city string) (Report, error) {
	s.cities = append(s.cities, city)
	return s.report, s.err
}

func newTestService(p Provider) Service {
	return NewService(Config{}, p, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCurrentDefaultsCity(t *testing.T) {
	p := &stubProvider{report: Report{City: "São Paulo", Weather: look.Weather{Temperature: 22}}}
	svc := newTestService(p)

	report, err := svc.Current(context.Background(), "  ")
	require.NoError(t, err)
	require.Equal(t, "São Paulo", report.City)
	require.Equal(t, []string{"São Paulo"}, p.cities)
}

func TestCurrentWithoutProviderIsUnconfigured(t *testing.T) {
	_, err := newTestService(nil).Current(context.Background(), "Recife")
	require.True(t, apperrors.IsCode(err, apperrors.CodeUnconfigured))
}

func TestCurrentUpstreamFailure(t *testing.T) {
	svc := newTestService(&stubProvider{err: errors.New("status 401")})
	_, err := svc.Current(context.Background(), "Recife")
	require.True(t, apperrors.IsCode(err, apperrors.CodeUpstream))
	require.Equal(t, "Erro ao buscar dados do clima", apperrors.MessageOf(err))
}

func TestLookupNeverFails(t *testing.T) {
	svc := newTestService(&stubProvider{err: errors.New("down")})
	w, ok := svc.Lookup(context.Background(), "Recife")
	require.False(t, ok)
	require.Nil(t, w)

	svc = newTestService(&stubProvider{report: Report{Weather: look.Weather{Temperature: 31}}})
	w, ok = svc.Lookup(context.Background(), "Recife")
	require.True(t, ok)
	require.Equal(t, 31, w.Temperature)
}

func TestAdviseBands(t *testing.T) {
	cold := Advise(look.Weather{Temperature: 15, Condition: "clouds"})
	require.Equal(t, []string{"casaco", "jaqueta", "suéter"}, cold.Layers)

	mild := Advise(look.Weather{Temperature: 25, Condition: "clear"})
	require.Equal(t, []string{"cardigan", "blazer leve"}, mild.Layers)
	require.Empty(t, mild.Accessories)

	hot := Advise(look.Weather{Temperature: 26, Condition: "clear"})
	require.Contains(t, hot.Accessories, "óculos de sol")
}

func TestAdviseConditionsReplaceFootwear(t *testing.T) {
	rain := Advise(look.Weather{Temperature: 20, Condition: "drizzle"})
	require.Equal(t, []string{"botas impermeáveis", "sapatos fechados"}, rain.Footwear)
	require.Contains(t, rain.Accessories, "guarda-chuva")

	snow := Advise(look.Weather{Temperature: -2, Condition: "snow", WindSpeed: 30, Humidity: 90})
	require.Equal(t, []string{"botas de neve", "calçados antiderrapantes"}, snow.Footwear)
	require.Contains(t, snow.Tips, "Evite peças muito soltas devido ao vento")
	require.Contains(t, snow.Tips, "Prefira tecidos respiráveis devido à umidade")
	require.Contains(t, snow.Layers, "segunda pele")
}

func TestAdviseWrapsReport(t *testing.T) {
	svc := newTestService(&stubProvider{report: Report{City: "Curitiba", Weather: look.Weather{Temperature: 10}}})
	out, err := svc.Advise(context.Background(), "Curitiba")
	require.NoError(t, err)
	require.Equal(t, "Curitiba", out.City)
	require.Equal(t, "Use camadas para se aquecer", out.Advice.Tips[0])
}
