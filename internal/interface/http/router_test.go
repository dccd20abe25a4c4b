package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

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
	"github.com/lookia/lookia/internal/infra/lookbookrepo"
)

func TestRouter_FeedbackStatsScenario(t *testing.T) {
	server := newRouterUnderTest(t, routerDeps{})

	rec := performRequest(server, http.MethodPost, "/api/v1/feedback", `{
		"userProfile": {"ocasiao": "trabalho"},
		"recommendation": {"descricao": "x", "imagens": [], "dicas": [], "acessorios": []},
		"feedback": "like"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var created feedback.CreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.True(t, created.Success)
	require.NotEmpty(t, created.FeedbackID)

	rec = performRequest(server, http.MethodGet, "/api/v1/feedback?type=stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Success bool           `json:"success"`
		Stats   feedback.Stats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, 1, body.Stats.Total)
	require.Equal(t, 1, body.Stats.Likes)
	require.Equal(t, 0, body.Stats.Dislikes)
	require.Equal(t, 100, body.Stats.LikePercentage)
	require.Equal(t, feedback.Tally{Likes: 1}, body.Stats.FeedbackByCategory.Ocasiao["trabalho"])
}

func TestRouter_FeedbackValidationAndNotFound(t *testing.T) {
	server := newRouterUnderTest(t, routerDeps{})

	rec := performRequest(server, http.MethodPost, "/api/v1/feedback", `{"feedback":"like"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.False(t, errBody.Success)
	require.Equal(t, "invalid_request", errBody.Error.Code)

	rec = performRequest(server, http.MethodDelete, "/api/v1/feedback?id=missing", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Feedback não encontrado", decodeErrorBody(t, rec.Body.Bytes()).Error.Message)
}

func TestRouter_GeocodingFailsWithoutProviders(t *testing.T) {
	server := newRouterUnderTest(t, routerDeps{})

	rec := performRequest(server, http.MethodGet, "/api/v1/geocoding?lat=0&lon=0", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Não foi possível obter informações de localização", decodeErrorBody(t, rec.Body.Bytes()).Error.Message)

	rec = performRequest(server, http.MethodGet, "/api/v1/geocoding?lat=1", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ChatRateLimitedFirstTurn(t *testing.T) {
	server := newRouterUnderTest(t, routerDeps{model: &stubModel{err: &statusErr{code: http.StatusTooManyRequests}}})

	rec := performRequest(server, http.MethodPost, "/api/v1/chat", `{"message":"quero um look para o trabalho","conversationHistory":[],"userProfile":{}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp chat.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 1)
	require.Contains(t, resp.Messages[0], "Olá! Sou sua assistente de moda pessoal!")
	require.Equal(t, "trabalho", resp.UserProfile.Ocasiao)
}

func TestRouter_RecommendFallsBackWithoutModel(t *testing.T) {
	server := newRouterUnderTest(t, routerDeps{})

	rec := performRequest(server, http.MethodPost, "/api/v1/recommendation", `{"profile":{"ocasiao":"festa","estiloDesejado":"elegante"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Descricao  string   `json:"descricao"`
		Imagens    []string `json:"imagens"`
		Dicas      []string `json:"dicas"`
		Acessorios []string `json:"acessorios"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotEmpty(t, got.Descricao)
	require.NotEmpty(t, got.Imagens)
	require.NotEmpty(t, got.Acessorios)

	rec = performRequest(server, http.MethodPost, "/api/v1/recommendation", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Perfil do usuário é obrigatório.", decodeErrorBody(t, rec.Body.Bytes()).Error.Message)

	rec = performRequest(server, http.MethodGet, "/api/v1/recommendation", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), stylist.StatusMessage)
}

func TestRouter_AlternativesReturnsThree(t *testing.T) {
	server := newRouterUnderTest(t, routerDeps{model: &stubModel{text: "Versão linda!"}})

	rec := performRequest(server, http.MethodPost, "/api/v1/alternatives", `{"profile":{"estilo":"casual"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp stylist.AlternativesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, 3, resp.Total)
	require.Len(t, resp.Alternatives, 3)
}

func TestRouter_LookbookFavoriteIsIdempotent(t *testing.T) {
	server := newRouterUnderTest(t, routerDeps{})

	rec := performRequest(server, http.MethodPost, "/api/v1/lookbook", `{"look":{"descricao":"vestido midi","imagens":[],"dicas":[],"acessorios":[]},"profile":{"ocasiao":"festa"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var saved struct {
		Look lookbook.SavedLook `json:"look"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	require.False(t, saved.Look.IsFavorite)

	update := `{"id":"` + saved.Look.ID + `","action":"favorite","data":{"isFavorite":true}}`
	for i := 0; i < 2; i++ {
		rec = performRequest(server, http.MethodPut, "/api/v1/lookbook", update)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = performRequest(server, http.MethodGet, "/api/v1/lookbook?favorites=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Looks []lookbook.SavedLook `json:"looks"`
		Total int                  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Equal(t, 1, list.Total)
	require.True(t, list.Looks[0].IsFavorite)

	rec = performRequest(server, http.MethodPut, "/api/v1/lookbook", `{"id":"`+saved.Look.ID+`","action":"share"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ProxyImagePlaceholder(t *testing.T) {
	fetcher := &stubFetcher{images: map[string]imageproxy.Image{
		"photo-1441986300917-64674bd600d8": {Data: []byte("placeholder"), ContentType: "image/png"},
		"photo-ok":                         {Data: []byte("ok"), ContentType: "image/webp"},
	}}
	server := newRouterUnderTest(t, routerDeps{fetcher: fetcher})

	rec := performRequest(server, http.MethodGet, "/api/v1/proxy-image/photo-ok?w=400", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/webp", rec.Header().Get("Content-Type"))
	require.Equal(t, "public, max-age=31536000, immutable", rec.Header().Get("Cache-Control"))
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = performRequest(server, http.MethodGet, "/api/v1/proxy-image/photo-missing", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	require.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
	require.Equal(t, "placeholder", rec.Body.String())

	rec = performRequest(server, http.MethodGet, "/api/v1/proxy-image/", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_InspirationRelaysUpstreamStatus(t *testing.T) {
	server := newRouterUnderTest(t, routerDeps{})
	rec := performRequest(server, http.MethodPost, "/api/v1/inspiration", `{"query":"boho"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Pinterest access token not configured.", decodeErrorBody(t, rec.Body.Bytes()).Error.Message)

	searcher := &stubSearcher{err: &inspiration.UpstreamError{Status: http.StatusForbidden, Body: json.RawMessage(`{"message":"denied"}`)}}
	server = newRouterUnderTest(t, routerDeps{searcher: searcher})
	rec = performRequest(server, http.MethodPost, "/api/v1/inspiration", `{}`)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"error":{"message":"denied"}}`, rec.Body.String())
}

func TestRouter_WeatherUnconfigured(t *testing.T) {
	server := newRouterUnderTest(t, routerDeps{})
	rec := performRequest(server, http.MethodGet, "/api/v1/weather?city=Recife", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "API key do OpenWeatherMap não configurada", decodeErrorBody(t, rec.Body.Bytes()).Error.Message)
}

func TestRouter_QuizStyle(t *testing.T) {
	server := newRouterUnderTest(t, routerDeps{})

	rec := performRequest(server, http.MethodGet, "/api/v1/quiz/style", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(server, http.MethodPost, "/api/v1/quiz/style", `{"answers":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Profile quiz.StyleProfile `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "casual", body.Profile.Key)
}

func TestRouter_CORSPreflight(t *testing.T) {
	server := newRouterUnderTest(t, routerDeps{})
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/feedback", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	require.Equal(t, corsMaxAge, rec.Header().Get("Access-Control-Max-Age"))
	require.Contains(t, rec.Header().Values("Vary"), "Origin")
}

func TestRouter_RateLimitIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	server := newRouterUnderTest(t, routerDeps{
		rateLimit: config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, Burst: 1},
	})

	rec := performRequestFrom(server, "203.0.113.10")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performRequestFrom(server, "203.0.113.11")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "60", rec.Header().Get("Retry-After"))
	require.Equal(t, "rate_limit_exceeded", decodeErrorBody(t, rec.Body.Bytes()).Error.Code)
}

func TestRouter_RateLimitUsesForwardedForFromTrustedProxy(t *testing.T) {
	server := newRouterUnderTest(t, routerDeps{
		rateLimit:      config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, Burst: 1},
		trustedProxies: []string{"192.0.2.0/24"},
	})

	require.Equal(t, http.StatusOK, performRequestFrom(server, "203.0.113.10").Code)
	require.Equal(t, http.StatusOK, performRequestFrom(server, "203.0.113.11").Code)
	require.Equal(t, http.StatusTooManyRequests, performRequestFrom(server, "203.0.113.11").Code)
}

func TestRouter_InvalidJSON(t *testing.T) {
	server := newRouterUnderTest(t, routerDeps{})
	rec := performRequest(server, http.MethodPost, "/api/v1/chat", `{"message":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid_request", decodeErrorBody(t, rec.Body.Bytes()).Error.Code)
}

type routerDeps struct {
	model          generation.Model
	fetcher        imageproxy.Fetcher
	searcher       inspiration.Searcher
	rateLimit      config.RateLimitConfig
	trustedProxies []string
}

func newRouterUnderTest(t *testing.T, deps routerDeps) *http.Server {
	t.Helper()
	logger := newTestLogger()

	generator := generation.NewGenerator(deps.model, nil, logger)
	weatherSvc := weather.NewService(weather.Config{}, nil, logger)
	fetcher := deps.fetcher
	if fetcher == nil {
		fetcher = &stubFetcher{}
	}

	handler := NewHandler(Services{
		Stylist:     stylist.NewService(generator, weatherSvc, catalog.Default(), logger),
		Chat:        chat.NewService(generator, logger),
		Feedback:    feedback.NewService(feedbackrepo.NewMemoryRepository(), logger),
		Lookbook:    lookbook.NewService(lookbookrepo.NewMemoryRepository(), logger),
		Weather:     weatherSvc,
		Location:    location.NewService(logger),
		ImageProxy:  imageproxy.NewService(imageproxy.Config{}, fetcher, nil, logger),
		Inspiration: inspiration.NewService(deps.searcher, logger),
		Quiz:        quiz.NewService(),
	}, logger)

	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:        ":0",
			ReadTimeout:    time.Second,
			WriteTimeout:   time.Second,
			AllowedOrigins: []string{"http://localhost:3000"},
			TrustedProxies: deps.trustedProxies,
			RateLimit:      deps.rateLimit,
		},
	}
	return NewRouter(cfg, handler)
}

func performRequest(server *http.Server, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

// performRequestFrom sends a quiz request through the default httptest peer
// (192.0.2.1) claiming forwardedFor as the client address.
func performRequestFrom(server *http.Server, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quiz/style", nil)
	req.Header.Set("X-Forwarded-For", forwardedFor)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeErrorBody(t *testing.T, raw []byte) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

type statusErr struct{ code int }

func (e *statusErr) Error() string   { return http.StatusText(e.code) }
func (e *statusErr) StatusCode() int { return e.code }

type stubModel struct {
	text string
	err  error
}

func (m *stubModel) Generate(context.Context, string) (generation.Completion, error) {
	if m.err != nil {
		return generation.Completion{}, m.err
	}
	return generation.Completion{Text: m.text}, nil
}

type stubFetcher struct {
	images map[string]imageproxy.Image
}

func (f *stubFetcher) Fetch(_ context.Context, imageID, _ string) (imageproxy.Image, error) {
	img, ok := f.images[imageID]
	if !ok {
		return imageproxy.Image{}, errors.New("status 404")
	}
	return img, nil
}

type stubSearcher struct {
	items []json.RawMessage
	err   error
}

func (s *stubSearcher) Search(context.Context, string, []inspiration.Param) ([]json.RawMessage, error) {
	return s.items, s.err
}
