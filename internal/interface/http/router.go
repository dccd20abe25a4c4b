package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lookia/lookia/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	// Forwarding headers only count from configured proxies; otherwise the
	// peer address identifies the client for rate limiting.
	if err := router.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		handler.logger.Error("invalid trusted proxies, ignoring forwarding headers", "error", err)
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(
		recoveryMiddleware(handler.logger),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1")
	api.Use(rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger))
	{
		api.GET("/recommendation", handler.RecommendationStatus)
		api.POST("/recommendation", handler.Recommend)
		api.GET("/alternatives", handler.AlternativesStatus)
		api.POST("/alternatives", handler.Alternatives)
		api.POST("/chat", handler.Chat)

		api.GET("/feedback", handler.ListFeedback)
		api.POST("/feedback", handler.CreateFeedback)
		api.PUT("/feedback", handler.UpdateFeedback)
		api.DELETE("/feedback", handler.DeleteFeedback)

		api.GET("/lookbook", handler.ListLooks)
		api.POST("/lookbook", handler.SaveLook)
		api.PUT("/lookbook", handler.UpdateLook)
		api.DELETE("/lookbook", handler.DeleteLook)

		api.GET("/weather", handler.Weather)
		api.GET("/weather/advice", handler.WeatherAdvice)
		api.GET("/geocoding", handler.Geocoding)

		api.GET("/proxy-image/*path", handler.ProxyImage)
		api.POST("/inspiration", handler.Inspiration)

		api.GET("/quiz/style", handler.StyleQuiz)
		api.POST("/quiz/style", handler.ScoreStyleQuiz)
		api.GET("/quiz/palette", handler.PaletteQuiz)
		api.POST("/quiz/palette", handler.ScorePaletteQuiz)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
