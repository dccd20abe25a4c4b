package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lookia/lookia/internal/domain/chat"
	"github.com/lookia/lookia/internal/domain/feedback"
	"github.com/lookia/lookia/internal/domain/imageproxy"
	"github.com/lookia/lookia/internal/domain/inspiration"
	"github.com/lookia/lookia/internal/domain/location"
	"github.com/lookia/lookia/internal/domain/lookbook"
	"github.com/lookia/lookia/internal/domain/quiz"
	"github.com/lookia/lookia/internal/domain/stylist"
	"github.com/lookia/lookia/internal/domain/weather"
)

// Services groups the domain services exposed over HTTP.
type Services struct {
	Stylist     stylist.Service
	Chat        chat.Service
	Feedback    feedback.Service
	Lookbook    lookbook.Service
	Weather     weather.Service
	Location    location.Service
	ImageProxy  imageproxy.Service
	Inspiration inspiration.Service
	Quiz        quiz.Service
}

// Handler wires the HTTP transport to domain services.
type Handler struct {
	stylistSvc     stylist.Service
	chatSvc        chat.Service
	feedbackSvc    feedback.Service
	lookbookSvc    lookbook.Service
	weatherSvc     weather.Service
	locationSvc    location.Service
	imageSvc       imageproxy.Service
	inspirationSvc inspiration.Service
	quizSvc        quiz.Service
	logger         *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svcs Services, logger *slog.Logger) *Handler {
	return &Handler{
		stylistSvc:     svcs.Stylist,
		chatSvc:        svcs.Chat,
		feedbackSvc:    svcs.Feedback,
		lookbookSvc:    svcs.Lookbook,
		weatherSvc:     svcs.Weather,
		locationSvc:    svcs.Location,
		imageSvc:       svcs.ImageProxy,
		inspirationSvc: svcs.Inspiration,
		quizSvc:        svcs.Quiz,
		logger:         logger.With("component", "http.handler"),
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindJSON decodes the body and aborts with 400 on malformed input.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return false
	}
	return true
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
