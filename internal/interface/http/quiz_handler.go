package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lookia/lookia/internal/domain/quiz"
)

// StyleQuiz returns the style quiz questions.
func (h *Handler) StyleQuiz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.quizSvc.StyleQuestions()})
}

// ScoreStyleQuiz resolves answers into a style profile.
func (h *Handler) ScoreStyleQuiz(c *gin.Context) {
	var req quiz.AnswersRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.quizSvc.Style(req)
	if err != nil {
		abortWithError(c, domainError(err, "quiz_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// PaletteQuiz returns the color palette quiz questions.
func (h *Handler) PaletteQuiz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.quizSvc.PaletteQuestions()})
}

// ScorePaletteQuiz resolves answers into a color palette.
func (h *Handler) ScorePaletteQuiz(c *gin.Context) {
	var req quiz.AnswersRequest
	if !bindJSON(c, &req) {
		return
	}
	palette, err := h.quizSvc.Palette(req)
	if err != nil {
		abortWithError(c, domainError(err, "quiz_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"palette": palette})
}
