package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lookia/lookia/internal/domain/feedback"
)

// ListFeedback returns recent feedback, or aggregate stats with ?type=stats.
func (h *Handler) ListFeedback(c *gin.Context) {
	ctx := c.Request.Context()
	if c.Query("type") == "stats" {
		stats, err := h.feedbackSvc.Stats(ctx)
		if err != nil {
			abortWithError(c, domainError(err, "feedback_failed"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
		return
	}

	records, err := h.feedbackSvc.Recent(ctx)
	if err != nil {
		abortWithError(c, domainError(err, "feedback_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "feedbacks": records})
}

// CreateFeedback stores a like or dislike.
func (h *Handler) CreateFeedback(c *gin.Context) {
	var req feedback.CreateRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.feedbackSvc.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err, "feedback_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateFeedback patches an existing entry.
func (h *Handler) UpdateFeedback(c *gin.Context) {
	var req feedback.UpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := h.feedbackSvc.Update(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err, "feedback_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": feedback.UpdatedMessage, "feedback": record})
}

// DeleteFeedback removes an entry by ?id=.
func (h *Handler) DeleteFeedback(c *gin.Context) {
	if err := h.feedbackSvc.Delete(c.Request.Context(), c.Query("id")); err != nil {
		abortWithError(c, domainError(err, "feedback_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": feedback.DeletedMessage})
}
