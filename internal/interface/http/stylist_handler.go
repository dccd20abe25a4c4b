package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lookia/lookia/internal/domain/stylist"
)

// RecommendationStatus answers GET probes of the recommendation endpoint.
func (h *Handler) RecommendationStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": stylist.StatusMessage})
}

// Recommend builds a look for the posted profile.
func (h *Handler) Recommend(c *gin.Context) {
	var req stylist.Request
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.stylistSvc.Recommend(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err, "recommendation_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AlternativesStatus answers GET probes of the alternatives endpoint.
func (h *Handler) AlternativesStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": stylist.AlternativesStatusMessage})
}

// Alternatives builds the classic, modern and comfort variations.
func (h *Handler) Alternatives(c *gin.Context) {
	var req stylist.Request
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.stylistSvc.Alternatives(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err, "alternatives_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
