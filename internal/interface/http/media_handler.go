package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lookia/lookia/internal/domain/inspiration"
)

// ProxyImage streams a photo from the image host, or a placeholder when it fails.
func (h *Handler) ProxyImage(c *gin.Context) {
	imageID := strings.Trim(c.Param("path"), "/")
	if i := strings.Index(imageID, "/"); i >= 0 {
		imageID = imageID[:i]
	}

	served, err := h.imageSvc.Get(c.Request.Context(), imageID, c.Request.URL.RawQuery)
	if err != nil {
		abortWithError(c, domainError(err, "image_failed"))
		return
	}
	c.Header("Cache-Control", served.CacheControl)
	if !served.Placeholder {
		c.Header("Access-Control-Allow-Origin", "*")
	}
	c.Data(http.StatusOK, served.ContentType, served.Data)
}

// Inspiration searches the image search provider.
func (h *Handler) Inspiration(c *gin.Context) {
	var req inspiration.Request
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.inspirationSvc.Search(c.Request.Context(), req)
	if err != nil {
		var upstream *inspiration.UpstreamError
		if errors.As(err, &upstream) {
			h.logger.Warn("inspiration search relayed upstream failure", "status", upstream.Status)
			c.JSON(upstream.Status, gin.H{"error": upstream.Body})
			return
		}
		abortWithError(c, domainError(err, "inspiration_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
