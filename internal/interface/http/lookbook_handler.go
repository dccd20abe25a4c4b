package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lookia/lookia/internal/domain/lookbook"
)

// ListLooks returns saved looks, favorites only with ?favorites=true.
func (h *Handler) ListLooks(c *gin.Context) {
	looks, err := h.lookbookSvc.List(c.Request.Context(), c.Query("favorites") == "true")
	if err != nil {
		abortWithError(c, domainError(err, "lookbook_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "looks": looks, "total": len(looks)})
}

// SaveLook stores a look in the lookbook.
func (h *Handler) SaveLook(c *gin.Context) {
	var req lookbook.SaveRequest
	if !bindJSON(c, &req) {
		return
	}
	saved, err := h.lookbookSvc.Save(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err, "lookbook_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": lookbook.SavedMessage, "look": saved})
}

// UpdateLook applies an action such as favorite toggling.
func (h *Handler) UpdateLook(c *gin.Context) {
	var req lookbook.UpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	updated, message, err := h.lookbookSvc.Update(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err, "lookbook_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "look": updated})
}

// DeleteLook removes a saved look by ?id=.
func (h *Handler) DeleteLook(c *gin.Context) {
	if err := h.lookbookSvc.Delete(c.Request.Context(), c.Query("id")); err != nil {
		abortWithError(c, domainError(err, "lookbook_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": lookbook.DeletedMessage})
}
