package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lookia/lookia/internal/domain/chat"
)

// Chat answers one conversational turn.
func (h *Handler) Chat(c *gin.Context) {
	var req chat.Request
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.chatSvc.Reply(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err, "chat_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
