package handler

import (
	"net/http"

	"arcade/backend/internal/hub"

	"github.com/gin-gonic/gin"
)

// StreamEvents godoc
// @Summary      Stream catalog changes
// @Description  Server-sent events stream; each "catalog" event carries a game_added or game_removed change.
// @Tags         events
// @Produce      text/event-stream
// @Success      200
// @Router       /events [get]
func (h *Handler) StreamEvents(c *gin.Context) {
	client := make(hub.Client, 16)
	h.Hub.Subscribe(client)
	defer h.Hub.Unsubscribe(client)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case msg, ok := <-client:
			if !ok {
				return
			}
			c.SSEvent("catalog", string(msg))
			c.Writer.Flush()
		case <-ctx.Done():
			return
		}
	}
}
