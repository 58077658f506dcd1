package checkout

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) NewRoutes(e *gin.RouterGroup) {
	sessions := e.Group("/v1/checkout/sessions")

	sessions.POST("", h.CreateSession)
	sessions.GET("/:session_id", h.GetSession)
	sessions.PUT("/:session_id/amount", h.UpdateAmount)
	sessions.POST("/:session_id/events", h.OrderEvent)
}
