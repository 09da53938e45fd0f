package http

import (
	"percept-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	{
		api.GET("/history/:product", h.ListSnapshots)
		api.GET("/history/:product/latest", h.LatestSnapshot)
	}
}
