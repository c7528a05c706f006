package http

import (
	"engagement-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/reports")
	{
		api.POST("/activity-tiers", h.ActivityTiers)
		api.POST("/summary", h.Summary)
		api.POST("/trend", h.Trend)
	}
}
