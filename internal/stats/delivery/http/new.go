package http

import (
	"engagement-srv/internal/middleware"
	"engagement-srv/internal/stats"
	"engagement-srv/pkg/discord"
	"engagement-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the stats HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      stats.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc stats.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
