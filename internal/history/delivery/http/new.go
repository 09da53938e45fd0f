package http

import (
	"percept-srv/internal/history"
	"percept-srv/internal/middleware"
	"percept-srv/pkg/discord"
	"percept-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho history HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      history.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc history.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
