package http

import (
	"percept-srv/internal/middleware"
	"percept-srv/internal/reviews"
	"percept-srv/pkg/discord"
	"percept-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho reviews HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      reviews.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc reviews.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
