package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"percept-srv/internal/middleware"
	reviewsHTTP "percept-srv/internal/reviews/delivery/http"
	reviewsRedis "percept-srv/internal/reviews/repository/redis"
	reviewsUsecase "percept-srv/internal/reviews/usecase"
)

func (srv *HTTPServer) setupReviewsDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	cacheRepo := reviewsRedis.New(srv.l, srv.redisClient)

	uc := reviewsUsecase.New(
		srv.l,
		srv.sources,
		srv.sentimentUC,
		cacheRepo,
		srv.historyUC,
		srv.producer,
		reviewsUsecase.Config{
			ReviewCount:    srv.config.Sources.DefaultReviewCount,
			MaxReviewCount: srv.config.Sources.MaxReviewCount,
			FetchTimeout:   time.Duration(srv.config.Sources.RequestTimeout) * time.Second,
			CacheTTL:       time.Duration(srv.config.Cache.ReviewsTTL) * time.Minute,
		},
	)

	handler := reviewsHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Reviews domain registered")
	return nil
}
