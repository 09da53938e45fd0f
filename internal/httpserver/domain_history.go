package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	historyHTTP "percept-srv/internal/history/delivery/http"
	historyPostgre "percept-srv/internal/history/repository/postgre"
	historyUsecase "percept-srv/internal/history/usecase"
	"percept-srv/internal/middleware"
)

func (srv *HTTPServer) setupHistoryDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := historyPostgre.New(srv.postgresDB, srv.l)

	uc := historyUsecase.New(srv.l, repo)
	srv.historyUC = uc

	handler := historyHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "History domain registered")
	return nil
}
