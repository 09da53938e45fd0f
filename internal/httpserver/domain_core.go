package httpserver

import (
	"context"

	"percept-srv/internal/fetcher"
	sentimentUsecase "percept-srv/internal/sentiment/usecase"
)

func (srv *HTTPServer) setupCoreDomains(ctx context.Context) error {
	srcCfg := srv.config.Sources

	// Canonical platform order. Responses preserve it.
	srv.sources = []fetcher.Source{
		fetcher.NewYouTube(srv.l, srv.httpClient, srcCfg.YouTubeAPIKey),
		fetcher.NewProductHunt(srv.l, srv.httpClient, srcCfg.ProductHuntAPIToken),
		fetcher.NewGooglePlay(srv.l, srv.httpClient, srcCfg.GooglePlayLanguage, srcCfg.GooglePlayCountry),
		fetcher.NewAppStore(srv.l, srv.httpClient, srcCfg.IOSAppStoreCountry),
		fetcher.NewReddit(srv.l, srv.httpClient, srcCfg.RedditUserAgent),
	}

	srv.sentimentUC = sentimentUsecase.New(srv.l)

	srv.l.Infof(ctx, "Core domains (Fetcher, Sentiment) initialized")
	return nil
}
