package usecase

import (
	"time"

	"percept-srv/internal/fetcher"
	"percept-srv/internal/history"
	"percept-srv/internal/reviews"
	"percept-srv/internal/reviews/repository"
	"percept-srv/internal/sentiment"
	"percept-srv/pkg/kafka"
	"percept-srv/pkg/log"
)

// Config - Cấu hình UseCase
type Config struct {
	ReviewCount    int           // Reviews requested per source
	MaxReviewCount int           // Upper bound on ReviewCount; 0 means uncapped
	FetchTimeout   time.Duration // Budget for one source fetch
	CacheTTL       time.Duration // Per-source cache lifetime; 0 disables caching
}

// implUseCase - Implementation của UseCase interface
type implUseCase struct {
	l           log.Logger
	sources     []fetcher.Source
	sentimentUC sentiment.UseCase
	cacheRepo   repository.CacheRepository
	historyUC   history.UseCase
	producer    kafka.IProducer
	cfg         Config
}

// New - Factory function. Sources must be passed in canonical platform
// order; the response preserves it. historyUC and producer are optional
// and skipped when nil.
func New(
	l log.Logger,
	sources []fetcher.Source,
	sentimentUC sentiment.UseCase,
	cacheRepo repository.CacheRepository,
	historyUC history.UseCase,
	producer kafka.IProducer,
	cfg Config,
) reviews.UseCase {
	if cfg.MaxReviewCount > 0 && cfg.ReviewCount > cfg.MaxReviewCount {
		cfg.ReviewCount = cfg.MaxReviewCount
	}
	return &implUseCase{
		l:           l,
		sources:     sources,
		sentimentUC: sentimentUC,
		cacheRepo:   cacheRepo,
		historyUC:   historyUC,
		producer:    producer,
		cfg:         cfg,
	}
}
