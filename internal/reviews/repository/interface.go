package repository

import (
	"context"
	"time"

	"percept-srv/internal/model"
)

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// GetSourceReviews returns a previously cached per-source result.
	// A miss is ErrCacheMiss, never a zero value.
	GetSourceReviews(ctx context.Context, sourceKey, identifier string) (model.SourceReviews, error)

	// SaveSourceReviews caches a successful per-source result for ttl.
	SaveSourceReviews(ctx context.Context, sourceKey, identifier string, data model.SourceReviews, ttl time.Duration) error
}
