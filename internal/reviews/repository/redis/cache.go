package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"percept-srv/internal/model"
	"percept-srv/internal/reviews/repository"
	pkgRedis "percept-srv/pkg/redis"
)

func cacheKey(sourceKey, identifier string) string {
	return fmt.Sprintf("reviews:%s:%s", sourceKey, identifier)
}

func (r *implCacheRepository) GetSourceReviews(ctx context.Context, sourceKey, identifier string) (model.SourceReviews, error) {
	data, err := r.redis.GetClient().Get(ctx, cacheKey(sourceKey, identifier)).Result()
	if err != nil {
		if pkgRedis.IsNotFound(err) {
			return model.SourceReviews{}, repository.ErrCacheMiss
		}
		r.l.Errorf(ctx, "reviews.repository.redis.GetSourceReviews: Failed to read cache: %v", err)
		return model.SourceReviews{}, err
	}

	var cached model.SourceReviews
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		r.l.Errorf(ctx, "reviews.repository.redis.GetSourceReviews: Failed to unmarshal cached reviews: %v", err)
		return model.SourceReviews{}, err
	}
	return cached, nil
}

func (r *implCacheRepository) SaveSourceReviews(ctx context.Context, sourceKey, identifier string, data model.SourceReviews, ttl time.Duration) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if err := r.redis.GetClient().Set(ctx, cacheKey(sourceKey, identifier), payload, ttl).Err(); err != nil {
		r.l.Errorf(ctx, "reviews.repository.redis.SaveSourceReviews: Failed to save to cache: %v", err)
		return err
	}
	return nil
}
