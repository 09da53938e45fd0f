package redis

import (
	"percept-srv/internal/reviews/repository"
	"percept-srv/pkg/log"
	pkgRedis "percept-srv/pkg/redis"
)

type implCacheRepository struct {
	l     log.Logger
	redis pkgRedis.IRedis
}

// New - Factory
func New(l log.Logger, redis pkgRedis.IRedis) repository.CacheRepository {
	return &implCacheRepository{
		l:     l,
		redis: redis,
	}
}
