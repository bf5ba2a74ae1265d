package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/about"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const aboutCacheKey = "about:singleton"

type redisAboutCache struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisAboutCache(rdb redis.Cmdable, ttl time.Duration, logger logger.Logger) service.AboutCache {
	return &redisAboutCache{rdb: rdb, ttl: ttl, logger: logger}
}

// cachedAbout keeps the storage id, which About hides from JSON.
type cachedAbout struct {
	about.About
	ResumePublicID string `json:"resumePublicId"`
}

func (c *redisAboutCache) Get(ctx context.Context) (*about.About, error) {
	raw, err := c.rdb.Get(ctx, aboutCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var entry cachedAbout
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.logger.Warn("Dropping unreadable about cache entry", zap.Error(err))
		_ = c.Invalidate(ctx)
		return nil, nil
	}
	a := entry.About
	a.ResumePublicID = entry.ResumePublicID
	return &a, nil
}

func (c *redisAboutCache) Set(ctx context.Context, a *about.About) error {
	if a == nil {
		return nil
	}
	raw, err := json.Marshal(cachedAbout{About: *a, ResumePublicID: a.ResumePublicID})
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, aboutCacheKey, raw, c.ttl).Err()
}

func (c *redisAboutCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, aboutCacheKey).Err()
}
