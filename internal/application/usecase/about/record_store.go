package about

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/about"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// recordStore puts the read cache in front of the repository. Reads that
// feed a write go straight to the repository.
type recordStore struct {
	repo   about.Repository
	cache  service.AboutCache
	logger logger.Logger
}

func newRecordStore(repo about.Repository, cache service.AboutCache, log logger.Logger) *recordStore {
	if cache == nil {
		cache = nopCache{}
	}
	return &recordStore{repo: repo, cache: cache, logger: log}
}

// cached returns the record, consulting the cache first.
func (s *recordStore) cached(ctx context.Context) (*about.About, error) {
	hit, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn("About cache read failed, falling back to database", zap.Error(err))
	} else if hit != nil {
		return hit, nil
	}

	a, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, a); err != nil {
		s.logger.Warn("About cache write failed", zap.Error(err))
	}
	return a, nil
}

// current returns the stored record or nil when none exists yet.
func (s *recordStore) current(ctx context.Context) (*about.About, error) {
	a, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (s *recordStore) upsert(ctx context.Context, patch about.Patch) (*about.About, error) {
	a, err := s.repo.Upsert(ctx, patch)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("About cache invalidation failed", zap.Error(err))
	}
	return a, nil
}

type nopCache struct{}

func (nopCache) Get(context.Context) (*about.About, error) { return nil, nil }
func (nopCache) Set(context.Context, *about.About) error    { return nil }
func (nopCache) Invalidate(context.Context) error           { return nil }
