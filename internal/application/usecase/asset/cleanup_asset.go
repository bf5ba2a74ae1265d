package asset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/about"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	defaultMaxAttempts = 3
	defaultBackoff     = 2 * time.Second
)

// CleanupAssetUseCase retries deletes of storage objects the API could not
// remove inline. An object still referenced by the record is never deleted.
type CleanupAssetUseCase struct {
	aboutRepo   about.Repository
	uploader    service.Uploader
	logger      logger.Logger
	maxAttempts int
	backoff     time.Duration
}

func NewCleanupAssetUseCase(r about.Repository, u service.Uploader, log logger.Logger) *CleanupAssetUseCase {
	return &CleanupAssetUseCase{
		aboutRepo:   r,
		uploader:    u,
		logger:      log,
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
	}
}

// WithRetry overrides the retry policy.
func (uc *CleanupAssetUseCase) WithRetry(maxAttempts int, backoff time.Duration) *CleanupAssetUseCase {
	if maxAttempts > 0 {
		uc.maxAttempts = maxAttempts
	}
	uc.backoff = backoff
	return uc
}

func (uc *CleanupAssetUseCase) Execute(ctx context.Context, payload event.AssetEventPayload) error {
	l := uc.logger.With(zap.String("public_id", payload.PublicID), zap.String("event_type", string(payload.EventType)))

	switch payload.EventType {
	case event.AssetEventTypeResumeUploaded:
		l.Info("Resume uploaded", zap.String("url", payload.URL), zap.String("file_name", payload.FileName))
		return nil
	case event.AssetEventTypeOrphaned:
	default:
		l.Warn("Unknown asset event type, skipping")
		return nil
	}

	if payload.PublicID == "" {
		l.Warn("Orphan event without public id, skipping")
		return nil
	}

	current, err := uc.aboutRepo.Get(ctx)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return apperror.NewInternal("failed to load about record", err)
	}
	if current != nil && current.ResumePublicID == payload.PublicID {
		l.Info("Asset is referenced again, keeping it")
		return nil
	}

	var lastErr error
	for attempt := 1; attempt <= uc.maxAttempts; attempt++ {
		if lastErr = uc.uploader.Delete(ctx, payload.PublicID); lastErr == nil {
			l.Info("Orphaned asset deleted", zap.Int("attempt", attempt))
			return nil
		}
		l.Warn("Delete orphaned asset failed", zap.Int("attempt", attempt), zap.Error(lastErr))

		if attempt == uc.maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * uc.backoff):
		}
	}
	return apperror.NewUpstream(fmt.Sprintf("delete orphaned asset after %d attempts", uc.maxAttempts), lastErr)
}
