package about

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// cleanupOutcome is the result of a best-effort delete. It is logged and
// never returned to callers of the use cases.
type cleanupOutcome struct {
	PublicID  string
	Attempted bool
	Err       error
}

func (o cleanupOutcome) Orphaned() bool {
	return o.Attempted && o.Err != nil
}

type assetCleaner struct {
	uploader  service.Uploader
	publisher service.EventPublisher
	logger    logger.Logger
}

func newAssetCleaner(u service.Uploader, p service.EventPublisher, log logger.Logger) *assetCleaner {
	if p == nil {
		p = event.NopPublisher{}
	}
	return &assetCleaner{uploader: u, publisher: p, logger: log}
}

// discard deletes publicID from storage. A failure is logged and handed to
// the cleanup worker as an orphan event.
func (c *assetCleaner) discard(ctx context.Context, publicID, reason string) cleanupOutcome {
	if publicID == "" {
		return cleanupOutcome{}
	}
	outcome := cleanupOutcome{PublicID: publicID, Attempted: true}
	l := c.logger.With(zap.String("public_id", publicID), zap.String("reason", reason))

	if err := c.uploader.Delete(ctx, publicID); err != nil {
		outcome.Err = err
		l.Warn("Failed to delete old asset from storage, continuing", zap.Error(err))

		payload := event.AssetEventPayload{
			EventType:  event.AssetEventTypeOrphaned,
			PublicID:   publicID,
			Reason:     err.Error(),
			OccurredAt: time.Now().UTC(),
		}
		if perr := c.publisher.PublishAssetEvent(ctx, payload); perr != nil {
			l.Error("Failed to publish 'asset.orphaned' event", perr)
		}
		return outcome
	}

	l.Info("Old asset deleted from storage")
	return outcome
}
