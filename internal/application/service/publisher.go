package service

import (
	"context"

	"github.com/khoahotran/portfolio-api/adapters/event"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

type EventPublisher interface {
	PublishAssetEvent(ctx context.Context, payload event.AssetEventPayload) error
}
