package service

import (
	"context"

	"github.com/khoahotran/portfolio-api/internal/domain/about"
)

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

// AboutCache holds a copy of the singleton record. Get returns (nil, nil) on a miss.
type AboutCache interface {
	Get(ctx context.Context) (*about.About, error)
	Set(ctx context.Context, a *about.About) error
	Invalidate(ctx context.Context) error
}
