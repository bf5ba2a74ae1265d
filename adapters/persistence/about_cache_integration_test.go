package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/khoahotran/portfolio-api/internal/domain/about"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRedisAboutCache(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	ctx := context.Background()
	cache := NewRedisAboutCache(startRedis(t), time.Minute, logger.NewNopLogger())

	miss, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, miss)

	want := &about.About{
		Name:           "Ada",
		Skills:         []string{"Go"},
		ResumeLink:     "https://cdn.example/r1.pdf",
		ResumeFileName: "cv.pdf",
		ResumePublicID: "portfolio/resumes/r1",
	}
	require.NoError(t, cache.Set(ctx, want))

	got, err := cache.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "portfolio/resumes/r1", got.ResumePublicID)
	assert.Equal(t, want.Skills, got.Skills)

	require.NoError(t, cache.Invalidate(ctx))
	gone, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
