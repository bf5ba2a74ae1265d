package media_storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const resumeContentType = "application/pdf"

type minioAdapter struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    logger.Logger
}

func NewMinIOAdapter(cfg config.Config, log logger.Logger) (service.Uploader, error) {
	if cfg.MinIO.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint has not config")
	}

	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKeyID, cfg.MinIO.SecretAccessKey, ""),
		Secure: cfg.MinIO.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.MinIO.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIO.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket %q: %w", cfg.MinIO.Bucket, err)
		}
	}

	publicURL := cfg.MinIO.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.MinIO.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + cfg.MinIO.Endpoint
	}

	log.Info("Connect MinIO successfully.", zap.String("bucket", cfg.MinIO.Bucket))
	return &minioAdapter{
		client:    client,
		bucket:    cfg.MinIO.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    log,
	}, nil
}

func (a *minioAdapter) Upload(ctx context.Context, file io.Reader, folder string, publicID string) (*service.UploadResult, error) {
	key := path.Join(folder, publicID)
	_, err := a.client.PutObject(ctx, a.bucket, key, file, -1, minio.PutObjectOptions{
		ContentType: resumeContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("put object %q: %w", key, err)
	}
	return &service.UploadResult{URL: objectURL(a.publicURL, a.bucket, key), PublicID: key}, nil
}

// Delete treats an already missing object as deleted.
func (a *minioAdapter) Delete(ctx context.Context, publicID string) error {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return nil
	}
	if err := a.client.RemoveObject(ctx, a.bucket, publicID, minio.RemoveObjectOptions{}); err != nil {
		if isNoSuchKey(err) {
			return nil
		}
		return fmt.Errorf("remove object %q: %w", publicID, err)
	}
	return nil
}

func objectURL(base, bucket, key string) string {
	return base + "/" + path.Join(bucket, key)
}

func isNoSuchKey(err error) bool {
	if err == nil {
		return false
	}
	var minioErr minio.ErrorResponse
	if errors.As(err, &minioErr) {
		switch strings.ToLower(minioErr.Code) {
		case "nosuchkey", "notfound":
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "nosuchkey")
}
