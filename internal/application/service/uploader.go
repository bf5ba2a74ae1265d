package service

import (
	"context"
	"io"
)

//go:generate mockgen -source=uploader.go -destination=mocks/mock_uploader.go -package=mocks

// UploadResult is what the storage service hands back for a stored object:
// its canonical retrieval URL and the opaque id used to delete it later.
type UploadResult struct {
	URL      string
	PublicID string
}

type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}
