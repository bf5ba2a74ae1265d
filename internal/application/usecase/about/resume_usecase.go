package about

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/about"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const DefaultResumeFolder = "portfolio/resumes"

// ResumeUseCase owns the lifecycle of the single resume asset: replace on
// upload, read metadata, resolve the download link.
type ResumeUseCase struct {
	store     *recordStore
	cleaner   *assetCleaner
	uploader  service.Uploader
	publisher service.EventPublisher
	folder    string
	now       func() time.Time
	logger    logger.Logger
}

func NewResumeUseCase(
	repo about.Repository,
	cache service.AboutCache,
	uploader service.Uploader,
	publisher service.EventPublisher,
	folder string,
	log logger.Logger,
) *ResumeUseCase {
	if folder == "" {
		folder = DefaultResumeFolder
	}
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &ResumeUseCase{
		store:     newRecordStore(repo, cache, log),
		cleaner:   newAssetCleaner(uploader, publisher, log),
		uploader:  uploader,
		publisher: publisher,
		folder:    folder,
		now:       time.Now,
		logger:    log,
	}
}

type UploadResumeInput struct {
	File     io.Reader
	FileName string
}

// ResumeOutput is the client-facing resume descriptor. The storage id stays
// internal.
type ResumeOutput struct {
	ResumeLink     string
	ResumeFileName string
}

// ExecuteUpload replaces the current resume. The previous object is deleted
// best-effort before the new upload; only the upload itself or the record
// write can fail the call.
//
// The work is detached from request cancellation: once started, the upload
// and record write run to completion even if the client goes away.
func (uc *ResumeUseCase) ExecuteUpload(ctx context.Context, input UploadResumeInput) (*ResumeOutput, error) {
	ctx, span := tracer.Start(context.WithoutCancel(ctx), "ExecuteUploadResume")
	defer span.End()

	if input.File == nil {
		return nil, apperror.NewInvalidInput("Please upload a resume file", nil)
	}

	prev, err := uc.store.current(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("upload resume failed: %w", err)
	}
	if prev != nil && prev.ResumePublicID != "" {
		outcome := uc.cleaner.discard(ctx, prev.ResumePublicID, "replaced by new resume upload")
		span.SetAttributes(attribute.Bool("previous_orphaned", outcome.Orphaned()))
	}

	storageKey := uc.newStorageKey()
	result, err := uc.uploader.Upload(ctx, input.File, uc.folder, storageKey)
	if err != nil {
		span.RecordError(err)
		uc.logger.Error("Resume upload to storage failed", err, zap.String("storage_key", storageKey))
		return nil, apperror.NewUpstream("failed to upload resume", err)
	}

	fileName := strings.TrimSpace(input.FileName)
	if fileName == "" {
		fileName = about.DefaultResumeFileName
	}

	updated, err := uc.store.upsert(ctx, about.Patch{
		ResumeLink:     about.Some(result.URL),
		ResumeFileName: about.Some(fileName),
		ResumePublicID: about.Some(result.PublicID),
	})
	if err != nil {
		span.RecordError(err)
		uc.cleaner.discard(ctx, result.PublicID, "record update failed after upload")
		return nil, fmt.Errorf("upload resume failed: %w", err)
	}

	uc.logger.Info("Resume uploaded",
		zap.String("public_id", result.PublicID),
		zap.String("file_name", fileName),
	)

	payload := event.AssetEventPayload{
		EventType:  event.AssetEventTypeResumeUploaded,
		PublicID:   result.PublicID,
		URL:        result.URL,
		FileName:   fileName,
		OccurredAt: uc.now().UTC(),
	}
	if err := uc.publisher.PublishAssetEvent(ctx, payload); err != nil {
		uc.logger.Error("Failed to publish 'resume.uploaded' event", err, zap.String("public_id", result.PublicID))
	}

	return &ResumeOutput{ResumeLink: updated.ResumeLink, ResumeFileName: updated.ResumeFileName}, nil
}

func (uc *ResumeUseCase) ExecuteGetResume(ctx context.Context) (*ResumeOutput, error) {
	a, err := uc.resume(ctx)
	if err != nil {
		return nil, err
	}
	fileName := a.ResumeFileName
	if fileName == "" {
		fileName = about.DefaultResumeFileName
	}
	return &ResumeOutput{ResumeLink: a.ResumeLink, ResumeFileName: fileName}, nil
}

// ExecuteDownload returns the storage URL the client should be redirected to.
func (uc *ResumeUseCase) ExecuteDownload(ctx context.Context) (string, error) {
	a, err := uc.resume(ctx)
	if err != nil {
		return "", err
	}
	return a.ResumeLink, nil
}

func (uc *ResumeUseCase) resume(ctx context.Context) (*about.About, error) {
	a, err := uc.store.cached(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, errResumeNotFound()
		}
		return nil, fmt.Errorf("get resume failed: %w", err)
	}
	if !a.HasResume() {
		return nil, errResumeNotFound()
	}
	return a, nil
}

func errResumeNotFound() error {
	return apperror.NewAppError(apperror.ErrNotFound, "Resume not found", "resume was not found", about.ErrResumeNotFound)
}

// newStorageKey derives a fresh key from the clock; the random suffix keeps
// uploads in the same millisecond apart.
func (uc *ResumeUseCase) newStorageKey() string {
	return fmt.Sprintf("resume_%d_%s", uc.now().UnixMilli(), uuid.NewString()[:8])
}
