package about_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/khoahotran/portfolio-api/adapters/event"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	serviceMocks "github.com/khoahotran/portfolio-api/internal/application/service/mocks"
	aboutUC "github.com/khoahotran/portfolio-api/internal/application/usecase/about"
	"github.com/khoahotran/portfolio-api/internal/domain/about"
	aboutMocks "github.com/khoahotran/portfolio-api/internal/domain/about/mocks"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type resumeDeps struct {
	repo      *aboutMocks.MockRepository
	uploader  *serviceMocks.MockUploader
	publisher *serviceMocks.MockEventPublisher
	uc        *aboutUC.ResumeUseCase
}

func setupResume(t *testing.T) resumeDeps {
	ctrl := gomock.NewController(t)
	d := resumeDeps{
		repo:      aboutMocks.NewMockRepository(ctrl),
		uploader:  serviceMocks.NewMockUploader(ctrl),
		publisher: serviceMocks.NewMockEventPublisher(ctrl),
	}
	d.uc = aboutUC.NewResumeUseCase(d.repo, nil, d.uploader, d.publisher, "portfolio/resumes", logger.NewNopLogger())
	return d
}

func notFound() error {
	return apperror.NewNotFound("about", "About information not found")
}

func uploadedPatch(url, name, publicID string) about.Patch {
	return about.Patch{
		ResumeLink:     about.Some(url),
		ResumeFileName: about.Some(name),
		ResumePublicID: about.Some(publicID),
	}
}

func TestUploadResume_NoRecord_CreatesWithoutDelete(t *testing.T) {
	d := setupResume(t)
	ctx := context.Background()

	d.repo.EXPECT().Get(gomock.Any()).Return(nil, notFound())
	d.uploader.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
	d.uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any(), "portfolio/resumes", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, _ string, key string) (*service.UploadResult, error) {
			assert.True(t, strings.HasPrefix(key, "resume_"), "storage key %q", key)
			return &service.UploadResult{URL: "https://cdn.example/r2.pdf", PublicID: "portfolio/resumes/r2"}, nil
		})
	d.repo.EXPECT().
		Upsert(gomock.Any(), uploadedPatch("https://cdn.example/r2.pdf", "cv.pdf", "portfolio/resumes/r2")).
		Return(&about.About{ResumeLink: "https://cdn.example/r2.pdf", ResumeFileName: "cv.pdf", ResumePublicID: "portfolio/resumes/r2"}, nil)
	d.publisher.EXPECT().PublishAssetEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p event.AssetEventPayload) error {
			assert.Equal(t, event.AssetEventTypeResumeUploaded, p.EventType)
			assert.Equal(t, "portfolio/resumes/r2", p.PublicID)
			return nil
		})

	out, err := d.uc.ExecuteUpload(ctx, aboutUC.UploadResumeInput{File: strings.NewReader("%PDF-1.4"), FileName: "cv.pdf"})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/r2.pdf", out.ResumeLink)
	assert.Equal(t, "cv.pdf", out.ResumeFileName)
}

func TestUploadResume_ReplacesPreviousAsset(t *testing.T) {
	d := setupResume(t)

	gomock.InOrder(
		d.repo.EXPECT().Get(gomock.Any()).Return(&about.About{Name: "Alice", ResumeLink: "https://cdn.example/r1.pdf", ResumePublicID: "r1"}, nil),
		d.uploader.EXPECT().Delete(gomock.Any(), "r1").Return(nil),
		d.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), "portfolio/resumes", gomock.Any()).
			Return(&service.UploadResult{URL: "https://cdn.example/r2.pdf", PublicID: "r2"}, nil),
		d.repo.EXPECT().Upsert(gomock.Any(), uploadedPatch("https://cdn.example/r2.pdf", "new.pdf", "r2")).
			Return(&about.About{Name: "Alice", ResumeLink: "https://cdn.example/r2.pdf", ResumeFileName: "new.pdf", ResumePublicID: "r2"}, nil),
	)
	d.publisher.EXPECT().PublishAssetEvent(gomock.Any(), gomock.Any()).Return(nil)

	out, err := d.uc.ExecuteUpload(context.Background(), aboutUC.UploadResumeInput{File: strings.NewReader("pdf"), FileName: "new.pdf"})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/r2.pdf", out.ResumeLink)
}

func TestUploadResume_DeleteFailureIsSwallowed(t *testing.T) {
	d := setupResume(t)

	d.repo.EXPECT().Get(gomock.Any()).Return(&about.About{ResumeLink: "https://cdn.example/r1.pdf", ResumePublicID: "r1"}, nil)
	d.uploader.EXPECT().Delete(gomock.Any(), "r1").Return(errors.New("cloudinary: 503"))
	d.publisher.EXPECT().PublishAssetEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p event.AssetEventPayload) error {
			assert.Equal(t, event.AssetEventTypeOrphaned, p.EventType)
			assert.Equal(t, "r1", p.PublicID)
			return errors.New("broker down")
		})
	d.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&service.UploadResult{URL: "https://cdn.example/r2.pdf", PublicID: "r2"}, nil)
	d.repo.EXPECT().Upsert(gomock.Any(), uploadedPatch("https://cdn.example/r2.pdf", "cv.pdf", "r2")).
		Return(&about.About{ResumeLink: "https://cdn.example/r2.pdf", ResumeFileName: "cv.pdf", ResumePublicID: "r2"}, nil)
	d.publisher.EXPECT().PublishAssetEvent(gomock.Any(), gomock.Any()).Return(nil)

	out, err := d.uc.ExecuteUpload(context.Background(), aboutUC.UploadResumeInput{File: strings.NewReader("pdf"), FileName: "cv.pdf"})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/r2.pdf", out.ResumeLink)
}

func TestUploadResume_UploadFailureLeavesRecordUntouched(t *testing.T) {
	d := setupResume(t)

	d.repo.EXPECT().Get(gomock.Any()).Return(nil, notFound())
	d.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("network unreachable"))
	d.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

	out, err := d.uc.ExecuteUpload(context.Background(), aboutUC.UploadResumeInput{File: strings.NewReader("pdf"), FileName: "cv.pdf"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, apperror.ErrUpstream)
	assert.Equal(t, "network unreachable", apperror.PublicMessage(err))
}

func TestUploadResume_RecordWriteFailureDiscardsNewObject(t *testing.T) {
	d := setupResume(t)

	d.repo.EXPECT().Get(gomock.Any()).Return(nil, notFound())
	d.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&service.UploadResult{URL: "https://cdn.example/r2.pdf", PublicID: "r2"}, nil)
	d.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil, apperror.NewInternal("failed to upsert about", errors.New("db down")))
	d.uploader.EXPECT().Delete(gomock.Any(), "r2").Return(nil)

	_, err := d.uc.ExecuteUpload(context.Background(), aboutUC.UploadResumeInput{File: strings.NewReader("pdf"), FileName: "cv.pdf"})

	assert.ErrorIs(t, err, apperror.ErrInternal)
}

func TestUploadResume_DefaultsFileName(t *testing.T) {
	d := setupResume(t)

	d.repo.EXPECT().Get(gomock.Any()).Return(nil, notFound())
	d.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&service.UploadResult{URL: "u", PublicID: "p"}, nil)
	d.repo.EXPECT().Upsert(gomock.Any(), uploadedPatch("u", about.DefaultResumeFileName, "p")).
		Return(&about.About{ResumeLink: "u", ResumeFileName: about.DefaultResumeFileName, ResumePublicID: "p"}, nil)
	d.publisher.EXPECT().PublishAssetEvent(gomock.Any(), gomock.Any()).Return(nil)

	out, err := d.uc.ExecuteUpload(context.Background(), aboutUC.UploadResumeInput{File: strings.NewReader("pdf"), FileName: "  "})

	require.NoError(t, err)
	assert.Equal(t, about.DefaultResumeFileName, out.ResumeFileName)
}

func TestUploadResume_SurvivesCanceledRequest(t *testing.T) {
	d := setupResume(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d.repo.EXPECT().Get(gomock.Any()).DoAndReturn(func(ctx context.Context) (*about.About, error) {
		assert.NoError(t, ctx.Err())
		return nil, notFound()
	})
	d.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ any, _ string, _ string) (*service.UploadResult, error) {
			assert.NoError(t, ctx.Err())
			return &service.UploadResult{URL: "u", PublicID: "p"}, nil
		})
	d.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(&about.About{ResumeLink: "u", ResumeFileName: "cv.pdf"}, nil)
	d.publisher.EXPECT().PublishAssetEvent(gomock.Any(), gomock.Any()).Return(nil)

	_, err := d.uc.ExecuteUpload(ctx, aboutUC.UploadResumeInput{File: strings.NewReader("pdf"), FileName: "cv.pdf"})
	require.NoError(t, err)
}

func TestUploadResume_MissingFile(t *testing.T) {
	d := setupResume(t)

	_, err := d.uc.ExecuteUpload(context.Background(), aboutUC.UploadResumeInput{FileName: "cv.pdf"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestGetResume(t *testing.T) {
	tests := []struct {
		name     string
		record   *about.About
		repoErr  error
		wantErr  error
		wantName string
	}{
		{name: "no record", repoErr: notFound(), wantErr: apperror.ErrNotFound},
		{name: "record without resume", record: &about.About{Name: "Alice"}, wantErr: apperror.ErrNotFound},
		{name: "resume with name", record: &about.About{ResumeLink: "u", ResumeFileName: "cv.pdf"}, wantName: "cv.pdf"},
		{name: "resume without name", record: &about.About{ResumeLink: "u"}, wantName: about.DefaultResumeFileName},
		{name: "database error", repoErr: apperror.NewInternal("boom", nil), wantErr: apperror.ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupResume(t)
			d.repo.EXPECT().Get(gomock.Any()).Return(tt.record, tt.repoErr).Times(2)

			out, err := d.uc.ExecuteGetResume(context.Background())
			link, dlErr := d.uc.ExecuteDownload(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, dlErr, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, dlErr)
			assert.Equal(t, "u", out.ResumeLink)
			assert.Equal(t, "u", link)
			assert.Equal(t, tt.wantName, out.ResumeFileName)
		})
	}
}

func TestGetResume_UsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := aboutMocks.NewMockRepository(ctrl)
	cache := serviceMocks.NewMockAboutCache(ctrl)
	uc := aboutUC.NewResumeUseCase(repo, cache, serviceMocks.NewMockUploader(ctrl), nil, "", logger.NewNopLogger())

	cache.EXPECT().Get(gomock.Any()).Return(&about.About{ResumeLink: "cached"}, nil)
	repo.EXPECT().Get(gomock.Any()).Times(0)

	link, err := uc.ExecuteDownload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cached", link)
}
