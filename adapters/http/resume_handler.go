package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	aboutUC "github.com/khoahotran/portfolio-api/internal/application/usecase/about"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	resumeFormField = "resume"
	pdfMIME         = "application/pdf"
)

type ResumeHandler struct {
	resumeUseCase  *aboutUC.ResumeUseCase
	maxResumeBytes int64
	logger         logger.Logger
}

func NewResumeHandler(uc *aboutUC.ResumeUseCase, maxResumeBytes int64, log logger.Logger) *ResumeHandler {
	return &ResumeHandler{
		resumeUseCase:  uc,
		maxResumeBytes: maxResumeBytes,
		logger:         log,
	}
}

func (h *ResumeHandler) UploadResume(c *gin.Context) {
	// Multipart framing needs some headroom beyond the file itself.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxResumeBytes+64<<10)

	fileHeader, err := c.FormFile(resumeFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.NewInvalidInput(h.sizeMessage(), err))
			return
		}
		c.Error(apperror.NewInvalidInput("Please upload a resume file", err))
		return
	}
	if fileHeader.Size > h.maxResumeBytes {
		c.Error(apperror.NewInvalidInput(h.sizeMessage(), nil))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open uploaded file", err))
		return
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		c.Error(apperror.NewInvalidInput("Could not read the uploaded file", err))
		return
	}
	if !mtype.Is(pdfMIME) {
		h.logger.Warn("Rejected resume upload",
			zap.String("detected_mime", mtype.String()),
			zap.String("file_name", fileHeader.Filename),
		)
		c.Error(apperror.NewInvalidInput("Only PDF files are allowed", nil))
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		c.Error(apperror.NewInternal("failed to rewind uploaded file", err))
		return
	}

	output, err := h.resumeUseCase.ExecuteUpload(c.Request.Context(), aboutUC.UploadResumeInput{
		File:     file,
		FileName: fileHeader.Filename,
	})
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, "Resume uploaded successfully", ResumeDTO{
		ResumeLink:     output.ResumeLink,
		ResumeFileName: output.ResumeFileName,
	})
}

func (h *ResumeHandler) GetResume(c *gin.Context) {
	output, err := h.resumeUseCase.ExecuteGetResume(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respond(c, http.StatusOK, "", ResumeDTO{
		ResumeLink:     output.ResumeLink,
		ResumeFileName: output.ResumeFileName,
	})
}

func (h *ResumeHandler) DownloadResume(c *gin.Context) {
	link, err := h.resumeUseCase.ExecuteDownload(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, link)
}

func (h *ResumeHandler) sizeMessage() string {
	return fmt.Sprintf("File size must not exceed %d MB", h.maxResumeBytes>>20)
}
