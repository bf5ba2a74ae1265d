package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	aboutUC "github.com/khoahotran/portfolio-api/internal/application/usecase/about"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type AboutHandler struct {
	aboutUseCase *aboutUC.AboutUseCase
	logger       logger.Logger
}

func NewAboutHandler(uc *aboutUC.AboutUseCase, log logger.Logger) *AboutHandler {
	return &AboutHandler{
		aboutUseCase: uc,
		logger:       log,
	}
}

func (h *AboutHandler) GetAbout(c *gin.Context) {
	output, err := h.aboutUseCase.ExecuteGetAbout(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respond(c, http.StatusOK, "", aboutEnvelopeData{About: ToAboutDTO(output.About)})
}

func (h *AboutHandler) UpdateAbout(c *gin.Context) {
	var req UpdateAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Error(apperror.NewInvalidInput("Invalid JSON body", err))
		return
	}

	output, err := h.aboutUseCase.ExecuteUpdateAbout(c.Request.Context(), aboutUC.UpdateAboutInput{Patch: req.ToPatch()})
	if err != nil {
		c.Error(err)
		return
	}

	if output.Created {
		respond(c, http.StatusCreated, "About information created successfully", aboutEnvelopeData{About: ToAboutDTO(output.About)})
		return
	}
	respond(c, http.StatusOK, "About information updated successfully", aboutEnvelopeData{About: ToAboutDTO(output.About)})
}

func (h *AboutHandler) AddSkill(c *gin.Context) {
	req, ok := bindSkill(c)
	if !ok {
		return
	}

	output, err := h.aboutUseCase.ExecuteAddSkill(c.Request.Context(), aboutUC.SkillInput{Skill: req.Skill})
	if err != nil {
		c.Error(err)
		return
	}
	respond(c, http.StatusOK, "Skill added successfully", aboutEnvelopeData{About: ToAboutDTO(output.About)})
}

func (h *AboutHandler) DeleteSkill(c *gin.Context) {
	req, ok := bindSkill(c)
	if !ok {
		return
	}

	output, err := h.aboutUseCase.ExecuteDeleteSkill(c.Request.Context(), aboutUC.SkillInput{Skill: req.Skill})
	if err != nil {
		c.Error(err)
		return
	}
	respond(c, http.StatusOK, "Skill deleted successfully", aboutEnvelopeData{About: ToAboutDTO(output.About)})
}

// bindSkill accepts an empty body; the use case reports the missing skill.
func bindSkill(c *gin.Context) (SkillRequest, bool) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Error(apperror.NewInvalidInput("Invalid JSON body", err))
		return req, false
	}
	return req, true
}
