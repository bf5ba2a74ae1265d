package about

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/about"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var tracer = otel.Tracer("about_usecase")

type AboutUseCase struct {
	store   *recordStore
	cleaner *assetCleaner
	logger  logger.Logger
}

func NewAboutUseCase(
	repo about.Repository,
	cache service.AboutCache,
	uploader service.Uploader,
	publisher service.EventPublisher,
	log logger.Logger,
) *AboutUseCase {
	return &AboutUseCase{
		store:   newRecordStore(repo, cache, log),
		cleaner: newAssetCleaner(uploader, publisher, log),
		logger:  log,
	}
}

type GetAboutOutput struct {
	About *about.About
}

func (uc *AboutUseCase) ExecuteGetAbout(ctx context.Context) (*GetAboutOutput, error) {
	a, err := uc.store.cached(ctx)
	if err != nil {
		return nil, fmt.Errorf("get about failed: %w", err)
	}
	return &GetAboutOutput{About: a}, nil
}

type UpdateAboutInput struct {
	Patch about.Patch
}

type UpdateAboutOutput struct {
	About   *about.About
	Created bool
}

// ExecuteUpdateAbout merge-patches the record, creating it on first write.
// A manually supplied resume link detaches any uploaded resume object.
func (uc *AboutUseCase) ExecuteUpdateAbout(ctx context.Context, input UpdateAboutInput) (*UpdateAboutOutput, error) {
	ctx, span := tracer.Start(ctx, "ExecuteUpdateAbout")
	defer span.End()

	patch := input.Patch
	if patch.ResumePublicID.IsSet() {
		return nil, apperror.NewInvalidInput("resume storage id cannot be set directly", nil)
	}

	if patch.Skills.IsSet() {
		skills, err := about.NormalizeSkills(patch.Skills.Value())
		if err != nil {
			return nil, apperror.NewInvalidInput("Skills must not contain duplicates", err)
		}
		patch.Skills = about.Some(skills)
	}

	prev, err := uc.store.current(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("update about failed: %w", err)
	}

	var detached string
	if patch.ResumeLink.IsSet() {
		link := strings.TrimSpace(patch.ResumeLink.Value())
		if prev != nil && link == prev.ResumeLink {
			// Echo of the current link; keep the uploaded object attached.
			patch.ResumeLink = about.Optional[string]{}
		} else {
			patch.ResumeLink = about.Some(link)
			patch.ResumePublicID = about.Some("")
			if prev != nil {
				detached = prev.ResumePublicID
			}
		}
	}

	updated, err := uc.store.upsert(ctx, patch)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("update about failed: %w", err)
	}

	if detached != "" {
		uc.cleaner.discard(ctx, detached, "resume link replaced manually")
	}

	span.SetAttributes(attribute.Bool("created", prev == nil))
	return &UpdateAboutOutput{About: updated, Created: prev == nil}, nil
}

type SkillInput struct {
	Skill string
}

type SkillOutput struct {
	About *about.About
}

func (uc *AboutUseCase) ExecuteAddSkill(ctx context.Context, input SkillInput) (*SkillOutput, error) {
	ctx, span := tracer.Start(ctx, "ExecuteAddSkill")
	defer span.End()

	if strings.TrimSpace(input.Skill) == "" {
		return nil, apperror.NewInvalidInput("Please provide a skill", about.ErrSkillRequired)
	}

	a, err := uc.store.current(ctx)
	if err != nil {
		return nil, fmt.Errorf("add skill failed: %w", err)
	}
	if a == nil {
		a = &about.About{}
	}

	if err := a.AddSkill(input.Skill); err != nil {
		if errors.Is(err, about.ErrSkillExists) {
			return nil, apperror.NewInvalidInput("Skill already exists", err)
		}
		return nil, apperror.NewInvalidInput("Please provide a skill", err)
	}

	updated, err := uc.store.upsert(ctx, about.Patch{Skills: about.Some(a.Skills)})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("add skill failed: %w", err)
	}
	return &SkillOutput{About: updated}, nil
}

// ExecuteDeleteSkill removes every exact match. Deleting a skill that is not
// present succeeds without writing.
func (uc *AboutUseCase) ExecuteDeleteSkill(ctx context.Context, input SkillInput) (*SkillOutput, error) {
	ctx, span := tracer.Start(ctx, "ExecuteDeleteSkill")
	defer span.End()

	if strings.TrimSpace(input.Skill) == "" {
		return nil, apperror.NewInvalidInput("Please provide a skill to delete", about.ErrSkillRequired)
	}

	a, err := uc.store.current(ctx)
	if err != nil {
		return nil, fmt.Errorf("delete skill failed: %w", err)
	}
	if a == nil {
		return nil, apperror.NewNotFound("about", "About information not found")
	}

	if !a.RemoveSkill(input.Skill) {
		uc.logger.Info("Skill not present, nothing to delete", zap.String("skill", input.Skill))
		return &SkillOutput{About: a}, nil
	}

	updated, err := uc.store.upsert(ctx, about.Patch{Skills: about.Some(a.Skills)})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("delete skill failed: %w", err)
	}
	return &SkillOutput{About: updated}, nil
}
