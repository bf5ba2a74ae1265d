package http

import (
	"time"

	"github.com/khoahotran/portfolio-api/internal/domain/about"
)

type AboutDTO struct {
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Bio            string    `json:"bio"`
	Skills         []string  `json:"skills"`
	ResumeLink     string    `json:"resumeLink"`
	ResumeFileName string    `json:"resumeFileName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Location       string    `json:"location"`
	LinkedIn       string    `json:"linkedin"`
	GitHub         string    `json:"github"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ToAboutDTO never carries the storage id of the resume.
func ToAboutDTO(a *about.About) AboutDTO {
	skills := a.Skills
	if skills == nil {
		skills = []string{}
	}
	return AboutDTO{
		Name:           a.Name,
		Role:           a.Role,
		Bio:            a.Bio,
		Skills:         skills,
		ResumeLink:     a.ResumeLink,
		ResumeFileName: a.ResumeFileName,
		Email:          a.Email,
		Phone:          a.Phone,
		Location:       a.Location,
		LinkedIn:       a.LinkedIn,
		GitHub:         a.GitHub,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

type aboutEnvelopeData struct {
	About AboutDTO `json:"about"`
}

// UpdateAboutRequest uses pointers so an omitted key stays distinct from "".
type UpdateAboutRequest struct {
	Name       *string   `json:"name"`
	Role       *string   `json:"role"`
	Bio        *string   `json:"bio"`
	Skills     *[]string `json:"skills"`
	ResumeLink *string   `json:"resumeLink"`
	Email      *string   `json:"email"`
	Phone      *string   `json:"phone"`
	Location   *string   `json:"location"`
	LinkedIn   *string   `json:"linkedin"`
	GitHub     *string   `json:"github"`
}

func (r *UpdateAboutRequest) ToPatch() about.Patch {
	return about.Patch{
		Name:       about.FromPtr(r.Name),
		Role:       about.FromPtr(r.Role),
		Bio:        about.FromPtr(r.Bio),
		Skills:     about.FromPtr(r.Skills),
		ResumeLink: about.FromPtr(r.ResumeLink),
		Email:      about.FromPtr(r.Email),
		Phone:      about.FromPtr(r.Phone),
		Location:   about.FromPtr(r.Location),
		LinkedIn:   about.FromPtr(r.LinkedIn),
		GitHub:     about.FromPtr(r.GitHub),
	}
}

type SkillRequest struct {
	Skill string `json:"skill"`
}

type ResumeDTO struct {
	ResumeLink     string `json:"resumeLink"`
	ResumeFileName string `json:"resumeFileName"`
}
