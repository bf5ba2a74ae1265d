package about

import (
	"context"
	"errors"
	"strings"
	"time"
)

//go:generate mockgen -source=about.go -destination=mocks/mock_repository.go -package=mocks

// About is the singleton profile record. ResumePublicID is the storage
// identifier of an uploaded resume and never leaves the backend.
type About struct {
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Bio            string    `json:"bio"`
	Skills         []string  `json:"skills"`
	ResumeLink     string    `json:"resumeLink"`
	ResumeFileName string    `json:"resumeFileName"`
	ResumePublicID string    `json:"-"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Location       string    `json:"location"`
	LinkedIn       string    `json:"linkedin"`
	GitHub         string    `json:"github"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Patch is a merge-patch over About. Unset fields are left untouched by Upsert.
type Patch struct {
	Name           Optional[string]
	Role           Optional[string]
	Bio            Optional[string]
	Skills         Optional[[]string]
	ResumeLink     Optional[string]
	ResumeFileName Optional[string]
	ResumePublicID Optional[string]
	Email          Optional[string]
	Phone          Optional[string]
	Location       Optional[string]
	LinkedIn       Optional[string]
	GitHub         Optional[string]
}

var (
	ErrAboutNotFound   = errors.New("about information not found")
	ErrResumeNotFound  = errors.New("resume not found")
	ErrSkillRequired   = errors.New("skill is required")
	ErrSkillExists     = errors.New("skill already exists")
	ErrDuplicateSkills = errors.New("skills must be unique")
)

const DefaultResumeFileName = "resume.pdf"

func (a *About) HasResume() bool {
	return a != nil && a.ResumeLink != ""
}

// HasSkill reports an exact, case-sensitive match.
func (a *About) HasSkill(skill string) bool {
	for _, s := range a.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// AddSkill appends a trimmed skill, keeping the existing order.
func (a *About) AddSkill(skill string) error {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return ErrSkillRequired
	}
	if a.HasSkill(skill) {
		return ErrSkillExists
	}
	a.Skills = append(a.Skills, skill)
	return nil
}

// RemoveSkill drops every exact match and reports whether anything changed.
func (a *About) RemoveSkill(skill string) bool {
	kept := make([]string, 0, len(a.Skills))
	for _, s := range a.Skills {
		if s != skill {
			kept = append(kept, s)
		}
	}
	removed := len(kept) != len(a.Skills)
	a.Skills = kept
	return removed
}

// NormalizeSkills trims every entry, drops blanks and rejects duplicates.
func NormalizeSkills(skills []string) ([]string, error) {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			return nil, ErrDuplicateSkills
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, nil
}

// Apply merges the set fields of p into a.
func (a *About) Apply(p Patch) {
	assign(&a.Name, p.Name)
	assign(&a.Role, p.Role)
	assign(&a.Bio, p.Bio)
	assign(&a.Skills, p.Skills)
	assign(&a.ResumeLink, p.ResumeLink)
	assign(&a.ResumeFileName, p.ResumeFileName)
	assign(&a.ResumePublicID, p.ResumePublicID)
	assign(&a.Email, p.Email)
	assign(&a.Phone, p.Phone)
	assign(&a.Location, p.Location)
	assign(&a.LinkedIn, p.LinkedIn)
	assign(&a.GitHub, p.GitHub)
}

func assign[T any](dst *T, o Optional[T]) {
	if o.IsSet() {
		*dst = o.Value()
	}
}

// IsEmpty reports whether the patch sets nothing.
func (p Patch) IsEmpty() bool {
	return !(p.Name.IsSet() || p.Role.IsSet() || p.Bio.IsSet() || p.Skills.IsSet() ||
		p.ResumeLink.IsSet() || p.ResumeFileName.IsSet() || p.ResumePublicID.IsSet() ||
		p.Email.IsSet() || p.Phone.IsSet() || p.Location.IsSet() ||
		p.LinkedIn.IsSet() || p.GitHub.IsSet())
}

// Repository keeps the singleton About record. Get returns an apperror
// NotFound wrapping ErrAboutNotFound when no record exists; Upsert creates it on first write.
type Repository interface {
	Get(ctx context.Context) (*About, error)
	Upsert(ctx context.Context, patch Patch) (*About, error)
}
