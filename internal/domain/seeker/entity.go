package seeker

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job seeker profile not found")

// Profile extends a jobseeker user 1:1. It is created lazily on the first
// profile update or resume upload.
type Profile struct {
	ID         uuid.UUID         `json:"id"`
	UserID     uuid.UUID         `json:"user_id"`
	Phone      string            `json:"phone"`
	Location   string            `json:"location"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Resume     Resume            `json:"resume"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type ExperienceEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
}

type EducationEntry struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	GraduationYear int    `json:"graduationYear"`
}

type Resume struct {
	URL         string `json:"resumeUrl,omitempty"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}

// Patch carries the fields a profile update may set. Nil means "leave the
// stored value alone"; a non-nil pointer overwrites, even with a zero value.
type Patch struct {
	Phone      *string
	Location   *string
	Skills     *[]string
	Experience *[]ExperienceEntry
	Education  *[]EducationEntry
}

func (p Patch) Empty() bool {
	return p.Phone == nil && p.Location == nil && p.Skills == nil &&
		p.Experience == nil && p.Education == nil
}

// Apply merges the patch into an existing profile, field-presence style.
func (p Patch) Apply(prof *Profile) {
	if prof == nil {
		return
	}
	if p.Phone != nil {
		prof.Phone = *p.Phone
	}
	if p.Location != nil {
		prof.Location = *p.Location
	}
	if p.Skills != nil {
		prof.Skills = *p.Skills
	}
	if p.Experience != nil {
		prof.Experience = *p.Experience
	}
	if p.Education != nil {
		prof.Education = *p.Education
	}
}
