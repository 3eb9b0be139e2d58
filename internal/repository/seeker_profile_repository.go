package repository

import (
	"context"
	"encoding/json"
	"errors"

	"hirehub/internal/database"
	"hirehub/internal/domain/seeker"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SeekerProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (seeker.Profile, error)
	Upsert(ctx context.Context, p seeker.Profile) error
	SetResume(ctx context.Context, userID uuid.UUID, resume seeker.Resume) error
}

type PostgresSeekerProfileRepository struct {
	db database.DB
}

func NewPostgresSeekerProfileRepository(db database.DB) *PostgresSeekerProfileRepository {
	return &PostgresSeekerProfileRepository{db: db}
}

func (r *PostgresSeekerProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (seeker.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, phone, location, skills, experience, education,
		        resume_url, resume_download_url, created_at, updated_at
		 FROM job_seeker_profiles WHERE user_id = $1`,
		userID,
	)

	var (
		p             seeker.Profile
		experienceRaw []byte
		educationRaw  []byte
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.Phone, &p.Location, &p.Skills, &experienceRaw, &educationRaw,
		&p.Resume.URL, &p.Resume.DownloadURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return seeker.Profile{}, seeker.ErrNotFound
		}
		return seeker.Profile{}, err
	}

	if len(experienceRaw) > 0 {
		if err := json.Unmarshal(experienceRaw, &p.Experience); err != nil {
			return seeker.Profile{}, err
		}
	}
	if len(educationRaw) > 0 {
		if err := json.Unmarshal(educationRaw, &p.Education); err != nil {
			return seeker.Profile{}, err
		}
	}

	return p, nil
}

// Upsert writes the full profile row keyed on user_id. Merge semantics
// (only provided fields overwrite) are applied by the usecase before the
// profile reaches here.
func (r *PostgresSeekerProfileRepository) Upsert(ctx context.Context, p seeker.Profile) error {
	experienceRaw, err := json.Marshal(entriesOrEmpty(p.Experience))
	if err != nil {
		return err
	}
	educationRaw, err := json.Marshal(educationOrEmpty(p.Education))
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO job_seeker_profiles
		     (id, user_id, phone, location, skills, experience, education, resume_url, resume_download_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (user_id) DO UPDATE SET
		     phone = EXCLUDED.phone,
		     location = EXCLUDED.location,
		     skills = EXCLUDED.skills,
		     experience = EXCLUDED.experience,
		     education = EXCLUDED.education,
		     resume_url = EXCLUDED.resume_url,
		     resume_download_url = EXCLUDED.resume_download_url,
		     updated_at = now()`,
		p.ID, p.UserID, p.Phone, p.Location, skillsOrEmpty(p.Skills),
		experienceRaw, educationRaw, p.Resume.URL, p.Resume.DownloadURL,
	)
	return err
}

func (r *PostgresSeekerProfileRepository) SetResume(ctx context.Context, userID uuid.UUID, resume seeker.Resume) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_seeker_profiles (id, user_id, resume_url, resume_download_url)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE SET
		     resume_url = EXCLUDED.resume_url,
		     resume_download_url = EXCLUDED.resume_download_url,
		     updated_at = now()`,
		uuid.New(), userID, resume.URL, resume.DownloadURL,
	)
	return err
}

func skillsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func entriesOrEmpty(e []seeker.ExperienceEntry) []seeker.ExperienceEntry {
	if e == nil {
		return []seeker.ExperienceEntry{}
	}
	return e
}

func educationOrEmpty(e []seeker.EducationEntry) []seeker.EducationEntry {
	if e == nil {
		return []seeker.EducationEntry{}
	}
	return e
}
