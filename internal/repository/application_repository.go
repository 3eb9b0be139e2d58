package repository

import (
	"context"
	"errors"
	"time"

	"hirehub/internal/database"
	"hirehub/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ApplicationRow is an application plus the fields denormalized into
// every response: the parent job, its owning employer, and the seeker.
// Relations are resolved join-on-read, never embedded.
type ApplicationRow struct {
	ID             uuid.UUID
	JobID          uuid.UUID
	SeekerID       uuid.UUID
	Status         string
	ResumeURL      string
	ResumePublicID string
	AppliedAt      time.Time

	JobTitle    string
	JobLocation string
	JobSalary   string
	JobType     string

	EmployerID   uuid.UUID
	EmployerName string

	SeekerName  string
	SeekerEmail string
}

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (ApplicationRow, error)
	ExistsForJobAndSeeker(ctx context.Context, jobID, seekerID uuid.UUID) (bool, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]ApplicationRow, error)
	ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]ApplicationRow, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]ApplicationRow, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, seeker_id, status, resume_url, resume_public_id, applied_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.JobID, a.SeekerID, a.Status, a.ResumeURL, a.ResumePublicID, a.AppliedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return application.ErrDuplicate
		}
		return err
	}
	return nil
}

const applicationSelect = `
	SELECT a.id, a.job_id, a.seeker_id, a.status, a.resume_url, a.resume_public_id, a.applied_at,
	       j.title, j.location, j.salary, j.type,
	       e.id, e.name,
	       s.name, s.email
	FROM applications a
	JOIN jobs j ON j.id = a.job_id
	JOIN users e ON e.id = j.employer_id
	JOIN users s ON s.id = a.seeker_id`

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (ApplicationRow, error) {
	row := r.db.QueryRow(ctx, applicationSelect+` WHERE a.id = $1`, id)
	return scanApplicationRow(row)
}

func (r *PostgresApplicationRepository) ExistsForJobAndSeeker(ctx context.Context, jobID, seekerID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND seeker_id = $2)`,
		jobID, seekerID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]ApplicationRow, error) {
	rows, err := r.db.Query(ctx,
		applicationSelect+` WHERE j.employer_id = $1 ORDER BY a.applied_at DESC`,
		employerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplicationRows(rows)
}

func (r *PostgresApplicationRepository) ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]ApplicationRow, error) {
	rows, err := r.db.Query(ctx,
		applicationSelect+` WHERE a.seeker_id = $1 ORDER BY a.applied_at DESC`,
		seekerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplicationRows(rows)
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]ApplicationRow, error) {
	rows, err := r.db.Query(ctx,
		applicationSelect+` WHERE a.job_id = $1 ORDER BY a.applied_at DESC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplicationRows(rows)
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return application.ErrNotFound
	}
	return nil
}

func collectApplicationRows(rows database.Rows) ([]ApplicationRow, error) {
	out := make([]ApplicationRow, 0)
	for rows.Next() {
		a, err := scanApplicationRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanApplicationRow(row database.Row) (ApplicationRow, error) {
	var a ApplicationRow
	err := row.Scan(
		&a.ID, &a.JobID, &a.SeekerID, &a.Status, &a.ResumeURL, &a.ResumePublicID, &a.AppliedAt,
		&a.JobTitle, &a.JobLocation, &a.JobSalary, &a.JobType,
		&a.EmployerID, &a.EmployerName,
		&a.SeekerName, &a.SeekerEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ApplicationRow{}, application.ErrNotFound
		}
		return ApplicationRow{}, err
	}
	return a, nil
}
