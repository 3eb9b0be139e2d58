package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"hirehub/internal/domain/application"
	"hirehub/internal/domain/job"
	"hirehub/internal/infrastructure/storage"
	"hirehub/internal/repository"
	"hirehub/internal/ws"

	"github.com/google/uuid"
)

const resumeContentType = "application/pdf"

// ResumeFile is an in-memory upload plus its declared MIME type.
type ResumeFile struct {
	Content     []byte
	Filename    string
	ContentType string
}

func isPDF(contentType string) bool {
	return strings.EqualFold(strings.TrimSpace(contentType), resumeContentType)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, seekerID uuid.UUID, rawJobID string, file ResumeFile) (repository.ApplicationRow, error)
	ListForEmployer(ctx context.Context, employerID uuid.UUID) ([]repository.ApplicationRow, error)
	ListForSeeker(ctx context.Context, seekerID uuid.UUID) ([]repository.ApplicationRow, error)
	ListForJob(ctx context.Context, employerID uuid.UUID, rawJobID string) ([]repository.ApplicationRow, error)
	UpdateStatus(ctx context.Context, employerID uuid.UUID, rawID, status string) (repository.ApplicationRow, error)
	Withdraw(ctx context.Context, seekerID uuid.UUID, rawID string) error
}

type Application struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	storage      storage.ResumeStorage
	notifier     ws.Notifier
	logger       *log.Logger
}

func NewApplicationUsecase(
	applications repository.ApplicationRepository,
	jobs repository.JobRepository,
	resumeStorage storage.ResumeStorage,
	notifier ws.Notifier,
	logger *log.Logger,
) *Application {
	return &Application{
		applications: applications,
		jobs:         jobs,
		storage:      resumeStorage,
		notifier:     notifier,
		logger:       logger,
	}
}

func (u *Application) Apply(ctx context.Context, seekerID uuid.UUID, rawJobID string, file ResumeFile) (repository.ApplicationRow, error) {
	jobID, err := uuid.Parse(strings.TrimSpace(rawJobID))
	if err != nil {
		return repository.ApplicationRow{}, ErrInvalidID
	}

	if len(file.Content) == 0 {
		return repository.ApplicationRow{}, ErrInvalidInput
	}
	if !isPDF(file.ContentType) {
		return repository.ApplicationRow{}, ErrInvalidFileType
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return repository.ApplicationRow{}, ErrNotFound
		}
		return repository.ApplicationRow{}, ErrInternal
	}
	if !j.AcceptingApplications() {
		return repository.ApplicationRow{}, ErrJobNotAccepting
	}

	exists, err := u.applications.ExistsForJobAndSeeker(ctx, jobID, seekerID)
	if err != nil {
		return repository.ApplicationRow{}, ErrInternal
	}
	if exists {
		return repository.ApplicationRow{}, ErrAlreadyApplied
	}

	stored, err := u.storage.Upload(ctx, file.Content, file.Filename)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Applications] resume upload failed | job=%s error=%v", jobID, err)
		}
		return repository.ApplicationRow{}, ErrUploadFailed
	}

	a := application.Application{
		ID:             uuid.New(),
		JobID:          jobID,
		SeekerID:       seekerID,
		Status:         application.StatusPending,
		ResumeURL:      stored.URL,
		ResumePublicID: stored.PublicID,
		AppliedAt:      time.Now().UTC(),
	}

	if err := u.applications.Create(ctx, a); err != nil {
		// The unique constraint on (job_id, seeker_id) resolves the race
		// two concurrent applies lose to; same user-visible error as the
		// pre-check.
		if errors.Is(err, application.ErrDuplicate) {
			return repository.ApplicationRow{}, ErrAlreadyApplied
		}
		return repository.ApplicationRow{}, ErrInternal
	}

	row, err := u.applications.GetByID(ctx, a.ID)
	if err != nil {
		return repository.ApplicationRow{}, ErrInternal
	}

	ws.NotifyApplicationReceived(u.notifier, row.JobID.String(), row.JobTitle, row.SeekerName)

	return row, nil
}

func (u *Application) ListForEmployer(ctx context.Context, employerID uuid.UUID) ([]repository.ApplicationRow, error) {
	rows, err := u.applications.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, ErrInternal
	}
	return rows, nil
}

func (u *Application) ListForSeeker(ctx context.Context, seekerID uuid.UUID) ([]repository.ApplicationRow, error) {
	rows, err := u.applications.ListBySeeker(ctx, seekerID)
	if err != nil {
		return nil, ErrInternal
	}
	return rows, nil
}

func (u *Application) ListForJob(ctx context.Context, employerID uuid.UUID, rawJobID string) ([]repository.ApplicationRow, error) {
	jobID, err := uuid.Parse(strings.TrimSpace(rawJobID))
	if err != nil {
		return nil, ErrInvalidID
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrInternal
	}
	if j.EmployerID != employerID {
		return nil, ErrForbidden
	}

	rows, err := u.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return rows, nil
}

func (u *Application) UpdateStatus(ctx context.Context, employerID uuid.UUID, rawID, status string) (repository.ApplicationRow, error) {
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return repository.ApplicationRow{}, ErrInvalidID
	}

	status = strings.TrimSpace(status)
	if !application.ValidStatus(status) {
		return repository.ApplicationRow{}, ErrInvalidStatus
	}

	row, err := u.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return repository.ApplicationRow{}, ErrNotFound
		}
		return repository.ApplicationRow{}, ErrInternal
	}

	// Only the employer who owns the parent job may decide.
	if row.EmployerID != employerID {
		return repository.ApplicationRow{}, ErrForbidden
	}
	if !application.CanTransition(row.Status, status) {
		return repository.ApplicationRow{}, ErrInvalidStatus
	}

	if err := u.applications.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return repository.ApplicationRow{}, ErrNotFound
		}
		return repository.ApplicationRow{}, ErrInternal
	}

	row.Status = status
	return row, nil
}

func (u *Application) Withdraw(ctx context.Context, seekerID uuid.UUID, rawID string) error {
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return ErrInvalidID
	}

	row, err := u.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	if row.SeekerID != seekerID {
		return ErrForbidden
	}

	if err := u.applications.Delete(ctx, id); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}
