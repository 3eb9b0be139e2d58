package usecase

import (
	"context"
	"errors"
	"log"

	"hirehub/internal/domain/seeker"
	"hirehub/internal/infrastructure/storage"
	"hirehub/internal/repository"

	"github.com/google/uuid"
)

type SeekerUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (seeker.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch seeker.Patch) (seeker.Profile, error)
	UploadResume(ctx context.Context, userID uuid.UUID, file ResumeFile) (seeker.Resume, error)
}

type Seeker struct {
	profiles repository.SeekerProfileRepository
	storage  storage.ResumeStorage
	logger   *log.Logger
}

func NewSeekerUsecase(profiles repository.SeekerProfileRepository, resumeStorage storage.ResumeStorage, logger *log.Logger) *Seeker {
	return &Seeker{profiles: profiles, storage: resumeStorage, logger: logger}
}

// GetProfile returns an empty profile when none has been created yet;
// the row itself appears lazily on the first update or resume upload.
func (u *Seeker) GetProfile(ctx context.Context, userID uuid.UUID) (seeker.Profile, error) {
	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, seeker.ErrNotFound) {
			return emptyProfile(userID), nil
		}
		return seeker.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Seeker) UpdateProfile(ctx context.Context, userID uuid.UUID, patch seeker.Patch) (seeker.Profile, error) {
	if patch.Empty() {
		return seeker.Profile{}, ErrInvalidInput
	}

	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, seeker.ErrNotFound) {
			return seeker.Profile{}, ErrInternal
		}
		p = emptyProfile(userID)
	}

	patch.Apply(&p)

	if err := u.profiles.Upsert(ctx, p); err != nil {
		return seeker.Profile{}, ErrInternal
	}

	saved, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return seeker.Profile{}, ErrInternal
	}
	return saved, nil
}

func (u *Seeker) UploadResume(ctx context.Context, userID uuid.UUID, file ResumeFile) (seeker.Resume, error) {
	if len(file.Content) == 0 {
		return seeker.Resume{}, ErrInvalidInput
	}
	if !isPDF(file.ContentType) {
		return seeker.Resume{}, ErrInvalidFileType
	}

	stored, err := u.storage.Upload(ctx, file.Content, file.Filename)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Seeker] resume upload failed | user=%s error=%v", userID, err)
		}
		return seeker.Resume{}, ErrUploadFailed
	}

	resume := seeker.Resume{URL: stored.URL, DownloadURL: stored.DownloadURL}
	if err := u.profiles.SetResume(ctx, userID, resume); err != nil {
		return seeker.Resume{}, ErrInternal
	}
	return resume, nil
}

func emptyProfile(userID uuid.UUID) seeker.Profile {
	return seeker.Profile{
		ID:         uuid.New(),
		UserID:     userID,
		Skills:     []string{},
		Experience: []seeker.ExperienceEntry{},
		Education:  []seeker.EducationEntry{},
	}
}
