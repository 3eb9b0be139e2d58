package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"hirehub/internal/domain/seeker"

	"github.com/google/uuid"
)

type mockProfileRepo struct {
	profiles map[uuid.UUID]seeker.Profile
	resumes  map[uuid.UUID]seeker.Resume
	upserts  int
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{
		profiles: map[uuid.UUID]seeker.Profile{},
		resumes:  map[uuid.UUID]seeker.Resume{},
	}
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (seeker.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return seeker.Profile{}, seeker.ErrNotFound
	}
	return p, nil
}

func (m *mockProfileRepo) Upsert(_ context.Context, p seeker.Profile) error {
	m.upserts++
	m.profiles[p.UserID] = p
	return nil
}

func (m *mockProfileRepo) SetResume(_ context.Context, userID uuid.UUID, resume seeker.Resume) error {
	m.resumes[userID] = resume
	p := m.profiles[userID]
	p.UserID = userID
	p.Resume = resume
	m.profiles[userID] = p
	return nil
}

func strPtr(s string) *string { return &s }

func TestSeeker_GetProfile_EmptyWhenMissing(t *testing.T) {
	userID := uuid.New()
	uc := NewSeekerUsecase(newMockProfileRepo(), &mockStorage{}, nil)

	p, err := uc.GetProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.UserID != userID {
		t.Fatalf("expected profile bound to user")
	}
	if p.Skills == nil || p.Experience == nil || p.Education == nil {
		t.Fatalf("expected empty slices, not nil")
	}
}

func TestSeeker_UpdateProfile_EmptyPatchRejected(t *testing.T) {
	uc := NewSeekerUsecase(newMockProfileRepo(), &mockStorage{}, nil)

	if _, err := uc.UpdateProfile(context.Background(), uuid.New(), seeker.Patch{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSeeker_UpdateProfile_MergesOnlyProvidedFields(t *testing.T) {
	userID := uuid.New()
	repo := newMockProfileRepo()
	repo.profiles[userID] = seeker.Profile{
		ID:       uuid.New(),
		UserID:   userID,
		Phone:    "0811",
		Location: "Jakarta",
		Skills:   []string{"Go"},
	}
	uc := NewSeekerUsecase(repo, &mockStorage{}, nil)

	p, err := uc.UpdateProfile(context.Background(), userID, seeker.Patch{
		Location: strPtr("Bandung"),
		Skills:   &[]string{"Go", "SQL"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Phone != "0811" {
		t.Fatalf("expected phone untouched, got %q", p.Phone)
	}
	if p.Location != "Bandung" {
		t.Fatalf("expected location replaced, got %q", p.Location)
	}
	if !reflect.DeepEqual(p.Skills, []string{"Go", "SQL"}) {
		t.Fatalf("expected skills replaced, got %v", p.Skills)
	}
}

func TestSeeker_UpdateProfile_ExplicitEmptyOverwrites(t *testing.T) {
	userID := uuid.New()
	repo := newMockProfileRepo()
	repo.profiles[userID] = seeker.Profile{UserID: userID, Phone: "0811"}
	uc := NewSeekerUsecase(repo, &mockStorage{}, nil)

	p, err := uc.UpdateProfile(context.Background(), userID, seeker.Patch{Phone: strPtr("")})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Phone != "" {
		t.Fatalf("expected explicit empty phone to clear the field, got %q", p.Phone)
	}
}

func TestSeeker_UpdateProfile_CreatesLazily(t *testing.T) {
	userID := uuid.New()
	repo := newMockProfileRepo()
	uc := NewSeekerUsecase(repo, &mockStorage{}, nil)

	p, err := uc.UpdateProfile(context.Background(), userID, seeker.Patch{Location: strPtr("Surabaya")})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.upserts != 1 {
		t.Fatalf("expected one upsert, got %d", repo.upserts)
	}
	if p.Location != "Surabaya" {
		t.Fatalf("expected location set, got %q", p.Location)
	}
}

func TestSeeker_UploadResume(t *testing.T) {
	userID := uuid.New()
	repo := newMockProfileRepo()
	uc := NewSeekerUsecase(repo, &mockStorage{}, nil)

	resume, err := uc.UploadResume(context.Background(), userID, pdfFile())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resume.URL == "" || resume.DownloadURL == "" {
		t.Fatalf("expected stored resume urls, got %+v", resume)
	}
	if _, ok := repo.resumes[userID]; !ok {
		t.Fatalf("expected resume persisted on profile")
	}
}

func TestSeeker_UploadResume_RejectsNonPDF(t *testing.T) {
	uc := NewSeekerUsecase(newMockProfileRepo(), &mockStorage{}, nil)

	f := pdfFile()
	f.ContentType = "text/plain"
	if _, err := uc.UploadResume(context.Background(), uuid.New(), f); !errors.Is(err, ErrInvalidFileType) {
		t.Fatalf("expected ErrInvalidFileType, got %v", err)
	}
}
