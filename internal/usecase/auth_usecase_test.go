package usecase

import (
	"context"
	"errors"
	"testing"

	"hirehub/internal/domain/user"
	"hirehub/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	byEmail map[string]user.User
	byID    map[uuid.UUID]user.User

	created []user.User
	updated []user.User

	createErr error
	updateErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byEmail: map[string]user.User{},
		byID:    map[uuid.UUID]user.User{},
	}
}

func (m *mockUserRepo) add(u user.User) {
	m.byEmail[u.Email] = u
	m.byID[u.ID] = u
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, u)
	m.add(u)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *mockUserRepo) Update(_ context.Context, u user.User) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = append(m.updated, u)
	m.add(u)
	return nil
}

type mockJWT struct {
	token string
	err   error
}

func (m mockJWT) IssueToken(uuid.UUID, string) (string, error) {
	return m.token, m.err
}

func (m mockJWT) VerifyToken(string) (jwt.Claims, error) {
	return jwt.Claims{}, nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func TestAuth_Register_Success(t *testing.T) {
	repo := newMockUserRepo()
	uc := NewAuthUsecase(repo, mockJWT{token: "tok"})

	usr, token, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Dewi",
		Email:    "Dewi@Example.com",
		Password: "secret1",
		Role:     user.RoleJobSeeker,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if token != "tok" {
		t.Fatalf("expected issued token, got %q", token)
	}
	if usr.Email != "dewi@example.com" {
		t.Fatalf("expected lowercased email, got %q", usr.Email)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one created user, got %d", len(repo.created))
	}
	if repo.created[0].PasswordHash == "secret1" {
		t.Fatalf("password stored in the clear")
	}
}

func TestAuth_Register_InvalidRole(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), mockJWT{token: "tok"})

	_, _, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Dewi",
		Email:    "dewi@example.com",
		Password: "secret1",
		Role:     "admin",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuth_Register_ShortPassword(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), mockJWT{token: "tok"})

	_, _, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Dewi",
		Email:    "dewi@example.com",
		Password: "abc",
		Role:     user.RoleJobSeeker,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuth_Register_EmailTaken(t *testing.T) {
	repo := newMockUserRepo()
	repo.add(user.User{ID: uuid.New(), Email: "dewi@example.com", Role: user.RoleJobSeeker})
	uc := NewAuthUsecase(repo, mockJWT{token: "tok"})

	_, _, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Dewi",
		Email:    "dewi@example.com",
		Password: "secret1",
		Role:     user.RoleJobSeeker,
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuth_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	repo := newMockUserRepo()
	repo.add(user.User{
		ID:           uuid.New(),
		Email:        "dewi@example.com",
		PasswordHash: hashOf(t, "correct-password"),
		Role:         user.RoleJobSeeker,
	})
	uc := NewAuthUsecase(repo, mockJWT{token: "tok"})

	_, _, errUnknown := uc.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	_, _, errWrongPw := uc.Login(context.Background(), LoginInput{
		Email:    "dewi@example.com",
		Password: "wrong-password",
	})

	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", errWrongPw)
	}
}

func TestAuth_Login_Success(t *testing.T) {
	id := uuid.New()
	repo := newMockUserRepo()
	repo.add(user.User{
		ID:           id,
		Name:         "Dewi",
		Email:        "dewi@example.com",
		PasswordHash: hashOf(t, "correct-password"),
		Role:         user.RoleJobSeeker,
	})
	uc := NewAuthUsecase(repo, mockJWT{token: "tok"})

	usr, token, err := uc.Login(context.Background(), LoginInput{
		Email:    "DEWI@example.com",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.ID != id {
		t.Fatalf("unexpected user id")
	}
	if token != "tok" {
		t.Fatalf("expected issued token, got %q", token)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuth_UpdateProfile_PasswordRotationNeedsCurrent(t *testing.T) {
	id := uuid.New()
	repo := newMockUserRepo()
	repo.add(user.User{
		ID:           id,
		Name:         "Dewi",
		Email:        "dewi@example.com",
		PasswordHash: hashOf(t, "old-password"),
		Role:         user.RoleJobSeeker,
	})
	uc := NewAuthUsecase(repo, mockJWT{token: "tok"})

	_, err := uc.UpdateProfile(context.Background(), id, ProfileUpdateInput{
		CurrentPassword: "not-the-old-password",
		NewPassword:     "new-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(repo.updated) != 0 {
		t.Fatalf("expected no update on failed rotation")
	}
}

func TestAuth_UpdateProfile_NameOnly(t *testing.T) {
	id := uuid.New()
	repo := newMockUserRepo()
	repo.add(user.User{
		ID:           id,
		Name:         "Dewi",
		Email:        "dewi@example.com",
		PasswordHash: hashOf(t, "old-password"),
		Role:         user.RoleJobSeeker,
	})
	uc := NewAuthUsecase(repo, mockJWT{token: "tok"})

	usr, err := uc.UpdateProfile(context.Background(), id, ProfileUpdateInput{Name: "Dewi Santoso"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.Name != "Dewi Santoso" {
		t.Fatalf("expected updated name, got %q", usr.Name)
	}
	if usr.Email != "dewi@example.com" {
		t.Fatalf("expected email untouched, got %q", usr.Email)
	}
}
