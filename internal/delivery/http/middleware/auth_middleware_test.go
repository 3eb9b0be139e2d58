package middleware

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"hirehub/internal/domain/user"
	"hirehub/internal/pkg/jwt"
	"hirehub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubUserRepo struct {
	users map[uuid.UUID]user.User
}

func (s stubUserRepo) Create(context.Context, user.User) error { return nil }
func (s stubUserRepo) Update(context.Context, user.User) error { return nil }
func (s stubUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}
func (s stubUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (s stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func newAuthTestApp(t *testing.T, repo stubUserRepo, svc jwt.Service, roles ...string) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{})
	app.Use(NewErrorMiddleware(nil).Middleware())

	authMw := NewAuthMiddleware(svc, repo)
	final := func(c fiber.Ctx) error {
		usr, ok := UserFromContext(c)
		if !ok {
			t.Errorf("expected user in context")
		}
		return response.Success(c, fiber.StatusOK, fiber.Map{"id": usr.ID})
	}

	handlers := []any{authMw.Middleware()}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRoles(roles...))
	}
	handlers = append(handlers, final)

	app.Get("/protected", handlers[0], handlers[1:]...)
	return app
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	svc := jwt.NewHMACService("secret", time.Hour)
	app := newAuthTestApp(t, stubUserRepo{users: map[uuid.UUID]user.User{}}, svc)

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	svc := jwt.NewHMACService("secret", time.Hour)
	id := uuid.New()
	repo := stubUserRepo{users: map[uuid.UUID]user.User{
		id: {ID: id, Role: user.RoleJobSeeker},
	}}
	app := newAuthTestApp(t, repo, svc)

	token, err := svc.IssueToken(id, user.RoleJobSeeker)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var env struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Success {
		t.Fatalf("expected success envelope")
	}
}

func TestAuthMiddleware_DeletedUser(t *testing.T) {
	svc := jwt.NewHMACService("secret", time.Hour)
	app := newAuthTestApp(t, stubUserRepo{users: map[uuid.UUID]user.User{}}, svc)

	token, err := svc.IssueToken(uuid.New(), user.RoleJobSeeker)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for deleted user, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_RoleMismatch(t *testing.T) {
	svc := jwt.NewHMACService("secret", time.Hour)
	id := uuid.New()
	repo := stubUserRepo{users: map[uuid.UUID]user.User{
		id: {ID: id, Role: user.RoleEmployer},
	}}
	app := newAuthTestApp(t, repo, svc)

	// Token minted for a role the stored user no longer has.
	token, err := svc.IssueToken(id, user.RoleJobSeeker)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for role mismatch, got %d", resp.StatusCode)
	}
}

func TestRequireRoles_Forbidden(t *testing.T) {
	svc := jwt.NewHMACService("secret", time.Hour)
	id := uuid.New()
	repo := stubUserRepo{users: map[uuid.UUID]user.User{
		id: {ID: id, Role: user.RoleJobSeeker},
	}}
	app := newAuthTestApp(t, repo, svc, user.RoleEmployer)

	token, err := svc.IssueToken(id, user.RoleJobSeeker)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestBearerTokenFromHeader(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Bearer  abc ", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := bearerTokenFromHeader(tc.header)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("header %q: expected (%q,%v), got (%q,%v)", tc.header, tc.want, tc.ok, got, ok)
		}
	}
}
