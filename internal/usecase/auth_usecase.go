package usecase

import (
	"context"
	"errors"
	"strings"

	"hirehub/internal/domain/user"
	"hirehub/internal/pkg/jwt"
	"hirehub/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}

type ProfileUpdateInput struct {
	Name            string
	Email           string
	CurrentPassword string
	NewPassword     string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, string, error)
	Login(ctx context.Context, in LoginInput) (user.User, string, error)
	Me(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileUpdateInput) (user.User, error)
}

type Auth struct {
	users repository.UserRepository
	jwt   jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, string, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" {
		return user.User{}, "", ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return user.User{}, "", ErrInvalidInput
	}
	if !user.ValidRole(in.Role) {
		return user.User{}, "", ErrInvalidInput
	}

	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, "", ErrInternal
	}
	if exists {
		return user.User{}, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	usr := user.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
	}

	if err := u.users.Create(ctx, usr); err != nil {
		// The email uniqueness constraint catches a concurrent register
		// that slipped past the pre-check.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return user.User{}, "", ErrEmailTaken
		}
		return user.User{}, "", ErrInternal
	}

	token, err := u.jwt.IssueToken(usr.ID, usr.Role)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	return sanitizeUser(usr), token, nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (user.User, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, "", ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		// Same error for an unknown email and a wrong password so the
		// response never reveals which one failed.
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := u.jwt.IssueToken(usr.ID, usr.Role)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	return sanitizeUser(usr), token, nil
}

func (u *Auth) Me(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

func (u *Auth) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileUpdateInput) (user.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		usr.Name = name
	}
	if email := normalizeEmail(in.Email); email != "" {
		usr.Email = email
	}

	if in.CurrentPassword != "" && in.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.CurrentPassword)); err != nil {
			return user.User{}, ErrInvalidCredentials
		}
		if !isValidPassword(in.NewPassword) {
			return user.User{}, ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, ErrInternal
		}
		usr.PasswordHash = string(hash)
	}

	if err := u.users.Update(ctx, usr); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return user.User{}, ErrEmailTaken
		}
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	return sanitizeUser(usr), nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 6
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
