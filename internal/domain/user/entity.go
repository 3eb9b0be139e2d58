package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	RoleJobSeeker = "jobseeker"
	RoleEmployer  = "employer"
)

var ErrNotFound = errors.New("user not found")

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ValidRole(role string) bool {
	return role == RoleJobSeeker || role == RoleEmployer
}
