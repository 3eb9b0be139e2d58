package dto

import (
	"hirehub/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func NewAuthResponse(u user.User, token string) AuthResponse {
	return AuthResponse{User: NewUserResponse(u), Token: token}
}
