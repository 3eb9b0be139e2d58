package handler

import (
	"hirehub/internal/delivery/http/dto"
	"hirehub/internal/delivery/http/middleware"
	"hirehub/internal/pkg/response"
	"hirehub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
}

func (h *AuthHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.Me)
	r.Put("/update-profile", h.UpdateProfile)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "Bad request", err)
	}

	usr, token, err := h.uc.Register(c.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, dto.NewAuthResponse(usr, token))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "Bad request", err)
	}

	usr, token, err := h.uc.Login(c.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, dto.NewAuthResponse(usr, token))
}

func (h *AuthHandler) Me(c fiber.Ctx) error {
	current, ok := middleware.UserFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Unauthorized", nil)
	}

	usr, err := h.uc.Me(c.Context(), current.ID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, dto.NewUserResponse(usr))
}

func (h *AuthHandler) UpdateProfile(c fiber.Ctx) error {
	current, ok := middleware.UserFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Unauthorized", nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "Bad request", err)
	}

	usr, err := h.uc.UpdateProfile(c.Context(), current.ID, usecase.ProfileUpdateInput{
		Name:            req.Name,
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, dto.NewUserResponse(usr))
}
