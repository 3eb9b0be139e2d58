package handler

import (
	"errors"

	"hirehub/internal/delivery/http/middleware"
	"hirehub/internal/pkg/response"
	"hirehub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// mapUsecaseError translates the usecase error enumeration into the
// status/code/message triple the envelope carries.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "Invalid input", err)
	case errors.Is(err, usecase.ErrInvalidID):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "Invalid identifier format", err)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Invalid email or password", err)
	case errors.Is(err, usecase.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusConflict, response.CodeConflict, "Email already registered", err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.CodeNotFound, response.MessageNotFound, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, response.CodeForbidden, "Not authorized to perform this action", err)
	case errors.Is(err, usecase.ErrJobNotAccepting):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "This job is no longer accepting applications", err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeConflict, "You have already applied for this job", err)
	case errors.Is(err, usecase.ErrInvalidExperience):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation,
			`Invalid experience level format. Use formats like "Fresher", "0", "1", "5-10", or "15+"`, err)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "Invalid status value or transition", err)
	case errors.Is(err, usecase.ErrInvalidFileType):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "Only PDF resumes are accepted", err)
	case errors.Is(err, usecase.ErrUploadFailed):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeUploadFailed, "Error uploading resume. Please try again.", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternalServerError, err)
	}
}
