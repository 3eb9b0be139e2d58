package handler

import (
	"hirehub/internal/delivery/http/dto"
	"hirehub/internal/delivery/http/middleware"
	"hirehub/internal/domain/seeker"
	"hirehub/internal/pkg/response"
	"hirehub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobSeekerHandler struct {
	seekers      usecase.SeekerUsecase
	applications usecase.ApplicationUsecase
}

// updateSeekerProfileRequest uses pointers so an absent field is
// distinguishable from an explicit empty value.
type updateSeekerProfileRequest struct {
	Phone      *string                   `json:"phone"`
	Location   *string                   `json:"location"`
	Skills     *[]string                 `json:"skills"`
	Experience *[]seeker.ExperienceEntry `json:"experience"`
	Education  *[]seeker.EducationEntry  `json:"education"`
}

func NewJobSeekerHandler(seekers usecase.SeekerUsecase, applications usecase.ApplicationUsecase) *JobSeekerHandler {
	return &JobSeekerHandler{seekers: seekers, applications: applications}
}

func (h *JobSeekerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.GetProfile)
	r.Put("/profile", h.UpdateProfile)
	r.Post("/resume", h.UploadResume)
	r.Get("/applications", h.ListApplications)
}

func (h *JobSeekerHandler) GetProfile(c fiber.Ctx) error {
	current, ok := middleware.UserFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Unauthorized", nil)
	}

	p, err := h.seekers.GetProfile(c.Context(), current.ID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, p)
}

func (h *JobSeekerHandler) UpdateProfile(c fiber.Ctx) error {
	current, ok := middleware.UserFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Unauthorized", nil)
	}

	var req updateSeekerProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "Bad request", err)
	}

	p, err := h.seekers.UpdateProfile(c.Context(), current.ID, seeker.Patch{
		Phone:      req.Phone,
		Location:   req.Location,
		Skills:     req.Skills,
		Experience: req.Experience,
		Education:  req.Education,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.SuccessWithMessage(c, fiber.StatusOK, "Profile updated successfully", p)
}

func (h *JobSeekerHandler) UploadResume(c fiber.Ctx) error {
	current, ok := middleware.UserFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Unauthorized", nil)
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "Resume file is required", err)
	}

	file, err := readMultipartFile(fileHeader)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "Could not read resume file", err)
	}

	resume, err := h.seekers.UploadResume(c.Context(), current.ID, file)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.SuccessWithMessage(c, fiber.StatusOK, "Resume uploaded successfully", resume)
}

func (h *JobSeekerHandler) ListApplications(c fiber.Ctx) error {
	current, ok := middleware.UserFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Unauthorized", nil)
	}

	rows, err := h.applications.ListForSeeker(c.Context(), current.ID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, dto.NewSeekerApplicationResponses(rows))
}
