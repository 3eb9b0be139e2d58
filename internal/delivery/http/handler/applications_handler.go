package handler

import (
	"io"
	"mime/multipart"

	"hirehub/internal/delivery/http/dto"
	"hirehub/internal/delivery/http/middleware"
	"hirehub/internal/pkg/response"
	"hirehub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationsHandler struct {
	uc usecase.ApplicationUsecase
}

type updateApplicationStatusRequest struct {
	Status string `json:"status"`
}

func NewApplicationsHandler(uc usecase.ApplicationUsecase) *ApplicationsHandler {
	return &ApplicationsHandler{uc: uc}
}

func (h *ApplicationsHandler) RegisterSeekerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/apply", h.Apply)
	r.Delete("/:id", h.Withdraw)
}

func (h *ApplicationsHandler) RegisterEmployerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/employer", h.ListForEmployer)
	r.Get("/job/:jobId", h.ListForJob)
	r.Put("/:id/status", h.UpdateStatus)
}

func (h *ApplicationsHandler) Apply(c fiber.Ctx) error {
	seeker, ok := middleware.UserFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Unauthorized", nil)
	}

	jobID := c.FormValue("jobId")
	if jobID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "Job ID is required", nil)
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "Resume file is required", err)
	}

	file, err := readMultipartFile(fileHeader)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "Could not read resume file", err)
	}

	row, err := h.uc.Apply(c.Context(), seeker.ID, jobID, file)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.SuccessWithMessage(c, fiber.StatusCreated,
		"Application submitted successfully", dto.NewApplicationResponse(row))
}

func (h *ApplicationsHandler) ListForEmployer(c fiber.Ctx) error {
	employer, ok := middleware.UserFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Unauthorized", nil)
	}

	rows, err := h.uc.ListForEmployer(c.Context(), employer.ID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, dto.NewApplicationResponses(rows))
}

func (h *ApplicationsHandler) ListForJob(c fiber.Ctx) error {
	employer, ok := middleware.UserFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Unauthorized", nil)
	}

	rows, err := h.uc.ListForJob(c.Context(), employer.ID, c.Params("jobId"))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, dto.NewApplicationResponses(rows))
}

func (h *ApplicationsHandler) UpdateStatus(c fiber.Ctx) error {
	employer, ok := middleware.UserFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Unauthorized", nil)
	}

	var req updateApplicationStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "Bad request", err)
	}

	row, err := h.uc.UpdateStatus(c.Context(), employer.ID, c.Params("id"), req.Status)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.SuccessWithMessage(c, fiber.StatusOK,
		"Application status updated successfully", dto.NewApplicationResponse(row))
}

func (h *ApplicationsHandler) Withdraw(c fiber.Ctx) error {
	seeker, ok := middleware.UserFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Unauthorized", nil)
	}

	if err := h.uc.Withdraw(c.Context(), seeker.ID, c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}

	return response.SuccessWithMessage(c, fiber.StatusOK, "Application deleted successfully", nil)
}

func readMultipartFile(fh *multipart.FileHeader) (usecase.ResumeFile, error) {
	f, err := fh.Open()
	if err != nil {
		return usecase.ResumeFile{}, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return usecase.ResumeFile{}, err
	}

	return usecase.ResumeFile{
		Content:     content,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
	}, nil
}
