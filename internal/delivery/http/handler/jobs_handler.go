package handler

import (
	"strconv"
	"strings"

	"hirehub/internal/delivery/http/middleware"
	"hirehub/internal/pkg/response"
	"hirehub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobUsecase
}

type createJobRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Requirements string   `json:"requirements"`
	Skills       []string `json:"skills"`
	Salary       string   `json:"salary"`
	Type         string   `json:"type"`
	Experience   string   `json:"experience"`
}

type updateJobStatusRequest struct {
	Status string `json:"status"`
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/recent", h.Recent)
	r.Get("/:id", h.Get)
}

func (h *JobsHandler) RegisterEmployerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Put("/:id/status", h.UpdateStatus)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	page, err := parseQueryIntStrict(c, "page", 1)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "page must be a number", err)
	}
	limit, err := parseQueryIntStrict(c, "limit", 10)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "limit must be a number", err)
	}

	result, err := h.uc.Search(c.Context(), usecase.JobSearchParams{
		Title:      c.Query("title"),
		Location:   c.Query("location"),
		Type:       c.Query("type"),
		Search:     c.Query("search"),
		Experience: c.Query("experience"),
		Skills:     parseCSVQuery(c.Query("skills")),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, result)
}

func (h *JobsHandler) Recent(c fiber.Ctx) error {
	jobs, err := h.uc.Recent(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	j, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, j)
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	employer, ok := middleware.UserFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Unauthorized", nil)
	}

	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "Bad request", err)
	}

	j, err := h.uc.Create(c.Context(), employer.ID, usecase.CreateJobInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Requirements: req.Requirements,
		Skills:       req.Skills,
		Salary:       req.Salary,
		Type:         req.Type,
		Experience:   req.Experience,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.SuccessWithMessage(c, fiber.StatusCreated, "Job created successfully", j)
}

func (h *JobsHandler) UpdateStatus(c fiber.Ctx) error {
	employer, ok := middleware.UserFromContext(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Unauthorized", nil)
	}

	var req updateJobStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidation, "Bad request", err)
	}

	j, err := h.uc.UpdateStatus(c.Context(), employer.ID, c.Params("id"), req.Status)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.SuccessWithMessage(c, fiber.StatusOK, "Job status updated successfully", j)
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func parseCSVQuery(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
