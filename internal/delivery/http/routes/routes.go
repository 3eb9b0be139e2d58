package routes

import (
	"hirehub/internal/delivery/http/handler"
	"hirehub/internal/delivery/http/middleware"
	"hirehub/internal/domain/user"
	"hirehub/internal/pkg/response"
	"hirehub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry wires every handler onto the Fiber app. Route paths live here
// and nowhere else.
type Registry struct {
	health        *handler.HealthHandler
	auth          *handler.AuthHandler
	jobs          *handler.JobsHandler
	applications  *handler.ApplicationsHandler
	jobseeker     *handler.JobSeekerHandler
	notifications *ws.Handler

	authMw *middleware.AuthMiddleware
}

func NewRegistry(
	auth *handler.AuthHandler,
	jobs *handler.JobsHandler,
	applications *handler.ApplicationsHandler,
	jobseeker *handler.JobSeekerHandler,
	notifications *ws.Handler,
	authMw *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health:        handler.NewHealthHandler(),
		auth:          auth,
		jobs:          jobs,
		applications:  applications,
		jobseeker:     jobseeker,
		notifications: notifications,
		authMw:        authMw,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.Register(app)

	if r.notifications != nil {
		app.Get("/ws/notifications", r.notifications.HandleNotifications)
	}

	api := app.Group("/api")
	r.registerAuth(api)
	r.registerJobs(api)
	r.registerApplications(api)
	r.registerJobSeeker(api)

	// Unmatched paths still answer with the envelope.
	app.Use(func(c fiber.Ctx) error {
		return middleware.NewAppError(fiber.StatusNotFound, response.CodeNotFound, "Route not found", nil)
	})
}

func (r *Registry) registerAuth(api fiber.Router) {
	auth := api.Group("/auth")
	r.auth.RegisterPublicRoutes(auth)

	protected := api.Group("/auth", r.authMw.Middleware())
	r.auth.RegisterProtectedRoutes(protected)
}

func (r *Registry) registerJobs(api fiber.Router) {
	jobs := api.Group("/jobs")
	r.jobs.RegisterPublicRoutes(jobs)

	employer := api.Group("/jobs", r.authMw.Middleware(), middleware.RequireRoles(user.RoleEmployer))
	r.jobs.RegisterEmployerRoutes(employer)
}

func (r *Registry) registerApplications(api fiber.Router) {
	seeker := api.Group("/applications", r.authMw.Middleware(), middleware.RequireRoles(user.RoleJobSeeker))
	r.applications.RegisterSeekerRoutes(seeker)

	employer := api.Group("/applications", r.authMw.Middleware(), middleware.RequireRoles(user.RoleEmployer))
	r.applications.RegisterEmployerRoutes(employer)
}

func (r *Registry) registerJobSeeker(api fiber.Router) {
	seeker := api.Group("/jobseeker", r.authMw.Middleware(), middleware.RequireRoles(user.RoleJobSeeker))
	r.jobseeker.RegisterRoutes(seeker)
}
