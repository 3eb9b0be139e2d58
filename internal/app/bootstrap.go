package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hirehub/internal/database/migration"
	"hirehub/internal/database/seeder"
	"hirehub/internal/delivery/http/handler"
	"hirehub/internal/delivery/http/middleware"
	"hirehub/internal/delivery/http/routes"
	"hirehub/internal/pkg/jwt"
	"hirehub/internal/repository"
	"hirehub/internal/usecase"
	"hirehub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

// Bootstrap builds the container, applies pending migrations and returns
// the wired application plus a cleanup closure for the owned resources.
func Bootstrap(c *Container) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	runner := migration.Runner{Dir: "migrations"}
	if err := runner.Run(ctx, c.DB.SQLDB()); err != nil {
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	if c.Config.App.SeedDemoData {
		seedRunner := seeder.Runner{Seeders: seeder.Defaults()}
		if err := seedRunner.Run(ctx, c.DB); err != nil {
			return nil, nil, fmt.Errorf("seed demo data: %w", err)
		}
	}

	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: 10 * 1024 * 1024,
	})

	errMw := middleware.NewErrorMiddleware(c.Logger)
	f.Use(errMw.Middleware())
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(accessMw.Middleware())

	buildRoutes(c).Register(f)

	return &App{Fiber: f, Hub: c.Hub}, c.Close, nil
}

func buildRoutes(c *Container) *routes.Registry {
	users := repository.NewPostgresUserRepository(c.DB)
	jobs := repository.NewPostgresJobRepository(c.DB)
	applications := repository.NewPostgresApplicationRepository(c.DB)
	profiles := repository.NewPostgresSeekerProfileRepository(c.DB)

	jwtSvc := jwt.NewHMACService(c.Config.JWT.Secret, c.Config.JWT.ExpiresIn)

	authUC := usecase.NewAuthUsecase(users, jwtSvc)
	jobUC := usecase.NewJobUsecase(jobs, c.Cache, c.Logger)
	applicationUC := usecase.NewApplicationUsecase(applications, jobs, c.Storage, c.Hub, c.Logger)
	seekerUC := usecase.NewSeekerUsecase(profiles, c.Storage, c.Logger)

	authMw := middleware.NewAuthMiddleware(jwtSvc, users)

	return routes.NewRegistry(
		handler.NewAuthHandler(authUC),
		handler.NewJobsHandler(jobUC),
		handler.NewApplicationsHandler(applicationUC),
		handler.NewJobSeekerHandler(seekerUC, applicationUC),
		ws.NewHandler(c.Hub, c.Logger),
		authMw,
	)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
