package app

import (
	"context"
	"log"
	"time"

	"hirehub/internal/config"
	"hirehub/internal/database"
	dbpostgres "hirehub/internal/database/postgres"
	"hirehub/internal/infrastructure/cache"
	"hirehub/internal/infrastructure/storage"
	"hirehub/internal/ws"
)

// Container owns the process-lifetime dependencies: the connection pool,
// the cache client, resume storage and the notification hub.
type Container struct {
	Config  config.Config
	Logger  *log.Logger
	DB      database.DB
	Cache   *cache.Redis
	Storage storage.ResumeStorage
	Hub     *ws.Hub
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	resumeStorage, err := storage.NewCloudinaryStorage(cfg.Cloudinary, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Cache:   cache.NewRedis(cfg.Redis, logger),
		Storage: resumeStorage,
		Hub:     ws.NewHub(logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
