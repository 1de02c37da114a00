package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/rqc23shu/safevalley-map/internal/api"
	"github.com/rqc23shu/safevalley-map/internal/config"
	"github.com/rqc23shu/safevalley-map/internal/redis"
	"github.com/rqc23shu/safevalley-map/internal/service"
	"github.com/rqc23shu/safevalley-map/internal/storage/postgres"
	"github.com/rqc23shu/safevalley-map/internal/workers"
	"github.com/rqc23shu/safevalley-map/pkg/logger"
	"github.com/rqc23shu/safevalley-map/pkg/validator"
)

type Components struct {
	logger     *slog.Logger
	cfg        *config.Config
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	EventQ     *redis.EventQueue
	Webhook    *service.WebhookSender
	Refresher  *workers.CacheRefresher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	cache := redis.NewReportCache(redisClient)
	eventQueue := redis.NewEventQueue(redisClient.Client, "moderation:events")

	v := validator.New(validator.MapBounds{
		MinLat: cfg.Map.MinLat,
		MaxLat: cfg.Map.MaxLat,
		MinLng: cfg.Map.MinLng,
		MaxLng: cfg.Map.MaxLng,
	})

	repo := storage.Reports()

	adminSvc := service.NewAdminService(
		repo, cache, eventQueue, v, logger,
		cfg.Moderation.PageSize, cfg.Moderation.HideExpiredApproved,
	)
	publicSvc := service.NewPublicService(repo, cache, v, logger, cfg.Moderation.CacheTTL)

	srv := service.NewService(adminSvc, publicSvc)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	c := &Components{
		logger:     logger,
		cfg:        cfg,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		EventQ:     eventQueue,
		Refresher: workers.NewCacheRefresher(
			repo, cache, logger,
			cfg.Moderation.RefreshInterval, cfg.Moderation.CacheTTL,
		),
	}
	if !cfg.Webhook.Disabled {
		c.Webhook = service.NewWebhookSender(logger, cfg.Webhook, eventQueue)
	}
	return c, nil
}

// StartWorkers launches the background loops. They stop when ctx does.
func (c *Components) StartWorkers(ctx context.Context) {
	go c.Refresher.Run(ctx)
	if c.Webhook != nil {
		go c.Webhook.Run(ctx)
	}
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
