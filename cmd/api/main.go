package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/staff-directory/internal/api/http"
	"github.com/spec-kit/staff-directory/internal/api/http/handlers"
	"github.com/spec-kit/staff-directory/internal/config"
	"github.com/spec-kit/staff-directory/internal/events"
	"github.com/spec-kit/staff-directory/internal/observability"
	"github.com/spec-kit/staff-directory/internal/persistence"
	"github.com/spec-kit/staff-directory/internal/repository"
	"github.com/spec-kit/staff-directory/internal/service"
	"github.com/spec-kit/staff-directory/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	dependencies := map[string]handlers.Pinger{}
	var staffRepo repository.StaffRepository
	if pg.Enabled() {
		staffRepo = repository.NewStaffRepository(pg.PoolHandle())
		dependencies["postgres"] = pg
	} else {
		staffRepo = repository.NewMemoryStaffRepository()
	}

	dispatcher := events.NewInMemoryDispatcher()
	var publisher service.EventPublisher
	if redis != nil {
		publisher = redis
		dependencies["redis"] = redis
	}
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, publisher, cfg.Redis.EventsChannel, logger))

	staffService := service.NewStaffService(service.StaffDependencies{
		StaffRepo:  staffRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	metrics := observability.NewMetrics()
	app := httptransport.NewApp(cfg.App.Name, logger, metrics,
		httptransport.MiddlewareConfig{
			Timeout: cfg.App.RequestTimeout(),
			HTTP:    cfg.HTTP,
		},
		httptransport.RouteConfig{
			Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, dependencies, metrics),
			Staff: handlers.NewStaffHandler(staffService, handlers.StaffHandlerOptions{
				MaxPageSize:    cfg.HTTP.MaxPageSize,
				MaxFieldLength: cfg.HTTP.MaxFieldLength,
			}),
		})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
