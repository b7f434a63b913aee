package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/event-planner/internal/api/http"
	"github.com/spec-kit/event-planner/internal/api/http/handlers"
	"github.com/spec-kit/event-planner/internal/auth"
	"github.com/spec-kit/event-planner/internal/config"
	"github.com/spec-kit/event-planner/internal/events"
	"github.com/spec-kit/event-planner/internal/observability"
	"github.com/spec-kit/event-planner/internal/persistence"
	"github.com/spec-kit/event-planner/internal/repository"
	"github.com/spec-kit/event-planner/internal/service"
	"github.com/spec-kit/event-planner/internal/worker"
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

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	vendorRepo := repository.NewVendorRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth, userRepo)
	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo)
	vendorService := service.NewVendorService(vendorRepo)
	bookingService := service.NewBookingService(service.BookingDependencies{
		BookingRepo: bookingRepo,
		UserRepo:    userRepo,
		EventRepo:   eventRepo,
		Dispatcher:  dispatcher,
	})
	statsService := service.NewStatsService(service.StatsDependencies{
		UserRepo:    userRepo,
		EventRepo:   eventRepo,
		VendorRepo:  vendorRepo,
		BookingRepo: bookingRepo,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(pg, redis),
		Metrics:        handlers.NewMetricsHandler(statsService, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Events:         handlers.NewEventsHandler(eventService),
		Vendors:        handlers.NewVendorsHandler(vendorService),
		Bookings:       handlers.NewBookingsHandler(bookingService),
		AuthMiddleware: authMiddleware,
		AdminAPIKey:    cfg.Auth.AdminAPIKey,
	})

	// built frontend, when present
	if info, err := os.Stat(cfg.App.StaticDir); err == nil && info.IsDir() {
		app.Static("/", cfg.App.StaticDir)
	}

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
