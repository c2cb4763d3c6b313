package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/config"
	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/handler"
	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/metrics"
	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/middleware"
	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/repository"
	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := newLogger(cfg.Log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open the store
	repo, err := repository.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store.Driver, err)
	}
	defer repo.Close()

	seeded, err := repo.EnsureTaskCatalog(ctx)
	if err != nil {
		log.Fatalf("Failed to initialise task catalog: %v", err)
	}
	if seeded {
		log.Info("Seeded default task catalog")
	}

	// Create services
	referralSvc := service.NewReferralService(repo, log)
	userService := service.NewUserService(repo, referralSvc, log)
	userService.SetLoginDelay(cfg.Server.LoginDelay)
	taskService := service.NewTaskService(repo, log)
	planService := service.NewPlanService(repo, log)
	walletService := service.NewWalletService(repo, log)
	settingsService := service.NewSettingsService(repo)
	adminSvc := service.NewAdminService(repo, log)

	// Set wallet service on admin service (balance credits)
	adminSvc.SetWalletService(walletService)

	if user, err := userService.RestoreSession(ctx); err == nil {
		log.WithField("user_id", user.ID).Info("Restored session")
	} else if !errors.Is(err, service.ErrNoSession) {
		log.Fatalf("Failed to restore session: %v", err)
	}

	// Create handlers
	h := handler.New(userService, taskService, planService, walletService, settingsService, log)
	adminHandler := handler.NewAdminHandler(adminSvc, log)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.Metrics())

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	loginLimiter := middleware.NewRateLimiter(cfg.Server.LoginRatePerMinute, cfg.Server.LoginBurst, log)
	handler.Register(app, h, adminHandler, middleware.SessionAuth(userService, log), loginLimiter.Handler())

	// Start background jobs
	if cfg.Jobs.EarningsResetCron != "" {
		worker := service.NewEarningsResetWorker(userService, cfg.Jobs.EarningsResetCron, log)
		go func() {
			if err := worker.Start(ctx); err != nil {
				log.Fatalf("Invalid earnings reset schedule %q: %v", cfg.Jobs.EarningsResetCron, err)
			}
		}()
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("Shutting down server...")
		cancel()
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	// Start server
	log.Infof("Server starting on port %s (%s store)", cfg.Server.Port, cfg.Store.Driver)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
