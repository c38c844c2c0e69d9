package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/app/setup"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/config"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/delivery/http/handlers"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/delivery/http/router"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	logger.Setup(cfg.LogConfig)

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, err := setup.InitializeDependencies(cfg)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	defer deps.Close()

	ucs, err := setup.InitializeUseCases(deps)
	if err != nil {
		log.Fatalf("failed to init usecases: %v", err)
	}

	engine := router.New(router.Handlers{
		Orders:        handlers.NewOrderHandler(ucs.OrderUsecase),
		Admin:         handlers.NewAdminHandler(ucs.OrderUsecase, ucs.EmailQueueUsecase),
		Notifications: handlers.NewNotificationHandler(ucs.NotificationUsecase),
		Calculator:    handlers.NewCalculatorHandler(ucs.CalculatorUsecase),
		Cron:          handlers.NewCronHandler(ucs.EmailQueueUsecase, cfg.Cron.BatchSize, cfg.Cron.DrainTimeout),
	}, router.Options{
		Users:      deps.Repositories.UserRepo,
		CronSecret: cfg.Cron.Secret,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      engine,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}

	go func() {
		slog.Info("portal http server started", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	slog.Info("shutting down portal http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
