package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/app/background"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/app/setup"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/config"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/logger"
	"github.com/joho/godotenv"
)

func main() {
	once := flag.Bool("once", false, "run a single drain cycle and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	cfg := config.MustLoad()
	logger.Setup(cfg.LogConfig)

	deps, err := setup.InitializeDependencies(cfg)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	defer deps.Close()

	ucs, err := setup.InitializeUseCases(deps)
	if err != nil {
		log.Fatalf("failed to init usecases: %v", err)
	}

	tasks := background.NewBackgroundTasks(
		ucs.EmailQueueUsecase,
		cfg.Cron.DrainSchedule,
		cfg.Cron.BatchSize,
		cfg.Cron.DrainTimeout,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *once {
		tasks.RunEmailDrain(ctx)
		return
	}
	if err := tasks.StartAll(ctx); err != nil {
		log.Fatalf("failed to start background tasks: %v", err)
	}
}
