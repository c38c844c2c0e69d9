package background

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/emailqueue"
	"github.com/robfig/cron/v3"
)

// BackgroundTasks runs the email drain on a cron schedule with second precision.
type BackgroundTasks struct {
	EmailQueueUsecase emailqueue.EmailQueueUsecase

	schedule  string
	batchSize int
	timeout   time.Duration
	cron      *cron.Cron
}

func NewBackgroundTasks(emailQueueUC emailqueue.EmailQueueUsecase, schedule string, batchSize int, timeout time.Duration) *BackgroundTasks {
	return &BackgroundTasks{
		EmailQueueUsecase: emailQueueUC,
		schedule:          schedule,
		batchSize:         batchSize,
		timeout:           timeout,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
	}
}

// StartAll registers the jobs and blocks until ctx is done, then waits for running jobs.
func (bt *BackgroundTasks) StartAll(ctx context.Context) error {
	if _, err := bt.cron.AddFunc(bt.schedule, func() { bt.RunEmailDrain(ctx) }); err != nil {
		return fmt.Errorf("invalid drain schedule %q: %w", bt.schedule, err)
	}

	bt.cron.Start()
	slog.Info("background tasks started", "drain_schedule", bt.schedule)

	<-ctx.Done()
	stopped := bt.cron.Stop()
	<-stopped.Done()
	slog.Info("background tasks stopped")
	return nil
}

// RunEmailDrain performs one drain cycle.
func (bt *BackgroundTasks) RunEmailDrain(ctx context.Context) int {
	if bt.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, bt.timeout)
		defer cancel()
	}

	sent, err := bt.EmailQueueUsecase.DrainDue(ctx, time.Now(), bt.batchSize)
	switch {
	case errors.Is(err, domain.ErrDrainInProgress):
		slog.Info("email drain skipped, already in progress")
	case err != nil:
		slog.Error("email drain failed", "processed", sent, "error", err)
	default:
		slog.Info("email drain completed", "sent", sent)
	}
	return sent
}
