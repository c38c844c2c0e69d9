package emailqueue

import (
	"context"
	"log/slog"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
)

// DrainDue sends the due rows one by one and returns how many were attempted.
// Rows claimed by a concurrent drain are skipped and not counted.
func (uc *DefaultEmailQueueUsecase) DrainDue(ctx context.Context, now time.Time, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	if uc.locker != nil {
		release, err := uc.locker.Acquire(ctx)
		if err != nil {
			return 0, err
		}
		defer release()
	}

	started := time.Now()
	released, err := uc.Repo.ReleaseStale(ctx, uc.now().Add(-uc.sendingLease), uc.maxAttempts, uc.now())
	if err != nil {
		return 0, err
	}
	if released > 0 {
		slog.Warn("released emails stuck in SENDING", "count", released)
	}

	rows, err := uc.Repo.ListDue(ctx, now.UTC(), batchSize, uc.maxAttempts)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, row := range rows {
		if processed > 0 {
			if err := sleepCtx(ctx, uc.sendDelay); err != nil {
				uc.recordDrain(started, processed)
				return processed, err
			}
		}

		won, err := uc.Repo.Claim(ctx, row.ID, row.Attempts, uc.now())
		if err != nil {
			slog.Error("failed to claim scheduled email", "id", row.ID, "error", err)
			continue
		}
		if !won {
			if uc.Metrics != nil {
				uc.Metrics.RecordClaimLost()
			}
			continue
		}

		uc.deliver(ctx, row, row.Attempts+1)
		processed++
	}

	uc.recordDrain(started, processed)
	slog.Info("email drain finished", "due", len(rows), "processed", processed)
	return processed, nil
}

func (uc *DefaultEmailQueueUsecase) deliver(ctx context.Context, row *domain.EmailSchedule, attempts int) {
	email := domain.Email{
		To:      row.RecipientEmail,
		Subject: row.Subject,
		HTML:    row.HTMLContent,
	}
	if row.RecipientName != nil {
		email.ToName = *row.RecipientName
	}
	if row.TextContent != nil {
		email.Text = *row.TextContent
	}

	sendErr := uc.Sender.Send(ctx, email)

	// Строка уже в SENDING: итог пишем без учета отмены ctx, иначе она зависнет
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), bookkeepingTimeout)
	defer cancel()

	if sendErr == nil {
		if err := uc.Repo.MarkSent(recordCtx, row.ID, uc.now()); err != nil {
			slog.Error("failed to mark email as sent", "id", row.ID, "error", err)
		}
		if uc.Metrics != nil {
			uc.Metrics.RecordEmailSent(string(row.TemplateType))
		}
		return
	}

	status := domain.NextStatusAfterFailure(attempts, uc.maxAttempts)
	slog.Error("failed to send scheduled email",
		"id", row.ID,
		"template", row.TemplateType,
		"attempts", attempts,
		"next_status", status,
		"error", sendErr,
	)
	if err := uc.Repo.MarkAttemptFailed(recordCtx, row.ID, status, sendErr.Error(), uc.now()); err != nil {
		slog.Error("failed to record email failure", "id", row.ID, "error", err)
	}
	if uc.Metrics != nil {
		uc.Metrics.RecordEmailFailed(string(row.TemplateType), status == domain.EmailFailed)
	}
}

// SendNow delivers an email immediately, bypassing the queue.
func (uc *DefaultEmailQueueUsecase) SendNow(ctx context.Context, email domain.Email) error {
	if err := uc.Sender.Send(ctx, email); err != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordEmailFailed("immediate", true)
		}
		return err
	}
	if uc.Metrics != nil {
		uc.Metrics.RecordEmailSent("immediate")
	}
	return nil
}

func (uc *DefaultEmailQueueUsecase) recordDrain(started time.Time, processed int) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordDrain(time.Since(started).Seconds(), processed)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
