package repository

import (
	"context"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/mappers"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

const errDeliveryInterrupted = "delivery interrupted before the result was recorded"

type DefaultEmailScheduleRepository struct {
	DB *gorm.DB
}

func NewDefaultEmailScheduleRepository(db *gorm.DB) *DefaultEmailScheduleRepository {
	return &DefaultEmailScheduleRepository{DB: db}
}

func (r *DefaultEmailScheduleRepository) CreateBatch(ctx context.Context, rows []*domain.EmailSchedule) error {
	if len(rows) == 0 {
		return nil
	}
	batch := make([]*models.EmailScheduleModel, len(rows))
	for i, row := range rows {
		batch[i] = mappers.ToGORMEmailSchedule(row)
	}
	return conn(ctx, r.DB).Create(&batch).Error
}

// ListDue selects pending rows whose time has come, oldest schedule first.
func (r *DefaultEmailScheduleRepository) ListDue(ctx context.Context, now time.Time, limit, maxAttempts int) ([]*domain.EmailSchedule, error) {
	var rows []models.EmailScheduleModel
	if err := conn(ctx, r.DB).
		Where("status = ? AND scheduled_for <= ? AND attempts < ?", domain.EmailPending, now, maxAttempts).
		Order("scheduled_for ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	due := make([]*domain.EmailSchedule, len(rows))
	for i := range rows {
		due[i] = mappers.ToDomainEmailSchedule(&rows[i])
	}
	return due, nil
}

func (r *DefaultEmailScheduleRepository) Claim(ctx context.Context, id string, expectedAttempts int, now time.Time) (bool, error) {
	res := conn(ctx, r.DB).Model(&models.EmailScheduleModel{}).
		Where("id = ? AND status = ? AND attempts = ?", id, domain.EmailPending, expectedAttempts).
		Updates(map[string]any{
			"status":     domain.EmailSending,
			"attempts":   gorm.Expr("attempts + 1"),
			"updated_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *DefaultEmailScheduleRepository) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	return conn(ctx, r.DB).Model(&models.EmailScheduleModel{}).
		Where("id = ? AND status = ?", id, domain.EmailSending).
		Updates(map[string]any{
			"status":     domain.EmailSent,
			"sent_at":    sentAt,
			"error":      nil,
			"updated_at": sentAt,
		}).Error
}

func (r *DefaultEmailScheduleRepository) MarkAttemptFailed(ctx context.Context, id string, status domain.EmailStatus, reason string, now time.Time) error {
	return conn(ctx, r.DB).Model(&models.EmailScheduleModel{}).
		Where("id = ? AND status = ?", id, domain.EmailSending).
		Updates(map[string]any{
			"status":     status,
			"error":      reason,
			"updated_at": now,
		}).Error
}

// ReleaseStale hands rows left in SENDING by an interrupted drain back to the queue.
func (r *DefaultEmailScheduleRepository) ReleaseStale(ctx context.Context, staleBefore time.Time, maxAttempts int, now time.Time) (int64, error) {
	var released int64
	err := conn(ctx, r.DB).Transaction(func(tx *gorm.DB) error {
		exhausted := tx.Model(&models.EmailScheduleModel{}).
			Where("status = ? AND updated_at < ? AND attempts >= ?", domain.EmailSending, staleBefore, maxAttempts).
			Updates(map[string]any{
				"status":     domain.EmailFailed,
				"error":      errDeliveryInterrupted,
				"updated_at": now,
			})
		if exhausted.Error != nil {
			return exhausted.Error
		}
		retry := tx.Model(&models.EmailScheduleModel{}).
			Where("status = ? AND updated_at < ? AND attempts < ?", domain.EmailSending, staleBefore, maxAttempts).
			Updates(map[string]any{
				"status":     domain.EmailPending,
				"error":      errDeliveryInterrupted,
				"updated_at": now,
			})
		if retry.Error != nil {
			return retry.Error
		}
		released = exhausted.RowsAffected + retry.RowsAffected
		return nil
	})
	return released, err
}

func (r *DefaultEmailScheduleRepository) CancelPending(ctx context.Context, recipientEmail string, now time.Time) (int64, error) {
	res := conn(ctx, r.DB).Model(&models.EmailScheduleModel{}).
		Where("recipient_email = ? AND status = ?", recipientEmail, domain.EmailPending).
		Updates(map[string]any{
			"status":     domain.EmailCancelled,
			"updated_at": now,
		})
	return res.RowsAffected, res.Error
}

func (r *DefaultEmailScheduleRepository) ListByRecipient(ctx context.Context, recipientEmail string) ([]*domain.EmailSchedule, error) {
	var rows []models.EmailScheduleModel
	if err := conn(ctx, r.DB).
		Where("recipient_email = ?", recipientEmail).
		Order("scheduled_for ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*domain.EmailSchedule, len(rows))
	for i := range rows {
		out[i] = mappers.ToDomainEmailSchedule(&rows[i])
	}
	return out, nil
}
