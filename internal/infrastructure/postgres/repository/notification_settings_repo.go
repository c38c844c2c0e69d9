package repository

import (
	"context"
	"errors"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/mappers"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultNotificationSettingsRepository struct {
	DB *gorm.DB
}

func NewDefaultNotificationSettingsRepository(db *gorm.DB) *DefaultNotificationSettingsRepository {
	return &DefaultNotificationSettingsRepository{DB: db}
}

// GetSettings returns (nil, nil) when the user has no settings row yet.
func (r *DefaultNotificationSettingsRepository) GetSettings(ctx context.Context, userID string) (*domain.NotificationSettings, error) {
	var model models.NotificationSettingsModel
	if err := conn(ctx, r.DB).First(&model, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainSettings(&model), nil
}

// CreateSettings ignores a concurrent insert for the same user; the caller re-reads afterwards.
func (r *DefaultNotificationSettingsRepository) CreateSettings(ctx context.Context, s *domain.NotificationSettings) error {
	model := mappers.ToGORMSettings(s)
	return conn(ctx, r.DB).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(model).Error
}

func (r *DefaultNotificationSettingsRepository) SaveSettings(ctx context.Context, s *domain.NotificationSettings) error {
	model := mappers.ToGORMSettings(s)
	if err := conn(ctx, r.DB).Save(model).Error; err != nil {
		return err
	}
	s.UpdatedAt = model.UpdatedAt
	return nil
}
