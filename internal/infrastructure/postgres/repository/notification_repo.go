package repository

import (
	"context"
	"errors"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/mappers"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultNotificationRepository struct {
	DB *gorm.DB
}

func NewDefaultNotificationRepository(db *gorm.DB) *DefaultNotificationRepository {
	return &DefaultNotificationRepository{DB: db}
}

func (r *DefaultNotificationRepository) CreateNotification(ctx context.Context, n *domain.Notification) error {
	model := mappers.ToGORMNotification(n)
	if err := conn(ctx, r.DB).Create(model).Error; err != nil {
		return err
	}
	n.CreatedAt = model.CreatedAt
	return nil
}

// GetNotification returns ErrNotificationNotFound for rows owned by another user.
func (r *DefaultNotificationRepository) GetNotification(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	var model models.NotificationModel
	if err := conn(ctx, r.DB).
		First(&model, "id = ? AND user_id = ?", notificationID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}
	return mappers.ToDomainNotification(&model), nil
}

func (r *DefaultNotificationRepository) ListNotifications(ctx context.Context, filter domain.NotificationFilter) ([]*domain.Notification, int64, error) {
	var rows []models.NotificationModel
	var total int64

	baseQuery := conn(ctx, r.DB).Model(&models.NotificationModel{}).Where("user_id = ?", filter.UserID)
	if filter.Read != nil {
		baseQuery = baseQuery.Where("read = ?", *filter.Read)
	}
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := baseQuery.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*domain.Notification, len(rows))
	for i := range rows {
		items[i] = mappers.ToDomainNotification(&rows[i])
	}
	return items, total, nil
}

func (r *DefaultNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := conn(ctx, r.DB).Model(&models.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *DefaultNotificationRepository) SetRead(ctx context.Context, notificationID string, read bool) error {
	res := conn(ctx, r.DB).Model(&models.NotificationModel{}).
		Where("id = ?", notificationID).
		Update("read", read)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *DefaultNotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	res := conn(ctx, r.DB).Model(&models.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	return res.RowsAffected, res.Error
}

func (r *DefaultNotificationRepository) DeleteNotification(ctx context.Context, notificationID string) error {
	res := conn(ctx, r.DB).Delete(&models.NotificationModel{}, "id = ?", notificationID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
