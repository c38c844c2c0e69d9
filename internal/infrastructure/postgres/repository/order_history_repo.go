package repository

import (
	"context"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/mappers"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderHistoryRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderHistoryRepository(db *gorm.DB) *DefaultOrderHistoryRepository {
	return &DefaultOrderHistoryRepository{DB: db}
}

func (r *DefaultOrderHistoryRepository) AddHistory(ctx context.Context, entry *domain.OrderStatusHistory) error {
	model := mappers.ToGORMHistory(entry)
	if err := conn(ctx, r.DB).Create(model).Error; err != nil {
		return err
	}
	entry.CreatedAt = model.CreatedAt
	return nil
}

func (r *DefaultOrderHistoryRepository) ListByOrder(ctx context.Context, orderID string) ([]*domain.OrderStatusHistory, error) {
	var rows []models.OrderStatusHistoryModel
	if err := conn(ctx, r.DB).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	history := make([]*domain.OrderStatusHistory, len(rows))
	for i := range rows {
		history[i] = mappers.ToDomainHistory(&rows[i])
	}
	return history, nil
}
