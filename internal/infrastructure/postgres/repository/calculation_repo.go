package repository

import (
	"context"
	"errors"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/mappers"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCalculationRepository struct {
	DB *gorm.DB
}

func NewDefaultCalculationRepository(db *gorm.DB) *DefaultCalculationRepository {
	return &DefaultCalculationRepository{DB: db}
}

func (r *DefaultCalculationRepository) CreateCalculation(ctx context.Context, c *domain.Calculation) error {
	model := mappers.ToGORMCalculation(c)
	if err := conn(ctx, r.DB).Create(model).Error; err != nil {
		return err
	}
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *DefaultCalculationRepository) GetCalculation(ctx context.Context, id string) (*domain.Calculation, error) {
	var model models.CalculationModel
	if err := conn(ctx, r.DB).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCalculationNotFound
		}
		return nil, err
	}
	return mappers.ToDomainCalculation(&model), nil
}

func (r *DefaultCalculationRepository) IncrementViewCount(ctx context.Context, id string) error {
	res := conn(ctx, r.DB).Model(&models.CalculationModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCalculationNotFound
	}
	return nil
}
