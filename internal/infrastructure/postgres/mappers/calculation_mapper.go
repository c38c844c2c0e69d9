package mappers

import (
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/models"
)

func ToDomainCalculation(model *models.CalculationModel) *domain.Calculation {
	return &domain.Calculation{
		ID:              model.ID,
		UserID:          model.UserID,
		Name:            model.Name,
		Phone:           model.Phone,
		Email:           model.Email,
		BusinessType:    model.BusinessType,
		TaxSystem:       model.TaxSystem,
		EmployeesCount:  model.EmployeesCount,
		OperationsCount: model.OperationsCount,
		HasNDS:          model.HasNDS,
		HasVED:          model.HasVED,
		Services:        rawJSON(model.Services),
		Surcharges:      rawJSON(model.Surcharges),
		Breakdown:       rawJSON(model.Breakdown),
		TotalMonthly:    model.TotalMonthly,
		TotalOneTime:    model.TotalOneTime,
		TotalYearly:     model.TotalYearly,
		ViewCount:       model.ViewCount,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMCalculation(c *domain.Calculation) *models.CalculationModel {
	return &models.CalculationModel{
		ID:              c.ID,
		UserID:          c.UserID,
		Name:            c.Name,
		Phone:           c.Phone,
		Email:           c.Email,
		BusinessType:    c.BusinessType,
		TaxSystem:       c.TaxSystem,
		EmployeesCount:  c.EmployeesCount,
		OperationsCount: c.OperationsCount,
		HasNDS:          c.HasNDS,
		HasVED:          c.HasVED,
		Services:        gormJSON(c.Services),
		Surcharges:      gormJSON(c.Surcharges),
		Breakdown:       gormJSON(c.Breakdown),
		TotalMonthly:    c.TotalMonthly,
		TotalOneTime:    c.TotalOneTime,
		TotalYearly:     c.TotalYearly,
		ViewCount:       c.ViewCount,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
