package mappers

import (
	"encoding/json"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/models"
	"gorm.io/datatypes"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	order := &domain.Order{
		ID:             model.ID,
		UserID:         model.UserID,
		ServiceName:    model.ServiceName,
		Description:    model.Description,
		Status:         model.Status,
		Priority:       model.Priority,
		Amount:         model.Amount,
		MonthlyAmount:  model.MonthlyAmount,
		OneTimeAmount:  model.OneTimeAmount,
		Currency:       model.Currency,
		Source:         model.Source,
		CalculatorData: rawJSON(model.CalculatorData),
		CRMDealID:      model.CRMDealID,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
		CompletedAt:    model.CompletedAt,
	}
	if model.User != nil {
		order.User = ToDomainUser(model.User)
	}
	for i := range model.Documents {
		order.Documents = append(order.Documents, *ToDomainDocument(&model.Documents[i]))
	}
	for i := range model.History {
		order.History = append(order.History, *ToDomainHistory(&model.History[i]))
	}
	return order
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:             order.ID,
		UserID:         order.UserID,
		ServiceName:    order.ServiceName,
		Description:    order.Description,
		Status:         order.Status,
		Priority:       order.Priority,
		Amount:         order.Amount,
		MonthlyAmount:  order.MonthlyAmount,
		OneTimeAmount:  order.OneTimeAmount,
		Currency:       order.Currency,
		Source:         order.Source,
		CalculatorData: gormJSON(order.CalculatorData),
		CRMDealID:      order.CRMDealID,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
		CompletedAt:    order.CompletedAt,
	}
}

func ToDomainHistory(model *models.OrderStatusHistoryModel) *domain.OrderStatusHistory {
	return &domain.OrderStatusHistory{
		ID:        model.ID,
		OrderID:   model.OrderID,
		Status:    model.Status,
		Comment:   model.Comment,
		ChangedBy: model.ChangedBy,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMHistory(entry *domain.OrderStatusHistory) *models.OrderStatusHistoryModel {
	return &models.OrderStatusHistoryModel{
		ID:        entry.ID,
		OrderID:   entry.OrderID,
		Status:    entry.Status,
		Comment:   entry.Comment,
		ChangedBy: entry.ChangedBy,
		CreatedAt: entry.CreatedAt,
	}
}

func ToDomainDocument(model *models.DocumentModel) *domain.Document {
	return &domain.Document{
		ID:        model.ID,
		OrderID:   model.OrderID,
		UserID:    model.UserID,
		Name:      model.Name,
		FileName:  model.FileName,
		FileSize:  model.FileSize,
		MimeType:  model.MimeType,
		CreatedAt: model.CreatedAt,
	}
}

// rawJSON returns nil for empty columns so callers can test len() instead of comparing to "null".
func rawJSON(v datatypes.JSON) json.RawMessage {
	if len(v) == 0 || string(v) == "null" {
		return nil
	}
	return json.RawMessage(v)
}

func gormJSON(v json.RawMessage) datatypes.JSON {
	if len(v) == 0 {
		return nil
	}
	return datatypes.JSON(v)
}
