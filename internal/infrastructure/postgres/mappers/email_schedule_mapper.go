package mappers

import (
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/models"
)

func ToDomainEmailSchedule(model *models.EmailScheduleModel) *domain.EmailSchedule {
	return &domain.EmailSchedule{
		ID:             model.ID,
		RecipientEmail: model.RecipientEmail,
		RecipientName:  model.RecipientName,
		TemplateType:   model.TemplateType,
		Subject:        model.Subject,
		HTMLContent:    model.HTMLContent,
		TextContent:    model.TextContent,
		Metadata:       rawJSON(model.Metadata),
		ScheduledFor:   model.ScheduledFor,
		Status:         model.Status,
		Attempts:       model.Attempts,
		Error:          model.Error,
		SentAt:         model.SentAt,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func ToGORMEmailSchedule(row *domain.EmailSchedule) *models.EmailScheduleModel {
	return &models.EmailScheduleModel{
		ID:             row.ID,
		RecipientEmail: row.RecipientEmail,
		RecipientName:  row.RecipientName,
		TemplateType:   row.TemplateType,
		Subject:        row.Subject,
		HTMLContent:    row.HTMLContent,
		TextContent:    row.TextContent,
		Metadata:       gormJSON(row.Metadata),
		ScheduledFor:   row.ScheduledFor,
		Status:         row.Status,
		Attempts:       row.Attempts,
		Error:          row.Error,
		SentAt:         row.SentAt,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
