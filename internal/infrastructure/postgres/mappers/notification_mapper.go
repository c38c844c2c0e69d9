package mappers

import (
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/models"
)

func ToDomainNotification(model *models.NotificationModel) *domain.Notification {
	return &domain.Notification{
		ID:        model.ID,
		UserID:    model.UserID,
		Type:      model.Type,
		Title:     model.Title,
		Message:   model.Message,
		Link:      model.Link,
		Read:      model.Read,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMNotification(n *domain.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func ToDomainSettings(model *models.NotificationSettingsModel) *domain.NotificationSettings {
	return &domain.NotificationSettings{
		ID:                 model.ID,
		UserID:             model.UserID,
		EmailEnabled:       model.EmailEnabled,
		EmailOrderUpdates:  model.EmailOrderUpdates,
		EmailDocumentReady: model.EmailDocumentReady,
		EmailReminders:     model.EmailReminders,
		EmailPromotions:    model.EmailPromotions,
		PushEnabled:        model.PushEnabled,
		PushOrderUpdates:   model.PushOrderUpdates,
		PushDocumentReady:  model.PushDocumentReady,
		PushReminders:      model.PushReminders,
		PushPromotions:     model.PushPromotions,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

func ToGORMSettings(s *domain.NotificationSettings) *models.NotificationSettingsModel {
	return &models.NotificationSettingsModel{
		ID:                 s.ID,
		UserID:             s.UserID,
		EmailEnabled:       s.EmailEnabled,
		EmailOrderUpdates:  s.EmailOrderUpdates,
		EmailDocumentReady: s.EmailDocumentReady,
		EmailReminders:     s.EmailReminders,
		EmailPromotions:    s.EmailPromotions,
		PushEnabled:        s.PushEnabled,
		PushOrderUpdates:   s.PushOrderUpdates,
		PushDocumentReady:  s.PushDocumentReady,
		PushReminders:      s.PushReminders,
		PushPromotions:     s.PushPromotions,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}
