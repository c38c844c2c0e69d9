package models

import (
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
)

type NotificationModel struct {
	ID        string                  `gorm:"primaryKey;type:uuid"`
	UserID    string                  `gorm:"type:uuid;not null;index:idx_notifications_user_read"`
	Type      domain.NotificationType `gorm:"type:varchar(20);not null"`
	Title     string                  `gorm:"not null"`
	Message   string                  `gorm:"not null"`
	Link      *string
	Read      bool      `gorm:"not null;default:false;index:idx_notifications_user_read"`
	CreatedAt time.Time `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

type NotificationSettingsModel struct {
	ID                 string `gorm:"primaryKey;type:uuid"`
	UserID             string `gorm:"type:uuid;not null;uniqueIndex"`
	EmailEnabled       bool   `gorm:"not null"`
	EmailOrderUpdates  bool   `gorm:"not null"`
	EmailDocumentReady bool   `gorm:"not null"`
	EmailReminders     bool   `gorm:"not null"`
	EmailPromotions    bool   `gorm:"not null"`
	PushEnabled        bool   `gorm:"not null"`
	PushOrderUpdates   bool   `gorm:"not null"`
	PushDocumentReady  bool   `gorm:"not null"`
	PushReminders      bool   `gorm:"not null"`
	PushPromotions     bool   `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (NotificationSettingsModel) TableName() string {
	return "notification_settings"
}
