package models

import (
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"gorm.io/datatypes"
)

// EmailScheduleModel is keyed by recipient address only so anonymous leads can be targeted.
type EmailScheduleModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	RecipientEmail string `gorm:"not null;index"`
	RecipientName  *string
	TemplateType   domain.EmailTemplateType `gorm:"type:varchar(20);not null"`
	Subject        string                   `gorm:"not null"`
	HTMLContent    string                   `gorm:"column:html_content;not null"`
	TextContent    *string
	Metadata       datatypes.JSON
	ScheduledFor   time.Time          `gorm:"not null;index:idx_email_due"`
	Status         domain.EmailStatus `gorm:"type:varchar(10);not null;index:idx_email_due"`
	Attempts       int                `gorm:"not null;default:0"`
	Error          *string
	SentAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (EmailScheduleModel) TableName() string {
	return "email_schedules"
}
