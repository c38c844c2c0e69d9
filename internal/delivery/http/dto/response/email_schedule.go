package response

import (
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
)

type EmailSchedule struct {
	ID           string     `json:"id"`
	TemplateType string     `json:"templateType"`
	Subject      string     `json:"subject"`
	ScheduledFor time.Time  `json:"scheduledFor"`
	Status       string     `json:"status"`
	Attempts     int        `json:"attempts"`
	Error        *string    `json:"error"`
	SentAt       *time.Time `json:"sentAt"`
}

type EmailScheduleList struct {
	Email     string          `json:"email"`
	Schedules []EmailSchedule `json:"schedules"`
}

func FromEmailSchedule(row *domain.EmailSchedule) EmailSchedule {
	return EmailSchedule{
		ID:           row.ID,
		TemplateType: string(row.TemplateType),
		Subject:      row.Subject,
		ScheduledFor: row.ScheduledFor,
		Status:       string(row.Status),
		Attempts:     row.Attempts,
		Error:        row.Error,
		SentAt:       row.SentAt,
	}
}
