package domain

import (
	"encoding/json"
	"time"
)

type EmailTemplateType string

const (
	TemplateThankYou     EmailTemplateType = "THANK_YOU"
	TemplateFollowUpDay1 EmailTemplateType = "FOLLOW_UP_DAY1"
	TemplateFollowUpDay3 EmailTemplateType = "FOLLOW_UP_DAY3"
	TemplateFollowUpDay7 EmailTemplateType = "FOLLOW_UP_DAY7"
)

type EmailStatus string

const (
	EmailPending   EmailStatus = "PENDING"
	EmailSending   EmailStatus = "SENDING"
	EmailSent      EmailStatus = "SENT"
	EmailFailed    EmailStatus = "FAILED"
	EmailCancelled EmailStatus = "CANCELLED"
)

// MaxEmailAttempts is the retry ceiling of a scheduled email.
const MaxEmailAttempts = 3

// SeriesStep is one email of the follow-up series and its delay from enqueue time.
type SeriesStep struct {
	Template EmailTemplateType
	Delay    time.Duration
}

var EmailSeries = []SeriesStep{
	{Template: TemplateThankYou, Delay: 0},
	{Template: TemplateFollowUpDay1, Delay: 24 * time.Hour},
	{Template: TemplateFollowUpDay3, Delay: 3 * 24 * time.Hour},
	{Template: TemplateFollowUpDay7, Delay: 7 * 24 * time.Hour},
}

type EmailSchedule struct {
	ID             string
	RecipientEmail string
	RecipientName  *string
	TemplateType   EmailTemplateType
	Subject        string
	HTMLContent    string
	TextContent    *string
	Metadata       json.RawMessage
	ScheduledFor   time.Time
	Status         EmailStatus
	Attempts       int
	Error          *string
	SentAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NextStatusAfterFailure returns the status of a row whose delivery failed after
// attempts attempts in total. maxAttempts <= 0 means MaxEmailAttempts.
func NextStatusAfterFailure(attempts, maxAttempts int) EmailStatus {
	if maxAttempts <= 0 {
		maxAttempts = MaxEmailAttempts
	}
	if attempts >= maxAttempts {
		return EmailFailed
	}
	return EmailPending
}

// Email is a rendered message handed to an EmailSender.
type Email struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Text    string
}
