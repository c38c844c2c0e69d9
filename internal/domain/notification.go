package domain

import "time"

type NotificationType string

const (
	NotificationOrderUpdate   NotificationType = "ORDER_UPDATE"
	NotificationDocumentReady NotificationType = "DOCUMENT_READY"
	NotificationReminder      NotificationType = "REMINDER"
	NotificationPromotion     NotificationType = "PROMOTION"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationOrderUpdate, NotificationDocumentReady, NotificationReminder, NotificationPromotion:
		return true
	}
	return false
}

type Notification struct {
	ID        string
	UserID    string
	Type      NotificationType
	Title     string
	Message   string
	Link      *string
	Read      bool
	CreatedAt time.Time
}

type NotificationFilter struct {
	UserID string
	Read   *bool
	Limit  int
	Offset int
}

// NotificationSettings gates email and push delivery per notification type.
type NotificationSettings struct {
	ID                 string
	UserID             string
	EmailEnabled       bool
	EmailOrderUpdates  bool
	EmailDocumentReady bool
	EmailReminders     bool
	EmailPromotions    bool
	PushEnabled        bool
	PushOrderUpdates   bool
	PushDocumentReady  bool
	PushReminders      bool
	PushPromotions     bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func DefaultNotificationSettings(userID string) *NotificationSettings {
	return &NotificationSettings{
		UserID:             userID,
		EmailEnabled:       true,
		EmailOrderUpdates:  true,
		EmailDocumentReady: true,
		EmailReminders:     true,
		EmailPromotions:    true,
		PushEnabled:        true,
		PushOrderUpdates:   true,
		PushDocumentReady:  true,
		PushReminders:      true,
		PushPromotions:     true,
	}
}

func (s *NotificationSettings) AllowsEmail(t NotificationType) bool {
	if !s.EmailEnabled {
		return false
	}
	switch t {
	case NotificationOrderUpdate:
		return s.EmailOrderUpdates
	case NotificationDocumentReady:
		return s.EmailDocumentReady
	case NotificationReminder:
		return s.EmailReminders
	case NotificationPromotion:
		return s.EmailPromotions
	}
	return true
}

func (s *NotificationSettings) AllowsPush(t NotificationType) bool {
	if !s.PushEnabled {
		return false
	}
	switch t {
	case NotificationOrderUpdate:
		return s.PushOrderUpdates
	case NotificationDocumentReady:
		return s.PushDocumentReady
	case NotificationReminder:
		return s.PushReminders
	case NotificationPromotion:
		return s.PushPromotions
	}
	return true
}

// NotificationSettingsPatch carries a partial settings update; nil fields stay untouched.
type NotificationSettingsPatch struct {
	EmailEnabled       *bool
	EmailOrderUpdates  *bool
	EmailDocumentReady *bool
	EmailReminders     *bool
	EmailPromotions    *bool
	PushEnabled        *bool
	PushOrderUpdates   *bool
	PushDocumentReady  *bool
	PushReminders      *bool
	PushPromotions     *bool
}

func (p NotificationSettingsPatch) Apply(s *NotificationSettings) {
	set := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	set(&s.EmailEnabled, p.EmailEnabled)
	set(&s.EmailOrderUpdates, p.EmailOrderUpdates)
	set(&s.EmailDocumentReady, p.EmailDocumentReady)
	set(&s.EmailReminders, p.EmailReminders)
	set(&s.EmailPromotions, p.EmailPromotions)
	set(&s.PushEnabled, p.PushEnabled)
	set(&s.PushOrderUpdates, p.PushOrderUpdates)
	set(&s.PushDocumentReady, p.PushDocumentReady)
	set(&s.PushReminders, p.PushReminders)
	set(&s.PushPromotions, p.PushPromotions)
}
