package response

import (
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
)

type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      *string   `json:"link"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationEnvelope struct {
	Notification Notification `json:"notification"`
}

type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	Total         int64          `json:"total"`
	UnreadCount   int64          `json:"unreadCount"`
	Limit         int            `json:"limit"`
	Offset        int            `json:"offset"`
}

type MarkAllRead struct {
	Updated int64 `json:"updated"`
}

type Message struct {
	Message string `json:"message"`
}

type Settings struct {
	EmailEnabled       bool `json:"emailEnabled"`
	EmailOrderUpdates  bool `json:"emailOrderUpdates"`
	EmailDocumentReady bool `json:"emailDocumentReady"`
	EmailReminders     bool `json:"emailReminders"`
	EmailPromotions    bool `json:"emailPromotions"`
	PushEnabled        bool `json:"pushEnabled"`
	PushOrderUpdates   bool `json:"pushOrderUpdates"`
	PushDocumentReady  bool `json:"pushDocumentReady"`
	PushReminders      bool `json:"pushReminders"`
	PushPromotions     bool `json:"pushPromotions"`
}

type SettingsEnvelope struct {
	Settings Settings `json:"settings"`
}

func FromNotification(n *domain.Notification) Notification {
	return Notification{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func FromNotifications(items []*domain.Notification) []Notification {
	out := make([]Notification, 0, len(items))
	for _, n := range items {
		out = append(out, FromNotification(n))
	}
	return out
}

func FromSettings(s *domain.NotificationSettings) Settings {
	return Settings{
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
	}
}
