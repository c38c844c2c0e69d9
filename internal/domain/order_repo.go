package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=order_repo.go -destination=mocks/repositories_mock.go -package=mocks

// Transactor runs fn in a unit of work; repositories called with the ctx passed
// to fn share the transaction.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	GetOrderWithDetails(ctx context.Context, orderID string) (*Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]*Order, int64, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status OrderStatus, completedAt *time.Time) error
	UpdateOrderFields(ctx context.Context, orderID string, description *string, priority *OrderPriority) error
	SetCRMDeal(ctx context.Context, orderID string, dealID int64) error
}

type OrderHistoryRepository interface {
	AddHistory(ctx context.Context, entry *OrderStatusHistory) error
	ListByOrder(ctx context.Context, orderID string) ([]*OrderStatusHistory, error)
}

type UserRepository interface {
	GetUserByID(ctx context.Context, userID string) (*User, error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, n *Notification) error
	GetNotification(ctx context.Context, userID, notificationID string) (*Notification, error)
	ListNotifications(ctx context.Context, filter NotificationFilter) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	SetRead(ctx context.Context, notificationID string, read bool) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	DeleteNotification(ctx context.Context, notificationID string) error
}

type NotificationSettingsRepository interface {
	GetSettings(ctx context.Context, userID string) (*NotificationSettings, error)
	CreateSettings(ctx context.Context, s *NotificationSettings) error
	SaveSettings(ctx context.Context, s *NotificationSettings) error
}

type EmailScheduleRepository interface {
	CreateBatch(ctx context.Context, rows []*EmailSchedule) error
	ListDue(ctx context.Context, now time.Time, limit, maxAttempts int) ([]*EmailSchedule, error)
	// Claim moves a PENDING row with the expected attempt count to SENDING and
	// increments attempts. It reports false when another drain won the row.
	Claim(ctx context.Context, id string, expectedAttempts int, now time.Time) (bool, error)
	MarkSent(ctx context.Context, id string, sentAt time.Time) error
	MarkAttemptFailed(ctx context.Context, id string, status EmailStatus, reason string, now time.Time) error
	// ReleaseStale returns SENDING rows untouched since staleBefore to PENDING,
	// or to FAILED once they have used up maxAttempts.
	ReleaseStale(ctx context.Context, staleBefore time.Time, maxAttempts int, now time.Time) (int64, error)
	CancelPending(ctx context.Context, recipientEmail string, now time.Time) (int64, error)
	ListByRecipient(ctx context.Context, recipientEmail string) ([]*EmailSchedule, error)
}

type CalculationRepository interface {
	CreateCalculation(ctx context.Context, c *Calculation) error
	GetCalculation(ctx context.Context, id string) (*Calculation, error)
	IncrementViewCount(ctx context.Context, id string) error
}
